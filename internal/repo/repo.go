package repo

import (
	"github.com/akosarev/fundmart/internal/pg"
	campaignrepo "github.com/akosarev/fundmart/internal/repo/campaign-repo"
	ledgerrepo "github.com/akosarev/fundmart/internal/repo/ledger-repo"
	notificationrepo "github.com/akosarev/fundmart/internal/repo/notification-repo"
	userrepo "github.com/akosarev/fundmart/internal/repo/user-repo"
	"github.com/akosarev/fundmart/internal/service/campaignservice"
	"github.com/akosarev/fundmart/internal/service/notifyservice"
	"github.com/akosarev/fundmart/internal/service/releaseservice"
)

type Repositories struct {
	CampaignRepo     campaignservice.Repo
	LedgerRepo       campaignservice.LedgerRepo
	NotificationRepo notifyservice.Repo
	UserRepo         releaseservice.UserRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	campaignRepo := campaignrepo.New(conn, txManager)
	ledgerRepo := ledgerrepo.New(conn)
	notificationRepo := notificationrepo.New(conn)
	userRepo := userrepo.New(conn)

	return &Repositories{
		CampaignRepo:     campaignRepo,
		LedgerRepo:       ledgerRepo,
		NotificationRepo: notificationRepo,
		UserRepo:         userRepo,
	}
}
