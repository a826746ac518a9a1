package service

import (
	"github.com/akosarev/fundmart/internal/config"
	"github.com/akosarev/fundmart/internal/repo"
	"github.com/akosarev/fundmart/internal/service/campaignservice"
	"github.com/akosarev/fundmart/internal/service/notifyservice"
	"github.com/akosarev/fundmart/internal/service/releaseservice"
)

type Services struct {
	CampaignService *campaignservice.Service
	ReleaseService  *releaseservice.Service
	NotifyService   *notifyservice.Service
}

func New(repo *repo.Repositories, cfg *config.Config, alerter campaignservice.Alerter) *Services {
	campaignService := campaignservice.New(repo.CampaignRepo, repo.LedgerRepo, alerter)
	releaseService := releaseservice.New(repo.CampaignRepo, repo.LedgerRepo, repo.UserRepo, cfg.BlockOwnerOnSuspend)
	notifyService := notifyservice.New(repo.NotificationRepo)

	return &Services{
		CampaignService: campaignService,
		ReleaseService:  releaseService,
		NotifyService:   notifyService,
	}
}
