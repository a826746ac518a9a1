package service

import (
	"testing"

	"github.com/akosarev/fundmart/internal/config"
	"github.com/akosarev/fundmart/internal/repo"
	"github.com/akosarev/fundmart/internal/service/campaignservice"
	"github.com/akosarev/fundmart/internal/service/notifyservice"
	"github.com/akosarev/fundmart/internal/service/releaseservice"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCampaignRepo := campaignservice.NewMockRepo(ctrl)
	mockLedgerRepo := campaignservice.NewMockLedgerRepo(ctrl)
	mockNotificationRepo := notifyservice.NewMockRepo(ctrl)
	mockUserRepo := releaseservice.NewMockUserRepo(ctrl)
	mockAlerter := campaignservice.NewMockAlerter(ctrl)

	repos := &repo.Repositories{
		CampaignRepo:     mockCampaignRepo,
		LedgerRepo:       mockLedgerRepo,
		NotificationRepo: mockNotificationRepo,
		UserRepo:         mockUserRepo,
	}

	services := New(repos, &config.Config{BlockOwnerOnSuspend: true}, mockAlerter)

	assert.NotNil(t, services.CampaignService)
	assert.NotNil(t, services.ReleaseService)
	assert.NotNil(t, services.NotifyService)
}
