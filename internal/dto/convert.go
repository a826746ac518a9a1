package dto

import (
	"github.com/akosarev/fundmart/internal/domain"
	"github.com/akosarev/fundmart/pkg/money"
)

func NewCampaignResponse(campaign *domain.Campaign) CampaignResponseDTO {
	resp := CampaignResponseDTO{
		ID:          campaign.ID,
		OwnerID:     campaign.OwnerID,
		Title:       campaign.Title,
		Category:    campaign.Category,
		Goal:        money.ToFloat(campaign.Goal),
		Raised:      money.ToFloat(campaign.Raised),
		Status:      campaign.Status,
		CreatedAt:   campaign.CreatedAt,
		SuspendedAt: campaign.SuspendedAt,
	}
	for _, rec := range campaign.Reallocations {
		resp.Reallocations = append(resp.Reallocations, ReallocationDTO{
			TargetID:    rec.TargetID,
			TargetTitle: rec.TargetTitle,
			Amount:      money.ToFloat(rec.Amount),
		})
	}
	return resp
}

func NewNotificationResponse(n domain.Notification) NotificationResponseDTO {
	return NotificationResponseDTO{
		ID:         n.ID,
		CampaignID: n.CampaignID,
		Message:    n.Message,
		Status:     n.StatusLabel,
		Kind:       n.Kind,
		Read:       n.Read,
		CreatedAt:  n.CreatedAt,
	}
}
