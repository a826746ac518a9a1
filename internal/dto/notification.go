package dto

import "time"

type NotificationResponseDTO struct {
	ID         int       `json:"id"`
	CampaignID *int      `json:"campaignId,omitempty"`
	Message    string    `json:"message"`
	Status     string    `json:"status"`
	Kind       string    `json:"kind"`
	Read       bool      `json:"read"`
	CreatedAt  time.Time `json:"createdAt"`
}
