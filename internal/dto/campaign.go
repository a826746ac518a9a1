package dto

import "time"

type CreateCampaignRequestDTO struct {
	Title    string  `json:"title"`
	Category string  `json:"category"`
	Goal     float64 `json:"goal"`
}

type ReviewCampaignRequestDTO struct {
	Decision string `json:"decision"` // "approved" or "rejected"
}

type DonationRequestDTO struct {
	Ref    string  `json:"ref,omitempty"`
	UserID *int    `json:"userId,omitempty"`
	Amount float64 `json:"amount"`
}

type ReallocationDTO struct {
	TargetID    int     `json:"targetId"`
	TargetTitle string  `json:"targetTitle"`
	Amount      float64 `json:"amount"`
}

type CampaignResponseDTO struct {
	ID            int               `json:"id"`
	OwnerID       int               `json:"ownerId"`
	Title         string            `json:"title"`
	Category      string            `json:"category,omitempty"`
	Goal          float64           `json:"goal"`
	Raised        float64           `json:"raised"`
	Status        string            `json:"status"`
	Reallocations []ReallocationDTO `json:"reallocations,omitempty"`
	CreatedAt     time.Time         `json:"createdAt"`
	SuspendedAt   *time.Time        `json:"suspendedAt,omitempty"`
}
