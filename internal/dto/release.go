package dto

type SuspendReallocateRequestDTO struct {
	SuspendedCampaignID int                `json:"suspendedCampaignId"`
	Allocations         map[string]float64 `json:"allocations"`
}

type SuspendReallocateResponseDTO struct {
	Success bool                `json:"success"`
	Data    CampaignResponseDTO `json:"data"`
}

type ReleaseMoneyRequestDTO struct {
	Account string `json:"account"`
}
