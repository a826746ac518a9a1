package watcher

import "github.com/akosarev/fundmart/internal/domain"

// Transition is a closed set of campaign status changes the watcher reacts
// to. Each variant carries exactly the payload its handling needs, so
// dispatch is an exhaustive type switch instead of string comparisons.
type Transition interface {
	isTransition()
}

type Approved struct {
	Campaign *domain.Campaign
}

type Rejected struct {
	Campaign *domain.Campaign
}

type Completed struct {
	Campaign *domain.Campaign
}

type Suspended struct {
	Campaign    *domain.Campaign
	Allocations []domain.ReallocationRecord
}

func (Approved) isTransition()  {}
func (Rejected) isTransition()  {}
func (Completed) isTransition() {}
func (Suspended) isTransition() {}

// parseTransition maps a status value to its variant. Statuses outside the
// closed set (including "pending") return false and are ignored.
func parseTransition(campaign *domain.Campaign, newStatus string) (Transition, bool) {
	switch newStatus {
	case domain.CampaignStatusApproved:
		return Approved{Campaign: campaign}, true
	case domain.CampaignStatusRejected:
		return Rejected{Campaign: campaign}, true
	case domain.CampaignStatusCompleted:
		return Completed{Campaign: campaign}, true
	case domain.CampaignStatusSuspended:
		return Suspended{Campaign: campaign, Allocations: campaign.Reallocations}, true
	default:
		return nil, false
	}
}
