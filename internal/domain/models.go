package domain

import "time"

// Campaign statuses. A campaign is created pending, a reviewer flips it to
// approved or rejected, donations may complete it, an administrator may
// suspend it at any point before completion.
const (
	CampaignStatusPending   string = "pending"
	CampaignStatusApproved  string = "approved"
	CampaignStatusRejected  string = "rejected"
	CampaignStatusCompleted string = "completed"
	CampaignStatusSuspended string = "suspended"
)

// Ledger entry kinds.
const (
	LedgerKindDonation     string = "donation"
	LedgerKindWithdrawal   string = "withdrawal"
	LedgerKindReallocation string = "reallocation"
)

// Ledger entry statuses.
const (
	LedgerStatusPending  string = "pending"
	LedgerStatusApproved string = "approved"
	LedgerStatusRejected string = "rejected"
)

// SystemUserID marks ledger entries produced by the platform itself
// (reallocations have no human donor).
const SystemUserID = 0

// All monetary amounts are int64 minor units (cents).

type Campaign struct {
	ID            int                  `db:"id"`
	OwnerID       int                  `db:"owner_id"`
	Title         string               `db:"title"`
	Category      string               `db:"category"`
	Goal          int64                `db:"goal"`
	Raised        int64                `db:"raised"`
	Status        string               `db:"status"`
	Reallocations []ReallocationRecord `db:"reallocations"`
	CreatedAt     time.Time            `db:"created_at"`
	SuspendedAt   *time.Time           `db:"suspended_at"`
}

// ReallocationRecord is the audit trail stored on a suspended source
// campaign: where its funds went and how much.
type ReallocationRecord struct {
	TargetID    int    `json:"target_id"`
	TargetTitle string `json:"target_title"`
	Amount      int64  `json:"amount"`
}

// LedgerMeta carries reallocation context on a ledger entry.
type LedgerMeta struct {
	SourceCampaignID int    `json:"source_campaign_id,omitempty"`
	SourceTitle      string `json:"source_title,omitempty"`
	TargetTitle      string `json:"target_title,omitempty"`
}

type LedgerEntry struct {
	ID         int         `db:"id"`
	RefID      string      `db:"ref_id"`
	CampaignID *int        `db:"campaign_id"`
	UserID     *int        `db:"user_id"`
	Amount     int64       `db:"amount"`
	Kind       string      `db:"kind"`
	Status     string      `db:"status"`
	Meta       *LedgerMeta `db:"meta"`
	CreatedAt  time.Time   `db:"created_at"`
}

type Notification struct {
	ID          int       `db:"id"`
	UserID      int       `db:"user_id"`
	CampaignID  *int      `db:"campaign_id"`
	Message     string    `db:"message"`
	StatusLabel string    `db:"status_label"`
	Kind        string    `db:"kind"`
	Read        bool      `db:"read"`
	CreatedAt   time.Time `db:"created_at"`
}

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	Blocked      bool      `db:"blocked"`
	Withdrawable int64     `db:"withdrawable"`
	CreatedAt    time.Time `db:"created_at"`
}
