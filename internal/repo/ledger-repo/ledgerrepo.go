package ledgerrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/akosarev/fundmart/internal/domain"
	"github.com/akosarev/fundmart/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Save(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
	query := `
        INSERT INTO ledger_entries (ref_id, campaign_id, user_id, amount, kind, status, meta, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id
    `
	row := r.db.QueryRow(ctx, query, entry.RefID, entry.CampaignID, entry.UserID,
		entry.Amount, entry.Kind, entry.Status, entry.Meta, entry.CreatedAt)
	if err := row.Scan(&entry.ID); err != nil {
		zap.L().Error("failed to save ledger entry", zap.Error(err))
		return nil, err
	}
	return entry, nil
}

func (r *Repository) FindByRefID(ctx context.Context, refID string) (*domain.LedgerEntry, error) {
	query := `
        SELECT id, ref_id, campaign_id, user_id, amount, kind, status, meta, created_at
        FROM ledger_entries
        WHERE ref_id = $1
    `
	row := r.db.QueryRow(ctx, query, refID)

	var entry domain.LedgerEntry
	err := row.Scan(&entry.ID, &entry.RefID, &entry.CampaignID, &entry.UserID,
		&entry.Amount, &entry.Kind, &entry.Status, &entry.Meta, &entry.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find ledger entry", zap.Error(err))
		return nil, err
	}
	return &entry, nil
}

// FindDistinctDonors returns every user holding at least one approved
// donation entry against the campaign. Anonymous donations carry no user id
// and are skipped.
func (r *Repository) FindDistinctDonors(ctx context.Context, campaignID int) ([]int, error) {
	query := `
        SELECT DISTINCT user_id
        FROM ledger_entries
        WHERE campaign_id = $1 AND kind = 'donation' AND status = 'approved' AND user_id IS NOT NULL
        ORDER BY user_id ASC
    `
	rows, err := r.db.Query(ctx, query, campaignID)
	if err != nil {
		zap.L().Error("can't get campaign donors", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var donors []int
	for rows.Next() {
		var userID int
		if err := rows.Scan(&userID); err != nil {
			zap.L().Error("can't scan donor row", zap.Error(err))
			return nil, err
		}
		donors = append(donors, userID)
	}
	return donors, nil
}

// SumApprovedByCampaign derives the campaign's balance from its approved
// entries: donations and incoming reallocations add, withdrawals subtract.
func (r *Repository) SumApprovedByCampaign(ctx context.Context, campaignID int) (int64, error) {
	query := `
        SELECT COALESCE(SUM(CASE WHEN kind = 'withdrawal' THEN -amount ELSE amount END), 0)
        FROM ledger_entries
        WHERE campaign_id = $1 AND status = 'approved'
    `
	row := r.db.QueryRow(ctx, query, campaignID)

	var sum int64
	if err := row.Scan(&sum); err != nil {
		zap.L().Error("can't sum ledger entries", zap.Error(err))
		return 0, err
	}
	return sum, nil
}

// SumReallocatedFrom totals the approved reallocation entries that moved money
// out of the campaign. Those entries are filed under the receiving campaign's
// id, so the source is recoverable only through the entry meta.
func (r *Repository) SumReallocatedFrom(ctx context.Context, campaignID int) (int64, error) {
	query := `
        SELECT COALESCE(SUM(amount), 0)
        FROM ledger_entries
        WHERE kind = 'reallocation' AND status = 'approved'
          AND (meta->>'source_campaign_id')::int = $1
    `
	row := r.db.QueryRow(ctx, query, campaignID)

	var sum int64
	if err := row.Scan(&sum); err != nil {
		zap.L().Error("can't sum outgoing reallocations", zap.Error(err))
		return 0, err
	}
	return sum, nil
}
