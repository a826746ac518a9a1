package campaignrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/akosarev/fundmart/internal/domain"
	"github.com/akosarev/fundmart/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Campaign, error) {
	query := `
        SELECT id, owner_id, title, category, goal, raised, status, reallocations, created_at, suspended_at
        FROM campaigns
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)

	var campaign domain.Campaign
	err := row.Scan(&campaign.ID, &campaign.OwnerID, &campaign.Title, &campaign.Category,
		&campaign.Goal, &campaign.Raised, &campaign.Status, &campaign.Reallocations,
		&campaign.CreatedAt, &campaign.SuspendedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find campaign", zap.Error(err))
		return nil, err
	}
	return &campaign, nil
}

func (r *Repository) Save(ctx context.Context, campaign *domain.Campaign) error {
	query := `
        INSERT INTO campaigns (owner_id, title, category, goal, raised, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query, campaign.OwnerID, campaign.Title, campaign.Category,
			campaign.Goal, campaign.Raised, campaign.Status, campaign.CreatedAt)
		if err := row.Scan(&campaign.ID); err != nil {
			zap.L().Error("can't save campaign", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) Update(ctx context.Context, campaign *domain.Campaign) error {
	query := `
        UPDATE campaigns
        SET raised = $1, status = $2, reallocations = $3, suspended_at = $4
        WHERE id = $5
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, campaign.Raised, campaign.Status,
			campaign.Reallocations, campaign.SuspendedAt, campaign.ID)
		if err != nil {
			zap.L().Error("failed to update campaign", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

// AddRaised increments the raised amount in a single statement so concurrent
// donations and reallocations against the same campaign never lose updates.
func (r *Repository) AddRaised(ctx context.Context, id int, amount int64) (*domain.Campaign, error) {
	query := `
        UPDATE campaigns
        SET raised = raised + $1
        WHERE id = $2
        RETURNING id, owner_id, title, category, goal, raised, status, reallocations, created_at, suspended_at
    `
	row := r.db.QueryRow(ctx, query, amount, id)

	var campaign domain.Campaign
	err := row.Scan(&campaign.ID, &campaign.OwnerID, &campaign.Title, &campaign.Category,
		&campaign.Goal, &campaign.Raised, &campaign.Status, &campaign.Reallocations,
		&campaign.CreatedAt, &campaign.SuspendedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't increment raised amount", zap.Error(err))
		return nil, err
	}
	return &campaign, nil
}

func (r *Repository) FindOpen(ctx context.Context) ([]domain.Campaign, error) {
	query := `
        SELECT id, owner_id, title, category, goal, raised, status, reallocations, created_at, suspended_at
        FROM campaigns
        WHERE status = 'approved' AND raised < goal
        ORDER BY created_at ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get open campaigns", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var campaigns []domain.Campaign
	for rows.Next() {
		var campaign domain.Campaign
		err := rows.Scan(&campaign.ID, &campaign.OwnerID, &campaign.Title, &campaign.Category,
			&campaign.Goal, &campaign.Raised, &campaign.Status, &campaign.Reallocations,
			&campaign.CreatedAt, &campaign.SuspendedAt)
		if err != nil {
			zap.L().Error("can't scan campaign row", zap.Error(err))
			return nil, err
		}
		campaigns = append(campaigns, campaign)
	}
	return campaigns, nil
}
