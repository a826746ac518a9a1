package userrepo

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

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	query := `
        SELECT id, login, blocked, withdrawable, created_at
        FROM users
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)

	var user domain.User
	err := row.Scan(&user.ID, &user.Login, &user.Blocked, &user.Withdrawable, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *Repository) SetBlocked(ctx context.Context, id int, blocked bool) error {
	query := `
        UPDATE users SET blocked = $1 WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, blocked, id)
	if err != nil {
		zap.L().Error("failed to update user blocked flag", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) AddWithdrawable(ctx context.Context, id int, amount int64) error {
	query := `
        UPDATE users SET withdrawable = withdrawable + $1 WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, amount, id)
	if err != nil {
		zap.L().Error("failed to credit withdrawable balance", zap.Error(err))
		return err
	}
	return nil
}
