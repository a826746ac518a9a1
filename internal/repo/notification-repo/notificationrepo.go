package notificationrepo

import (
	"context"

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

func (r *Repository) Create(ctx context.Context, notification *domain.Notification) (*domain.Notification, error) {
	query := `
        INSERT INTO notifications (user_id, campaign_id, message, status_label, kind, read, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id
    `
	row := r.db.QueryRow(ctx, query, notification.UserID, notification.CampaignID,
		notification.Message, notification.StatusLabel, notification.Kind,
		notification.Read, notification.CreatedAt)
	if err := row.Scan(&notification.ID); err != nil {
		zap.L().Error("failed to create notification", zap.Error(err))
		return nil, err
	}
	return notification, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Notification, error) {
	query := `
        SELECT id, user_id, campaign_id, message, status_label, kind, read, created_at
        FROM notifications WHERE user_id = $1 ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get notifications", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var notifications []domain.Notification
	for rows.Next() {
		var n domain.Notification
		err := rows.Scan(&n.ID, &n.UserID, &n.CampaignID, &n.Message,
			&n.StatusLabel, &n.Kind, &n.Read, &n.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan notification row", zap.Error(err))
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, nil
}

// MarkRead flips the read flag for the recipient only; a zero row count means
// the notification does not exist or belongs to someone else.
func (r *Repository) MarkRead(ctx context.Context, id int, userID int) (bool, error) {
	query := `
        UPDATE notifications SET read = TRUE WHERE id = $1 AND user_id = $2
    `
	tag, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		zap.L().Error("failed to mark notification read", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) Delete(ctx context.Context, id int, userID int) (bool, error) {
	query := `
        DELETE FROM notifications WHERE id = $1 AND user_id = $2
    `
	tag, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		zap.L().Error("failed to delete notification", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
