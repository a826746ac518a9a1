package notifyservice

import (
	"context"
	"errors"
	"time"

	"github.com/akosarev/fundmart/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	Create(ctx context.Context, notification *domain.Notification) (*domain.Notification, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id int, userID int) (bool, error)
	Delete(ctx context.Context, id int, userID int) (bool, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

var ErrNotificationNotFound = errors.New("notification not found")

// Notification kinds.
const (
	KindCampaignStatus string = "campaign_status"
	KindReallocation   string = "reallocation"
)

// Notify writes one notification record. Repeated delivery of the same event
// produces duplicates; deduplication, if ever needed, belongs to a layer
// above this one.
func (s *Service) Notify(ctx context.Context, userID int, campaignID *int, message, statusLabel, kind string) (*domain.Notification, error) {
	notification := &domain.Notification{
		UserID:      userID,
		CampaignID:  campaignID,
		Message:     message,
		StatusLabel: statusLabel,
		Kind:        kind,
		Read:        false,
		CreatedAt:   time.Now(),
	}

	created, err := s.repo.Create(ctx, notification)
	if err != nil {
		zap.L().Error("failed to create notification", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) ListByUser(ctx context.Context, userID int) ([]domain.Notification, error) {
	notifications, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch notifications", zap.Error(err))
		return nil, err
	}
	return notifications, nil
}

func (s *Service) MarkRead(ctx context.Context, id int, userID int) error {
	ok, err := s.repo.MarkRead(ctx, id, userID)
	if err != nil {
		zap.L().Error("failed to mark notification read", zap.Error(err))
		return err
	}
	if !ok {
		return ErrNotificationNotFound
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id int, userID int) error {
	ok, err := s.repo.Delete(ctx, id, userID)
	if err != nil {
		zap.L().Error("failed to delete notification", zap.Error(err))
		return err
	}
	if !ok {
		return ErrNotificationNotFound
	}
	return nil
}
