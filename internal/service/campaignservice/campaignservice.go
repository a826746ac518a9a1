package campaignservice

import (
	"context"
	"errors"
	"time"

	"github.com/akosarev/fundmart/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repo interface {
	FindByID(ctx context.Context, id int) (*domain.Campaign, error)
	Save(ctx context.Context, campaign *domain.Campaign) error
	Update(ctx context.Context, campaign *domain.Campaign) error
	AddRaised(ctx context.Context, id int, amount int64) (*domain.Campaign, error)
	FindOpen(ctx context.Context) ([]domain.Campaign, error)
}

type LedgerRepo interface {
	Save(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error)
	FindByRefID(ctx context.Context, refID string) (*domain.LedgerEntry, error)
	FindDistinctDonors(ctx context.Context, campaignID int) ([]int, error)
	SumApprovedByCampaign(ctx context.Context, campaignID int) (int64, error)
	SumReallocatedFrom(ctx context.Context, campaignID int) (int64, error)
}

// Alerter receives data-integrity findings from reconciliation.
type Alerter interface {
	IntegrityAlert(campaignID int, stored, derived int64)
}

type Service struct {
	repo       Repo
	ledgerRepo LedgerRepo
	alerter    Alerter
}

func New(repo Repo, ledgerRepo LedgerRepo, alerter Alerter) *Service {
	return &Service{
		repo:       repo,
		ledgerRepo: ledgerRepo,
		alerter:    alerter,
	}
}

var (
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrInvalidGoal      = errors.New("goal must be positive")
	ErrNotReviewable    = errors.New("campaign is not pending review")
	ErrCampaignNotOpen  = errors.New("campaign is not open for donations")
	ErrInvalidAmount    = errors.New("amount must be positive")
	ErrDuplicateRef     = errors.New("ledger reference already exists")
)

func (s *Service) Create(ctx context.Context, ownerID int, title, category string, goal int64) (*domain.Campaign, error) {
	if goal <= 0 {
		return nil, ErrInvalidGoal
	}

	campaign := &domain.Campaign{
		OwnerID:   ownerID,
		Title:     title,
		Category:  category,
		Goal:      goal,
		Raised:    0,
		Status:    domain.CampaignStatusPending,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Save(ctx, campaign); err != nil {
		zap.L().Error("can't save campaign", zap.Error(err))
		return nil, err
	}
	return campaign, nil
}

func (s *Service) Get(ctx context.Context, id int) (*domain.Campaign, error) {
	campaign, err := s.repo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get campaign", zap.Error(err))
		return nil, err
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}
	return campaign, nil
}

// Review flips a pending campaign to approved or rejected. Any other starting
// status is rejected: the review decision happens exactly once.
func (s *Service) Review(ctx context.Context, id int, approve bool) (*domain.Campaign, error) {
	campaign, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}
	if campaign.Status != domain.CampaignStatusPending {
		return nil, ErrNotReviewable
	}

	if approve {
		campaign.Status = domain.CampaignStatusApproved
	} else {
		campaign.Status = domain.CampaignStatusRejected
	}

	if err := s.repo.Update(ctx, campaign); err != nil {
		zap.L().Error("can't update campaign status", zap.Error(err))
		return nil, err
	}
	return campaign, nil
}

func (s *Service) ListOpen(ctx context.Context) ([]domain.Campaign, error) {
	campaigns, err := s.repo.FindOpen(ctx)
	if err != nil {
		zap.L().Error("failed to list open campaigns", zap.Error(err))
		return nil, err
	}
	return campaigns, nil
}

// ApplyDonation consumes a settled payment outcome: it appends an approved
// donation ledger entry and credits the campaign. A campaign reaching its
// goal is marked completed.
func (s *Service) ApplyDonation(ctx context.Context, campaignID int, userID *int, refID string, amount int64) (*domain.LedgerEntry, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	campaign, err := s.repo.FindByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}
	if campaign.Status != domain.CampaignStatusApproved {
		return nil, ErrCampaignNotOpen
	}

	if refID == "" {
		refID = uuid.NewString()
	} else {
		existing, err := s.ledgerRepo.FindByRefID(ctx, refID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			zap.L().Info("donation ref already recorded", zap.String("refID", refID))
			return nil, ErrDuplicateRef
		}
	}

	entry := &domain.LedgerEntry{
		RefID:      refID,
		CampaignID: &campaignID,
		UserID:     userID,
		Amount:     amount,
		Kind:       domain.LedgerKindDonation,
		Status:     domain.LedgerStatusApproved,
		CreatedAt:  time.Now(),
	}
	if _, err := s.ledgerRepo.Save(ctx, entry); err != nil {
		zap.L().Error("can't save donation ledger entry", zap.Error(err))
		return nil, err
	}

	updated, err := s.repo.AddRaised(ctx, campaignID, amount)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrCampaignNotFound
	}

	if updated.Raised >= updated.Goal {
		updated.Status = domain.CampaignStatusCompleted
		if err := s.repo.Update(ctx, updated); err != nil {
			zap.L().Error("can't complete campaign", zap.Error(err))
			return nil, err
		}
	}

	return entry, nil
}

// Reconcile re-derives a campaign's raised amount from its approved ledger
// entries and compares it with the stored column. Outgoing reallocations are
// filed under the receiving campaign, so the outflow is summed from entry
// meta rather than the suspension audit record: a crash between crediting the
// targets and zeroing the source leaves the audit record unwritten, and only
// the ledger still shows the money that left. Divergence is alerted, never
// silently repaired.
func (s *Service) Reconcile(ctx context.Context, campaignID int) (bool, error) {
	campaign, err := s.repo.FindByID(ctx, campaignID)
	if err != nil {
		return false, err
	}
	if campaign == nil {
		return false, ErrCampaignNotFound
	}

	derived, err := s.ledgerRepo.SumApprovedByCampaign(ctx, campaignID)
	if err != nil {
		return false, err
	}
	outgoing, err := s.ledgerRepo.SumReallocatedFrom(ctx, campaignID)
	if err != nil {
		return false, err
	}
	derived -= outgoing

	if derived != campaign.Raised {
		s.alerter.IntegrityAlert(campaignID, campaign.Raised, derived)
		return false, nil
	}
	return true, nil
}
