package releaseservice

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/akosarev/fundmart/internal/domain"
	"github.com/akosarev/fundmart/internal/service/allocation"
	"github.com/akosarev/fundmart/internal/service/campaignservice"
	"github.com/akosarev/fundmart/pkg/money"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	SetBlocked(ctx context.Context, id int, blocked bool) error
	AddWithdrawable(ctx context.Context, id int, amount int64) error
}

type Service struct {
	campaignRepo campaignservice.Repo
	ledgerRepo   campaignservice.LedgerRepo
	userRepo     UserRepo
	blockOwner   bool
}

func New(campaignRepo campaignservice.Repo, ledgerRepo campaignservice.LedgerRepo, userRepo UserRepo, blockOwner bool) *Service {
	return &Service{
		campaignRepo: campaignRepo,
		ledgerRepo:   ledgerRepo,
		userRepo:     userRepo,
		blockOwner:   blockOwner,
	}
}

var (
	ErrCampaignNotFound   = errors.New("campaign not found")
	ErrTargetNotFound     = errors.New("target campaign not found")
	ErrAlreadySuspended   = errors.New("campaign already suspended")
	ErrCampaignCompleted  = errors.New("campaign already completed")
	ErrAllocationMismatch = errors.New("allocation sum mismatch")
	ErrInvalidAllocation  = errors.New("invalid allocation mapping")
	ErrNoEligibleTargets  = errors.New("no eligible target campaigns")
	ErrNotOwner           = errors.New("caller does not own the campaign")
	ErrNothingToRelease   = errors.New("campaign has no funds to release")
	ErrNotReleasable      = errors.New("campaign funds cannot be released")
)

// SuspendAndReallocate suspends a campaign and moves its raised amount into
// the supplied targets. An empty mapping means the split is computed here
// with the needs-based allocator over all open campaigns.
//
// Writes are not atomic across documents. Phase one credits every target and
// appends its ledger entry; phase two zeroes the source and flips its status,
// and runs only after phase one fully succeeded. A crash in between leaves a
// state detectable by campaignservice.Reconcile.
func (s *Service) SuspendAndReallocate(ctx context.Context, campaignID int, alloc map[int]int64) (*domain.Campaign, error) {
	source, err := s.campaignRepo.FindByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if source == nil {
		return nil, fmt.Errorf("%w: campaign %d", ErrCampaignNotFound, campaignID)
	}
	if source.Status == domain.CampaignStatusSuspended {
		return nil, ErrAlreadySuspended
	}
	if source.Status == domain.CampaignStatusCompleted {
		return nil, ErrCampaignCompleted
	}

	if len(alloc) == 0 && source.Raised > 0 {
		alloc, err = s.computeAllocation(ctx, source)
		if err != nil {
			return nil, err
		}
	}

	if err := validateAllocation(source, alloc); err != nil {
		return nil, err
	}

	// Deterministic target order: partial failures always name the same
	// prefix of applied targets.
	targetIDs := make([]int, 0, len(alloc))
	for id := range alloc {
		targetIDs = append(targetIDs, id)
	}
	sort.Ints(targetIDs)

	records := make([]domain.ReallocationRecord, 0, len(targetIDs))
	for _, targetID := range targetIDs {
		amount := alloc[targetID]
		if amount == 0 {
			continue
		}

		record, err := s.applyToTarget(ctx, source, targetID, amount)
		if err != nil {
			zap.L().Error("reallocation partially applied",
				zap.Int("sourceID", source.ID),
				zap.Int("failedTargetID", targetID),
				zap.Int("appliedTargets", len(records)),
				zap.Error(err),
			)
			return nil, err
		}
		records = append(records, *record)
	}

	now := time.Now()
	source.Raised = 0
	source.Status = domain.CampaignStatusSuspended
	source.Reallocations = records
	source.SuspendedAt = &now
	if err := s.campaignRepo.Update(ctx, source); err != nil {
		zap.L().Error("can't finalize suspension", zap.Int("campaignID", source.ID), zap.Error(err))
		return nil, err
	}

	// Business policy coupled to suspension, deliberately separate from the
	// allocation protocol and toggleable by config.
	if s.blockOwner {
		if err := s.userRepo.SetBlocked(ctx, source.OwnerID, true); err != nil {
			zap.L().Error("can't block campaign owner", zap.Int("ownerID", source.OwnerID), zap.Error(err))
		}
	}

	return source, nil
}

func (s *Service) computeAllocation(ctx context.Context, source *domain.Campaign) (map[int]int64, error) {
	open, err := s.campaignRepo.FindOpen(ctx)
	if err != nil {
		return nil, err
	}

	targets := make([]allocation.Target, 0, len(open))
	for _, c := range open {
		if c.ID == source.ID {
			continue
		}
		targets = append(targets, allocation.Target{ID: c.ID, Raised: c.Raised, Goal: c.Goal})
	}
	if len(targets) == 0 {
		return nil, ErrNoEligibleTargets
	}

	return allocation.Allocate(source.Raised, targets), nil
}

func validateAllocation(source *domain.Campaign, alloc map[int]int64) error {
	var sum int64
	for targetID, amount := range alloc {
		if targetID == source.ID {
			return fmt.Errorf("%w: campaign %d cannot be its own target", ErrInvalidAllocation, targetID)
		}
		if amount < 0 {
			return fmt.Errorf("%w: negative amount for target %d", ErrInvalidAllocation, targetID)
		}
		sum += amount
	}

	if !money.WithinTolerance(sum, source.Raised) {
		return fmt.Errorf("%w: allocations sum to %d, campaign raised %d (diff %d)",
			ErrAllocationMismatch, sum, source.Raised, sum-source.Raised)
	}
	return nil
}

func (s *Service) applyToTarget(ctx context.Context, source *domain.Campaign, targetID int, amount int64) (*domain.ReallocationRecord, error) {
	target, err := s.campaignRepo.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, fmt.Errorf("%w: campaign %d", ErrTargetNotFound, targetID)
	}
	if target.Status == domain.CampaignStatusSuspended {
		return nil, fmt.Errorf("%w: target campaign %d is suspended", ErrInvalidAllocation, targetID)
	}

	if _, err := s.campaignRepo.AddRaised(ctx, targetID, amount); err != nil {
		return nil, err
	}

	systemUser := domain.SystemUserID
	entry := &domain.LedgerEntry{
		RefID:      uuid.NewString(),
		CampaignID: &target.ID,
		UserID:     &systemUser,
		Amount:     amount,
		Kind:       domain.LedgerKindReallocation,
		Status:     domain.LedgerStatusApproved,
		Meta: &domain.LedgerMeta{
			SourceCampaignID: source.ID,
			SourceTitle:      source.Title,
			TargetTitle:      target.Title,
		},
		CreatedAt: time.Now(),
	}
	if _, err := s.ledgerRepo.Save(ctx, entry); err != nil {
		return nil, err
	}

	return &domain.ReallocationRecord{
		TargetID:    target.ID,
		TargetTitle: target.Title,
		Amount:      amount,
	}, nil
}

// ReleaseMoney moves a campaign's raised amount to its owner's withdrawable
// balance. Only the owner may release, and only from an approved or completed
// campaign.
func (s *Service) ReleaseMoney(ctx context.Context, campaignID int, callerID int) (*domain.Campaign, error) {
	campaign, err := s.campaignRepo.FindByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, fmt.Errorf("%w: campaign %d", ErrCampaignNotFound, campaignID)
	}
	if campaign.OwnerID != callerID {
		return nil, ErrNotOwner
	}
	if campaign.Status != domain.CampaignStatusApproved && campaign.Status != domain.CampaignStatusCompleted {
		return nil, ErrNotReleasable
	}
	if campaign.Raised == 0 {
		return nil, ErrNothingToRelease
	}

	amount := campaign.Raised
	entry := &domain.LedgerEntry{
		RefID:      uuid.NewString(),
		CampaignID: &campaign.ID,
		UserID:     &campaign.OwnerID,
		Amount:     amount,
		Kind:       domain.LedgerKindWithdrawal,
		Status:     domain.LedgerStatusApproved,
		CreatedAt:  time.Now(),
	}
	if _, err := s.ledgerRepo.Save(ctx, entry); err != nil {
		zap.L().Error("can't save withdrawal ledger entry", zap.Error(err))
		return nil, err
	}

	if err := s.userRepo.AddWithdrawable(ctx, campaign.OwnerID, amount); err != nil {
		return nil, err
	}

	campaign.Raised = 0
	campaign.Status = domain.CampaignStatusCompleted
	if err := s.campaignRepo.Update(ctx, campaign); err != nil {
		zap.L().Error("can't finalize release", zap.Int("campaignID", campaign.ID), zap.Error(err))
		return nil, err
	}

	return campaign, nil
}
