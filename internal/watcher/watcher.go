// Package watcher consumes the campaign status change feed and turns
// transitions into notifications. It runs as a background task decoupled from
// the requests that cause the mutations.
package watcher

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/akosarev/fundmart/internal/domain"
	"github.com/akosarev/fundmart/internal/service/campaignservice"
	"github.com/akosarev/fundmart/internal/service/notifyservice"
	"github.com/akosarev/fundmart/pkg/money"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Notifier interface {
	Notify(ctx context.Context, userID int, campaignID *int, message, statusLabel, kind string) (*domain.Notification, error)
}

type Watcher struct {
	feed           Feed
	campaignRepo   campaignservice.Repo
	ledgerRepo     campaignservice.LedgerRepo
	notifier       Notifier
	workerPool     WorkerPoolI
	reconnectDelay time.Duration
	healthy        atomic.Bool
}

func New(feed Feed, campaignRepo campaignservice.Repo, ledgerRepo campaignservice.LedgerRepo, notifier Notifier, reconnectDelay time.Duration) *Watcher {
	return &Watcher{
		feed:           feed,
		campaignRepo:   campaignRepo,
		ledgerRepo:     ledgerRepo,
		notifier:       notifier,
		workerPool:     NewWorkerPool(10),
		reconnectDelay: reconnectDelay,
	}
}

// Healthy reports whether the watcher currently holds a live subscription.
func (w *Watcher) Healthy() bool {
	return w.healthy.Load()
}

// Start runs the watch loop until the context is canceled. Subscription
// errors never escape: the loop sleeps a fixed delay and reconnects.
func (w *Watcher) Start(ctx context.Context) {
	zap.L().Info("Change feed watcher started")
	defer w.workerPool.Close()

	for {
		if err := w.watch(ctx); err != nil {
			w.healthy.Store(false)
			if ctx.Err() != nil {
				zap.L().Info("Context canceled, stopping watcher")
				w.feed.Close()
				return
			}
			zap.L().Error("Change feed subscription failed, reconnecting", zap.Duration("delay", w.reconnectDelay), zap.Error(err))
		}

		select {
		case <-ctx.Done():
			w.feed.Close()
			return
		case <-time.After(w.reconnectDelay):
		}
	}
}

func (w *Watcher) watch(ctx context.Context) error {
	if err := w.feed.Connect(ctx); err != nil {
		return err
	}
	w.healthy.Store(true)
	zap.L().Info("Change feed connected")

	for {
		event, err := w.feed.WaitForEvent(ctx)
		if err != nil {
			return err
		}

		// A failure while handling one event drops that event only.
		if err := w.handleEvent(ctx, event); err != nil {
			zap.L().Error("Failed to process change event, dropping it",
				zap.Int("campaignID", event.CampaignID),
				zap.String("newStatus", event.NewStatus),
				zap.Error(err),
			)
		}
	}
}

func (w *Watcher) handleEvent(ctx context.Context, event *Event) error {
	campaign, err := w.campaignRepo.FindByID(ctx, event.CampaignID)
	if err != nil {
		return err
	}
	if campaign == nil {
		return fmt.Errorf("campaign %d not found", event.CampaignID)
	}

	transition, ok := parseTransition(campaign, event.NewStatus)
	if !ok {
		zap.L().Debug("Ignoring status transition", zap.Int("campaignID", event.CampaignID), zap.String("status", event.NewStatus))
		return nil
	}
	return w.dispatch(ctx, transition)
}

func (w *Watcher) dispatch(ctx context.Context, transition Transition) error {
	switch t := transition.(type) {
	case Approved:
		return w.notifyOwner(ctx, t.Campaign, domain.CampaignStatusApproved,
			fmt.Sprintf("Your campaign %q has been approved and is now accepting donations.", t.Campaign.Title))
	case Rejected:
		return w.notifyOwner(ctx, t.Campaign, domain.CampaignStatusRejected,
			fmt.Sprintf("Your campaign %q has been rejected.", t.Campaign.Title))
	case Completed:
		return w.notifyOwner(ctx, t.Campaign, domain.CampaignStatusCompleted,
			fmt.Sprintf("Your campaign %q reached its goal and is completed.", t.Campaign.Title))
	case Suspended:
		return w.handleSuspension(ctx, t)
	default:
		return fmt.Errorf("unhandled transition %T", transition)
	}
}

func (w *Watcher) notifyOwner(ctx context.Context, campaign *domain.Campaign, statusLabel, message string) error {
	_, err := w.notifier.Notify(ctx, campaign.OwnerID, &campaign.ID, message, statusLabel, notifyservice.KindCampaignStatus)
	return err
}

// handleSuspension fans out to everyone affected: the owner plus every
// distinct donor of the suspended campaign, each told where the funds went.
func (w *Watcher) handleSuspension(ctx context.Context, t Suspended) error {
	campaign := t.Campaign

	if err := w.notifyOwner(ctx, campaign, domain.CampaignStatusSuspended,
		fmt.Sprintf("Your campaign %q has been suspended and its funds were reallocated.", campaign.Title)); err != nil {
		zap.L().Error("Failed to notify suspended campaign owner", zap.Int("ownerID", campaign.OwnerID), zap.Error(err))
	}

	donors, err := w.ledgerRepo.FindDistinctDonors(ctx, campaign.ID)
	if err != nil {
		return err
	}

	message := donorMessage(campaign, t.Allocations)

	var g errgroup.Group
	for _, donor := range donors {
		donor := donor

		g.Go(func() error {
			return w.workerPool.AddTask(ctx, func() error {
				_, err := w.notifier.Notify(ctx, donor, &campaign.ID, message,
					domain.CampaignStatusSuspended, notifyservice.KindReallocation)
				if err != nil {
					// Skip this donor, keep the batch going.
					return fmt.Errorf("failed to notify donor %d: %w", donor, err)
				}
				return nil
			})
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error during donor fanout", zap.Int("campaignID", campaign.ID), zap.Error(err))
	}
	return nil
}

func donorMessage(campaign *domain.Campaign, allocations []domain.ReallocationRecord) string {
	msg := fmt.Sprintf("Campaign %q you supported was suspended. Your donation was reallocated to:", campaign.Title)
	for _, rec := range allocations {
		msg += fmt.Sprintf(" %q (%.2f);", rec.TargetTitle, money.ToFloat(rec.Amount))
	}
	return msg
}
