package watcher

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/akosarev/fundmart/internal/domain"
	"github.com/akosarev/fundmart/internal/service/campaignservice"
	"github.com/akosarev/fundmart/internal/service/notifyservice"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// syncPool runs tasks inline so fanout assertions are deterministic.
type syncPool struct{}

func (syncPool) AddTask(_ context.Context, task Task) error { return task() }
func (syncPool) Close()                                     {}

func NewMock(t *testing.T) (*Watcher, *MockFeed, *campaignservice.MockRepo, *campaignservice.MockLedgerRepo, *MockNotifier) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFeed := NewMockFeed(ctrl)
	mockCampaignRepo := campaignservice.NewMockRepo(ctrl)
	mockLedgerRepo := campaignservice.NewMockLedgerRepo(ctrl)
	mockNotifier := NewMockNotifier(ctrl)

	w := &Watcher{
		feed:           mockFeed,
		campaignRepo:   mockCampaignRepo,
		ledgerRepo:     mockLedgerRepo,
		notifier:       mockNotifier,
		workerPool:     syncPool{},
		reconnectDelay: 10 * time.Millisecond,
	}
	return w, mockFeed, mockCampaignRepo, mockLedgerRepo, mockNotifier
}

func TestParseTransition(t *testing.T) {
	campaign := &domain.Campaign{
		ID: 1,
		Reallocations: []domain.ReallocationRecord{
			{TargetID: 2, TargetTitle: "School Meals", Amount: 15000},
		},
	}

	tests := []struct {
		name      string
		status    string
		wantOk    bool
		checkType func(tr Transition)
	}{
		{
			name:   "Approved",
			status: domain.CampaignStatusApproved,
			wantOk: true,
			checkType: func(tr Transition) {
				_, ok := tr.(Approved)
				assert.True(t, ok)
			},
		},
		{
			name:   "Rejected",
			status: domain.CampaignStatusRejected,
			wantOk: true,
			checkType: func(tr Transition) {
				_, ok := tr.(Rejected)
				assert.True(t, ok)
			},
		},
		{
			name:   "Completed",
			status: domain.CampaignStatusCompleted,
			wantOk: true,
			checkType: func(tr Transition) {
				_, ok := tr.(Completed)
				assert.True(t, ok)
			},
		},
		{
			name:   "Suspended carries allocations",
			status: domain.CampaignStatusSuspended,
			wantOk: true,
			checkType: func(tr Transition) {
				s, ok := tr.(Suspended)
				assert.True(t, ok)
				assert.Equal(t, campaign.Reallocations, s.Allocations)
			},
		},
		{
			name:   "Pending is ignored",
			status: domain.CampaignStatusPending,
			wantOk: false,
		},
		{
			name:   "Unknown status is ignored",
			status: "archived",
			wantOk: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, ok := parseTransition(campaign, tt.status)
			assert.Equal(t, tt.wantOk, ok)
			if tt.wantOk {
				tt.checkType(tr)
			} else {
				assert.Nil(t, tr)
			}
		})
	}
}

func TestWatcher_HandleEvent_OwnerNotifications(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		status string
	}{
		{name: "Approved notifies owner", status: domain.CampaignStatusApproved},
		{name: "Rejected notifies owner", status: domain.CampaignStatusRejected},
		{name: "Completed notifies owner", status: domain.CampaignStatusCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _, mockCampaignRepo, _, mockNotifier := NewMock(t)

			campaign := &domain.Campaign{ID: 1, OwnerID: 7, Title: "Clean Water", Status: tt.status}
			mockCampaignRepo.EXPECT().FindByID(gomock.Any(), 1).Return(campaign, nil)
			mockNotifier.EXPECT().
				Notify(gomock.Any(), 7, &campaign.ID, gomock.Any(), tt.status, notifyservice.KindCampaignStatus).
				Return(&domain.Notification{ID: 1}, nil)

			err := w.handleEvent(ctx, &Event{CampaignID: 1, OldStatus: "pending", NewStatus: tt.status})
			assert.NoError(t, err)
		})
	}
}

func TestWatcher_HandleEvent_IgnoresUnknownStatus(t *testing.T) {
	w, _, mockCampaignRepo, _, _ := NewMock(t)

	mockCampaignRepo.EXPECT().FindByID(gomock.Any(), 1).
		Return(&domain.Campaign{ID: 1, Status: domain.CampaignStatusPending}, nil)

	err := w.handleEvent(context.Background(), &Event{CampaignID: 1, NewStatus: domain.CampaignStatusPending})
	assert.NoError(t, err)
}

func TestWatcher_HandleEvent_CampaignMissing(t *testing.T) {
	w, _, mockCampaignRepo, _, _ := NewMock(t)

	mockCampaignRepo.EXPECT().FindByID(gomock.Any(), 1).Return(nil, nil)

	err := w.handleEvent(context.Background(), &Event{CampaignID: 1, NewStatus: domain.CampaignStatusApproved})
	assert.Error(t, err)
}

func TestWatcher_HandleEvent_SuspensionFanout(t *testing.T) {
	w, _, mockCampaignRepo, mockLedgerRepo, mockNotifier := NewMock(t)
	ctx := context.Background()

	campaign := &domain.Campaign{
		ID:      1,
		OwnerID: 7,
		Title:   "Clean Water",
		Status:  domain.CampaignStatusSuspended,
		Reallocations: []domain.ReallocationRecord{
			{TargetID: 2, TargetTitle: "School Meals", Amount: 15000},
			{TargetID: 3, TargetTitle: "Animal Shelter", Amount: 10000},
		},
	}
	mockCampaignRepo.EXPECT().FindByID(gomock.Any(), 1).Return(campaign, nil)
	mockLedgerRepo.EXPECT().FindDistinctDonors(gomock.Any(), 1).Return([]int{3, 7, 12}, nil)

	mockNotifier.EXPECT().
		Notify(gomock.Any(), 7, &campaign.ID, gomock.Any(), domain.CampaignStatusSuspended, notifyservice.KindCampaignStatus).
		Return(&domain.Notification{ID: 1}, nil)

	var notified []int
	mockNotifier.EXPECT().
		Notify(gomock.Any(), gomock.Any(), &campaign.ID, gomock.Any(), domain.CampaignStatusSuspended, notifyservice.KindReallocation).
		DoAndReturn(func(_ context.Context, userID int, _ *int, message, _, _ string) (*domain.Notification, error) {
			assert.Contains(t, message, "School Meals")
			assert.Contains(t, message, "Animal Shelter")
			assert.Contains(t, message, "150.00")
			assert.Contains(t, message, "100.00")
			notified = append(notified, userID)
			return &domain.Notification{}, nil
		}).
		Times(3)

	err := w.handleEvent(ctx, &Event{CampaignID: 1, OldStatus: "approved", NewStatus: domain.CampaignStatusSuspended})
	assert.NoError(t, err)
	assert.ElementsMatch(t, []int{3, 7, 12}, notified)
}

func TestWatcher_HandleEvent_SuspensionDonorFailureSkipped(t *testing.T) {
	w, _, mockCampaignRepo, mockLedgerRepo, mockNotifier := NewMock(t)
	ctx := context.Background()

	campaign := &domain.Campaign{ID: 1, OwnerID: 7, Title: "Clean Water", Status: domain.CampaignStatusSuspended}
	mockCampaignRepo.EXPECT().FindByID(gomock.Any(), 1).Return(campaign, nil)
	mockLedgerRepo.EXPECT().FindDistinctDonors(gomock.Any(), 1).Return([]int{3, 12}, nil)

	mockNotifier.EXPECT().
		Notify(gomock.Any(), 7, &campaign.ID, gomock.Any(), domain.CampaignStatusSuspended, notifyservice.KindCampaignStatus).
		Return(&domain.Notification{}, nil)
	mockNotifier.EXPECT().
		Notify(gomock.Any(), gomock.Any(), &campaign.ID, gomock.Any(), domain.CampaignStatusSuspended, notifyservice.KindReallocation).
		DoAndReturn(func(_ context.Context, userID int, _ *int, _, _, _ string) (*domain.Notification, error) {
			if userID == 3 {
				return nil, errors.New("database error")
			}
			return &domain.Notification{}, nil
		}).
		Times(2)

	// One donor failing must not fail the whole fanout.
	err := w.handleEvent(ctx, &Event{CampaignID: 1, NewStatus: domain.CampaignStatusSuspended})
	assert.NoError(t, err)
}

// fakeFeed drops the subscription once, then ends the test on the reconnect.
type fakeFeed struct {
	connects atomic.Int32
	cancel   context.CancelFunc
}

func (f *fakeFeed) Connect(context.Context) error {
	f.connects.Add(1)
	return nil
}

func (f *fakeFeed) WaitForEvent(ctx context.Context) (*Event, error) {
	if f.connects.Load() >= 2 {
		f.cancel()
		return nil, errors.New("subscription closed")
	}
	return nil, errors.New("subscription dropped")
}

func (f *fakeFeed) Close() {}

// recordingPool notes whether the watcher released it on shutdown.
type recordingPool struct {
	syncPool
	closed bool
}

func (p *recordingPool) Close() { p.closed = true }

func TestWatcher_Start_ReconnectsAfterFeedError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	feed := &fakeFeed{cancel: cancel}
	w := New(feed, campaignservice.NewMockRepo(ctrl), campaignservice.NewMockLedgerRepo(ctrl), NewMockNotifier(ctrl), 10*time.Millisecond)
	pool := &recordingPool{}
	w.workerPool = pool

	w.Start(ctx)

	assert.Equal(t, int32(2), feed.connects.Load())
	assert.False(t, w.Healthy())
	assert.True(t, pool.closed)
}

func TestWorkerPool(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()

	done := make(chan struct{})
	err := pool.AddTask(context.Background(), func() error {
		close(done)
		return nil
	})
	assert.NoError(t, err)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("task was not executed")
	}

	canceled, cancel := context.WithCancel(context.Background())
	cancel()
	blockers := make(chan struct{})
	for i := 0; i < 4; i++ {
		// Saturate the queue so the canceled context is the deciding factor.
		_ = pool.AddTask(context.Background(), func() error {
			<-blockers
			return nil
		})
	}
	err = pool.AddTask(canceled, func() error { return nil })
	assert.Error(t, err)
	close(blockers)
}

func TestWorkerPool_CloseDrainsQueue(t *testing.T) {
	pool := NewWorkerPool(2)

	done := make(chan struct{}, 2)
	for i := 0; i < 2; i++ {
		err := pool.AddTask(context.Background(), func() error {
			done <- struct{}{}
			return nil
		})
		assert.NoError(t, err)
	}
	pool.Close()

	for i := 0; i < 2; i++ {
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("queued task was dropped on close")
		}
	}
}
