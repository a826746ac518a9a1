package watcher

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const channelName = "campaign_status"

// Event is one campaign status mutation emitted by the store.
type Event struct {
	CampaignID int    `json:"campaign_id"`
	OldStatus  string `json:"old_status"`
	NewStatus  string `json:"new_status"`
}

// Feed is a subscription to campaign status mutations. WaitForEvent blocks
// until the next event or a subscription error; after an error the feed must
// be re-Connected.
type Feed interface {
	Connect(ctx context.Context) error
	WaitForEvent(ctx context.Context) (*Event, error)
	Close()
}

// PgFeed listens on the campaign_status channel. The notifications are
// emitted by a trigger installed with the schema migrations, so every status
// UPDATE is observed regardless of which component performed it.
type PgFeed struct {
	pool *pgxpool.Pool
	conn *pgxpool.Conn
}

func NewPgFeed(pool *pgxpool.Pool) *PgFeed {
	return &PgFeed{pool: pool}
}

func (f *PgFeed) Connect(ctx context.Context) error {
	f.Close()

	conn, err := f.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("can't acquire feed connection: %w", err)
	}
	if _, err := conn.Exec(ctx, "LISTEN "+channelName); err != nil {
		conn.Release()
		return fmt.Errorf("can't listen on %s: %w", channelName, err)
	}

	f.conn = conn
	return nil
}

func (f *PgFeed) WaitForEvent(ctx context.Context) (*Event, error) {
	if f.conn == nil {
		return nil, fmt.Errorf("feed is not connected")
	}

	for {
		notification, err := f.conn.Conn().WaitForNotification(ctx)
		if err != nil {
			return nil, fmt.Errorf("subscription failed: %w", err)
		}

		// A payload that does not decode is a single bad event, not a broken
		// subscription: drop it and keep waiting.
		var event Event
		if err := json.Unmarshal([]byte(notification.Payload), &event); err != nil {
			zap.L().Error("can't decode feed payload", zap.String("payload", notification.Payload), zap.Error(err))
			continue
		}
		return &event, nil
	}
}

func (f *PgFeed) Close() {
	if f.conn != nil {
		f.conn.Release()
		f.conn = nil
	}
}
