// Package realtime implements the goal change feed over Redis pub/sub.
package realtime

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/mis-finanzas/backend/internal/application/adapter"
)

const channelPrefix = "goals:"

// goalFeed implements the adapter.GoalFeed interface. Each owner has
// one channel; the payload carries no data, subscribers re-read the
// full goal set on every message.
type goalFeed struct {
	client *redis.Client
}

// NewGoalFeed creates a new Redis-backed goal feed.
func NewGoalFeed(client *redis.Client) adapter.GoalFeed {
	return &goalFeed{
		client: client,
	}
}

func channelFor(ownerID uuid.UUID) string {
	return channelPrefix + ownerID.String()
}

// Publish signals that the owner's goal collection changed.
func (f *goalFeed) Publish(ctx context.Context, ownerID uuid.UUID) error {
	return f.client.Publish(ctx, channelFor(ownerID), "changed").Err()
}

// Subscribe registers onChange for the owner's change events until the
// returned subscription is closed or ctx is cancelled.
func (f *goalFeed) Subscribe(ctx context.Context, ownerID uuid.UUID, onChange func()) (adapter.Subscription, error) {
	pubsub := f.client.Subscribe(ctx, channelFor(ownerID))

	// Wait for the subscription to be established so no event published
	// after Subscribe returns can be missed.
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, err
	}

	sub := &subscription{pubsub: pubsub}

	go func() {
		ch := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				if err := sub.Close(); err != nil {
					slog.Warn("failed to close goal feed subscription", "error", err)
				}
				return
			case _, ok := <-ch:
				if !ok {
					return
				}
				onChange()
			}
		}
	}()

	return sub, nil
}

// subscription wraps a redis pubsub handle. Close is safe to call
// more than once.
type subscription struct {
	pubsub *redis.PubSub

	once sync.Once
	err  error
}

func (s *subscription) Close() error {
	s.once.Do(func() {
		s.err = s.pubsub.Close()
	})
	return s.err
}
