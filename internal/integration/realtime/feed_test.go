package realtime

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

func testClient(t *testing.T) *redis.Client {
	t.Helper()

	mini, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mini.Close)

	client := redis.NewClient(&redis.Options{Addr: mini.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestGoalFeed(t *testing.T) {
	ctx := context.Background()

	waitFor := func(t *testing.T, events <-chan struct{}) {
		t.Helper()
		select {
		case <-events:
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for a change event")
		}
	}

	t.Run("subscriber receives events published for its owner", func(t *testing.T) {
		feed := NewGoalFeed(testClient(t))
		ownerID := uuid.New()

		events := make(chan struct{}, 8)
		sub, err := feed.Subscribe(ctx, ownerID, func() { events <- struct{}{} })
		if err != nil {
			t.Fatalf("Subscribe() error = %v", err)
		}
		defer sub.Close()

		if err := feed.Publish(ctx, ownerID); err != nil {
			t.Fatalf("Publish() error = %v", err)
		}
		waitFor(t, events)
	})

	t.Run("events for other owners are not delivered", func(t *testing.T) {
		feed := NewGoalFeed(testClient(t))
		ownerID := uuid.New()

		events := make(chan struct{}, 8)
		sub, err := feed.Subscribe(ctx, ownerID, func() { events <- struct{}{} })
		if err != nil {
			t.Fatalf("Subscribe() error = %v", err)
		}
		defer sub.Close()

		if err := feed.Publish(ctx, uuid.New()); err != nil {
			t.Fatalf("Publish() error = %v", err)
		}
		if err := feed.Publish(ctx, ownerID); err != nil {
			t.Fatalf("Publish() error = %v", err)
		}

		// The first delivered event must be the one for our owner.
		waitFor(t, events)
		select {
		case <-events:
			t.Error("received an event for a different owner")
		case <-time.After(100 * time.Millisecond):
		}
	})

	t.Run("closed subscriptions stop delivering", func(t *testing.T) {
		feed := NewGoalFeed(testClient(t))
		ownerID := uuid.New()

		events := make(chan struct{}, 8)
		sub, err := feed.Subscribe(ctx, ownerID, func() { events <- struct{}{} })
		if err != nil {
			t.Fatalf("Subscribe() error = %v", err)
		}

		if err := sub.Close(); err != nil {
			t.Fatalf("Close() error = %v", err)
		}
		if err := sub.Close(); err != nil {
			t.Errorf("second Close() error = %v, want nil", err)
		}

		if err := feed.Publish(ctx, ownerID); err != nil {
			t.Fatalf("Publish() error = %v", err)
		}
		select {
		case <-events:
			t.Error("received an event after Close")
		case <-time.After(100 * time.Millisecond):
		}
	})
}
