// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
)

// Subscription is a live change-feed registration. Close releases it;
// closing twice is harmless.
type Subscription interface {
	Close() error
}

// GoalFeed is the real-time change notification channel for a user's
// goals. Mutating use cases publish after a successful write; watchers
// subscribe and re-read the full goal set on every event.
type GoalFeed interface {
	// Publish signals that the owner's goal collection changed.
	Publish(ctx context.Context, ownerID uuid.UUID) error

	// Subscribe registers onChange for the owner's change events until
	// the returned subscription is closed or ctx is cancelled.
	Subscribe(ctx context.Context, ownerID uuid.UUID, onChange func()) (Subscription, error)
}
