// Package goal contains the goal lifecycle use cases.
package goal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mis-finanzas/backend/internal/application/adapter"
	"github.com/mis-finanzas/backend/internal/domain/entity"
)

// WatchGoalsInput represents the input for watching a user's goals.
type WatchGoalsInput struct {
	UserID     uuid.UUID
	OnSnapshot func(goals []*entity.Goal)
}

// WatchGoalsOutput represents the output of watching goals.
type WatchGoalsOutput struct {
	Subscription adapter.Subscription
}

// WatchGoalsUseCase delivers the full current goal set to the caller on
// every change: an initial snapshot on subscribe, then one snapshot per
// feed event. Snapshots replace the caller's view wholesale; there is
// no incremental merge.
type WatchGoalsUseCase struct {
	listUseCase *ListGoalsUseCase
	feed        adapter.GoalFeed
}

// NewWatchGoalsUseCase creates a new WatchGoalsUseCase instance.
func NewWatchGoalsUseCase(listUseCase *ListGoalsUseCase, feed adapter.GoalFeed) *WatchGoalsUseCase {
	return &WatchGoalsUseCase{
		listUseCase: listUseCase,
		feed:        feed,
	}
}

// Execute subscribes to the user's change feed. The caller owns the
// returned subscription and must close it on teardown. A snapshot that
// fails to load is logged and skipped; the subscription stays alive.
func (uc *WatchGoalsUseCase) Execute(ctx context.Context, input WatchGoalsInput) (*WatchGoalsOutput, error) {
	deliver := func() {
		output, err := uc.listUseCase.Execute(ctx, ListGoalsInput{UserID: input.UserID})
		if err != nil {
			slog.Warn("Failed to load goal snapshot", "owner_id", input.UserID, "error", err)
			return
		}
		input.OnSnapshot(output.Goals)
	}

	subscription, err := uc.feed.Subscribe(ctx, input.UserID, deliver)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to goal feed: %w", err)
	}

	// Initial snapshot, mirroring the store's push of the current set
	// on listener registration.
	deliver()

	return &WatchGoalsOutput{
		Subscription: subscription,
	}, nil
}
