// Package goal contains the goal lifecycle use cases.
package goal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mis-finanzas/backend/internal/application/adapter"
	domainerror "github.com/mis-finanzas/backend/internal/domain/error"
)

// DeleteGoalInput represents the input for goal deletion.
type DeleteGoalInput struct {
	GoalID uuid.UUID
	UserID uuid.UUID
}

// DeleteGoalUseCase handles goal deletion logic.
type DeleteGoalUseCase struct {
	goalRepo adapter.GoalRepository
	feed     adapter.GoalFeed
}

// NewDeleteGoalUseCase creates a new DeleteGoalUseCase instance.
func NewDeleteGoalUseCase(goalRepo adapter.GoalRepository, feed adapter.GoalFeed) *DeleteGoalUseCase {
	return &DeleteGoalUseCase{
		goalRepo: goalRepo,
		feed:     feed,
	}
}

// Execute performs the goal deletion. A goal that was never persisted
// has no identifier and cannot be deleted. Deletion detaches the goal
// from the store with no further side effects.
func (uc *DeleteGoalUseCase) Execute(ctx context.Context, input DeleteGoalInput) error {
	if input.GoalID == uuid.Nil {
		return domainerror.NewGoalError(
			domainerror.ErrCodeMissingGoalID,
			"goal has no identifier",
			domainerror.ErrMissingGoalID,
		)
	}

	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			// Deleting a missing goal is idempotent.
			return nil
		}
		return fmt.Errorf("failed to find goal: %w", err)
	}

	if goal.UserID != input.UserID {
		return domainerror.NewGoalError(
			domainerror.ErrCodeUnauthorizedGoalAccess,
			"not authorized to delete this goal",
			domainerror.ErrUnauthorizedGoalAccess,
		)
	}

	if err := uc.goalRepo.Delete(ctx, input.GoalID); err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}

	if err := uc.feed.Publish(ctx, input.UserID); err != nil {
		slog.Warn("Failed to publish goal change", "owner_id", input.UserID, "error", err)
	}

	return nil
}
