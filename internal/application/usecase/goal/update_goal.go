// Package goal contains the goal lifecycle use cases.
package goal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mis-finanzas/backend/internal/application/adapter"
	"github.com/mis-finanzas/backend/internal/domain/entity"
	domainerror "github.com/mis-finanzas/backend/internal/domain/error"
	"github.com/mis-finanzas/backend/internal/domain/ledger"
)

// UpdateGoalInput represents the input for goal update. The accumulated
// amount is not an input: it only moves through ledger adjustments, or
// is re-derived when a replacement history is supplied.
type UpdateGoalInput struct {
	GoalID       uuid.UUID
	UserID       uuid.UUID
	Label        *string          // Optional
	Description  *string          // Optional
	TargetAmount *decimal.Decimal // Optional; absent or unset means keep, never coerced below zero
	StartDate    *string          // Optional, yyyy-MM-dd
	TargetDate   *string          // Optional, yyyy-MM-dd
	History      []entity.HistoryEntry // Optional full replacement ledger
}

// UpdateGoalOutput represents the output of goal update.
type UpdateGoalOutput struct {
	Goal *entity.Goal
}

// UpdateGoalUseCase handles goal update logic.
type UpdateGoalUseCase struct {
	goalRepo adapter.GoalRepository
	feed     adapter.GoalFeed
	idGen    ledger.IDGenerator
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.GoalRepository, feed adapter.GoalFeed, idGen ledger.IDGenerator) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		goalRepo: goalRepo,
		feed:     feed,
		idGen:    idGen,
	}
}

// Execute performs the goal update. A supplied replacement history is
// normalized (missing entry ids are assigned) and the accumulated
// amount is recomputed from its deltas, keeping the ledger reconciled.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	if input.GoalID == uuid.Nil {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeMissingGoalID,
			"goal has no identifier",
			domainerror.ErrMissingGoalID,
		)
	}

	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalNotFound,
				"goal not found",
				domainerror.ErrGoalNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}

	if goal.UserID != input.UserID {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeUnauthorizedGoalAccess,
			"not authorized to modify this goal",
			domainerror.ErrUnauthorizedGoalAccess,
		)
	}

	if input.Label != nil {
		goal.Label = *input.Label
	}

	if input.Description != nil {
		goal.Description = *input.Description
	}

	if input.TargetAmount != nil {
		if input.TargetAmount.IsNegative() {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidTargetAmount,
				"target amount must not be negative",
				domainerror.ErrInvalidTargetAmount,
			)
		}
		goal.TargetAmount = *input.TargetAmount
	}

	if input.StartDate != nil || input.TargetDate != nil {
		start := goal.StartDate.Format(dateLayout)
		if input.StartDate != nil {
			start = *input.StartDate
		}
		target := goal.TargetDate.Format(dateLayout)
		if input.TargetDate != nil {
			target = *input.TargetDate
		}
		startDate, targetDate, err := parseDateRange(start, target)
		if err != nil {
			return nil, err
		}
		goal.StartDate = startDate
		goal.TargetDate = targetDate
	}

	if input.History != nil {
		goal.History = ledger.Normalize(input.History, uc.idGen)
		goal.AccumulatedAmount = goal.HistorySum()
	}

	goal.UpdatedAt = time.Now().UTC()

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	if err := uc.feed.Publish(ctx, goal.UserID); err != nil {
		slog.Warn("Failed to publish goal change", "owner_id", goal.UserID, "error", err)
	}

	return &UpdateGoalOutput{
		Goal: goal,
	}, nil
}
