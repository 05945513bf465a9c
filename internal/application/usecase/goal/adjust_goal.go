// Package goal contains the goal lifecycle use cases.
package goal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mis-finanzas/backend/internal/application/adapter"
	"github.com/mis-finanzas/backend/internal/domain/entity"
	domainerror "github.com/mis-finanzas/backend/internal/domain/error"
	"github.com/mis-finanzas/backend/internal/domain/ledger"
)

// AdjustGoalInput represents the input for a manual ledger adjustment.
type AdjustGoalInput struct {
	GoalID  uuid.UUID
	UserID  uuid.UUID
	Amount  decimal.Decimal
	Kind    entity.AdjustmentKind
	Comment string
}

// AdjustGoalOutput represents the output of a manual ledger adjustment.
type AdjustGoalOutput struct {
	Goal *entity.Goal
}

// AdjustGoalUseCase applies one manual adjustment to a goal's ledger
// and persists the result.
//
// Known limitation: the adjustment is a read-modify-write with no
// optimistic version check. Two concurrent adjustments to the same goal
// can both read the same prior state and the last write wins. The
// original system behaves the same way; RepairHistoryUseCase is the
// remediation for duplicate entry ids such races can leave behind.
type AdjustGoalUseCase struct {
	goalRepo adapter.GoalRepository
	feed     adapter.GoalFeed
	idGen    ledger.IDGenerator
}

// NewAdjustGoalUseCase creates a new AdjustGoalUseCase instance.
func NewAdjustGoalUseCase(goalRepo adapter.GoalRepository, feed adapter.GoalFeed, idGen ledger.IDGenerator) *AdjustGoalUseCase {
	return &AdjustGoalUseCase{
		goalRepo: goalRepo,
		feed:     feed,
		idGen:    idGen,
	}
}

// Execute loads the goal, applies the adjustment and persists the
// resulting state. Store failures propagate unchanged; no retries.
func (uc *AdjustGoalUseCase) Execute(ctx context.Context, input AdjustGoalInput) (*AdjustGoalOutput, error) {
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

	adjusted, err := ledger.ApplyAdjustment(goal, input.Amount, input.Kind, input.Comment, uc.idGen)
	if err != nil {
		return nil, err
	}

	if err := uc.goalRepo.Update(ctx, adjusted); err != nil {
		return nil, fmt.Errorf("failed to persist adjustment: %w", err)
	}

	if err := uc.feed.Publish(ctx, adjusted.UserID); err != nil {
		slog.Warn("Failed to publish goal change", "owner_id", adjusted.UserID, "error", err)
	}

	return &AdjustGoalOutput{
		Goal: adjusted,
	}, nil
}
