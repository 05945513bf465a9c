// Package goal contains the goal lifecycle use cases.
package goal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mis-finanzas/backend/internal/application/adapter"
	"github.com/mis-finanzas/backend/internal/domain/entity"
	domainerror "github.com/mis-finanzas/backend/internal/domain/error"
	"github.com/mis-finanzas/backend/internal/domain/ledger"
)

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	UserID       uuid.UUID
	Kind         entity.GoalKind
	Label        string
	Description  string
	TargetAmount decimal.Decimal
	StartDate    string // yyyy-MM-dd
	TargetDate   string // yyyy-MM-dd
	SeedHistory  []entity.HistoryEntry
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *entity.Goal
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	goalRepo adapter.GoalRepository
	feed     adapter.GoalFeed
	idGen    ledger.IDGenerator
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository, feed adapter.GoalFeed, idGen ledger.IDGenerator) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo: goalRepo,
		feed:     feed,
		idGen:    idGen,
	}
}

// Execute performs the goal creation. Seed history entries get stable
// identifiers before the goal is persisted, and the accumulated amount
// is derived from the seed deltas so the ledger starts reconciled.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	if !isValidGoalKind(input.Kind) {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalKind,
			"kind must be 'savings' or 'debt'",
			domainerror.ErrInvalidGoalKind,
		)
	}

	if input.TargetAmount.IsNegative() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetAmount,
			"target amount must not be negative",
			domainerror.ErrInvalidTargetAmount,
		)
	}

	startDate, targetDate, err := parseDateRange(input.StartDate, input.TargetDate)
	if err != nil {
		return nil, err
	}

	goal := entity.NewGoal(
		input.UserID,
		input.Kind,
		input.Label,
		input.Description,
		input.TargetAmount,
		startDate,
		targetDate,
	)

	if len(input.SeedHistory) > 0 {
		goal.History = ledger.Normalize(input.SeedHistory, uc.idGen)
		goal.AccumulatedAmount = goal.HistorySum()
	}

	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	uc.publishChange(ctx, input.UserID)

	return &CreateGoalOutput{
		Goal: goal,
	}, nil
}

func (uc *CreateGoalUseCase) publishChange(ctx context.Context, ownerID uuid.UUID) {
	if err := uc.feed.Publish(ctx, ownerID); err != nil {
		slog.Warn("Failed to publish goal change", "owner_id", ownerID, "error", err)
	}
}

// isValidGoalKind validates the goal kind.
func isValidGoalKind(kind entity.GoalKind) bool {
	return kind == entity.GoalKindSavings || kind == entity.GoalKindDebt
}
