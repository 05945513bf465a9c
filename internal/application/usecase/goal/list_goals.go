// Package goal contains the goal lifecycle use cases.
package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mis-finanzas/backend/internal/application/adapter"
	"github.com/mis-finanzas/backend/internal/domain/entity"
	"github.com/mis-finanzas/backend/internal/domain/ledger"
)

// ListGoalsInput represents the input for listing a user's goals.
type ListGoalsInput struct {
	UserID uuid.UUID
	Kind   *entity.GoalKind // Optional filter
}

// ListGoalsOutput represents the output of listing goals.
type ListGoalsOutput struct {
	Goals []*entity.Goal
}

// ListGoalsUseCase handles goal listing logic.
type ListGoalsUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(goalRepo adapter.GoalRepository) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		goalRepo: goalRepo,
	}
}

// Execute lists the user's goals, histories deduplicated for display.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, input ListGoalsInput) (*ListGoalsOutput, error) {
	goals, err := uc.goalRepo.FindByOwner(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	filtered := make([]*entity.Goal, 0, len(goals))
	for _, g := range goals {
		if input.Kind != nil && g.Kind != *input.Kind {
			continue
		}
		g.History = ledger.Deduplicate(g.History)
		filtered = append(filtered, g)
	}

	return &ListGoalsOutput{
		Goals: filtered,
	}, nil
}
