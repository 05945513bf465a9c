// Package goal contains the goal lifecycle use cases.
package goal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mis-finanzas/backend/internal/application/adapter"
	"github.com/mis-finanzas/backend/internal/domain/entity"
	domainerror "github.com/mis-finanzas/backend/internal/domain/error"
	"github.com/mis-finanzas/backend/internal/domain/ledger"
)

// ProjectGoalInput represents the input for a goal projection.
type ProjectGoalInput struct {
	GoalID uuid.UUID
	UserID uuid.UUID
}

// ProjectGoalOutput represents the output of a goal projection.
type ProjectGoalOutput struct {
	Goal       *entity.Goal
	Projection ledger.Projection
}

// ProjectGoalUseCase derives read-only projection figures for a goal.
type ProjectGoalUseCase struct {
	goalRepo adapter.GoalRepository
	now      func() time.Time
}

// NewProjectGoalUseCase creates a new ProjectGoalUseCase instance.
func NewProjectGoalUseCase(goalRepo adapter.GoalRepository) *ProjectGoalUseCase {
	return &ProjectGoalUseCase{
		goalRepo: goalRepo,
		now:      time.Now,
	}
}

// Execute computes the projection for one goal as of now. Nothing is
// persisted.
func (uc *ProjectGoalUseCase) Execute(ctx context.Context, input ProjectGoalInput) (*ProjectGoalOutput, error) {
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
			"not authorized to access this goal",
			domainerror.ErrUnauthorizedGoalAccess,
		)
	}

	return &ProjectGoalOutput{
		Goal:       goal,
		Projection: ledger.Project(goal, uc.now().UTC()),
	}, nil
}
