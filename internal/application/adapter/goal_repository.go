// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/mis-finanzas/backend/internal/domain/entity"
)

// GoalRepository defines the interface for goal persistence operations.
// It is the store collaborator of the ledger engine: failures propagate
// unchanged to callers and no retries happen at this layer.
type GoalRepository interface {
	// Create persists a new goal and assigns its identifier.
	Create(ctx context.Context, goal *entity.Goal) error

	// FindByID retrieves a goal by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)

	// FindByOwner retrieves all goals for a given user, newest first.
	FindByOwner(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error)

	// Update persists the full current state of an existing goal,
	// history included.
	Update(ctx context.Context, goal *entity.Goal) error

	// Delete removes a goal. Deleting a missing id is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}
