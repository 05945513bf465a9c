// Package goal contains the goal lifecycle use cases.
package goal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mis-finanzas/backend/internal/application/adapter"
	"github.com/mis-finanzas/backend/internal/domain/ledger"
)

// RepairHistoryInput represents the input for the history repair
// maintenance operation.
type RepairHistoryInput struct {
	UserID uuid.UUID
}

// RepairHistoryOutput represents the output of the history repair.
type RepairHistoryOutput struct {
	GoalsScanned  int
	GoalsRepaired int
}

// RepairHistoryUseCase is the maintenance operation for ledgers whose
// entry identifiers are missing or duplicated (the state that concurrent
// writers or pre-identifier records can leave behind). It does not
// correct numeric drift; the accumulated amount is untouched.
type RepairHistoryUseCase struct {
	goalRepo adapter.GoalRepository
	feed     adapter.GoalFeed
	idGen    ledger.IDGenerator
}

// NewRepairHistoryUseCase creates a new RepairHistoryUseCase instance.
func NewRepairHistoryUseCase(goalRepo adapter.GoalRepository, feed adapter.GoalFeed, idGen ledger.IDGenerator) *RepairHistoryUseCase {
	return &RepairHistoryUseCase{
		goalRepo: goalRepo,
		feed:     feed,
		idGen:    idGen,
	}
}

// Execute scans every goal of the user. Within each goal's history, an
// entry whose id is missing or already seen earlier in the scan gets a
// freshly generated id; the first occurrence keeps its id. Repaired
// goals are persisted.
func (uc *RepairHistoryUseCase) Execute(ctx context.Context, input RepairHistoryInput) (*RepairHistoryOutput, error) {
	goals, err := uc.goalRepo.FindByOwner(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	repaired := 0
	for _, g := range goals {
		seen := make(map[string]struct{}, len(g.History))
		changed := false

		for i, entry := range g.History {
			if _, duplicate := seen[entry.ID]; entry.ID == "" || duplicate {
				g.History[i].ID = uc.idGen.Next()
				changed = true
			}
			seen[g.History[i].ID] = struct{}{}
		}

		if !changed {
			continue
		}

		if err := uc.goalRepo.Update(ctx, g); err != nil {
			return nil, fmt.Errorf("failed to persist repaired history for goal %s: %w", g.ID, err)
		}
		repaired++
	}

	if repaired > 0 {
		if err := uc.feed.Publish(ctx, input.UserID); err != nil {
			slog.Warn("Failed to publish goal change", "owner_id", input.UserID, "error", err)
		}
	}

	return &RepairHistoryOutput{
		GoalsScanned:  len(goals),
		GoalsRepaired: repaired,
	}, nil
}
