package goal

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mis-finanzas/backend/internal/domain/entity"
)

func TestRepairHistoryUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	seedGoal := func(repo *fakeGoalRepository, history []entity.HistoryEntry) uuid.UUID {
		goal := entity.NewGoal(userID, entity.GoalKindSavings, "Ahorro", "", decimal.NewFromInt(1000), time.Now(), time.Now().AddDate(1, 0, 0))
		goal.History = history
		if err := repo.Create(ctx, goal); err != nil {
			t.Fatalf("failed to seed goal: %v", err)
		}
		return goal.ID
	}

	t.Run("regenerates missing and duplicate ids", func(t *testing.T) {
		repo := newFakeGoalRepository()
		feed := newFakeGoalFeed()
		goalID := seedGoal(repo, []entity.HistoryEntry{
			{ID: "", Delta: decimal.NewFromInt(10)},
			{ID: "x", Delta: decimal.NewFromInt(20)},
			{ID: "x", Delta: decimal.NewFromInt(30)},
		})
		uc := NewRepairHistoryUseCase(repo, feed, &sequenceGenerator{})

		output, err := uc.Execute(ctx, RepairHistoryInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.GoalsScanned != 1 || output.GoalsRepaired != 1 {
			t.Errorf("expected 1 scanned and 1 repaired, got %d/%d", output.GoalsScanned, output.GoalsRepaired)
		}

		repaired, err := repo.FindByID(ctx, goalID)
		if err != nil {
			t.Fatalf("failed to reload goal: %v", err)
		}
		if len(repaired.History) != 3 {
			t.Fatalf("expected 3 entries, got %d", len(repaired.History))
		}

		ids := make(map[string]struct{})
		for i, entry := range repaired.History {
			if entry.ID == "" {
				t.Errorf("entry %d still has no id", i)
			}
			if _, dup := ids[entry.ID]; dup {
				t.Errorf("entry %d has a duplicate id %s", i, entry.ID)
			}
			ids[entry.ID] = struct{}{}
		}

		// The first occurrence of "x" keeps its id; the empty and the
		// duplicate were regenerated.
		if repaired.History[1].ID != "x" {
			t.Errorf("first occurrence of x lost its id: %s", repaired.History[1].ID)
		}
		if repaired.History[0].ID == "" || repaired.History[0].ID == "x" {
			t.Errorf("missing id was not regenerated: %s", repaired.History[0].ID)
		}
		if repaired.History[2].ID == "x" {
			t.Error("duplicate id was not regenerated")
		}
	})

	t.Run("leaves clean ledgers untouched", func(t *testing.T) {
		repo := newFakeGoalRepository()
		feed := newFakeGoalFeed()
		seedGoal(repo, []entity.HistoryEntry{
			{ID: "a", Delta: decimal.NewFromInt(10)},
			{ID: "b", Delta: decimal.NewFromInt(20)},
		})
		uc := NewRepairHistoryUseCase(repo, feed, &sequenceGenerator{})

		output, err := uc.Execute(ctx, RepairHistoryInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.GoalsRepaired != 0 {
			t.Errorf("expected no repairs, got %d", output.GoalsRepaired)
		}
		if feed.publishCount() != 0 {
			t.Error("no change event expected when nothing was repaired")
		}
	})

	t.Run("does not touch amounts", func(t *testing.T) {
		repo := newFakeGoalRepository()
		feed := newFakeGoalFeed()
		goalID := seedGoal(repo, []entity.HistoryEntry{
			{ID: "", Delta: decimal.NewFromInt(10)},
			{ID: "", Delta: decimal.NewFromInt(-4)},
		})
		uc := NewRepairHistoryUseCase(repo, feed, &sequenceGenerator{})

		if _, err := uc.Execute(ctx, RepairHistoryInput{UserID: userID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		repaired, _ := repo.FindByID(ctx, goalID)
		if !repaired.History[0].Delta.Equal(decimal.NewFromInt(10)) || !repaired.History[1].Delta.Equal(decimal.NewFromInt(-4)) {
			t.Error("repair changed history deltas")
		}
	})
}
