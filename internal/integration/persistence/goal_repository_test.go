package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mis-finanzas/backend/internal/domain/entity"
	domainerror "github.com/mis-finanzas/backend/internal/domain/error"
)

func TestGoalRepository(t *testing.T) {
	ctx := context.Background()

	newGoal := func(userID uuid.UUID) *entity.Goal {
		start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		return entity.NewGoal(
			userID,
			entity.GoalKindSavings,
			"Vacaciones",
			"Viaje a la playa",
			decimal.NewFromInt(500000),
			start,
			start.AddDate(1, 0, 0),
		)
	}

	t.Run("create assigns an id and round-trips the history document", func(t *testing.T) {
		repo := NewGoalRepository(testDB(t))
		userID := uuid.New()

		goal := newGoal(userID)
		goal.History = []entity.HistoryEntry{
			{
				ID:        "entry-2",
				Timestamp: time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC),
				Delta:     decimal.NewFromInt(-30000),
				Comment:   "retiro",
			},
			{
				ID:        "entry-1",
				Timestamp: time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
				Delta:     decimal.NewFromInt(100000),
			},
		}
		goal.AccumulatedAmount = goal.HistorySum()

		if err := repo.Create(ctx, goal); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if goal.ID == uuid.Nil {
			t.Fatal("Create() did not assign an id")
		}

		found, err := repo.FindByID(ctx, goal.ID)
		if err != nil {
			t.Fatalf("FindByID() error = %v", err)
		}
		if len(found.History) != 2 {
			t.Fatalf("History length = %d, want 2", len(found.History))
		}
		if found.History[0].ID != "entry-2" || found.History[1].ID != "entry-1" {
			t.Errorf("history order not preserved: %q, %q", found.History[0].ID, found.History[1].ID)
		}
		if !found.History[0].Delta.Equal(decimal.NewFromInt(-30000)) {
			t.Errorf("History[0].Delta = %s, want -30000", found.History[0].Delta)
		}
		if !found.AccumulatedAmount.Equal(found.HistorySum()) {
			t.Errorf("AccumulatedAmount %s drifted from history sum %s",
				found.AccumulatedAmount, found.HistorySum())
		}
	})

	t.Run("find by id returns the domain error for missing goals", func(t *testing.T) {
		repo := NewGoalRepository(testDB(t))

		_, err := repo.FindByID(ctx, uuid.New())
		if !errors.Is(err, domainerror.ErrGoalNotFound) {
			t.Errorf("FindByID() error = %v, want ErrGoalNotFound", err)
		}
	})

	t.Run("find by owner only returns that owner's goals", func(t *testing.T) {
		repo := NewGoalRepository(testDB(t))
		userID := uuid.New()
		otherID := uuid.New()

		if err := repo.Create(ctx, newGoal(userID)); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if err := repo.Create(ctx, newGoal(userID)); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if err := repo.Create(ctx, newGoal(otherID)); err != nil {
			t.Fatalf("Create() error = %v", err)
		}

		goals, err := repo.FindByOwner(ctx, userID)
		if err != nil {
			t.Fatalf("FindByOwner() error = %v", err)
		}
		if len(goals) != 2 {
			t.Fatalf("FindByOwner() returned %d goals, want 2", len(goals))
		}
		for _, g := range goals {
			if g.UserID != userID {
				t.Errorf("returned goal owned by %s, want %s", g.UserID, userID)
			}
		}
	})

	t.Run("update replaces the stored history", func(t *testing.T) {
		repo := NewGoalRepository(testDB(t))
		goal := newGoal(uuid.New())

		if err := repo.Create(ctx, goal); err != nil {
			t.Fatalf("Create() error = %v", err)
		}

		goal.History = []entity.HistoryEntry{
			{ID: "entry-1", Timestamp: time.Now().UTC(), Delta: decimal.NewFromInt(75000)},
		}
		goal.AccumulatedAmount = goal.HistorySum()
		if err := repo.Update(ctx, goal); err != nil {
			t.Fatalf("Update() error = %v", err)
		}

		found, err := repo.FindByID(ctx, goal.ID)
		if err != nil {
			t.Fatalf("FindByID() error = %v", err)
		}
		if len(found.History) != 1 || found.History[0].ID != "entry-1" {
			t.Fatalf("stored history = %+v, want the single replacement entry", found.History)
		}
		if !found.AccumulatedAmount.Equal(decimal.NewFromInt(75000)) {
			t.Errorf("AccumulatedAmount = %s, want 75000", found.AccumulatedAmount)
		}
	})

	t.Run("delete removes the goal and tolerates missing ids", func(t *testing.T) {
		repo := NewGoalRepository(testDB(t))
		goal := newGoal(uuid.New())

		if err := repo.Create(ctx, goal); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if err := repo.Delete(ctx, goal.ID); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		if _, err := repo.FindByID(ctx, goal.ID); !errors.Is(err, domainerror.ErrGoalNotFound) {
			t.Errorf("FindByID() after delete error = %v, want ErrGoalNotFound", err)
		}

		if err := repo.Delete(ctx, uuid.New()); err != nil {
			t.Errorf("Delete() of a missing id error = %v, want nil", err)
		}
	})
}
