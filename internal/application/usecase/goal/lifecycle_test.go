package goal

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mis-finanzas/backend/internal/domain/entity"
	domainerror "github.com/mis-finanzas/backend/internal/domain/error"
)

func TestCreateGoalUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("assigns an id and starts with an empty ledger", func(t *testing.T) {
		repo := newFakeGoalRepository()
		uc := NewCreateGoalUseCase(repo, newFakeGoalFeed(), &sequenceGenerator{})

		output, err := uc.Execute(ctx, CreateGoalInput{
			UserID:       userID,
			Kind:         entity.GoalKindSavings,
			Label:        "Nuevo ahorro",
			TargetAmount: decimal.NewFromInt(500000),
			StartDate:    "2025-01-01",
			TargetDate:   "2025-12-31",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Goal.ID == uuid.Nil {
			t.Error("expected store-assigned id")
		}
		if !output.Goal.AccumulatedAmount.IsZero() || len(output.Goal.History) != 0 {
			t.Error("new goal must start with a zero, empty ledger")
		}
	})

	t.Run("normalizes seed history and derives the accumulated amount", func(t *testing.T) {
		repo := newFakeGoalRepository()
		uc := NewCreateGoalUseCase(repo, newFakeGoalFeed(), &sequenceGenerator{})

		output, err := uc.Execute(ctx, CreateGoalInput{
			UserID:       userID,
			Kind:         entity.GoalKindSavings,
			Label:        "Importado",
			TargetAmount: decimal.NewFromInt(1000),
			StartDate:    "2025-01-01",
			TargetDate:   "2025-12-31",
			SeedHistory: []entity.HistoryEntry{
				{ID: "", Delta: decimal.NewFromInt(300)},
				{ID: "seed", Delta: decimal.NewFromInt(-50)},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Goal.AccumulatedAmount.Equal(decimal.NewFromInt(250)) {
			t.Errorf("expected accumulated 250, got %s", output.Goal.AccumulatedAmount)
		}
		for i, entry := range output.Goal.History {
			if entry.ID == "" {
				t.Errorf("seed entry %d has no id", i)
			}
		}
	})

	t.Run("rejects invalid kinds", func(t *testing.T) {
		uc := NewCreateGoalUseCase(newFakeGoalRepository(), newFakeGoalFeed(), &sequenceGenerator{})

		_, err := uc.Execute(ctx, CreateGoalInput{
			UserID:       userID,
			Kind:         entity.GoalKind("loan"),
			TargetAmount: decimal.NewFromInt(100),
			StartDate:    "2025-01-01",
			TargetDate:   "2025-12-31",
		})
		if !errors.Is(err, domainerror.ErrInvalidGoalKind) {
			t.Fatalf("expected ErrInvalidGoalKind, got %v", err)
		}
	})

	t.Run("rejects target date before start date", func(t *testing.T) {
		uc := NewCreateGoalUseCase(newFakeGoalRepository(), newFakeGoalFeed(), &sequenceGenerator{})

		_, err := uc.Execute(ctx, CreateGoalInput{
			UserID:       userID,
			Kind:         entity.GoalKindSavings,
			TargetAmount: decimal.NewFromInt(100),
			StartDate:    "2025-06-01",
			TargetDate:   "2025-01-01",
		})
		if !errors.Is(err, domainerror.ErrInvalidDateRange) {
			t.Fatalf("expected ErrInvalidDateRange, got %v", err)
		}
	})
}

func TestUpdateGoalUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("updates descriptive fields only", func(t *testing.T) {
		repo := newFakeGoalRepository()
		feed := newFakeGoalFeed()
		created := createTestGoal(t, repo, feed, userID, entity.GoalKindSavings, 1000)
		uc := NewUpdateGoalUseCase(repo, feed, &sequenceGenerator{})

		label := "Viaje a la costa"
		target := decimal.NewFromInt(2500)
		output, err := uc.Execute(ctx, UpdateGoalInput{
			GoalID:       created.ID,
			UserID:       userID,
			Label:        &label,
			TargetAmount: &target,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Goal.Label != label {
			t.Errorf("expected label %q, got %q", label, output.Goal.Label)
		}
		if !output.Goal.TargetAmount.Equal(target) {
			t.Errorf("expected target 2500, got %s", output.Goal.TargetAmount)
		}
		if !output.Goal.AccumulatedAmount.Equal(created.AccumulatedAmount) {
			t.Error("update must not move the accumulated amount")
		}
	})

	t.Run("replacement history re-derives the accumulated amount", func(t *testing.T) {
		repo := newFakeGoalRepository()
		feed := newFakeGoalFeed()
		created := createTestGoal(t, repo, feed, userID, entity.GoalKindSavings, 1000)
		uc := NewUpdateGoalUseCase(repo, feed, &sequenceGenerator{})

		output, err := uc.Execute(ctx, UpdateGoalInput{
			GoalID: created.ID,
			UserID: userID,
			History: []entity.HistoryEntry{
				{ID: "", Delta: decimal.NewFromInt(700)},
				{ID: "h2", Delta: decimal.NewFromInt(-200)},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Goal.AccumulatedAmount.Equal(decimal.NewFromInt(500)) {
			t.Errorf("expected accumulated 500, got %s", output.Goal.AccumulatedAmount)
		}
		if !output.Goal.AccumulatedAmount.Equal(output.Goal.HistorySum()) {
			t.Error("updated goal violates the reconciliation invariant")
		}
	})

	t.Run("missing identifier", func(t *testing.T) {
		uc := NewUpdateGoalUseCase(newFakeGoalRepository(), newFakeGoalFeed(), &sequenceGenerator{})

		_, err := uc.Execute(ctx, UpdateGoalInput{GoalID: uuid.Nil, UserID: userID})
		if !errors.Is(err, domainerror.ErrMissingGoalID) {
			t.Fatalf("expected ErrMissingGoalID, got %v", err)
		}
	})

	t.Run("other user's goal", func(t *testing.T) {
		repo := newFakeGoalRepository()
		feed := newFakeGoalFeed()
		created := createTestGoal(t, repo, feed, userID, entity.GoalKindSavings, 1000)
		uc := NewUpdateGoalUseCase(repo, feed, &sequenceGenerator{})

		label := "ajena"
		_, err := uc.Execute(ctx, UpdateGoalInput{GoalID: created.ID, UserID: uuid.New(), Label: &label})
		if !errors.Is(err, domainerror.ErrUnauthorizedGoalAccess) {
			t.Fatalf("expected ErrUnauthorizedGoalAccess, got %v", err)
		}
	})
}

func TestDeleteGoalUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("deletes a persisted goal", func(t *testing.T) {
		repo := newFakeGoalRepository()
		feed := newFakeGoalFeed()
		created := createTestGoal(t, repo, feed, userID, entity.GoalKindSavings, 1000)
		uc := NewDeleteGoalUseCase(repo, feed)

		if err := uc.Execute(ctx, DeleteGoalInput{GoalID: created.ID, UserID: userID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := repo.FindByID(ctx, created.ID); !errors.Is(err, domainerror.ErrGoalNotFound) {
			t.Error("goal still present after delete")
		}
	})

	t.Run("requires an identifier", func(t *testing.T) {
		uc := NewDeleteGoalUseCase(newFakeGoalRepository(), newFakeGoalFeed())

		err := uc.Execute(ctx, DeleteGoalInput{GoalID: uuid.Nil, UserID: userID})
		if !errors.Is(err, domainerror.ErrMissingGoalID) {
			t.Fatalf("expected ErrMissingGoalID, got %v", err)
		}
	})

	t.Run("deleting a missing goal is idempotent", func(t *testing.T) {
		uc := NewDeleteGoalUseCase(newFakeGoalRepository(), newFakeGoalFeed())

		if err := uc.Execute(ctx, DeleteGoalInput{GoalID: uuid.New(), UserID: userID}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})
}

func TestWatchGoalsUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("delivers an initial snapshot and then one per change", func(t *testing.T) {
		repo := newFakeGoalRepository()
		feed := newFakeGoalFeed()
		createTestGoal(t, repo, feed, userID, entity.GoalKindSavings, 1000)

		var snapshots [][]*entity.Goal
		uc := NewWatchGoalsUseCase(NewListGoalsUseCase(repo), feed)
		output, err := uc.Execute(ctx, WatchGoalsInput{
			UserID:     userID,
			OnSnapshot: func(goals []*entity.Goal) { snapshots = append(snapshots, goals) },
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer output.Subscription.Close()

		if len(snapshots) != 1 {
			t.Fatalf("expected initial snapshot, got %d", len(snapshots))
		}
		if len(snapshots[0]) != 1 {
			t.Errorf("initial snapshot has %d goals", len(snapshots[0]))
		}

		// Any mutation publishes; the watcher re-reads the full set.
		createTestGoal(t, repo, feed, userID, entity.GoalKindDebt, 5000)
		if len(snapshots) != 2 {
			t.Fatalf("expected a snapshot per change, got %d", len(snapshots))
		}
		if len(snapshots[1]) != 2 {
			t.Errorf("second snapshot has %d goals, expected the full set", len(snapshots[1]))
		}
	})
}
