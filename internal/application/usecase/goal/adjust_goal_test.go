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

func createTestGoal(t *testing.T, repo *fakeGoalRepository, feed *fakeGoalFeed, userID uuid.UUID, kind entity.GoalKind, target int64) *entity.Goal {
	t.Helper()
	uc := NewCreateGoalUseCase(repo, feed, &sequenceGenerator{})
	output, err := uc.Execute(context.Background(), CreateGoalInput{
		UserID:       userID,
		Kind:         kind,
		Label:        "Nuevo ahorro",
		TargetAmount: decimal.NewFromInt(target),
		StartDate:    "2025-01-01",
		TargetDate:   "2026-01-01",
	})
	if err != nil {
		t.Fatalf("failed to create test goal: %v", err)
	}
	return output.Goal
}

func TestAdjustGoalUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("persists the adjusted ledger", func(t *testing.T) {
		repo := newFakeGoalRepository()
		feed := newFakeGoalFeed()
		created := createTestGoal(t, repo, feed, userID, entity.GoalKindSavings, 500000)
		uc := NewAdjustGoalUseCase(repo, feed, &sequenceGenerator{})

		output, err := uc.Execute(ctx, AdjustGoalInput{
			GoalID:  created.ID,
			UserID:  userID,
			Amount:  decimal.NewFromInt(100000),
			Kind:    entity.AdjustmentContribution,
			Comment: "deposit1",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Goal.AccumulatedAmount.Equal(decimal.NewFromInt(100000)) {
			t.Errorf("expected accumulated 100000, got %s", output.Goal.AccumulatedAmount)
		}

		stored, err := repo.FindByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("failed to reload goal: %v", err)
		}
		if !stored.AccumulatedAmount.Equal(decimal.NewFromInt(100000)) {
			t.Errorf("persisted accumulated amount is %s", stored.AccumulatedAmount)
		}
		if len(stored.History) != 1 {
			t.Errorf("persisted history has %d entries", len(stored.History))
		}
		if !stored.AccumulatedAmount.Equal(stored.HistorySum()) {
			t.Error("persisted goal violates the reconciliation invariant")
		}
	})

	t.Run("publishes a change event", func(t *testing.T) {
		repo := newFakeGoalRepository()
		feed := newFakeGoalFeed()
		created := createTestGoal(t, repo, feed, userID, entity.GoalKindSavings, 1000)
		uc := NewAdjustGoalUseCase(repo, feed, &sequenceGenerator{})
		before := feed.publishCount()

		if _, err := uc.Execute(ctx, AdjustGoalInput{
			GoalID: created.ID,
			UserID: userID,
			Amount: decimal.NewFromInt(10),
			Kind:   entity.AdjustmentContribution,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if feed.publishCount() != before+1 {
			t.Errorf("expected one change event, got %d", feed.publishCount()-before)
		}
	})

	t.Run("rejects zero amounts without persisting", func(t *testing.T) {
		repo := newFakeGoalRepository()
		feed := newFakeGoalFeed()
		created := createTestGoal(t, repo, feed, userID, entity.GoalKindSavings, 1000)
		uc := NewAdjustGoalUseCase(repo, feed, &sequenceGenerator{})

		_, err := uc.Execute(ctx, AdjustGoalInput{
			GoalID: created.ID,
			UserID: userID,
			Amount: decimal.Zero,
			Kind:   entity.AdjustmentContribution,
		})
		if !errors.Is(err, domainerror.ErrInvalidAdjustmentAmount) {
			t.Fatalf("expected ErrInvalidAdjustmentAmount, got %v", err)
		}

		stored, _ := repo.FindByID(ctx, created.ID)
		if len(stored.History) != 0 {
			t.Error("rejected adjustment reached the store")
		}
	})

	t.Run("rejects another user's goal", func(t *testing.T) {
		repo := newFakeGoalRepository()
		feed := newFakeGoalFeed()
		created := createTestGoal(t, repo, feed, userID, entity.GoalKindSavings, 1000)
		uc := NewAdjustGoalUseCase(repo, feed, &sequenceGenerator{})

		_, err := uc.Execute(ctx, AdjustGoalInput{
			GoalID: created.ID,
			UserID: uuid.New(),
			Amount: decimal.NewFromInt(10),
			Kind:   entity.AdjustmentContribution,
		})
		if !errors.Is(err, domainerror.ErrUnauthorizedGoalAccess) {
			t.Fatalf("expected ErrUnauthorizedGoalAccess, got %v", err)
		}
	})

	t.Run("unknown goal", func(t *testing.T) {
		repo := newFakeGoalRepository()
		feed := newFakeGoalFeed()
		uc := NewAdjustGoalUseCase(repo, feed, &sequenceGenerator{})

		_, err := uc.Execute(ctx, AdjustGoalInput{
			GoalID: uuid.New(),
			UserID: userID,
			Amount: decimal.NewFromInt(10),
			Kind:   entity.AdjustmentContribution,
		})
		if !errors.Is(err, domainerror.ErrGoalNotFound) {
			t.Fatalf("expected ErrGoalNotFound, got %v", err)
		}
	})

	t.Run("debt goals accept payments only", func(t *testing.T) {
		repo := newFakeGoalRepository()
		feed := newFakeGoalFeed()
		created := createTestGoal(t, repo, feed, userID, entity.GoalKindDebt, 20000)
		uc := NewAdjustGoalUseCase(repo, feed, &sequenceGenerator{})

		if _, err := uc.Execute(ctx, AdjustGoalInput{
			GoalID:  created.ID,
			UserID:  userID,
			Amount:  decimal.NewFromInt(5000),
			Kind:    entity.AdjustmentContribution,
			Comment: "cuota",
		}); err != nil {
			t.Fatalf("payment failed: %v", err)
		}

		_, err := uc.Execute(ctx, AdjustGoalInput{
			GoalID: created.ID,
			UserID: userID,
			Amount: decimal.NewFromInt(100),
			Kind:   entity.AdjustmentWithdrawal,
		})
		if !errors.Is(err, domainerror.ErrWithdrawalNotAllowed) {
			t.Fatalf("expected ErrWithdrawalNotAllowed, got %v", err)
		}
	})

	t.Run("store failures propagate", func(t *testing.T) {
		repo := newFakeGoalRepository()
		feed := newFakeGoalFeed()
		uc := NewAdjustGoalUseCase(repo, feed, &sequenceGenerator{})
		storeErr := errors.New("connection reset")
		repo.fail = storeErr

		_, err := uc.Execute(ctx, AdjustGoalInput{
			GoalID: uuid.New(),
			UserID: userID,
			Amount: decimal.NewFromInt(10),
			Kind:   entity.AdjustmentContribution,
		})
		if !errors.Is(err, storeErr) {
			t.Fatalf("expected store error to propagate, got %v", err)
		}
	})
}
