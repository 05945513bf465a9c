package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mis-finanzas/backend/internal/domain/entity"
	domainerror "github.com/mis-finanzas/backend/internal/domain/error"
)

// ApplyAdjustment applies one manual adjustment to a goal and returns
// the resulting goal. The ledger is append-only: the new entry is
// prepended to the normalized history and the accumulated amount moves
// by the entry's delta, so the accumulated amount always equals the sum
// of all history deltas. The input goal is not mutated; persisting the
// result is the caller's responsibility.
func ApplyAdjustment(goal *entity.Goal, amount decimal.Decimal, kind entity.AdjustmentKind, comment string, gen IDGenerator) (*entity.Goal, error) {
	if amount.IsZero() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidAdjustmentAmount,
			"adjustment amount must be non-zero",
			domainerror.ErrInvalidAdjustmentAmount,
		)
	}

	// Debts only record payments.
	if kind == entity.AdjustmentWithdrawal && goal.Kind == entity.GoalKindDebt {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeWithdrawalNotAllowed,
			"withdrawals are not allowed for debt goals",
			domainerror.ErrWithdrawalNotAllowed,
		)
	}

	delta := amount
	if kind == entity.AdjustmentWithdrawal {
		delta = amount.Neg()
	}

	entry := entity.HistoryEntry{
		ID:        gen.Next(),
		Timestamp: time.Now().UTC(),
		Delta:     delta,
		Comment:   comment,
	}

	adjusted := *goal
	adjusted.AccumulatedAmount = goal.AccumulatedAmount.Add(delta)
	adjusted.History = append([]entity.HistoryEntry{entry}, Normalize(goal.History, gen)...)
	adjusted.UpdatedAt = entry.Timestamp

	return &adjusted, nil
}
