package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mis-finanzas/backend/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// Projection holds read-only figures derived from a goal's current
// state and a reference date. Nothing here is persisted.
type Projection struct {
	MonthsRemaining                int
	DaysRemaining                  int
	PercentComplete                decimal.Decimal
	RemainingAmount                decimal.Decimal
	RecommendedMonthlyContribution decimal.Decimal
	Status                         entity.GoalStatus
}

// Project derives the projection for a goal as of today. A target date
// in the past yields zero remaining time and the full remaining amount
// as the monthly recommendation. A zero target yields zero percent
// complete and can never classify as completed.
func Project(goal *entity.Goal, today time.Time) Projection {
	months := wholeMonthsBetween(today, goal.TargetDate)
	if months < 0 {
		months = 0
	}
	days := wholeDaysBetween(today, goal.TargetDate)
	if days < 0 {
		days = 0
	}

	percent := decimal.Zero
	if goal.TargetAmount.IsPositive() {
		percent = goal.AccumulatedAmount.Div(goal.TargetAmount).Mul(hundred)
		if percent.GreaterThan(hundred) {
			percent = hundred
		}
	}

	remaining := goal.TargetAmount.Sub(goal.AccumulatedAmount)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	recommended := remaining
	if months > 0 {
		recommended = remaining.Div(decimal.NewFromInt(int64(months)))
	}

	status := entity.GoalStatusInProgress
	switch {
	case goal.TargetAmount.IsPositive() && percent.GreaterThanOrEqual(hundred):
		status = entity.GoalStatusCompleted
	case percent.LessThan(decimal.NewFromInt(50)):
		status = entity.GoalStatusBehind
	}

	return Projection{
		MonthsRemaining:                months,
		DaysRemaining:                  days,
		PercentComplete:                percent,
		RemainingAmount:                remaining,
		RecommendedMonthlyContribution: recommended,
		Status:                         status,
	}
}

// wholeMonthsBetween returns the number of whole calendar months from
// one date to another, negative when to precedes from.
func wholeMonthsBetween(from, to time.Time) int {
	from = truncateToDay(from)
	to = truncateToDay(to)

	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	switch {
	case months > 0 && to.Day() < from.Day():
		months--
	case months < 0 && to.Day() > from.Day():
		months++
	}
	return months
}

// wholeDaysBetween returns the number of whole days from one date to
// another, negative when to precedes from.
func wholeDaysBetween(from, to time.Time) int {
	return int(truncateToDay(to).Sub(truncateToDay(from)).Hours() / 24)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
