// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalKind distinguishes savings goals from debts. Both share the same
// ledger mechanics; only the direction semantics differ.
type GoalKind string

const (
	GoalKindSavings GoalKind = "savings"
	GoalKindDebt    GoalKind = "debt"
)

// AdjustmentKind represents the direction of a manual ledger adjustment.
type AdjustmentKind string

const (
	AdjustmentContribution AdjustmentKind = "contribution"
	AdjustmentWithdrawal   AdjustmentKind = "withdrawal"
)

// GoalStatus classifies progress toward a goal's target.
type GoalStatus string

const (
	GoalStatusCompleted  GoalStatus = "completed"
	GoalStatusInProgress GoalStatus = "in_progress"
	GoalStatusBehind     GoalStatus = "behind"
)

// HistoryEntry is one signed adjustment record within a goal's ledger.
// Entries are append-only; once an ID is set it is never reassigned.
type HistoryEntry struct {
	ID        string
	Timestamp time.Time
	Delta     decimal.Decimal
	Comment   string
}

// Goal represents a savings target or a debt tracked through an
// append-only adjustment history. AccumulatedAmount must always equal
// the sum of all history deltas; it is only ever moved through the
// ledger package.
type Goal struct {
	ID                uuid.UUID // zero until the store assigns one
	UserID            uuid.UUID
	Kind              GoalKind
	Label             string
	Description       string
	TargetAmount      decimal.Decimal
	AccumulatedAmount decimal.Decimal
	StartDate         time.Time      // date only, no time component
	TargetDate        time.Time      // date only, must not precede StartDate
	History           []HistoryEntry // most-recent-first
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewGoal creates a new Goal entity with an empty ledger. The store
// assigns the ID on creation.
func NewGoal(userID uuid.UUID, kind GoalKind, label, description string, targetAmount decimal.Decimal, startDate, targetDate time.Time) *Goal {
	now := time.Now().UTC()

	return &Goal{
		UserID:            userID,
		Kind:              kind,
		Label:             label,
		Description:       description,
		TargetAmount:      targetAmount,
		AccumulatedAmount: decimal.Zero,
		StartDate:         startDate,
		TargetDate:        targetDate,
		History:           []HistoryEntry{},
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// HistorySum returns the sum of all history deltas. A goal whose
// AccumulatedAmount differs from this value has drifted from its ledger.
func (g *Goal) HistorySum() decimal.Decimal {
	sum := decimal.Zero
	for _, entry := range g.History {
		sum = sum.Add(entry.Delta)
	}
	return sum
}
