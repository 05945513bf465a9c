// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mis-finanzas/backend/internal/domain/entity"
)

// TransactionFilter narrows a transaction listing.
type TransactionFilter struct {
	From       *time.Time
	To         *time.Time
	Type       *entity.TransactionType
	CategoryID *uuid.UUID
}

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create persists a new transaction.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByUser retrieves a user's transactions matching the filter,
	// newest first, with their categories preloaded.
	FindByUser(ctx context.Context, userID uuid.UUID, filter TransactionFilter) ([]*entity.TransactionWithCategory, error)

	// Update updates an existing transaction.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction (soft delete).
	Delete(ctx context.Context, id uuid.UUID) error

	// Totals returns income, expense and net totals for a user within a period.
	Totals(ctx context.Context, userID uuid.UUID, from, to time.Time) (*entity.TransactionTotals, error)

	// ExpenseTotalsByCategory returns per-category expense totals for a
	// user within a period, largest first.
	ExpenseTotalsByCategory(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.CategoryTotal, error)
}
