// Package dashboard contains aggregated-summary use cases.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mis-finanzas/backend/internal/application/adapter"
	"github.com/mis-finanzas/backend/internal/domain/entity"
	domainerror "github.com/mis-finanzas/backend/internal/domain/error"
)

// GetSummaryInput represents the input for the monthly summary.
type GetSummaryInput struct {
	UserID uuid.UUID
	Month  string // yyyy-MM
}

// GetSummaryOutput represents the output of the monthly summary.
type GetSummaryOutput struct {
	Totals     *entity.TransactionTotals
	ByCategory []*entity.CategoryTotal
}

// GetSummaryUseCase aggregates a user's income, expenses and
// per-category expense breakdown for one calendar month.
type GetSummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(transactionRepo adapter.TransactionRepository) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute computes the summary for the requested month.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	from, err := time.Parse("2006-01", input.Month)
	if err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"month must be formatted as yyyy-MM",
			domainerror.ErrInvalidTransactionDate,
		)
	}
	to := from.AddDate(0, 1, 0)

	totals, err := uc.transactionRepo.Totals(ctx, input.UserID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to compute totals: %w", err)
	}

	byCategory, err := uc.transactionRepo.ExpenseTotalsByCategory(ctx, input.UserID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to compute category breakdown: %w", err)
	}

	return &GetSummaryOutput{
		Totals:     totals,
		ByCategory: byCategory,
	}, nil
}
