// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mis-finanzas/backend/internal/application/adapter"
	"github.com/mis-finanzas/backend/internal/domain/entity"
	domainerror "github.com/mis-finanzas/backend/internal/domain/error"
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	UserID      uuid.UUID
	Date        string // yyyy-MM-dd
	Description string
	Amount      decimal.Decimal
	Type        entity.TransactionType
	CategoryID  *uuid.UUID
	Notes       string
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(transactionRepo adapter.TransactionRepository, categoryRepo adapter.CategoryRepository) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
	}
}

// Execute performs the transaction creation. Expense amounts are stored
// negative, income amounts positive, regardless of the supplied sign.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if !isValidTransactionType(input.Type) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"type must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"date must be formatted as yyyy-MM-dd",
			domainerror.ErrInvalidTransactionDate,
		)
	}

	if input.CategoryID != nil {
		category, err := uc.categoryRepo.FindByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionCategoryNotFound,
				"category not found",
				domainerror.ErrTransactionCategoryNotFound,
			)
		}
		if category.UserID != input.UserID {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionCategoryNotFound,
				"category does not belong to user",
				domainerror.ErrTransactionCategoryNotFound,
			)
		}
	}

	amount := normalizeAmount(input.Amount, input.Type)

	transaction := entity.NewTransaction(
		input.UserID,
		date,
		input.Description,
		amount,
		input.Type,
		input.CategoryID,
		input.Notes,
	)

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &CreateTransactionOutput{
		Transaction: transaction,
	}, nil
}

// normalizeAmount pins the sign convention: expenses negative, income positive.
func normalizeAmount(amount decimal.Decimal, transactionType entity.TransactionType) decimal.Decimal {
	abs := amount.Abs()
	if transactionType == entity.TransactionTypeExpense {
		return abs.Neg()
	}
	return abs
}

// isValidTransactionType validates the transaction type.
func isValidTransactionType(t entity.TransactionType) bool {
	return t == entity.TransactionTypeExpense || t == entity.TransactionTypeIncome
}
