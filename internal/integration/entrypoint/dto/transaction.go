// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/mis-finanzas/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Date        string  `json:"date" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	Type        string  `json:"type" binding:"required,oneof=expense income"`
	CategoryID  *string `json:"category_id,omitempty" binding:"omitempty,uuid"`
	Notes       string  `json:"notes,omitempty"`
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	Date          *string  `json:"date,omitempty"`
	Description   *string  `json:"description,omitempty"`
	Amount        *float64 `json:"amount,omitempty"`
	Type          *string  `json:"type,omitempty" binding:"omitempty,oneof=expense income"`
	CategoryID    *string  `json:"category_id,omitempty" binding:"omitempty,uuid"`
	ClearCategory bool     `json:"clear_category,omitempty"`
	Notes         *string  `json:"notes,omitempty"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          string            `json:"id"`
	UserID      string            `json:"user_id"`
	Date        string            `json:"date"`
	Description string            `json:"description"`
	Amount      string            `json:"amount"`
	Type        string            `json:"type"`
	CategoryID  *string           `json:"category_id,omitempty"`
	Category    *CategoryResponse `json:"category,omitempty"`
	Notes       string            `json:"notes,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(txn *entity.Transaction) TransactionResponse {
	response := TransactionResponse{
		ID:          txn.ID.String(),
		UserID:      txn.UserID.String(),
		Date:        txn.Date.Format("2006-01-02"),
		Description: txn.Description,
		Amount:      txn.Amount.String(),
		Type:        string(txn.Type),
		Notes:       txn.Notes,
		CreatedAt:   txn.CreatedAt,
		UpdatedAt:   txn.UpdatedAt,
	}

	if txn.CategoryID != nil {
		id := txn.CategoryID.String()
		response.CategoryID = &id
	}

	return response
}

// ToTransactionListResponse converts transactions with their categories
// to a TransactionListResponse.
func ToTransactionListResponse(items []*entity.TransactionWithCategory) TransactionListResponse {
	transactions := make([]TransactionResponse, len(items))
	for i, item := range items {
		response := ToTransactionResponse(item.Transaction)
		if item.Category != nil {
			category := ToCategoryResponse(item.Category)
			response.Category = &category
		}
		transactions[i] = response
	}
	return TransactionListResponse{
		Transactions: transactions,
	}
}
