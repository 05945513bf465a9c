// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/mis-finanzas/backend/internal/application/adapter"
	"github.com/mis-finanzas/backend/internal/domain/entity"
	domainerror "github.com/mis-finanzas/backend/internal/domain/error"
	"github.com/mis-finanzas/backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction in the database.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	result := r.db.WithContext(ctx).Create(transactionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a transaction by its ID.
func (r *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// FindByUser retrieves a user's transactions matching the filter,
// newest first, with categories preloaded.
func (r *transactionRepository) FindByUser(ctx context.Context, userID uuid.UUID, filter adapter.TransactionFilter) ([]*entity.TransactionWithCategory, error) {
	query := r.db.WithContext(ctx).
		Preload("Category").
		Where("user_id = ?", userID)

	if filter.From != nil {
		query = query.Where("date >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("date < ?", *filter.To)
	}
	if filter.Type != nil {
		query = query.Where("type = ?", string(*filter.Type))
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}

	var transactionModels []model.TransactionModel
	result := query.
		Order("date DESC, created_at DESC").
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.TransactionWithCategory, len(transactionModels))
	for i, tm := range transactionModels {
		transactions[i] = tm.ToEntityWithCategory()
	}
	return transactions, nil
}

// Update updates an existing transaction in the database.
func (r *transactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	result := r.db.WithContext(ctx).Save(transactionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a transaction from the database (soft delete).
func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.TransactionModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Totals returns income, expense and net totals for a user within a period.
func (r *transactionRepository) Totals(ctx context.Context, userID uuid.UUID, from, to time.Time) (*entity.TransactionTotals, error) {
	var row struct {
		Income  decimal.Decimal `gorm:"column:income"`
		Expense decimal.Decimal `gorm:"column:expense"`
	}

	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select(`
			COALESCE(SUM(CASE WHEN amount > 0 THEN amount ELSE 0 END), 0) as income,
			COALESCE(SUM(CASE WHEN amount < 0 THEN -amount ELSE 0 END), 0) as expense`).
		Where("user_id = ?", userID).
		Where("date >= ? AND date < ?", from, to).
		Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}

	return &entity.TransactionTotals{
		IncomeTotal:  row.Income,
		ExpenseTotal: row.Expense,
		NetTotal:     row.Income.Sub(row.Expense),
	}, nil
}

// ExpenseTotalsByCategory returns per-category expense totals for a
// user within a period, largest first. Uncategorized expenses come
// back with a nil category id.
func (r *transactionRepository) ExpenseTotalsByCategory(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.CategoryTotal, error) {
	var rows []struct {
		CategoryID *uuid.UUID      `gorm:"column:category_id"`
		Name       *string         `gorm:"column:name"`
		Color      *string         `gorm:"column:color"`
		Total      decimal.Decimal `gorm:"column:total"`
	}

	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select(`
			transactions.category_id as category_id,
			categories.name as name,
			categories.color as color,
			COALESCE(SUM(-transactions.amount), 0) as total`).
		Joins("LEFT JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.user_id = ?", userID).
		Where("transactions.type = ?", string(entity.TransactionTypeExpense)).
		Where("transactions.date >= ? AND transactions.date < ?", from, to).
		Where("transactions.deleted_at IS NULL").
		Group("transactions.category_id, categories.name, categories.color").
		Order("total DESC").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	totals := make([]*entity.CategoryTotal, len(rows))
	for i, row := range rows {
		total := &entity.CategoryTotal{
			CategoryID: row.CategoryID,
			Total:      row.Total,
		}
		if row.Name != nil {
			total.Name = *row.Name
		}
		if row.Color != nil {
			total.Color = *row.Color
		}
		totals[i] = total
	}
	return totals, nil
}
