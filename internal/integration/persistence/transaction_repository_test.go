package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/mis-finanzas/backend/internal/application/adapter"
	"github.com/mis-finanzas/backend/internal/domain/entity"
)

func TestTransactionRepository(t *testing.T) {
	ctx := context.Background()

	date := func(day int) time.Time {
		return time.Date(2025, 3, day, 0, 0, 0, 0, time.UTC)
	}

	seed := func(t *testing.T) (*gorm.DB, uuid.UUID, *entity.Category) {
		t.Helper()
		db := testDB(t)
		userID := uuid.New()

		category := entity.NewCategory(userID, "Comida", "#FF0000", entity.CategoryTypeExpense)
		if err := NewCategoryRepository(db).Create(ctx, category); err != nil {
			t.Fatalf("category Create() error = %v", err)
		}
		return db, userID, category
	}

	t.Run("find by user applies the filter and preloads categories", func(t *testing.T) {
		db, userID, category := seed(t)
		repo := NewTransactionRepository(db)

		groceries := entity.NewTransaction(userID, date(5), "Supermercado",
			decimal.NewFromInt(-25000), entity.TransactionTypeExpense, &category.ID, "")
		salary := entity.NewTransaction(userID, date(1), "Sueldo",
			decimal.NewFromInt(900000), entity.TransactionTypeIncome, nil, "")
		outOfRange := entity.NewTransaction(userID, date(31).AddDate(0, 1, 0), "Luz",
			decimal.NewFromInt(-12000), entity.TransactionTypeExpense, nil, "")

		for _, tx := range []*entity.Transaction{groceries, salary, outOfRange} {
			if err := repo.Create(ctx, tx); err != nil {
				t.Fatalf("Create() error = %v", err)
			}
		}

		from, to := date(1), date(1).AddDate(0, 1, 0)
		list, err := repo.FindByUser(ctx, userID, adapter.TransactionFilter{From: &from, To: &to})
		if err != nil {
			t.Fatalf("FindByUser() error = %v", err)
		}
		if len(list) != 2 {
			t.Fatalf("FindByUser() returned %d transactions, want 2", len(list))
		}
		if list[0].Transaction.Description != "Supermercado" {
			t.Errorf("first transaction = %q, want newest first", list[0].Transaction.Description)
		}
		if list[0].Category == nil || list[0].Category.Name != "Comida" {
			t.Errorf("category not preloaded: %+v", list[0].Category)
		}
		if list[1].Category != nil {
			t.Errorf("uncategorized transaction came back with category %+v", list[1].Category)
		}
	})

	t.Run("totals split income and expense within the period", func(t *testing.T) {
		db, userID, _ := seed(t)
		repo := NewTransactionRepository(db)

		entries := []*entity.Transaction{
			entity.NewTransaction(userID, date(1), "Sueldo",
				decimal.NewFromInt(900000), entity.TransactionTypeIncome, nil, ""),
			entity.NewTransaction(userID, date(10), "Arriendo",
				decimal.NewFromInt(-400000), entity.TransactionTypeExpense, nil, ""),
			entity.NewTransaction(userID, date(12), "Supermercado",
				decimal.NewFromInt(-150000), entity.TransactionTypeExpense, nil, ""),
		}
		for _, tx := range entries {
			if err := repo.Create(ctx, tx); err != nil {
				t.Fatalf("Create() error = %v", err)
			}
		}

		totals, err := repo.Totals(ctx, userID, date(1), date(1).AddDate(0, 1, 0))
		if err != nil {
			t.Fatalf("Totals() error = %v", err)
		}
		if !totals.IncomeTotal.Equal(decimal.NewFromInt(900000)) {
			t.Errorf("IncomeTotal = %s, want 900000", totals.IncomeTotal)
		}
		if !totals.ExpenseTotal.Equal(decimal.NewFromInt(550000)) {
			t.Errorf("ExpenseTotal = %s, want 550000", totals.ExpenseTotal)
		}
		if !totals.NetTotal.Equal(decimal.NewFromInt(350000)) {
			t.Errorf("NetTotal = %s, want 350000", totals.NetTotal)
		}
	})

	t.Run("expense totals group by category, uncategorized included", func(t *testing.T) {
		db, userID, category := seed(t)
		repo := NewTransactionRepository(db)

		entries := []*entity.Transaction{
			entity.NewTransaction(userID, date(3), "Supermercado",
				decimal.NewFromInt(-30000), entity.TransactionTypeExpense, &category.ID, ""),
			entity.NewTransaction(userID, date(8), "Restaurante",
				decimal.NewFromInt(-20000), entity.TransactionTypeExpense, &category.ID, ""),
			entity.NewTransaction(userID, date(9), "Varios",
				decimal.NewFromInt(-5000), entity.TransactionTypeExpense, nil, ""),
		}
		for _, tx := range entries {
			if err := repo.Create(ctx, tx); err != nil {
				t.Fatalf("Create() error = %v", err)
			}
		}

		totals, err := repo.ExpenseTotalsByCategory(ctx, userID, date(1), date(1).AddDate(0, 1, 0))
		if err != nil {
			t.Fatalf("ExpenseTotalsByCategory() error = %v", err)
		}
		if len(totals) != 2 {
			t.Fatalf("ExpenseTotalsByCategory() returned %d rows, want 2", len(totals))
		}
		if totals[0].Name != "Comida" || !totals[0].Total.Equal(decimal.NewFromInt(50000)) {
			t.Errorf("largest bucket = %q %s, want Comida 50000", totals[0].Name, totals[0].Total)
		}
		if totals[1].CategoryID != nil {
			t.Errorf("second bucket category id = %v, want nil for uncategorized", totals[1].CategoryID)
		}
		if !totals[1].Total.Equal(decimal.NewFromInt(5000)) {
			t.Errorf("uncategorized total = %s, want 5000", totals[1].Total)
		}
	})

	t.Run("soft-deleted transactions disappear from listings and totals", func(t *testing.T) {
		db, userID, _ := seed(t)
		repo := NewTransactionRepository(db)

		tx := entity.NewTransaction(userID, date(4), "Cine",
			decimal.NewFromInt(-8000), entity.TransactionTypeExpense, nil, "")
		if err := repo.Create(ctx, tx); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if err := repo.Delete(ctx, tx.ID); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}

		list, err := repo.FindByUser(ctx, userID, adapter.TransactionFilter{})
		if err != nil {
			t.Fatalf("FindByUser() error = %v", err)
		}
		if len(list) != 0 {
			t.Errorf("FindByUser() returned %d transactions after delete, want 0", len(list))
		}

		totals, err := repo.Totals(ctx, userID, date(1), date(1).AddDate(0, 1, 0))
		if err != nil {
			t.Fatalf("Totals() error = %v", err)
		}
		if !totals.ExpenseTotal.IsZero() {
			t.Errorf("ExpenseTotal = %s after delete, want 0", totals.ExpenseTotal)
		}
	})
}
