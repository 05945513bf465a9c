// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/mis-finanzas/backend/internal/domain/entity"
)

// CategoryTotalResponse represents one expense bucket in the monthly
// summary. A missing category id means uncategorized spending.
type CategoryTotalResponse struct {
	CategoryID *string `json:"category_id,omitempty"`
	Name       string  `json:"name,omitempty"`
	Color      string  `json:"color,omitempty"`
	Total      string  `json:"total"`
}

// SummaryResponse represents a user's monthly dashboard summary.
type SummaryResponse struct {
	Month        string                  `json:"month"`
	IncomeTotal  string                  `json:"income_total"`
	ExpenseTotal string                  `json:"expense_total"`
	NetTotal     string                  `json:"net_total"`
	ByCategory   []CategoryTotalResponse `json:"by_category"`
}

// ToSummaryResponse converts aggregated totals to a SummaryResponse.
func ToSummaryResponse(month string, totals *entity.TransactionTotals, byCategory []*entity.CategoryTotal) SummaryResponse {
	buckets := make([]CategoryTotalResponse, len(byCategory))
	for i, bucket := range byCategory {
		response := CategoryTotalResponse{
			Name:  bucket.Name,
			Color: bucket.Color,
			Total: bucket.Total.String(),
		}
		if bucket.CategoryID != nil {
			id := bucket.CategoryID.String()
			response.CategoryID = &id
		}
		buckets[i] = response
	}

	return SummaryResponse{
		Month:        month,
		IncomeTotal:  totals.IncomeTotal.String(),
		ExpenseTotal: totals.ExpenseTotal.String(),
		NetTotal:     totals.NetTotal.String(),
		ByCategory:   buckets,
	}
}
