// Package dto defines data transfer objects for API requests and responses.
package dto

// InvestmentProjectionRequest represents the request body for an
// investment projection.
type InvestmentProjectionRequest struct {
	InitialAmount float64 `json:"initial_amount" binding:"required,gt=0"`
	RatePercent   float64 `json:"rate_percent" binding:"required,gte=0"`
	Period        string  `json:"period" binding:"required,oneof=daily monthly yearly"`
	Days          int     `json:"days,omitempty" binding:"omitempty,gt=0"`
}

// InvestmentProjectionResponse represents the computed projection.
type InvestmentProjectionResponse struct {
	FinalAmount string `json:"final_amount"`
	TotalDays   int    `json:"total_days"`
}
