// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mis-finanzas/backend/internal/domain/entity"
	"github.com/mis-finanzas/backend/internal/domain/ledger"
)

// HistoryEntryRequest represents one adjustment record supplied by the
// client, for goal creation with a seed ledger or a full history
// replacement on update.
type HistoryEntryRequest struct {
	ID        string    `json:"id,omitempty"`
	Timestamp time.Time `json:"timestamp" binding:"required"`
	Delta     float64   `json:"delta" binding:"required"`
	Comment   string    `json:"comment,omitempty"`
}

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Kind         string                `json:"kind" binding:"required,oneof=savings debt"`
	Label        string                `json:"label" binding:"required"`
	Description  string                `json:"description,omitempty"`
	TargetAmount float64               `json:"target_amount" binding:"required,gt=0"`
	StartDate    string                `json:"start_date" binding:"required"`
	TargetDate   string                `json:"target_date" binding:"required"`
	History      []HistoryEntryRequest `json:"history,omitempty"`
}

// UpdateGoalRequest represents the request body for goal update. The
// accumulated amount is never accepted here; it only moves through
// adjustments or a full history replacement.
type UpdateGoalRequest struct {
	Label        *string               `json:"label,omitempty"`
	Description  *string               `json:"description,omitempty"`
	TargetAmount *float64              `json:"target_amount,omitempty" binding:"omitempty,gt=0"`
	StartDate    *string               `json:"start_date,omitempty"`
	TargetDate   *string               `json:"target_date,omitempty"`
	History      []HistoryEntryRequest `json:"history,omitempty"`
}

// AdjustGoalRequest represents the request body for a manual ledger
// adjustment.
type AdjustGoalRequest struct {
	Amount  float64 `json:"amount" binding:"required"`
	Kind    string  `json:"kind" binding:"required,oneof=contribution withdrawal"`
	Comment string  `json:"comment,omitempty"`
}

// HistoryEntryResponse represents one adjustment record in API responses.
type HistoryEntryResponse struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Delta     string    `json:"delta"`
	Comment   string    `json:"comment,omitempty"`
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID                string                 `json:"id"`
	UserID            string                 `json:"user_id"`
	Kind              string                 `json:"kind"`
	Label             string                 `json:"label"`
	Description       string                 `json:"description,omitempty"`
	TargetAmount      string                 `json:"target_amount"`
	AccumulatedAmount string                 `json:"accumulated_amount"`
	StartDate         string                 `json:"start_date"`
	TargetDate        string                 `json:"target_date"`
	History           []HistoryEntryResponse `json:"history"`
	CreatedAt         time.Time              `json:"created_at"`
	UpdatedAt         time.Time              `json:"updated_at"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// GoalProjectionResponse represents the derived projection figures for
// one goal.
type GoalProjectionResponse struct {
	GoalID                         string `json:"goal_id"`
	MonthsRemaining                int    `json:"months_remaining"`
	DaysRemaining                  int    `json:"days_remaining"`
	PercentComplete                string `json:"percent_complete"`
	RemainingAmount                string `json:"remaining_amount"`
	RecommendedMonthlyContribution string `json:"recommended_monthly_contribution"`
	Status                         string `json:"status"`
}

// RepairHistoryResponse represents the outcome of the history repair
// maintenance operation.
type RepairHistoryResponse struct {
	GoalsScanned  int `json:"goals_scanned"`
	GoalsRepaired int `json:"goals_repaired"`
}

// ToHistoryEntries converts request history entries to domain entries.
func ToHistoryEntries(requests []HistoryEntryRequest) []entity.HistoryEntry {
	entries := make([]entity.HistoryEntry, len(requests))
	for i, req := range requests {
		entries[i] = entity.HistoryEntry{
			ID:        req.ID,
			Timestamp: req.Timestamp,
			Delta:     decimal.NewFromFloat(req.Delta),
			Comment:   req.Comment,
		}
	}
	return entries
}

// ToGoalResponse converts a domain Goal entity to a GoalResponse DTO.
func ToGoalResponse(g *entity.Goal) GoalResponse {
	history := make([]HistoryEntryResponse, len(g.History))
	for i, entry := range g.History {
		history[i] = HistoryEntryResponse{
			ID:        entry.ID,
			Timestamp: entry.Timestamp,
			Delta:     entry.Delta.String(),
			Comment:   entry.Comment,
		}
	}

	return GoalResponse{
		ID:                g.ID.String(),
		UserID:            g.UserID.String(),
		Kind:              string(g.Kind),
		Label:             g.Label,
		Description:       g.Description,
		TargetAmount:      g.TargetAmount.String(),
		AccumulatedAmount: g.AccumulatedAmount.String(),
		StartDate:         g.StartDate.Format("2006-01-02"),
		TargetDate:        g.TargetDate.Format("2006-01-02"),
		History:           history,
		CreatedAt:         g.CreatedAt,
		UpdatedAt:         g.UpdatedAt,
	}
}

// ToGoalListResponse converts a list of goals to GoalListResponse.
func ToGoalListResponse(goals []*entity.Goal) GoalListResponse {
	responses := make([]GoalResponse, len(goals))
	for i, g := range goals {
		responses[i] = ToGoalResponse(g)
	}
	return GoalListResponse{
		Goals: responses,
	}
}

// ToGoalProjectionResponse converts a projection to its response DTO.
func ToGoalProjectionResponse(g *entity.Goal, p ledger.Projection) GoalProjectionResponse {
	return GoalProjectionResponse{
		GoalID:                         g.ID.String(),
		MonthsRemaining:                p.MonthsRemaining,
		DaysRemaining:                  p.DaysRemaining,
		PercentComplete:                p.PercentComplete.String(),
		RemainingAmount:                p.RemainingAmount.String(),
		RecommendedMonthlyContribution: p.RecommendedMonthlyContribution.String(),
		Status:                         string(p.Status),
	}
}
