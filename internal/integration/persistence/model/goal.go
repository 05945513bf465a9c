// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mis-finanzas/backend/internal/domain/entity"
)

// HistoryEntryRecord is one adjustment inside the goal's history
// document column.
type HistoryEntryRecord struct {
	ID        string          `json:"id"`
	Timestamp time.Time       `json:"timestamp"`
	Delta     decimal.Decimal `json:"delta"`
	Comment   string          `json:"comment,omitempty"`
}

// GoalModel represents the goals table in the database. The adjustment
// history lives in a single JSON column so a goal is always read and
// written as one document.
type GoalModel struct {
	ID                uuid.UUID            `gorm:"type:uuid;primaryKey"`
	UserID            uuid.UUID            `gorm:"type:uuid;not null;index"`
	Kind              string               `gorm:"type:varchar(10);not null;index"`
	Label             string               `gorm:"type:varchar(255);not null"`
	Description       string               `gorm:"type:text"`
	TargetAmount      decimal.Decimal      `gorm:"type:decimal(15,2);not null"`
	AccumulatedAmount decimal.Decimal      `gorm:"type:decimal(15,2);not null"`
	StartDate         time.Time            `gorm:"type:date;not null"`
	TargetDate        time.Time            `gorm:"type:date;not null"`
	History           []HistoryEntryRecord `gorm:"serializer:json;type:text"`
	CreatedAt         time.Time            `gorm:"not null"`
	UpdatedAt         time.Time            `gorm:"not null"`
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "goals"
}

// ToEntity converts a GoalModel to a domain Goal entity.
func (m *GoalModel) ToEntity() *entity.Goal {
	history := make([]entity.HistoryEntry, len(m.History))
	for i, record := range m.History {
		history[i] = entity.HistoryEntry{
			ID:        record.ID,
			Timestamp: record.Timestamp,
			Delta:     record.Delta,
			Comment:   record.Comment,
		}
	}

	return &entity.Goal{
		ID:                m.ID,
		UserID:            m.UserID,
		Kind:              entity.GoalKind(m.Kind),
		Label:             m.Label,
		Description:       m.Description,
		TargetAmount:      m.TargetAmount,
		AccumulatedAmount: m.AccumulatedAmount,
		StartDate:         m.StartDate,
		TargetDate:        m.TargetDate,
		History:           history,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// GoalFromEntity creates a GoalModel from a domain Goal entity.
func GoalFromEntity(goal *entity.Goal) *GoalModel {
	history := make([]HistoryEntryRecord, len(goal.History))
	for i, entry := range goal.History {
		history[i] = HistoryEntryRecord{
			ID:        entry.ID,
			Timestamp: entry.Timestamp,
			Delta:     entry.Delta,
			Comment:   entry.Comment,
		}
	}

	return &GoalModel{
		ID:                goal.ID,
		UserID:            goal.UserID,
		Kind:              string(goal.Kind),
		Label:             goal.Label,
		Description:       goal.Description,
		TargetAmount:      goal.TargetAmount,
		AccumulatedAmount: goal.AccumulatedAmount,
		StartDate:         goal.StartDate,
		TargetDate:        goal.TargetDate,
		History:           history,
		CreatedAt:         goal.CreatedAt,
		UpdatedAt:         goal.UpdatedAt,
	}
}
