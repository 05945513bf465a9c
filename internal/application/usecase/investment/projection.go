// Package investment contains the stateless investment projection use case.
package investment

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	domainerror "github.com/mis-finanzas/backend/internal/domain/error"
)

// Period determines how the supplied rate is interpreted.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
)

var (
	// ErrInvalidProjectionInput is returned when the amount, rate or day
	// count cannot produce a projection.
	ErrInvalidProjectionInput = errors.New("invalid projection input")
)

// ProjectionInput represents the input for an investment projection.
type ProjectionInput struct {
	InitialAmount decimal.Decimal
	RatePercent   decimal.Decimal // rate for the chosen period, in percent
	Period        Period
	Days          int // only used when Period is daily
}

// ProjectionOutput represents the output of an investment projection.
type ProjectionOutput struct {
	FinalAmount decimal.Decimal
	TotalDays   int
}

// ProjectionUseCase compounds an initial amount daily over the chosen
// horizon: a monthly rate spreads over 30 days, a yearly rate over 365.
type ProjectionUseCase struct{}

// NewProjectionUseCase creates a new ProjectionUseCase instance.
func NewProjectionUseCase() *ProjectionUseCase {
	return &ProjectionUseCase{}
}

// Execute computes the projection. Nothing is persisted.
func (uc *ProjectionUseCase) Execute(_ context.Context, input ProjectionInput) (*ProjectionOutput, error) {
	if input.InitialAmount.IsNegative() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeMissingTransactionFields,
			"initial amount must not be negative",
			ErrInvalidProjectionInput,
		)
	}

	var totalDays int
	dailyRate := input.RatePercent

	switch input.Period {
	case PeriodDaily:
		if input.Days <= 0 {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeMissingTransactionFields,
				"day count must be positive",
				ErrInvalidProjectionInput,
			)
		}
		totalDays = input.Days
	case PeriodMonthly:
		totalDays = 30
		dailyRate = input.RatePercent.Div(decimal.NewFromInt(30))
	case PeriodYearly:
		totalDays = 365
		dailyRate = input.RatePercent.Div(decimal.NewFromInt(365))
	default:
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeMissingTransactionFields,
			"period must be 'daily', 'monthly' or 'yearly'",
			ErrInvalidProjectionInput,
		)
	}

	growth := decimal.NewFromInt(1).Add(dailyRate.Div(decimal.NewFromInt(100)))
	final := input.InitialAmount.Mul(growth.Pow(decimal.NewFromInt(int64(totalDays))))

	return &ProjectionOutput{
		FinalAmount: final,
		TotalDays:   totalDays,
	}, nil
}
