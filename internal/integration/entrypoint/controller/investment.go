// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/mis-finanzas/backend/internal/application/usecase/investment"
	"github.com/mis-finanzas/backend/internal/integration/entrypoint/dto"
)

// InvestmentController handles the investment projection endpoint.
type InvestmentController struct {
	projectionUseCase *investment.ProjectionUseCase
}

// NewInvestmentController creates a new investment controller instance.
func NewInvestmentController(projectionUseCase *investment.ProjectionUseCase) *InvestmentController {
	return &InvestmentController{
		projectionUseCase: projectionUseCase,
	}
}

// Project handles POST /investments/projection requests. The
// computation is stateless, so no authentication context is consulted
// beyond the route middleware.
func (c *InvestmentController) Project(ctx *gin.Context) {
	var req dto.InvestmentProjectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.projectionUseCase.Execute(ctx.Request.Context(), investment.ProjectionInput{
		InitialAmount: decimal.NewFromFloat(req.InitialAmount),
		RatePercent:   decimal.NewFromFloat(req.RatePercent),
		Period:        investment.Period(req.Period),
		Days:          req.Days,
	})
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.InvestmentProjectionResponse{
		FinalAmount: output.FinalAmount.Round(2).String(),
		TotalDays:   output.TotalDays,
	})
}
