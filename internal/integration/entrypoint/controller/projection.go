package controller

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/planner/internal/application/usecase/projection"
	"github.com/finance-tracker/planner/internal/domain/finance"
	"github.com/finance-tracker/planner/internal/integration/entrypoint/dto"
)

// ProjectionController handles cash-flow, simulation and portfolio endpoints.
type ProjectionController struct {
	getCashFlowProjectionUseCase *projection.GetCashFlowProjectionUseCase
	simulateWhatIfUseCase        *projection.SimulateWhatIfUseCase
	getPortfolioSummaryUseCase   *projection.GetPortfolioSummaryUseCase
}

// NewProjectionController creates a new projection controller instance.
func NewProjectionController(
	getCashFlowProjectionUseCase *projection.GetCashFlowProjectionUseCase,
	simulateWhatIfUseCase *projection.SimulateWhatIfUseCase,
	getPortfolioSummaryUseCase *projection.GetPortfolioSummaryUseCase,
) *ProjectionController {
	return &ProjectionController{
		getCashFlowProjectionUseCase: getCashFlowProjectionUseCase,
		simulateWhatIfUseCase:        simulateWhatIfUseCase,
		getPortfolioSummaryUseCase:   getPortfolioSummaryUseCase,
	}
}

// ProjectCashFlow handles POST /projections/cash-flow requests.
func (c *ProjectionController) ProjectCashFlow(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	asOf, ok := parseAsOf(ctx)
	if !ok {
		return
	}

	var req dto.CashFlowProjectionRequest
	if !bindOptionalJSON(ctx, &req) {
		return
	}

	output, err := c.getCashFlowProjectionUseCase.Execute(ctx.Request.Context(), projection.GetCashFlowProjectionInput{
		UserID:    userID,
		Scenario:  finance.Scenario(req.Scenario),
		Overrides: req.ToOverrides(),
		AsOf:      asOf,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCashFlowProjectionResponse(output))
}

// Simulate handles POST /projections/simulation requests.
func (c *ProjectionController) Simulate(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.SimulationRequest
	if !bindOptionalJSON(ctx, &req) {
		return
	}

	input := req.ToInput()
	input.UserID = userID
	output, err := c.simulateWhatIfUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSimulationResponse(output))
}

// GetPortfolioSummary handles GET /investments/summary requests.
func (c *ProjectionController) GetPortfolioSummary(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.getPortfolioSummaryUseCase.Execute(ctx.Request.Context(), projection.GetPortfolioSummaryInput{
		UserID: userID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPortfolioSummaryResponse(output))
}

// bindOptionalJSON decodes the request body into req. An empty body keeps
// the zero value so every field falls back to its default.
func bindOptionalJSON(ctx *gin.Context, req any) bool {
	if err := ctx.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    ErrCodeInvalidBody,
			Details: err.Error(),
		})
		return false
	}
	return true
}
