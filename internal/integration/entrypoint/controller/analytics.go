package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/planner/internal/application/usecase/analytics"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
	"github.com/finance-tracker/planner/internal/integration/entrypoint/dto"
)

// AnalyticsController handles the spending analytics endpoint.
type AnalyticsController struct {
	getAnalyticsUseCase *analytics.GetAnalyticsUseCase
}

// NewAnalyticsController creates a new analytics controller instance.
func NewAnalyticsController(getAnalyticsUseCase *analytics.GetAnalyticsUseCase) *AnalyticsController {
	return &AnalyticsController{getAnalyticsUseCase: getAnalyticsUseCase}
}

// GetAnalytics handles GET /analytics requests.
func (c *AnalyticsController) GetAnalytics(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	asOf, ok := parseAsOf(ctx)
	if !ok {
		return
	}

	monthsBack := 0
	if raw := ctx.Query("months_back"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "months_back must be a number",
				Code:  string(domainerror.ErrCodeInvalidMonthsBack),
			})
			return
		}
		monthsBack = parsed
	}

	output, err := c.getAnalyticsUseCase.Execute(ctx.Request.Context(), analytics.GetAnalyticsInput{
		UserID:     userID,
		MonthsBack: monthsBack,
		AsOf:       asOf,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAnalyticsResponse(output))
}
