package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/planner/internal/application/usecase/dashboard"
	"github.com/finance-tracker/planner/internal/domain/entity"
	domainerror "github.com/finance-tracker/planner/internal/domain/error"
	"github.com/finance-tracker/planner/internal/integration/entrypoint/dto"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	getMonthlySummaryUseCase   *dashboard.GetMonthlySummaryUseCase
	getTopCategoriesUseCase    *dashboard.GetTopCategoriesUseCase
	getBudgetComparisonUseCase *dashboard.GetBudgetComparisonUseCase
	getTrendsUseCase           *dashboard.GetTrendsUseCase
	getDataRangeUseCase        *dashboard.GetDataRangeUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	getMonthlySummaryUseCase *dashboard.GetMonthlySummaryUseCase,
	getTopCategoriesUseCase *dashboard.GetTopCategoriesUseCase,
	getBudgetComparisonUseCase *dashboard.GetBudgetComparisonUseCase,
	getTrendsUseCase *dashboard.GetTrendsUseCase,
	getDataRangeUseCase *dashboard.GetDataRangeUseCase,
) *DashboardController {
	return &DashboardController{
		getMonthlySummaryUseCase:   getMonthlySummaryUseCase,
		getTopCategoriesUseCase:    getTopCategoriesUseCase,
		getBudgetComparisonUseCase: getBudgetComparisonUseCase,
		getTrendsUseCase:           getTrendsUseCase,
		getDataRangeUseCase:        getDataRangeUseCase,
	}
}

// GetSummary handles GET /dashboard/summary requests.
func (c *DashboardController) GetSummary(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	asOf, ok := parseAsOf(ctx)
	if !ok {
		return
	}

	output, err := c.getMonthlySummaryUseCase.Execute(ctx.Request.Context(), dashboard.GetMonthlySummaryInput{
		UserID: userID,
		Month:  ctx.Query("month"),
		AsOf:   asOf,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardSummaryResponse(output))
}

// GetTopCategories handles GET /dashboard/top-categories requests.
func (c *DashboardController) GetTopCategories(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	asOf, ok := parseAsOf(ctx)
	if !ok {
		return
	}

	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "limit must be a number",
				Code:  string(domainerror.ErrCodeInvalidLimit),
			})
			return
		}
		limit = parsed
	}

	output, err := c.getTopCategoriesUseCase.Execute(ctx.Request.Context(), dashboard.GetTopCategoriesInput{
		UserID: userID,
		Month:  ctx.Query("month"),
		Type:   entity.TransactionType(ctx.Query("type")),
		Limit:  limit,
		AsOf:   asOf,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTopCategoriesResponse(output))
}

// GetBudgets handles GET /dashboard/budgets requests.
func (c *DashboardController) GetBudgets(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	asOf, ok := parseAsOf(ctx)
	if !ok {
		return
	}

	output, err := c.getBudgetComparisonUseCase.Execute(ctx.Request.Context(), dashboard.GetBudgetComparisonInput{
		UserID: userID,
		Month:  ctx.Query("month"),
		AsOf:   asOf,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetComparisonResponse(output))
}

// GetTrends handles GET /dashboard/trends requests.
func (c *DashboardController) GetTrends(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	startDate, ok := parseDateQuery(ctx, "start_date")
	if !ok {
		return
	}
	endDate, ok := parseDateQuery(ctx, "end_date")
	if !ok {
		return
	}

	output, err := c.getTrendsUseCase.Execute(ctx.Request.Context(), dashboard.GetTrendsInput{
		UserID:      userID,
		StartDate:   startDate,
		EndDate:     endDate,
		Granularity: dashboard.Granularity(ctx.DefaultQuery("granularity", string(dashboard.GranularityMonthly))),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTrendsResponse(output))
}

// GetDataRange handles GET /dashboard/data-range requests.
func (c *DashboardController) GetDataRange(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.getDataRangeUseCase.Execute(ctx.Request.Context(), dashboard.GetDataRangeInput{
		UserID: userID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDataRangeResponse(output))
}

// parseDateQuery parses an optional YYYY-MM-DD query parameter. A missing
// value yields the zero time and is left to the use case to reject.
func parseDateQuery(ctx *gin.Context, name string) (time.Time, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return time.Time{}, true
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + name + " format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidDateFormat),
		})
		return time.Time{}, false
	}
	return t, true
}
