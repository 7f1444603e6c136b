package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/planner/internal/application/usecase/planning"
	"github.com/finance-tracker/planner/internal/integration/entrypoint/dto"
)

// PlanningController handles the planning overview endpoint.
type PlanningController struct {
	getPlanningOverviewUseCase *planning.GetPlanningOverviewUseCase
}

// NewPlanningController creates a new planning controller instance.
func NewPlanningController(getPlanningOverviewUseCase *planning.GetPlanningOverviewUseCase) *PlanningController {
	return &PlanningController{getPlanningOverviewUseCase: getPlanningOverviewUseCase}
}

// GetOverview handles GET /planning requests.
func (c *PlanningController) GetOverview(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	asOf, ok := parseAsOf(ctx)
	if !ok {
		return
	}

	output, err := c.getPlanningOverviewUseCase.Execute(ctx.Request.Context(), planning.GetPlanningOverviewInput{
		UserID: userID,
		AsOf:   asOf,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPlanningOverviewResponse(output))
}
