package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/planner/internal/application/usecase/goal"
	"github.com/finance-tracker/planner/internal/domain/entity"
	"github.com/finance-tracker/planner/internal/integration/entrypoint/dto"
)

// GoalController handles goal endpoints.
type GoalController struct {
	getGoalProgressUseCase *goal.GetGoalProgressUseCase
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(getGoalProgressUseCase *goal.GetGoalProgressUseCase) *GoalController {
	return &GoalController{getGoalProgressUseCase: getGoalProgressUseCase}
}

// GetProgress handles GET /goals/progress requests.
func (c *GoalController) GetProgress(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	asOf, ok := parseAsOf(ctx)
	if !ok {
		return
	}

	output, err := c.getGoalProgressUseCase.Execute(ctx.Request.Context(), goal.GetGoalProgressInput{
		UserID: userID,
		Status: entity.GoalStatus(ctx.Query("status")),
		AsOf:   asOf,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalProgressListResponse(output))
}
