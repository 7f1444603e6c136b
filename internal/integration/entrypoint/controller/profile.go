package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/planner/internal/application/usecase/profile"
	"github.com/finance-tracker/planner/internal/integration/entrypoint/dto"
)

// ProfileController handles financial profile endpoints.
type ProfileController struct {
	getFinancialProfileUseCase *profile.GetFinancialProfileUseCase
	getDebtOverviewUseCase     *profile.GetDebtOverviewUseCase
}

// NewProfileController creates a new profile controller instance.
func NewProfileController(
	getFinancialProfileUseCase *profile.GetFinancialProfileUseCase,
	getDebtOverviewUseCase *profile.GetDebtOverviewUseCase,
) *ProfileController {
	return &ProfileController{
		getFinancialProfileUseCase: getFinancialProfileUseCase,
		getDebtOverviewUseCase:     getDebtOverviewUseCase,
	}
}

// GetProfile handles GET /profile requests.
func (c *ProfileController) GetProfile(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.getFinancialProfileUseCase.Execute(ctx.Request.Context(), profile.GetFinancialProfileInput{
		UserID: userID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProfileResponse(output.Profile))
}

// GetDebts handles GET /profile/debts requests.
func (c *ProfileController) GetDebts(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.getDebtOverviewUseCase.Execute(ctx.Request.Context(), profile.GetDebtOverviewInput{
		UserID: userID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDebtOverviewResponse(output))
}
