package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/finance-tracker/planner/internal/domain/error"
	"github.com/finance-tracker/planner/internal/integration/entrypoint/dto"
	"github.com/finance-tracker/planner/internal/integration/entrypoint/middleware"
)

const (
	dateLayout = "2006-01-02"

	// ErrCodeInvalidAsOf is returned when the as_of query parameter is malformed.
	ErrCodeInvalidAsOf = "API-010001"
	// ErrCodeInvalidBody is returned when a request body cannot be decoded.
	ErrCodeInvalidBody = "API-010002"
)

// requireUser reads the authenticated user or writes a 401 response.
func requireUser(ctx *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return uuid.Nil, false
	}
	return userID, true
}

// parseAsOf reads the optional as_of query parameter. Without it the
// server clock is used.
func parseAsOf(ctx *gin.Context) (time.Time, bool) {
	raw := ctx.Query("as_of")
	if raw == "" {
		return time.Now().UTC(), true
	}
	asOf, err := time.Parse(dateLayout, raw)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid as_of format, expected YYYY-MM-DD",
			Code:  ErrCodeInvalidAsOf,
		})
		return time.Time{}, false
	}
	return asOf, true
}

// codedError is the code and message of a typed domain error.
type codedError struct {
	code    string
	message string
}

func asCodedError(err error) (codedError, bool) {
	var (
		dashErr *domainerror.DashboardError
		prfErr  *domainerror.ProfileError
		anlErr  *domainerror.AnalyticsError
		prjErr  *domainerror.ProjectionError
		golErr  *domainerror.GoalError
		plnErr  *domainerror.PlanningError
	)
	switch {
	case errors.As(err, &dashErr):
		return codedError{string(dashErr.Code), dashErr.Message}, true
	case errors.As(err, &prjErr):
		return codedError{string(prjErr.Code), prjErr.Message}, true
	case errors.As(err, &golErr):
		return codedError{string(golErr.Code), golErr.Message}, true
	case errors.As(err, &plnErr):
		return codedError{string(plnErr.Code), plnErr.Message}, true
	case errors.As(err, &anlErr):
		return codedError{string(anlErr.Code), anlErr.Message}, true
	case errors.As(err, &prfErr):
		return codedError{string(prfErr.Code), prfErr.Message}, true
	}
	return codedError{}, false
}

// statusForCode maps a domain error code to an HTTP status. Codes in the
// 99 category are internal failures.
func statusForCode(code string) int {
	switch {
	case code == string(domainerror.ErrCodeGoalProfileUnavailable):
		return http.StatusServiceUnavailable
	case strings.Contains(code, "-99"):
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// handleError writes the response for a use case error.
func handleError(ctx *gin.Context, err error) {
	if errors.Is(err, domainerror.ErrMissingUserID) {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	coded, ok := asCodedError(err)
	if !ok {
		slog.ErrorContext(ctx.Request.Context(), "Unhandled error", "error", err, "path", ctx.FullPath())
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An unexpected error occurred",
		})
		return
	}

	status := statusForCode(coded.code)
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(ctx.Request.Context(), "Request failed",
			"code", coded.code,
			"error", err,
			"path", ctx.FullPath(),
		)
		ctx.JSON(status, dto.ErrorResponse{Error: coded.message, Code: coded.code})
		return
	}

	ctx.JSON(status, dto.ErrorResponse{Error: err.Error(), Code: coded.code})
}
