// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainerror "github.com/shop-ledger/backend/internal/domain/error"
	"github.com/shop-ledger/backend/internal/integration/entrypoint/dto"
	"github.com/shop-ledger/backend/internal/integration/entrypoint/middleware"
)

// statusForKind maps a domain error kind to its HTTP status.
func statusForKind(kind domainerror.Kind) int {
	switch kind {
	case domainerror.KindValidation:
		return http.StatusBadRequest
	case domainerror.KindNotFound:
		return http.StatusNotFound
	case domainerror.KindConflict:
		return http.StatusConflict
	case domainerror.KindUnauthorized:
		return http.StatusUnauthorized
	case domainerror.KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as a JSON error body. Store failures are logged and
// answered with a generic message.
func respondError(ctx *gin.Context, err error) {
	kind := domainerror.KindOf(err)

	var coded domainerror.Coded
	if kind == domainerror.KindStore || !errors.As(err, &coded) {
		middleware.GetLoggerFromContext(ctx).Error("Request failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(statusForKind(kind), dto.ErrorResponse{
		Error: coded.ErrorMessage(),
		Code:  coded.ErrorCode(),
	})
}

// respondBindError answers a request whose body or query failed binding.
func respondBindError(ctx *gin.Context, code string, err error) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:   "Invalid request",
		Code:    code,
		Details: err.Error(),
	})
}

// parseIDParam reads a positive integer path parameter. On failure it writes a
// 400 response with message and code and returns false.
func parseIDParam(ctx *gin.Context, name, message, code string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: message,
			Code:  code,
		})
		return 0, false
	}
	return id, true
}
