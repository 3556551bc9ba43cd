package http

import (
	"net/http"
	"strconv"

	"momentum-studio/internal/studio/backend"
	"momentum-studio/internal/studio/dto"
	"momentum-studio/pkg/logger"

	"github.com/labstack/echo/v4"
)

// parseID validates a numeric path parameter. Invalid identifiers must be
// rejected here; the gateway never forwards a malformed ID upstream.
func parseID(c echo.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// writeUpstreamError maps a backend failure onto the uniform envelope:
// upstream HTTP errors keep their status code, everything else becomes a
// 500 with transport details.
func writeUpstreamError(c echo.Context, log *logger.Logger, action string, err error) error {
	if statusErr, ok := backend.AsStatusError(err); ok {
		return c.JSON(statusErr.Code, dto.ErrorResponse{Error: statusErr.Message})
	}
	log.Error("Failed to process "+action, logger.ErrorField(err))
	return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error:   "Failed to process " + action,
		Details: err.Error(),
	})
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: message})
}
