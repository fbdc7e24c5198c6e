package fiber

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v3"

	"github.com/jp903/scout/core"
)

const internalErrorMessage = "internal server error"

// mapErrorToStatus maps error categories to HTTP status codes
func mapErrorToStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, core.ErrUnauthorized):
		return http.StatusUnauthorized
	case core.IsClientError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as {error}. Server faults are logged and hidden behind a
// generic message.
func (h *handlers) fail(c fiber.Ctx, err error) error {
	status := mapErrorToStatus(err)

	msg := err.Error()
	if status == http.StatusInternalServerError {
		h.log.Error(c.Context(), "request failed", "method", c.Method(), "path", c.Path(), "error", err)
		msg = internalErrorMessage
	} else {
		h.log.Debug(c.Context(), "request rejected", "path", c.Path(), "status", status, "error", err)
	}

	return c.Status(status).JSON(core.ErrorResponse{Error: msg})
}
