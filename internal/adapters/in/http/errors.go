package http

import (
	"errors"
	"net/http"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// respondError maps application and domain errors onto HTTP status codes
// and writes the uniform error body.
func respondError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, queries.ErrInvalidCredentials):
		code = http.StatusUnauthorized
	case errors.Is(err, errs.ErrUnauthorized):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidStateTransition),
		errors.Is(err, errs.ErrObjectAlreadyExists),
		errors.Is(err, commands.ErrCannotDeleteOwnAccount):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrInvalidQuantity),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		code = http.StatusBadRequest
	}

	message := err.Error()
	if code == http.StatusInternalServerError {
		// Do not leak internals (SQL, driver errors) to clients.
		message = "internal server error"
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: message,
	})
}
