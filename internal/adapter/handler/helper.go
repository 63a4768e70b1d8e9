package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/minhtrandev/meeting-notes/errors"
	"github.com/minhtrandev/meeting-notes/internal/adapter/dto/common"
)

// getRequestID tries to read X-Request-ID from the request
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	return c.Response().Header().Get(echo.HeaderXRequestID)
}

// HandleError converts any error into the standard {"error": message} body
// with the status from the error-kind mapping. Unrecognized errors become
// a 500. Every failure path goes through here, so nothing propagates to
// the transport layer uncaught.
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	var appErr apperrors.AppError
	if !stdErrors.As(err, &appErr) {
		appErr = apperrors.ErrInternal(err)
	}

	if logger != nil {
		logger.Error("http.response.error",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.String("app_code", appErr.Code.String()),
			zap.Error(err),
		)
	}

	return c.JSON(appErr.HTTPCode, common.ErrorResponse{Error: appErr.Message})
}

// bindAndValidate binds the request into v and runs struct validation,
// returning a validation AppError on failure
func bindAndValidate(c echo.Context, v interface{}) error {
	if err := c.Bind(v); err != nil {
		return apperrors.ErrValidation("Invalid request body")
	}
	if err := c.Validate(v); err != nil {
		return apperrors.ErrValidation(err.Error())
	}
	return nil
}

// notFound is a shorthand for the literal-404 paths (bad or unknown id)
func notFound(c echo.Context, message string) error {
	return c.JSON(http.StatusNotFound, common.ErrorResponse{Error: message})
}
