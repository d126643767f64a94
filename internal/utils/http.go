package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gasline/gasline/internal/pkg/errs"
	"github.com/gasline/gasline/internal/pkg/logger"
)

// ErrorBody is the uniform error envelope rendered at the HTTP boundary.
type ErrorBody struct {
	AppException string `json:"app_exception"`
	ErrorMessage string `json:"errorMessage"`
}

// WriteError translates a typed core error to its HTTP rendering. This is
// the single place where the error taxonomy meets the wire.
func WriteError(c echo.Context, err error) error {
	if appErr, ok := errs.As(err); ok {
		if appErr.HTTPStatus() >= http.StatusInternalServerError {
			logger.Error("request failed",
				logger.String("path", c.Path()),
				logger.Err(err),
			)
		}
		return c.JSON(appErr.HTTPStatus(), ErrorBody{
			AppException: string(appErr.Kind),
			ErrorMessage: appErr.Message,
		})
	}

	logger.Error("unclassified request failure",
		logger.String("path", c.Path()),
		logger.Err(err),
	)
	return c.JSON(http.StatusInternalServerError, ErrorBody{
		AppException: string(errs.KindInternal),
		ErrorMessage: "internal server error",
	})
}

// BadRequestResponse renders a BadRequest without going through the core.
func BadRequestResponse(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, ErrorBody{
		AppException: string(errs.KindBadRequest),
		ErrorMessage: message,
	})
}

// ValidationResponse renders a ValidationException for malformed payloads.
func ValidationResponse(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, ErrorBody{
		AppException: string(errs.KindValidation),
		ErrorMessage: message,
	})
}

// UnauthorizedResponse renders a 401 with the uniform envelope.
func UnauthorizedResponse(c echo.Context, message string) error {
	if message == "" {
		message = "unauthorized"
	}
	return c.JSON(http.StatusUnauthorized, ErrorBody{
		AppException: string(errs.KindUnauthorized),
		ErrorMessage: message,
	})
}

// ForbiddenResponse renders a 403 with the uniform envelope.
func ForbiddenResponse(c echo.Context, message string) error {
	if message == "" {
		message = "forbidden"
	}
	return c.JSON(http.StatusForbidden, ErrorBody{
		AppException: string(errs.KindForbidden),
		ErrorMessage: message,
	})
}

// TooManyRequestsResponse renders a 429 for rate-limited callers.
func TooManyRequestsResponse(c echo.Context, message string) error {
	if message == "" {
		message = "rate limit exceeded"
	}
	return c.JSON(http.StatusTooManyRequests, ErrorBody{
		AppException: string(errs.KindOperation),
		ErrorMessage: message,
	})
}
