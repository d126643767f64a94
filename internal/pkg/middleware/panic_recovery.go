package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"

	"github.com/gasline/gasline/internal/pkg/errs"
	"github.com/gasline/gasline/internal/pkg/logger"
	"github.com/gasline/gasline/internal/utils"
)

// PanicRecoveryMiddleware recovers from handler panics, logs the stack trace
// and renders the last-resort error envelope.
func PanicRecoveryMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					err, ok := r.(error)
					if !ok {
						err = fmt.Errorf("%v", r)
					}

					zapLogger.Error("panic recovered",
						logger.String("path", c.Request().URL.Path),
						logger.String("method", c.Request().Method),
						logger.Err(err),
						logger.String("stack", string(debug.Stack())),
					)

					if !c.Response().Committed {
						_ = c.JSON(http.StatusInternalServerError, utils.ErrorBody{
							AppException: string(errs.KindInternal),
							ErrorMessage: "internal server error",
						})
					}
				}
			}()

			return next(c)
		}
	}
}
