package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/victoreduardo21/drb-operacao/internal/pkg/logger"
	"github.com/victoreduardo21/drb-operacao/internal/utils"
)

// PanicRecoveryMiddleware turns a handler panic into a logged 500
func PanicRecoveryMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	if zapLogger == nil {
		zapLogger = logger.GetGlobalLogger()
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if r == http.ErrAbortHandler {
					panic(r)
				}

				requestID := c.Response().Header().Get(echo.HeaderXRequestID)
				txn := newrelic.FromContext(c.Request().Context())
				if txn != nil {
					txn.NoticeError(newrelic.Error{
						Message: fmt.Sprintf("Panic recovered: %v", r),
						Class:   "PanicError",
					})
				}

				zapLogger.WithNewRelicContext(txn).Error("Panic recovered during request processing",
					logger.Any("panic_value", r),
					logger.String("panic_type", fmt.Sprintf("%T", r)),
					logger.String("stack_trace", string(debug.Stack())),
					logger.String("method", c.Request().Method),
					logger.String("path", c.Request().URL.Path),
					logger.String("request_id", requestID),
				)

				if !c.Response().Committed {
					err = utils.InternalServerErrorResponse(c, "An unexpected error occurred while processing your request")
				}
			}()

			return next(c)
		}
	}
}
