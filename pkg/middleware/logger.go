package middleware

import (
	"signal-relay/pkg/common"
	"signal-relay/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// NewRequestLoggerMiddleware stores a request scoped logger in the request
// context. It must run after middleware.RequestID so the id is already set on
// the response.
func NewRequestLoggerMiddleware(log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			requestID := c.Response().Header().Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = req.Header.Get(echo.HeaderXRequestID)
			}

			reqLog := log.With(
				logger.StringField(common.KEY_LOG_REQUEST_ID, requestID),
				logger.StringField("method", req.Method),
				logger.StringField("path", req.URL.Path),
			)
			c.SetRequest(req.WithContext(logger.NewContext(req.Context(), reqLog)))

			return next(c)
		}
	}
}

// Register installs the middleware chain shared by every route.
func Register(e *echo.Echo, log *logger.Logger) {
	e.Use(
		middleware.RequestID(),
		middleware.Recover(),
		NewRequestLoggerMiddleware(log),
	)
}
