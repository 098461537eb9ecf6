package serve

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func setupMiddleware(e *echo.Echo) {
	e.Use(
		middleware.Recover(),
		middleware.RequestIDWithConfig(middleware.RequestIDConfig{
			Generator: uuid.NewString,
		}),
		middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
			LogMethod:    true,
			LogURI:       true,
			LogStatus:    true,
			LogLatency:   true,
			LogRequestID: true,
			LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
				slog.Debug("request handled",
					slog.String("method", v.Method),
					slog.String("uri", v.URI),
					slog.Int("status", v.Status),
					slog.Duration("latency", v.Latency),
					slog.String("request-id", v.RequestID),
				)

				return nil
			},
		}),
	)
}

func setupRoutes(opts handlerOptions, e *echo.Echo) {
	e.GET("/health", toEchoHandler(opts, handleHealth))
}

// handleHealth handler for endpoint 'health'. It reports the model the client was built for.
func handleHealth(opts handlerOptions, c echo.Context) error {
	return sendResponse(
		c,
		http.StatusOK,
		healthResponse{
			Model: opts.openAI.GetModel(),
		},
	)
}
