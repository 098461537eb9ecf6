package serve

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/myyachtvalue/modelsvc/internal/openai"
)

// handlerOptions is shared read-only by all handlers for the server lifetime.
type handlerOptions struct {
	openAI openai.API
}

type httpHandler func(handlerOptions, echo.Context) error

func toEchoHandler(
	opts handlerOptions,
	handler httpHandler,
) func(echo.Context) error {
	return func(c echo.Context) error {
		return handler(opts, c)
	}
}

// healthResponse type used to describe response of health endpoint.
type healthResponse struct {
	Model string `json:"model"`
}

// sendResponse function sets headers, status code and JSON body for response and send it to client.
func sendResponse(c echo.Context, statusCode int, response any) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	err := c.JSON(statusCode, response)
	if err != nil {
		return errors.Errorf("failed to send response: %v", err)
	}

	return nil
}
