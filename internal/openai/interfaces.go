package openai

import (
	"context"

	"github.com/sashabaranov/go-openai"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=API --output=mock --outpkg=mock
type API interface {
	// GetBaseURL should return base URL.
	GetBaseURL() string
	// GetModel should return name of the configured model.
	GetModel() string
	// Models should return available models.
	Models(ctx context.Context) ([]openai.Model, error)
}
