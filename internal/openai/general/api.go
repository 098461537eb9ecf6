package general

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sashabaranov/go-openai"

	openAI "github.com/myyachtvalue/modelsvc/internal/openai"
	"github.com/myyachtvalue/modelsvc/internal/service/models"
)

// Verify interface compliance in compile time.
var _ openAI.API = (*OpenAIAPI)(nil)

type OpenAIAPI struct {
	model   string
	baseURL string
	client  *openai.Client
}

// NewOpenAIAPI creates OpenAIAPI object. Client is created eagerly and no request is sent.
func NewOpenAIAPI(cfg models.OpenAI) *OpenAIAPI {
	config := openai.DefaultConfig(cfg.APIKey)

	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	return &OpenAIAPI{
		model:   cfg.Model,
		baseURL: config.BaseURL,
		client:  openai.NewClientWithConfig(config),
	}
}

func (a *OpenAIAPI) GetBaseURL() string {
	return a.baseURL
}

func (a *OpenAIAPI) GetModel() string {
	return a.model
}

func (a *OpenAIAPI) Models(ctx context.Context) ([]openai.Model, error) {
	listModels, err := a.client.ListModels(ctx)
	if err != nil {
		return nil, errors.Errorf("failed to get openai models: %v", err)
	}

	return listModels.Models, nil
}
