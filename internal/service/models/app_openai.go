package models

const (
	DefaultOpenAIBaseURL = "https://api.openai.com/v1"
	DefaultOpenAIModel   = "gpt-4.1-mini"
)

// OpenAI type used to describe OpenAI config.
// API key and base URL are passed to the client as is, without any validation.
type OpenAI struct {
	APIKey  string `env:"OPENAI_API_KEY"  json:"api_key"  yaml:"api_key"`
	BaseURL string `env:"OPENAI_BASE_URL" json:"base_url" yaml:"base_url"`
	Model   string `env:"OPENAI_MODEL"    json:"model"    yaml:"model"`
}

// PresetDefaults sets defaults that may be overridden with empty values by config sources.
func (c *OpenAI) PresetDefaults() {
	if c.Model == "" {
		c.Model = DefaultOpenAIModel
	}
}

func (c *OpenAI) FillDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultOpenAIBaseURL
	}
}
