package models

import (
	"slices"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// AppConfig type is used to describe application config.
type AppConfig struct {
	LogFormat  string     `env:"LOG_FORMAT" json:"log_format" yaml:"log_format"`
	HTTPConfig HTTPConfig `json:"http"       yaml:"http"`
	OpenAI     OpenAI     `json:"open_ai"    yaml:"open_ai"`
}

// Load reads app config from file (if path is set) and environment variables,
// then fills defaults and validates the result.
func (m *AppConfig) Load(fs afero.Fs, path string) error {
	// model set to empty string in file or env is kept as is
	m.OpenAI.PresetDefaults()

	if path != "" {
		err := DecodeFile(fs, path, m)
		if err != nil {
			return errors.WithMessagef(err, "failed to parse app config file %q", path)
		}
	}

	err := cleanenv.ReadEnv(m)
	if err != nil {
		return errors.Errorf("failed to read app config from environment: %v", err)
	}

	err = m.PostProcess()
	if err != nil {
		return errors.WithMessage(err, "failed to post process app config")
	}

	return nil
}

func (m *AppConfig) PostProcess() error {
	m.FillDefaults()

	errs := m.Validate()
	if len(errs) != 0 {
		return errors.Errorf("failed to validate app config:\n%v", parseErrsToString(errs))
	}

	return nil
}

func (m *AppConfig) FillDefaults() {
	if m.LogFormat == "" {
		m.LogFormat = "text"
	}

	m.HTTPConfig.FillDefaults()
	m.OpenAI.FillDefaults()
}

func (m *AppConfig) Validate() []error {
	var errs []error

	if !slices.Contains([]string{"text", "json"}, m.LogFormat) {
		errs = append(errs, errors.Errorf("unknown log format: %s", m.LogFormat))
	}

	httpParamsErrs := m.HTTPConfig.Validate()
	if len(httpParamsErrs) != 0 {
		errs = append(errs, errors.New("failed to validate HTTP configuration:"))
		errs = append(errs, httpParamsErrs...)
	}

	return errs
}
