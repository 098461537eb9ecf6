package options

import (
	"os"

	"github.com/spf13/afero"

	"github.com/myyachtvalue/modelsvc/internal/openai"
	"github.com/myyachtvalue/modelsvc/internal/service/cli/render"
	"github.com/myyachtvalue/modelsvc/internal/service/cli/streams"
	"github.com/myyachtvalue/modelsvc/internal/service/models"
)

// Option type is a value wrapper with a flag indicating whether its value has been modified.
type Option[T any] struct {
	Value   T
	Changed *bool
}

// RootOptions type is used to describe root command options.
type RootOptions struct {
	TTY           Option[bool]
	NoTTY         Option[bool]
	ConfigPath    string
	EnvFile       string
	DebugMode     bool
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   Option[string]
}

// CliOptions holds state shared by all commands. It is filled once during CLI setup.
type CliOptions struct {
	openAI      openai.API
	renderer    render.Renderer
	fs          afero.Fs
	in          *streams.In
	out         *streams.Out
	appConfig   *models.AppConfig
	rootOptions *RootOptions
	version     string
	useTTY      bool
}

func NewCliOptions(version string) *CliOptions {
	return &CliOptions{
		version:     version,
		fs:          afero.NewOsFs(),
		in:          streams.NewIn(os.Stdin),
		out:         streams.NewOut(os.Stdout),
		appConfig:   &models.AppConfig{},
		rootOptions: &RootOptions{},
	}
}

func (opts *CliOptions) OpenAI() openai.API {
	return opts.openAI
}

func (opts *CliOptions) SetOpenAI(openAI openai.API) {
	opts.openAI = openAI
}

func (opts *CliOptions) Renderer() render.Renderer {
	return opts.renderer
}

func (opts *CliOptions) SetRenderer(renderer render.Renderer) {
	opts.renderer = renderer
}

func (opts *CliOptions) Fs() afero.Fs {
	return opts.fs
}

func (opts *CliOptions) SetFs(fs afero.Fs) {
	opts.fs = fs
}

func (opts *CliOptions) In() *streams.In {
	return opts.in
}

func (opts *CliOptions) SetIn(in *streams.In) {
	opts.in = in
}

func (opts *CliOptions) Out() *streams.Out {
	return opts.out
}

func (opts *CliOptions) SetOut(out *streams.Out) {
	opts.out = out
}

func (opts *CliOptions) AppConfig() *models.AppConfig {
	return opts.appConfig
}

func (opts *CliOptions) SetAppConfig(appConfig *models.AppConfig) {
	opts.appConfig = appConfig
}

func (opts *CliOptions) RootOpts() *RootOptions {
	return opts.rootOptions
}

func (opts *CliOptions) UseTTY() bool {
	return opts.useTTY
}

func (opts *CliOptions) SetUseTTY(useTTY bool) {
	opts.useTTY = useTTY
}

func (opts *CliOptions) Version() string {
	return opts.version
}

func (opts *CliOptions) DebugMode() bool {
	return opts.RootOpts().DebugMode
}
