package commands

import "time"

const (
	ConfigPathFlag      = "config"
	ConfigPathShortFlag = "c"
	ConfigPathUsage     = "Location of config file (.yaml, .yml or .json)"

	EnvFileFlag      = "env-file"
	EnvFileShortFlag = "e"
	EnvFileUsage     = "Location of dotenv file, \".env\" is loaded if present"

	TTYFlag      = "tty"
	TTYShortFlag = "t"
	TTYUsage     = "Activate TTY mode"

	NoTTYFlag      = "no-tty"
	NoTTYShortFlag = "T"
	NoTTYUsage     = "Deactivate TTY mode"

	DebugModeFlag      = "debug"
	DebugModeShortFlag = "d"
	DebugModeUsage     = "Enable debug mode"

	OpenAIAPIKeyFlag      = "api-key"
	OpenAIAPIKeyShortFlag = "k"
	OpenAIAPIKeyUsage     = "Open AI API key"

	OpenAIBaseURLFlag      = "base-url"
	OpenAIBaseURLShortFlag = "u"
	OpenAIBaseURLUsage     = "Open AI base URL"

	OpenAIModelFlag      = "model"
	OpenAIModelShortFlag = "m"
	OpenAIModelUsage     = "Open AI model"

	HTTPListenAddressFlag      = "listen-address"
	HTTPListenAddressShortFlag = "a"
	HTTPListenAddressUsage     = "HTTP listen address"

	HTTPReadTimeoutFlag      = "read-timeout"
	HTTPReadTimeoutShortFlag = "r"
	HTTPReadTimeoutUsage     = "HTTP read timeout"

	HTTPWriteTimeoutFlag      = "write-timeout"
	HTTPWriteTimeoutShortFlag = "w"
	HTTPWriteTimeoutUsage     = "HTTP write timeout"

	HTTPIdleTimeoutFlag      = "idle-timeout"
	HTTPIdleTimeoutShortFlag = "i"
	HTTPIdleTimeoutUsage     = "HTTP idle timeout"

	CheckTimeoutFlag         = "timeout"
	CheckTimeoutShortFlag    = "s"
	CheckTimeoutDefaultValue = 10 * time.Second
	CheckTimeoutUsage        = "Timeout of the request to Open AI API"
)
