package config

// Environment variable names
const (
	EnvLogLevel       = "LOG_LEVEL"
	EnvLogFormat      = "LOG_FORMAT"
	EnvEnvironment    = "ENVIRONMENT"
	EnvVersion        = "VERSION"
	EnvEnumsPath      = "ENUMS_PATH"
	EnvLabelCacheSize = "LABEL_CACHE_SIZE"
)

// Default values
const (
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"
	DefaultEnvironment    = "dev"
	DefaultVersion        = "dev"
	DefaultLabelCacheSize = 256
	ServiceName           = "pogoutil"
)
