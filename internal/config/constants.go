package config

// Environment variable names
const (
	EnvLogLevel       = "LOG_LEVEL"
	EnvLogFormat      = "LOG_FORMAT"
	EnvLogDir         = "LOG_DIR"
	EnvEnvironment    = "ENVIRONMENT"
	EnvFarmRows       = "FARM_ROWS"
	EnvFarmCols       = "FARM_COLS"
	EnvFarmLayoutFile = "FARM_LAYOUT_FILE"
	EnvRockCount      = "ROCK_COUNT"
	EnvRandomSeed     = "RANDOM_SEED"
	EnvStartingCoins  = "STARTING_COINS"
	EnvStartingLevel  = "STARTING_LEVEL"
	EnvMetricsAddr    = "METRICS_ADDR"
)

// Defaults
const (
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "text"
	DefaultLogDir        = "logs"
	DefaultEnvironment   = "dev"
	DefaultFarmRows      = 10
	DefaultFarmCols      = 5
	DefaultRockDensity   = 5
	DefaultStartingCoins = 100
	DefaultStartingLevel = 0
	ServiceName          = "myfarm"
)

// Error messages
const (
	ErrMsgInvalidIntFmt    = "invalid %s value: %w"
	ErrMsgInvalidConfigFmt = "invalid configuration: %s"
	ErrMsgTooManyRocksFmt  = "ROCK_COUNT %d exceeds the %d plots of a %dx%d farm"
)
