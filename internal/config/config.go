package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Version is stamped at build time with -ldflags "-X .../config.Version=..."
var Version = "dev"

// Config holds the application configuration
type Config struct {
	LogLevel    string `validate:"oneof=debug info warn warning error"`
	LogFormat   string `validate:"oneof=text json"`
	LogDir      string `validate:"required"`
	Environment string `validate:"required"`
	ServiceName string
	Version     string

	FarmRows       int    `validate:"min=1,max=26"`
	FarmCols       int    `validate:"min=1,max=26"`
	FarmLayoutFile string // optional YAML layout, overrides rows, cols and rocks
	RockCount      int    `validate:"min=0"`
	RandomSeed     uint64 // 0 seeds from the clock

	StartingCoins int `validate:"min=0"`
	StartingLevel int `validate:"min=0"`

	MetricsAddr string `validate:"omitempty,hostname_port"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:       getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:      getEnv(EnvLogFormat, DefaultLogFormat),
		LogDir:         getEnv(EnvLogDir, DefaultLogDir),
		Environment:    getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName:    ServiceName,
		Version:        Version,
		FarmLayoutFile: getEnv(EnvFarmLayoutFile, ""),
		MetricsAddr:    getEnv(EnvMetricsAddr, ""),
	}

	ints := []struct {
		key string
		def int
		dst *int
	}{
		{EnvFarmRows, DefaultFarmRows, &cfg.FarmRows},
		{EnvFarmCols, DefaultFarmCols, &cfg.FarmCols},
		{EnvStartingCoins, DefaultStartingCoins, &cfg.StartingCoins},
		{EnvStartingLevel, DefaultStartingLevel, &cfg.StartingLevel},
	}
	for _, f := range ints {
		v, err := getEnvAsInt(f.key, f.def)
		if err != nil {
			return nil, err
		}
		*f.dst = v
	}

	// Without a layout file the field gets one rock per DefaultRockDensity plots
	defaultRocks := 0
	if cfg.FarmLayoutFile == "" {
		defaultRocks = cfg.FarmRows * cfg.FarmCols / DefaultRockDensity
	}
	rocks, err := getEnvAsInt(EnvRockCount, defaultRocks)
	if err != nil {
		return nil, err
	}
	cfg.RockCount = rocks

	seedStr := getEnv(EnvRandomSeed, "0")
	seed, err := strconv.ParseUint(seedStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgInvalidIntFmt, EnvRandomSeed, err)
	}
	cfg.RandomSeed = seed

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable. Unset or empty means the default.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgInvalidIntFmt, key, err)
	}
	return n, nil
}

// IsDev reports whether the app runs in a development environment
func (c *Config) IsDev() bool {
	return c.Environment == "dev" || c.Environment == "development"
}
