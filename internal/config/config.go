package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/osse101/slotwallet/internal/domain"
	"github.com/osse101/slotwallet/internal/logger"
)

// Config holds the process configuration
type Config struct {
	LogLevel    string `validate:"required,oneof=debug info warn warning error DEBUG INFO WARN WARNING ERROR"`
	LogFormat   string `validate:"required,oneof=json text"`
	Environment string `validate:"required"`
	ServiceName string `validate:"required"`
	Version     string `validate:"required"`
	RulesFile   string `validate:"required"`
	DefaultGame string `validate:"omitempty,alphanum"`
	MetricsAddr string `validate:"omitempty,hostname_port"`

	// RNGSeed makes game rounds reproducible when set
	RNGSeed *uint64
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:   getEnv(EnvLogFormat, DefaultLogFormat),
		Environment: getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName: getEnv(EnvServiceName, logger.DefaultServiceName),
		Version:     getEnv(EnvVersion, logger.DefaultVersion),
		RulesFile:   getEnv(EnvRulesFile, DefaultRulesFile),
		DefaultGame: getEnv(EnvDefaultGame, ""),
		MetricsAddr: getEnv(EnvMetricsAddr, ""),
	}

	if seedStr := getEnv(EnvRNGSeed, ""); seedStr != "" {
		seed, err := strconv.ParseUint(seedStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgInvalidRNGSeedFmt, domain.ErrConfigurationInvalid, EnvRNGSeed, seedStr, err)
		}
		cfg.RNGSeed = &seed
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoggerConfig maps the process configuration onto logger settings
func (c *Config) LoggerConfig() logger.Config {
	return logger.NewConfig(
		c.LogLevel,
		c.LogFormat,
		c.ServiceName,
		c.Version,
		c.Environment,
		c.Environment == logger.EnvironmentDev && c.LogLevel == logger.LogLevelDebug,
	)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
