package config

// Environment variable names
const (
	EnvLogLevel    = "LOG_LEVEL"
	EnvLogFormat   = "LOG_FORMAT"
	EnvEnvironment = "ENVIRONMENT"
	EnvServiceName = "SERVICE_NAME"
	EnvVersion     = "VERSION"
	EnvRulesFile   = "RULES_FILE"
	EnvDefaultGame = "DEFAULT_GAME"
	EnvMetricsAddr = "METRICS_ADDR"
	EnvRNGSeed     = "RNG_SEED"
)

// Defaults
const (
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultEnvironment = "dev"
	DefaultRulesFile   = "appsettings.json"
)

// Settings file layout
const (
	SettingsConfigType = "json"
	SettingsSectionKey = "slot_game"
)

// Error message formats
const (
	ErrMsgInvalidRNGSeedFmt     = "%w: invalid %s value %q: %v"
	ErrMsgInvalidFieldFmt       = "%w: %s"
	ErrMsgReadRulesFileFmt      = "failed to read rules file %s: %w"
	ErrMsgRulesSchemaFmt        = "%w: rules file %s: %v"
	ErrMsgParseRulesFileFmt     = "failed to parse rules file %s: %w"
	ErrMsgDecodeRulesFmt        = "%w: failed to decode %s section: %v"
	ErrMsgInvalidDecimalFmt     = "invalid decimal %q: %w"
	ErrMsgUnsupportedDecimalFmt = "cannot decode %T into decimal"
)
