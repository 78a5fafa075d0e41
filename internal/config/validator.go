package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/slotwallet/internal/domain"
)

var validate = validator.New()

// envNames maps Config fields to the environment variables that set them
var envNames = map[string]string{
	"LogLevel":    EnvLogLevel,
	"LogFormat":   EnvLogFormat,
	"Environment": EnvEnvironment,
	"ServiceName": EnvServiceName,
	"Version":     EnvVersion,
	"RulesFile":   EnvRulesFile,
	"DefaultGame": EnvDefaultGame,
	"MetricsAddr": EnvMetricsAddr,
}

// Validate checks the configuration struct tags and reports every violation
// by environment variable name
func Validate(cfg *Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf(ErrMsgInvalidFieldFmt, domain.ErrConfigurationInvalid, err.Error())
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		name := envNames[e.Field()]
		if name == "" {
			name = e.Field()
		}

		switch e.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s must be set", name))
		case "oneof":
			messages = append(messages, fmt.Sprintf("%s must be one of [%s], got %q", name, e.Param(), e.Value()))
		case "hostname_port":
			messages = append(messages, fmt.Sprintf("%s must be a host:port address, got %q", name, e.Value()))
		default:
			messages = append(messages, fmt.Sprintf("%s is invalid, got %q", name, e.Value()))
		}
	}
	sort.Strings(messages)

	return fmt.Errorf(ErrMsgInvalidFieldFmt, domain.ErrConfigurationInvalid, strings.Join(messages, "; "))
}
