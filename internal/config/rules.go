package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/osse101/slotwallet/internal/domain"
	"github.com/osse101/slotwallet/internal/slots"
	"github.com/osse101/slotwallet/internal/validation"
)

// settingsFile is the layout of the settings file
type settingsFile struct {
	SlotGame slots.Rules `mapstructure:"slot_game"`
}

// LoadRules reads the slot game rules from a JSON settings file. The raw file
// is checked against the embedded schema, SLOT_GAME_* environment variables
// override individual keys, and the decoded rules are validated.
func LoadRules(path string, schemas validation.SchemaValidator) (slots.Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return slots.Rules{}, fmt.Errorf(ErrMsgReadRulesFileFmt, path, err)
	}

	if err := schemas.ValidateBytes(data, validation.SchemaAppSettings); err != nil {
		return slots.Rules{}, fmt.Errorf(ErrMsgRulesSchemaFmt, domain.ErrConfigurationInvalid, path, err)
	}

	v := viper.New()
	v.SetConfigType(SettingsConfigType)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return slots.Rules{}, fmt.Errorf(ErrMsgParseRulesFileFmt, path, err)
	}

	var settings settingsFile
	if err := v.Unmarshal(&settings, viper.DecodeHook(DecimalHookFunc())); err != nil {
		return slots.Rules{}, fmt.Errorf(ErrMsgDecodeRulesFmt, domain.ErrConfigurationInvalid, SettingsSectionKey, err)
	}

	if err := settings.SlotGame.Validate(); err != nil {
		return slots.Rules{}, err
	}

	return settings.SlotGame, nil
}

var decimalType = reflect.TypeOf(decimal.Decimal{})

// DecimalHookFunc decodes numbers and numeric strings into decimal.Decimal
func DecimalHookFunc() mapstructure.DecodeHookFuncType {
	return func(_ reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if to != decimalType {
			return data, nil
		}

		switch v := data.(type) {
		case decimal.Decimal:
			return v, nil
		case string:
			d, err := decimal.NewFromString(strings.TrimSpace(v))
			if err != nil {
				return nil, fmt.Errorf(ErrMsgInvalidDecimalFmt, v, err)
			}
			return d, nil
		case json.Number:
			d, err := decimal.NewFromString(v.String())
			if err != nil {
				return nil, fmt.Errorf(ErrMsgInvalidDecimalFmt, v.String(), err)
			}
			return d, nil
		case float64:
			return decimal.NewFromFloat(v), nil
		case float32:
			return decimal.NewFromFloat32(v), nil
		case int:
			return decimal.NewFromInt(int64(v)), nil
		case int64:
			return decimal.NewFromInt(v), nil
		default:
			return nil, fmt.Errorf(ErrMsgUnsupportedDecimalFmt, data)
		}
	}
}
