package slots

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/osse101/slotwallet/internal/domain"
)

// Rules configures the stake bounds and payout bands of the slot game.
// Rules are immutable once validated.
type Rules struct {
	MinStake decimal.Decimal `mapstructure:"min_stake" json:"min_stake"`
	MaxStake decimal.Decimal `mapstructure:"max_stake" json:"max_stake"`

	LoseProbability     float64 `mapstructure:"lose_probability" json:"lose_probability"`
	SmallWinProbability float64 `mapstructure:"small_win_probability" json:"small_win_probability"`

	SmallWinMinMultiplier decimal.Decimal `mapstructure:"small_win_min_multiplier" json:"small_win_min_multiplier"`
	SmallWinMaxMultiplier decimal.Decimal `mapstructure:"small_win_max_multiplier" json:"small_win_max_multiplier"`

	BigWinMinMultiplier decimal.Decimal `mapstructure:"big_win_min_multiplier" json:"big_win_min_multiplier"`
	BigWinMaxMultiplier decimal.Decimal `mapstructure:"big_win_max_multiplier" json:"big_win_max_multiplier"`
}

// Validate returns the first rule violation, wrapping domain.ErrConfigurationInvalid
func (r Rules) Validate() error {
	checks := []func() error{
		func() error { return requirePositive(FieldMinStake, r.MinStake) },
		func() error { return requirePositive(FieldMaxStake, r.MaxStake) },
		func() error { return requireMinMax(FieldMinStake, r.MinStake, FieldMaxStake, r.MaxStake) },
		func() error { return requireProbability(FieldLoseProbability, r.LoseProbability) },
		func() error { return requireProbability(FieldSmallWinProbability, r.SmallWinProbability) },
		r.requireProbabilitySum,
		func() error { return requirePositive(FieldSmallWinMinMultiplier, r.SmallWinMinMultiplier) },
		func() error { return requirePositive(FieldSmallWinMaxMultiplier, r.SmallWinMaxMultiplier) },
		func() error {
			return requireMinMax(FieldSmallWinMinMultiplier, r.SmallWinMinMultiplier, FieldSmallWinMaxMultiplier, r.SmallWinMaxMultiplier)
		},
		func() error { return requirePositive(FieldBigWinMinMultiplier, r.BigWinMinMultiplier) },
		func() error { return requirePositive(FieldBigWinMaxMultiplier, r.BigWinMaxMultiplier) },
		func() error {
			return requireMinMax(FieldBigWinMinMultiplier, r.BigWinMinMultiplier, FieldBigWinMaxMultiplier, r.BigWinMaxMultiplier)
		},
	}

	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

// AllowsStake reports whether stake lies within [MinStake, MaxStake]
func (r Rules) AllowsStake(stake decimal.Decimal) bool {
	return stake.GreaterThanOrEqual(r.MinStake) && stake.LessThanOrEqual(r.MaxStake)
}

func (r Rules) requireProbabilitySum() error {
	if r.LoseProbability+r.SmallWinProbability > 1.0 {
		return fmt.Errorf(ErrMsgProbabilitySumFmt, domain.ErrConfigurationInvalid, r.LoseProbability, r.SmallWinProbability)
	}
	return nil
}

func requirePositive(name string, value decimal.Decimal) error {
	if !value.IsPositive() {
		return fmt.Errorf(ErrMsgMustBePositiveFmt, domain.ErrConfigurationInvalid, name, value)
	}
	return nil
}

func requireMinMax(minName string, minValue decimal.Decimal, maxName string, maxValue decimal.Decimal) error {
	if minValue.GreaterThan(maxValue) {
		return fmt.Errorf(ErrMsgMinAboveMaxFmt, domain.ErrConfigurationInvalid, minName, maxName, minName, minValue, maxName, maxValue)
	}
	return nil
}

func requireProbability(name string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf(ErrMsgProbabilityNotANumFmt, domain.ErrConfigurationInvalid, name, value)
	}
	if value < 0.0 || value > 1.0 {
		return fmt.Errorf(ErrMsgProbabilityRangeFmt, domain.ErrConfigurationInvalid, name, value)
	}
	return nil
}
