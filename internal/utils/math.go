package utils

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/osse101/slotwallet/internal/domain"
)

// CentsPlaces is the number of fractional digits kept for every monetary amount
const CentsPlaces = 2

var (
	// MaxCentsConvertible is the largest amount whose cent count fits in an int64
	MaxCentsConvertible = decimal.New(math.MaxInt64, -CentsPlaces)
	// MinCentsConvertible is the smallest amount whose cent count fits in an int64
	MinCentsConvertible = decimal.New(math.MinInt64, -CentsPlaces)
)

// RoundCents rounds an amount to 2 decimal places, half away from zero.
// 1.005 becomes 1.01 and -1.005 becomes -1.01.
func RoundCents(value decimal.Decimal) decimal.Decimal {
	return value.Round(CentsPlaces)
}

// ToCents converts an amount to an integer number of cents, rounding half away from zero.
func ToCents(value decimal.Decimal) (int64, error) {
	if value.GreaterThan(MaxCentsConvertible) || value.LessThan(MinCentsConvertible) {
		return 0, fmt.Errorf("%w: value is too large to be converted to cents, value=%s", domain.ErrOutOfRange, value)
	}
	return value.Shift(CentsPlaces).Round(0).IntPart(), nil
}

// FromCents converts an integer number of cents back to a decimal amount
func FromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -CentsPlaces)
}

// HasAtMostCents reports whether value carries no digits below the cent
func HasAtMostCents(value decimal.Decimal) bool {
	return value.Equal(RoundCents(value))
}

// FormatMoney renders an amount with exactly two fractional digits
func FormatMoney(value decimal.Decimal) string {
	return RoundCents(value).StringFixed(CentsPlaces)
}

// FormatBound renders an amount rounded to cents without trailing zeros (10, 1.5, 2.25)
func FormatBound(value decimal.Decimal) string {
	return RoundCents(value).String()
}
