package slots

import (
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockProvider implements rng.Provider
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) NextProbability() float64 {
	args := m.Called()
	return args.Get(0).(float64)
}

func (m *MockProvider) NextInRange(minInclusive, maxInclusive decimal.Decimal) (decimal.Decimal, error) {
	args := m.Called(minInclusive, maxInclusive)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// decEq matches a decimal argument by numeric value
func decEq(s string) interface{} {
	want := decimal.RequireFromString(s)
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(want) })
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func validRules() Rules {
	return Rules{
		MinStake:              d("1"),
		MaxStake:              d("10"),
		LoseProbability:       0.5,
		SmallWinProbability:   0.4,
		SmallWinMinMultiplier: d("0.1"),
		SmallWinMaxMultiplier: d("2"),
		BigWinMinMultiplier:   d("2"),
		BigWinMaxMultiplier:   d("10"),
	}
}
