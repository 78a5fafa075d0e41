package wallet

import (
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/slotwallet/internal/domain"
	"github.com/osse101/slotwallet/internal/game"
)

// MockResolver implements GameResolver
type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) DefaultGame() game.Game {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(game.Game)
}

// MockGame implements game.Game
type MockGame struct {
	mock.Mock
}

func (m *MockGame) PlayRound(stake decimal.Decimal) (domain.OperationResult, error) {
	args := m.Called(stake)
	return args.Get(0).(domain.OperationResult), args.Error(1)
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// decEq matches a decimal argument by numeric value
func decEq(s string) interface{} {
	want := d(s)
	return mock.MatchedBy(func(v decimal.Decimal) bool { return v.Equal(want) })
}
