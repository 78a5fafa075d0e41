package console

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/slotwallet/internal/domain"
)

// MockService is a mock implementation of wallet.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Deposit(ctx context.Context, amount decimal.Decimal) domain.OperationResult {
	args := m.Called(ctx, amount)
	return args.Get(0).(domain.OperationResult)
}

func (m *MockService) Withdraw(ctx context.Context, amount decimal.Decimal) domain.OperationResult {
	args := m.Called(ctx, amount)
	return args.Get(0).(domain.OperationResult)
}

func (m *MockService) Bet(ctx context.Context, stake decimal.Decimal) (domain.OperationResult, error) {
	args := m.Called(ctx, stake)
	return args.Get(0).(domain.OperationResult), args.Error(1)
}

func (m *MockService) Balance(ctx context.Context) decimal.Decimal {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal)
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// decEq matches a decimal argument by value rather than representation
func decEq(s string) interface{} {
	want := d(s)
	return mock.MatchedBy(func(got decimal.Decimal) bool { return got.Equal(want) })
}
