package wallet

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/osse101/slotwallet/internal/domain"
)

// assertDec compares decimals by value
func assertDec(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, got.Equal(d(want)), "expected %s, got %s", want, got)
}

func TestWallet_StartsEmpty(t *testing.T) {
	assert.True(t, NewWallet().Balance().IsZero())
}

func TestWallet_Deposit(t *testing.T) {
	tests := []struct {
		name        string
		amount      string
		wantCode    domain.OperationCode
		wantBalance string
		wantError   string
	}{
		{"whole amount", "10", domain.CodeDepositSuccess, "10", ""},
		{"rounds half away from zero", "1.005", domain.CodeDepositSuccess, "1.01", ""},
		{"rounds down below half", "1.004", domain.CodeDepositSuccess, "1", ""},
		{"zero", "0", domain.CodeInvalidAmount, "0", domain.ErrMsgAmountMustBePositive},
		{"negative", "-5", domain.CodeInvalidAmount, "0", domain.ErrMsgAmountMustBePositive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWallet()
			result := w.Deposit(d(tt.amount))

			assert.Equal(t, tt.wantCode, result.Code)
			assert.Equal(t, tt.wantError == "", result.IsSuccess)
			assert.Equal(t, tt.wantError, result.Error)
			assertDec(t, tt.wantBalance, result.Balance)
			assertDec(t, tt.wantBalance, w.Balance())
			assertDec(t, tt.amount, result.AmountOrZero())
			assert.False(t, result.WinAmount.Valid)
		})
	}
}

func TestWallet_Withdraw(t *testing.T) {
	tests := []struct {
		name        string
		amount      string
		wantCode    domain.OperationCode
		wantBalance string
		wantError   string
	}{
		{"partial", "4.25", domain.CodeWithdrawSuccess, "5.75", ""},
		{"entire balance", "10", domain.CodeWithdrawSuccess, "0", ""},
		{"more than balance", "10.01", domain.CodeInsufficientFunds, "10", ""},
		{"zero", "0", domain.CodeInvalidAmount, "10", domain.ErrMsgAmountMustBePositive},
		{"negative", "-1", domain.CodeInvalidAmount, "10", domain.ErrMsgAmountMustBePositive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWallet()
			w.Deposit(d("10"))

			result := w.Withdraw(d(tt.amount))

			assert.Equal(t, tt.wantCode, result.Code)
			assert.Equal(t, tt.wantCode == domain.CodeWithdrawSuccess, result.IsSuccess)
			assert.Equal(t, tt.wantError, result.Error)
			assertDec(t, tt.wantBalance, result.Balance)
			assertDec(t, tt.wantBalance, w.Balance())
		})
	}
}

func TestWallet_ApplyGameRound(t *testing.T) {
	tests := []struct {
		name        string
		stake       string
		win         string
		wantCode    domain.OperationCode
		wantBalance string
		wantStake   string
		wantWin     string
		wantError   string
	}{
		{"win credited after stake", "4", "7", domain.CodeSuccess, "13", "4", "7", ""},
		{"loss", "4", "0", domain.CodeSuccess, "6", "4", "0", ""},
		{"stake and win rounded independently", "1.005", "2.675", domain.CodeSuccess, "11.67", "1.01", "2.68", ""},
		{"entire balance staked", "10", "0", domain.CodeSuccess, "0", "10", "0", ""},
		{"zero stake", "0", "1", domain.CodeInvalidStake, "10", "", "", domain.ErrMsgStakeMustBePositive},
		{"stake above balance", "10.01", "100", domain.CodeInsufficientFunds, "10", "", "", ""},
		{"negative win", "1", "-0.01", domain.CodeInvalidAmount, "10", "", "", domain.ErrMsgWinMustNotBeNegative},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWallet()
			w.Deposit(d("10"))

			result := w.ApplyGameRound(d(tt.stake), d(tt.win))

			assert.Equal(t, tt.wantCode, result.Code)
			assert.Equal(t, tt.wantError, result.Error)
			assertDec(t, tt.wantBalance, result.Balance)
			assertDec(t, tt.wantBalance, w.Balance())

			if tt.wantCode == domain.CodeSuccess {
				assert.True(t, result.IsSuccess)
				assertDec(t, tt.wantStake, result.AmountOrZero())
				assertDec(t, tt.wantWin, result.WinAmountOrZero())
			} else {
				assert.False(t, result.IsSuccess)
				assert.False(t, result.WinAmount.Valid)
			}
		})
	}
}

func TestWallet_ConcurrentMutationsStayConsistent(t *testing.T) {
	w := NewWallet()
	w.Deposit(d("100"))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(3)
		go func() { defer wg.Done(); w.Deposit(d("1.10")) }()
		go func() { defer wg.Done(); w.Withdraw(d("0.60")) }()
		go func() { defer wg.Done(); w.ApplyGameRound(d("1"), d("1.50")) }()
	}
	wg.Wait()

	// 100 + 50*1.10 - 50*0.60 + 50*0.50
	assertDec(t, "150", w.Balance())
}

func TestWallet_LedgerProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		w := NewWallet()
		expected := decimal.Zero

		steps := rapid.IntRange(1, 40).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			amount := decimal.New(rapid.Int64Range(-500, 5000).Draw(t, "mills"), -3)
			win := decimal.New(rapid.Int64Range(0, 5000).Draw(t, "winMills"), -3)

			var result domain.OperationResult
			switch rapid.IntRange(0, 2).Draw(t, "op") {
			case 0:
				result = w.Deposit(amount)
				if result.IsSuccess {
					expected = expected.Add(amount).Round(2)
				}
			case 1:
				result = w.Withdraw(amount)
				if result.IsSuccess {
					expected = expected.Sub(amount).Round(2)
				}
			default:
				result = w.ApplyGameRound(amount, win)
				if result.IsSuccess {
					expected = expected.Sub(amount.Round(2)).Add(win.Round(2)).Round(2)
				}
			}

			balance := w.Balance()
			if balance.IsNegative() {
				t.Fatalf("negative balance %s", balance)
			}
			if !balance.Equal(balance.Round(2)) {
				t.Fatalf("balance %s not rounded to cents", balance)
			}
			if !balance.Equal(expected) {
				t.Fatalf("balance %s, expected %s", balance, expected)
			}
			if !result.Balance.Equal(balance) {
				t.Fatalf("result balance %s differs from wallet balance %s", result.Balance, balance)
			}
		}
	})
}
