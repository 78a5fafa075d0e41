package domain

import "github.com/shopspring/decimal"

// OperationCode identifies the outcome of a wallet or game operation
type OperationCode string

const (
	CodeSuccess OperationCode = "Success"

	CodeDepositSuccess  OperationCode = "DepositSuccess"
	CodeWithdrawSuccess OperationCode = "WithdrawSuccess"
	CodeBetWin          OperationCode = "BetWin"
	CodeBetLose         OperationCode = "BetLose"

	CodeInvalidAmount     OperationCode = "InvalidAmount"
	CodeInvalidStake      OperationCode = "InvalidStake"
	CodeInsufficientFunds OperationCode = "InsufficientFunds"
)

// IsFailure reports whether the code describes a rejected operation
func (c OperationCode) IsFailure() bool {
	switch c {
	case CodeInvalidAmount, CodeInvalidStake, CodeInsufficientFunds:
		return true
	default:
		return false
	}
}

func (c OperationCode) String() string {
	return string(c)
}

// OperationResult is returned by every wallet and game operation.
// Amount and WinAmount are only set when the operation produced them.
type OperationResult struct {
	IsSuccess bool                `json:"is_success"`
	Code      OperationCode       `json:"code"`
	Balance   decimal.Decimal     `json:"balance"`
	Amount    decimal.NullDecimal `json:"amount"`
	WinAmount decimal.NullDecimal `json:"win_amount"`
	Error     string              `json:"error,omitempty"`
}

// Success builds a successful result. Pass nil for amounts that do not apply.
func Success(code OperationCode, balance decimal.Decimal, amount, winAmount *decimal.Decimal) OperationResult {
	return OperationResult{
		IsSuccess: true,
		Code:      code,
		Balance:   balance,
		Amount:    nullable(amount),
		WinAmount: nullable(winAmount),
	}
}

// Failure builds a failed result. Failures never carry a win amount.
func Failure(code OperationCode, balance decimal.Decimal, amount *decimal.Decimal, errMsg string) OperationResult {
	return OperationResult{
		IsSuccess: false,
		Code:      code,
		Balance:   balance,
		Amount:    nullable(amount),
		Error:     errMsg,
	}
}

// AmountOrZero returns the operation amount, or zero when it was not set
func (r OperationResult) AmountOrZero() decimal.Decimal {
	if !r.Amount.Valid {
		return decimal.Zero
	}
	return r.Amount.Decimal
}

// WinAmountOrZero returns the win amount, or zero when it was not set
func (r OperationResult) WinAmountOrZero() decimal.Decimal {
	if !r.WinAmount.Valid {
		return decimal.Zero
	}
	return r.WinAmount.Decimal
}

// WithBalance returns a copy of the result carrying a different balance
func (r OperationResult) WithBalance(balance decimal.Decimal) OperationResult {
	r.Balance = balance
	return r
}

// Ptr is a helper for passing literal amounts to Success and Failure
func Ptr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func nullable(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}
