package wallet

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/osse101/slotwallet/internal/domain"
	"github.com/osse101/slotwallet/internal/utils"
)

// Wallet is the single-player ledger. The balance is always rounded to
// cents and never negative; every mutation holds the lock across its
// read-check-write.
type Wallet struct {
	mu      sync.Mutex
	balance decimal.Decimal
}

// NewWallet creates an empty wallet
func NewWallet() *Wallet {
	return &Wallet{balance: decimal.Zero}
}

// Balance returns the current balance
func (w *Wallet) Balance() decimal.Decimal {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.balance
}

// Deposit credits a positive amount
func (w *Wallet) Deposit(amount decimal.Decimal) domain.OperationResult {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !amount.IsPositive() {
		return domain.Failure(domain.CodeInvalidAmount, w.balance, &amount, domain.ErrMsgAmountMustBePositive)
	}

	w.balance = utils.RoundCents(w.balance.Add(amount))
	return domain.Success(domain.CodeDepositSuccess, w.balance, &amount, nil)
}

// Withdraw debits a positive amount no larger than the balance
func (w *Wallet) Withdraw(amount decimal.Decimal) domain.OperationResult {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !amount.IsPositive() {
		return domain.Failure(domain.CodeInvalidAmount, w.balance, &amount, domain.ErrMsgAmountMustBePositive)
	}
	if amount.GreaterThan(w.balance) {
		return domain.Failure(domain.CodeInsufficientFunds, w.balance, &amount, "")
	}

	w.balance = utils.RoundCents(w.balance.Sub(amount))
	return domain.Success(domain.CodeWithdrawSuccess, w.balance, &amount, nil)
}

// ApplyGameRound settles a resolved round: the stake is debited and the win
// credited in one step. Stake and win are rounded to cents independently.
func (w *Wallet) ApplyGameRound(stake, win decimal.Decimal) domain.OperationResult {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !stake.IsPositive() {
		return domain.Failure(domain.CodeInvalidStake, w.balance, &stake, domain.ErrMsgStakeMustBePositive)
	}
	if stake.GreaterThan(w.balance) {
		return domain.Failure(domain.CodeInsufficientFunds, w.balance, &stake, "")
	}
	if win.IsNegative() {
		return domain.Failure(domain.CodeInvalidAmount, w.balance, &stake, domain.ErrMsgWinMustNotBeNegative)
	}

	stake = utils.RoundCents(stake)
	win = utils.RoundCents(win)
	w.balance = utils.RoundCents(w.balance.Sub(stake).Add(win))

	return domain.Success(domain.CodeSuccess, w.balance, &stake, &win)
}
