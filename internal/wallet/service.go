package wallet

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/osse101/slotwallet/internal/domain"
	"github.com/osse101/slotwallet/internal/game"
	"github.com/osse101/slotwallet/internal/logger"
	"github.com/osse101/slotwallet/internal/metrics"
)

// GameResolver selects the game that resolves bets
type GameResolver interface {
	DefaultGame() game.Game
}

// Service defines the interface for wallet operations
type Service interface {
	Deposit(ctx context.Context, amount decimal.Decimal) domain.OperationResult
	Withdraw(ctx context.Context, amount decimal.Decimal) domain.OperationResult
	Bet(ctx context.Context, stake decimal.Decimal) (domain.OperationResult, error)
	Balance(ctx context.Context) decimal.Decimal
}

type service struct {
	wallet   *Wallet
	resolver GameResolver
}

// NewService creates a new wallet service
func NewService(wallet *Wallet, resolver GameResolver) Service {
	return &service{
		wallet:   wallet,
		resolver: resolver,
	}
}

func (s *service) Deposit(ctx context.Context, amount decimal.Decimal) domain.OperationResult {
	logger.FromContext(ctx).Debug(LogMsgDepositCalled, "amount", amount)

	result := s.wallet.Deposit(amount)
	s.record(ctx, metrics.OperationDeposit, result)
	return result
}

func (s *service) Withdraw(ctx context.Context, amount decimal.Decimal) domain.OperationResult {
	logger.FromContext(ctx).Debug(LogMsgWithdrawCalled, "amount", amount)

	result := s.wallet.Withdraw(amount)
	s.record(ctx, metrics.OperationWithdraw, result)
	return result
}

// Bet checks affordability, plays one round of the default game and settles it.
// Insufficient funds are reported before the game is consulted, so no
// randomness is consumed. Only fatal game errors are returned as errors.
func (s *service) Bet(ctx context.Context, stake decimal.Decimal) (domain.OperationResult, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgBetCalled, "stake", stake)

	if balance := s.wallet.Balance(); stake.GreaterThan(balance) {
		log.Debug(LogMsgBetShortCircuited, "stake", stake, "balance", balance)
		result := domain.Failure(domain.CodeInsufficientFunds, balance, &stake, "")
		s.record(ctx, metrics.OperationBet, result)
		return result, nil
	}

	round, err := s.resolver.DefaultGame().PlayRound(stake)
	if err != nil {
		log.Error(LogMsgPlayRoundFailed, "stake", stake, "error", err)
		return domain.OperationResult{}, fmt.Errorf(ErrMsgPlayRoundFailedFmt, err)
	}

	if !round.IsSuccess {
		log.Debug(LogMsgRoundRejected, "code", round.Code, "error", round.Error)
		result := domain.Failure(domain.CodeInvalidStake, s.wallet.Balance(), &stake, round.Error)
		s.record(ctx, metrics.OperationBet, result)
		return result, nil
	}

	applied := s.wallet.ApplyGameRound(stake, round.WinAmountOrZero())
	if !applied.IsSuccess {
		log.Warn(LogMsgSettlementRejected, "code", applied.Code, "error", applied.Error)
		result := domain.Failure(applied.Code, applied.Balance, &stake, applied.Error)
		s.record(ctx, metrics.OperationBet, result)
		return result, nil
	}

	result := domain.Success(round.Code, applied.Balance, &stake, domain.Ptr(applied.WinAmountOrZero()))
	s.record(ctx, metrics.OperationBet, result)
	return result, nil
}

func (s *service) Balance(_ context.Context) decimal.Decimal {
	return s.wallet.Balance()
}

func (s *service) record(ctx context.Context, operation string, result domain.OperationResult) {
	log := logger.FromContext(ctx)
	if result.IsSuccess {
		log.Info(LogMsgOperationCompleted,
			"operation", operation,
			"code", result.Code,
			"amount", result.AmountOrZero(),
			"balance", result.Balance)
	} else {
		log.Info(LogMsgOperationRejected,
			"operation", operation,
			"code", result.Code,
			"balance", result.Balance,
			"error", result.Error)
	}
	metrics.RecordOperation(ctx, operation, result)
}
