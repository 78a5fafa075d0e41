package metrics

import (
	"context"

	"github.com/osse101/slotwallet/internal/domain"
	"github.com/osse101/slotwallet/internal/logger"
)

// RecordOperation updates the wallet metrics for a completed operation
func RecordOperation(ctx context.Context, operation string, result domain.OperationResult) {
	WalletOperations.WithLabelValues(operation, result.Code.String()).Inc()
	WalletBalance.Set(result.Balance.InexactFloat64())

	if result.IsSuccess {
		switch operation {
		case OperationDeposit:
			WalletAmount.WithLabelValues(DirectionDeposited).Add(result.AmountOrZero().InexactFloat64())
		case OperationWithdraw:
			WalletAmount.WithLabelValues(DirectionWithdrawn).Add(result.AmountOrZero().InexactFloat64())
		case OperationBet:
			WalletAmount.WithLabelValues(DirectionStaked).Add(result.AmountOrZero().InexactFloat64())
			WalletAmount.WithLabelValues(DirectionWon).Add(result.WinAmountOrZero().InexactFloat64())
		}
	}

	logger.FromContext(ctx).Debug(LogMsgMetricsRecorded,
		"operation", operation,
		"code", result.Code)
}

// RecordSlotRound counts a resolved round under its payout band
func RecordSlotRound(band domain.PayoutBand) {
	SlotRounds.WithLabelValues(string(band)).Inc()
}
