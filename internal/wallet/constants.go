package wallet

// ==================== Log Messages ====================

// Service operation log messages
const (
	LogMsgDepositCalled      = "Deposit called"
	LogMsgWithdrawCalled     = "Withdraw called"
	LogMsgBetCalled          = "Bet called"
	LogMsgOperationCompleted = "Wallet operation completed"
	LogMsgOperationRejected  = "Wallet operation rejected"
	LogMsgBetShortCircuited  = "Bet rejected before play, insufficient funds"
	LogMsgRoundRejected      = "Game rejected the round"
	LogMsgSettlementRejected = "Wallet rejected the round settlement"
	LogMsgPlayRoundFailed    = "Game round failed"
)

// ==================== Error Messages ====================

// Formatted error messages
const (
	ErrMsgPlayRoundFailedFmt = "failed to play round: %w"
)
