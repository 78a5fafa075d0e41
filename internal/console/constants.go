package console

// Command words
const (
	WordDeposit  = "deposit"
	WordWithdraw = "withdraw"
	WordBet      = "bet"
	WordBalance  = "balance"
	WordExit     = "exit"
)

// Console messages
const (
	MsgPrompt = "Please, submit action:"

	MsgInvalidInput = "Invalid input.\n" +
		"Commands: deposit <amount> | withdraw <amount> | bet <amount> | balance | exit\n" +
		"Amount: positive, max 2 decimals, decimal separator '.' or ','.\n" +
		"Examples: deposit 10.50 | deposit 10,50 | withdraw 5 | bet 3"

	MsgInvalidStake = "Invalid bet amount."
	MsgExit         = "Thank you for playing! Hope to see you again soon."
)

// Console message formats. Amounts are pre-rendered with two decimals.
const (
	MsgDepositSuccessFmt    = "Your deposit of $%s was successful. Your current balance is: $%s"
	MsgWithdrawSuccessFmt   = "Your withdrawal of $%s was successful. Your current balance is: $%s"
	MsgBetWinFmt            = "Congrats - you won $%s! Your current balance is: $%s"
	MsgBetLoseFmt           = "No luck this time! Your current balance is: $%s"
	MsgInsufficientFundsFmt = "Insufficient funds. Your current balance is: $%s"
	MsgBalanceFmt           = "Your current balance is: $%s"
)

// Log messages
const (
	LogMsgCommandReceived = "Console command received"
	LogMsgInvalidInput    = "Console input rejected"
	LogMsgSessionEnded    = "Console session ended"
	LogMsgBetFailed       = "Bet could not be resolved"
)

// Error message formats
const (
	ErrMsgReadInputFmt = "failed to read input: %w"
	ErrMsgBetFmt       = "bet failed: %w"
	ErrMsgWriteFmt     = "failed to write output: %w"
)
