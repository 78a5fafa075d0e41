package slots

// GameCode is the resolver key the slot game is registered under
const GameCode = "slot"

// Rule field names used in validation errors
const (
	FieldMinStake              = "MinStake"
	FieldMaxStake              = "MaxStake"
	FieldLoseProbability       = "LoseProbability"
	FieldSmallWinProbability   = "SmallWinProbability"
	FieldSmallWinMinMultiplier = "SmallWinMinMultiplier"
	FieldSmallWinMaxMultiplier = "SmallWinMaxMultiplier"
	FieldBigWinMinMultiplier   = "BigWinMinMultiplier"
	FieldBigWinMaxMultiplier   = "BigWinMaxMultiplier"
)

// Validation error formats, wrapped around domain.ErrConfigurationInvalid
const (
	ErrMsgMustBePositiveFmt     = "%w: Rules.%s must be greater than 0, current: %s"
	ErrMsgMinAboveMaxFmt        = "%w: Rules.%s must be <= Rules.%s, current: %s=%s, %s=%s"
	ErrMsgProbabilityNotANumFmt = "%w: Rules.%s must be a valid number, current: %v"
	ErrMsgProbabilityRangeFmt   = "%w: Rules.%s must be between 0 and 1, current: %v"
	ErrMsgProbabilitySumFmt     = "%w: Rules probabilities must sum to 1 or less, current: LoseProbability=%v, SmallWinProbability=%v"
	ErrMsgRandomDrawFmt         = "failed to draw %s multiplier: %w"
)

// Log messages
const (
	LogMsgGameCreated     = "Slot game created"
	LogMsgStakeOutOfRange = "Stake outside allowed range"
	LogMsgRoundResolved   = "Slot round resolved"
)
