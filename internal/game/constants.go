package game

// Error message formats
const (
	ErrMsgDuplicateGameFmt  = "%w: code=%s"
	ErrMsgUnknownGameFmt    = "%w: code=%s"
	ErrMsgEmptyGameCodeFmt  = "%w: registration %d has an empty code"
	ErrMsgNilGameFmt        = "%w: registration %q has no game"
	ErrMsgUnknownDefaultFmt = "%w: default game %q is not registered, registered=%v"
)
