package domain

// PayoutBand identifies which probability band resolved a round
type PayoutBand string

const (
	PayoutBandLose     PayoutBand = "lose"
	PayoutBandSmallWin PayoutBand = "small_win"
	PayoutBandBigWin   PayoutBand = "big_win"
)
