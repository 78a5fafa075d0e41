package rng

// SeedStreamMask derives the second PCG word from the configured seed
const SeedStreamMask = 0x9E3779B97F4A7C15

// Error message formats
const (
	ErrMsgMinGreaterThanMaxFmt = "%w: minInclusive must be <= maxInclusive, minInclusive=%s, maxInclusive=%s"
	ErrMsgBoundFmt             = "%s: %w"
	ErrMsgRangeTooLargeFmt     = "%w: range is too large, maxInclusive=%s"
)
