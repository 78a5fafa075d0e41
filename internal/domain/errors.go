package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Configuration errors
	ErrMsgConfigurationInvalid = "configuration invalid"

	// Game registry errors
	ErrMsgNoGameRegistered = "no games are registered"
	ErrMsgGameNotFound     = "game not found"
	ErrMsgDuplicateGame    = "game already registered"

	// Random range errors
	ErrMsgInvalidRange = "invalid range"
	ErrMsgOutOfRange   = "value out of range"
)

// User-facing detail strings carried in OperationResult.Error
const (
	ErrMsgAmountMustBePositive = "Amount must be a positive number."
	ErrMsgStakeMustBePositive  = "Bet amount must be a positive number."
	ErrMsgWinMustNotBeNegative = "Win amount cannot be negative."
	ErrMsgStakeOutOfBoundsFmt  = "Bet amount must be between %s and %s."
)

// Fatal domain errors
// Business outcomes (invalid amount, invalid stake, insufficient funds) are never
// returned as errors; they are OperationResult codes.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrConfigurationInvalid = errors.New(ErrMsgConfigurationInvalid)

	ErrNoGameRegistered = errors.New(ErrMsgNoGameRegistered)
	ErrGameNotFound     = errors.New(ErrMsgGameNotFound)
	ErrDuplicateGame    = errors.New(ErrMsgDuplicateGame)

	ErrInvalidRange = errors.New(ErrMsgInvalidRange)
	ErrOutOfRange   = errors.New(ErrMsgOutOfRange)
)
