package game

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/osse101/slotwallet/internal/domain"
)

// Game resolves a single bet. New variants only need to implement this
// interface and be registered with the resolver.
type Game interface {
	PlayRound(stake decimal.Decimal) (domain.OperationResult, error)
}

// Registration pairs a game with the code it is registered under
type Registration struct {
	Code string
	Game Game
}

// Resolver selects the game that resolves bets
type Resolver struct {
	games       map[string]Game
	defaultCode string
}

// NewResolver registers games and selects the default one. An empty
// defaultCode selects the first registration.
func NewResolver(defaultCode string, games ...Registration) (*Resolver, error) {
	if len(games) == 0 {
		return nil, domain.ErrNoGameRegistered
	}

	registry := make(map[string]Game, len(games))
	for i, reg := range games {
		if reg.Code == "" {
			return nil, fmt.Errorf(ErrMsgEmptyGameCodeFmt, domain.ErrConfigurationInvalid, i)
		}
		if reg.Game == nil {
			return nil, fmt.Errorf(ErrMsgNilGameFmt, domain.ErrConfigurationInvalid, reg.Code)
		}
		if _, exists := registry[reg.Code]; exists {
			return nil, fmt.Errorf(ErrMsgDuplicateGameFmt, domain.ErrDuplicateGame, reg.Code)
		}
		registry[reg.Code] = reg.Game
	}

	if defaultCode == "" {
		defaultCode = games[0].Code
	}
	if _, ok := registry[defaultCode]; !ok {
		return nil, fmt.Errorf(ErrMsgUnknownDefaultFmt, domain.ErrGameNotFound, defaultCode, sortedKeys(registry))
	}

	return &Resolver{games: registry, defaultCode: defaultCode}, nil
}

// DefaultGame returns the game used for bets
func (r *Resolver) DefaultGame() Game {
	return r.games[r.defaultCode]
}

// DefaultCode returns the code of the default game
func (r *Resolver) DefaultCode() string {
	return r.defaultCode
}

// Game looks up a registered game by code
func (r *Resolver) Game(code string) (Game, error) {
	g, ok := r.games[code]
	if !ok {
		return nil, fmt.Errorf(ErrMsgUnknownGameFmt, domain.ErrGameNotFound, code)
	}
	return g, nil
}

// Codes returns all registered game codes in sorted order
func (r *Resolver) Codes() []string {
	return sortedKeys(r.games)
}

func sortedKeys(games map[string]Game) []string {
	codes := lo.Keys(games)
	slices.Sort(codes)
	return codes
}
