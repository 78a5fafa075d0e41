package game

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/slotwallet/internal/domain"
)

// stubGame reports its name through the result error field
type stubGame struct {
	name string
}

func (s stubGame) PlayRound(stake decimal.Decimal) (domain.OperationResult, error) {
	return domain.Failure(domain.CodeInvalidStake, decimal.Zero, &stake, s.name), nil
}

func playedBy(t *testing.T, g Game) string {
	t.Helper()
	result, err := g.PlayRound(decimal.NewFromInt(1))
	require.NoError(t, err)
	return result.Error
}

func TestNewResolver_NoGames(t *testing.T) {
	r, err := NewResolver("")
	assert.Nil(t, r)
	assert.ErrorIs(t, err, domain.ErrNoGameRegistered)
}

func TestNewResolver_DefaultSelection(t *testing.T) {
	regs := []Registration{
		{Code: "slot", Game: stubGame{name: "slot"}},
		{Code: "dice", Game: stubGame{name: "dice"}},
	}

	tests := []struct {
		name        string
		defaultCode string
		want        string
	}{
		{"empty default picks first registration", "", "slot"},
		{"explicit default", "dice", "dice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewResolver(tt.defaultCode, regs...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.DefaultCode())
			assert.Equal(t, tt.want, playedBy(t, r.DefaultGame()))
		})
	}
}

func TestNewResolver_InvalidRegistrations(t *testing.T) {
	tests := []struct {
		name        string
		defaultCode string
		regs        []Registration
		wantErr     error
	}{
		{
			name:    "duplicate code",
			regs:    []Registration{{Code: "slot", Game: stubGame{}}, {Code: "slot", Game: stubGame{}}},
			wantErr: domain.ErrDuplicateGame,
		},
		{
			name:        "unknown default",
			defaultCode: "roulette",
			regs:        []Registration{{Code: "slot", Game: stubGame{}}},
			wantErr:     domain.ErrGameNotFound,
		},
		{
			name:    "empty code",
			regs:    []Registration{{Code: "", Game: stubGame{}}},
			wantErr: domain.ErrConfigurationInvalid,
		},
		{
			name:    "nil game",
			regs:    []Registration{{Code: "slot"}},
			wantErr: domain.ErrConfigurationInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewResolver(tt.defaultCode, tt.regs...)
			assert.Nil(t, r)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestResolver_GameLookup(t *testing.T) {
	r, err := NewResolver("",
		Registration{Code: "slot", Game: stubGame{name: "slot"}},
		Registration{Code: "crash", Game: stubGame{name: "crash"}},
		Registration{Code: "blackjack", Game: stubGame{name: "blackjack"}},
	)
	require.NoError(t, err)

	g, err := r.Game("crash")
	require.NoError(t, err)
	assert.Equal(t, "crash", playedBy(t, g))

	_, err = r.Game("poker")
	assert.ErrorIs(t, err, domain.ErrGameNotFound)

	assert.Equal(t, []string{"blackjack", "crash", "slot"}, r.Codes())
}
