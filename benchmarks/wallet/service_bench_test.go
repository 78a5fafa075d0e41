package wallet_bench

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/osse101/slotwallet/internal/game"
	"github.com/osse101/slotwallet/internal/rng"
	"github.com/osse101/slotwallet/internal/slots"
	"github.com/osse101/slotwallet/internal/wallet"
)

// --- Stubs (Zero-overhead provider for benchmarking) ---

// StubProvider always lands in the small-win band at the lower bound
type StubProvider struct{}

func (StubProvider) NextProbability() float64 { return 0.6 }
func (StubProvider) NextInRange(minInclusive, _ decimal.Decimal) (decimal.Decimal, error) {
	return minInclusive, nil
}

func benchRules() slots.Rules {
	return slots.Rules{
		MinStake:              decimal.NewFromInt(1),
		MaxStake:              decimal.NewFromInt(10),
		LoseProbability:       0.5,
		SmallWinProbability:   0.4,
		SmallWinMinMultiplier: decimal.RequireFromString("0.1"),
		SmallWinMaxMultiplier: decimal.NewFromInt(2),
		BigWinMinMultiplier:   decimal.NewFromInt(2),
		BigWinMaxMultiplier:   decimal.NewFromInt(10),
	}
}

func newBenchService(b *testing.B, provider rng.Provider) wallet.Service {
	b.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	g, err := slots.NewGame(provider, benchRules(), log)
	if err != nil {
		b.Fatalf("NewGame failed: %v", err)
	}
	resolver, err := game.NewResolver(slots.GameCode, game.Registration{Code: slots.GameCode, Game: g})
	if err != nil {
		b.Fatalf("NewResolver failed: %v", err)
	}

	svc := wallet.NewService(wallet.NewWallet(), resolver)
	svc.Deposit(context.Background(), decimal.NewFromInt(1_000_000_000))
	return svc
}

func BenchmarkBet_StubProvider(b *testing.B) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	svc := newBenchService(b, StubProvider{})
	ctx := context.Background()
	stake := decimal.NewFromInt(5)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.Bet(ctx, stake); err != nil {
			b.Fatalf("Bet failed: %v", err)
		}
	}
}

func BenchmarkBet_SeededProviderParallel(b *testing.B) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	svc := newBenchService(b, rng.NewSeededProvider(1))
	stake := decimal.RequireFromString("2.50")

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		ctx := context.Background()
		for pb.Next() {
			if _, err := svc.Bet(ctx, stake); err != nil {
				b.Errorf("Bet failed: %v", err)
				return
			}
		}
	})
}

func BenchmarkNextInRange(b *testing.B) {
	p := rng.NewProvider()
	lo, hi := decimal.RequireFromString("0.10"), decimal.RequireFromString("100.00")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.NextInRange(lo, hi); err != nil {
			b.Fatalf("NextInRange failed: %v", err)
		}
	}
}
