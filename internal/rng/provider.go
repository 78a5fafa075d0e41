package rng

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/osse101/slotwallet/internal/domain"
	"github.com/osse101/slotwallet/internal/utils"
)

// Provider produces the randomness a game round consumes
type Provider interface {
	// NextProbability returns a uniform value in [0, 1)
	NextProbability() float64

	// NextInRange returns a cent-quantized value uniformly distributed over the
	// inclusive range [minInclusive, maxInclusive]
	NextInRange(minInclusive, maxInclusive decimal.Decimal) (decimal.Decimal, error)
}

// source is the subset of *rand.Rand the provider draws from
type source interface {
	Float64() float64
	Uint64N(n uint64) uint64
}

// globalSource draws from the goroutine-safe top-level math/rand/v2 functions
type globalSource struct{}

func (globalSource) Float64() float64        { return rand.Float64() }  //nolint:gosec // Game logic randomness
func (globalSource) Uint64N(n uint64) uint64 { return rand.Uint64N(n) } //nolint:gosec // Game logic randomness

// lockedSource serializes access to a seeded generator
type lockedSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Float64()
}

func (s *lockedSource) Uint64N(n uint64) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Uint64N(n)
}

type provider struct {
	src source
}

// NewProvider creates a provider backed by the shared math/rand/v2 generator
func NewProvider() Provider {
	return &provider{src: globalSource{}}
}

// NewSeededProvider creates a reproducible provider backed by a PCG generator
func NewSeededProvider(seed uint64) Provider {
	return &provider{
		src: &lockedSource{rnd: rand.New(rand.NewPCG(seed, seed^SeedStreamMask))}, //nolint:gosec // Game logic randomness
	}
}

func (p *provider) NextProbability() float64 {
	return p.src.Float64()
}

func (p *provider) NextInRange(minInclusive, maxInclusive decimal.Decimal) (decimal.Decimal, error) {
	if minInclusive.GreaterThan(maxInclusive) {
		return decimal.Zero, fmt.Errorf(ErrMsgMinGreaterThanMaxFmt, domain.ErrInvalidRange, minInclusive, maxInclusive)
	}

	if minInclusive.Equal(maxInclusive) {
		return minInclusive, nil
	}

	minCents, err := utils.ToCents(minInclusive)
	if err != nil {
		return decimal.Zero, fmt.Errorf(ErrMsgBoundFmt, "minInclusive", err)
	}
	maxCents, err := utils.ToCents(maxInclusive)
	if err != nil {
		return decimal.Zero, fmt.Errorf(ErrMsgBoundFmt, "maxInclusive", err)
	}

	if minCents == maxCents {
		return utils.FromCents(minCents), nil
	}

	// The inclusive draw needs maxCents+1
	if maxCents == math.MaxInt64 {
		return decimal.Zero, fmt.Errorf(ErrMsgRangeTooLargeFmt, domain.ErrOutOfRange, maxInclusive)
	}

	// Bounds of opposite sign can span more than MaxInt64 cents; the unsigned
	// difference is exact and the offset wraps back into [minCents, maxCents].
	span := uint64(maxCents-minCents) + 1
	return utils.FromCents(minCents + int64(p.src.Uint64N(span))), nil //nolint:gosec // offset < span
}
