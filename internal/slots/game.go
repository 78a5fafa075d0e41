package slots

import (
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/osse101/slotwallet/internal/domain"
	"github.com/osse101/slotwallet/internal/metrics"
	"github.com/osse101/slotwallet/internal/rng"
	"github.com/osse101/slotwallet/internal/utils"
)

// Game resolves single slot rounds against a fixed set of rules
type Game struct {
	rng   rng.Provider
	rules Rules
	log   *slog.Logger
}

// NewGame validates the rules and creates a slot game
func NewGame(provider rng.Provider, rules Rules, log *slog.Logger) (*Game, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.Default()
	}

	log.Debug(LogMsgGameCreated,
		"min_stake", rules.MinStake,
		"max_stake", rules.MaxStake,
		"lose_probability", rules.LoseProbability,
		"small_win_probability", rules.SmallWinProbability)

	return &Game{rng: provider, rules: rules, log: log}, nil
}

// Rules returns the validated rules of the game
func (g *Game) Rules() Rules {
	return g.rules
}

// PlayRound resolves one bet. The returned balance is always zero; callers
// replace it with the wallet balance. The error return is reserved for
// random provider failures.
func (g *Game) PlayRound(stake decimal.Decimal) (domain.OperationResult, error) {
	if !g.rules.AllowsStake(stake) {
		g.log.Debug(LogMsgStakeOutOfRange, "stake", stake)
		return domain.Failure(domain.CodeInvalidStake, decimal.Zero, &stake,
			fmt.Sprintf(domain.ErrMsgStakeOutOfBoundsFmt, utils.FormatBound(g.rules.MinStake), utils.FormatBound(g.rules.MaxStake))), nil
	}

	band, win, err := g.resolve(stake)
	if err != nil {
		return domain.OperationResult{}, err
	}

	code := domain.CodeBetLose
	if win.IsPositive() {
		code = domain.CodeBetWin
	}

	metrics.RecordSlotRound(band)
	g.log.Debug(LogMsgRoundResolved, "band", band, "stake", stake, "win", win, "code", code)

	return domain.Success(code, decimal.Zero, &stake, &win), nil
}

// resolve draws the payout band and, for winning bands, the multiplier
func (g *Game) resolve(stake decimal.Decimal) (domain.PayoutBand, decimal.Decimal, error) {
	chance := g.rng.NextProbability()
	loseThreshold := g.rules.LoseProbability
	smallWinThreshold := g.rules.LoseProbability + g.rules.SmallWinProbability

	switch {
	case chance < loseThreshold:
		return domain.PayoutBandLose, decimal.Zero, nil
	case chance < smallWinThreshold:
		multiplier, err := g.rng.NextInRange(g.rules.SmallWinMinMultiplier, g.rules.SmallWinMaxMultiplier)
		if err != nil {
			return "", decimal.Zero, fmt.Errorf(ErrMsgRandomDrawFmt, domain.PayoutBandSmallWin, err)
		}
		return domain.PayoutBandSmallWin, stake.Mul(multiplier), nil
	default:
		multiplier, err := g.rng.NextInRange(g.rules.BigWinMinMultiplier, g.rules.BigWinMaxMultiplier)
		if err != nil {
			return "", decimal.Zero, fmt.Errorf(ErrMsgRandomDrawFmt, domain.PayoutBandBigWin, err)
		}
		return domain.PayoutBandBigWin, stake.Mul(multiplier), nil
	}
}
