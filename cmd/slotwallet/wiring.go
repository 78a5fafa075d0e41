package main

import (
	"fmt"
	"log/slog"

	"github.com/osse101/slotwallet/internal/config"
	"github.com/osse101/slotwallet/internal/game"
	"github.com/osse101/slotwallet/internal/rng"
	"github.com/osse101/slotwallet/internal/slots"
	"github.com/osse101/slotwallet/internal/validation"
	"github.com/osse101/slotwallet/internal/wallet"
)

// components are the long-lived objects of one session
type components struct {
	wallet  *wallet.Wallet
	service wallet.Service
}

// buildComponents loads the rules and assembles provider, game, resolver and wallet
func buildComponents(cfg *config.Config, log *slog.Logger) (*components, error) {
	rules, err := config.LoadRules(cfg.RulesFile, validation.NewSchemaValidator(validation.EmbeddedSchemas()))
	if err != nil {
		return nil, fmt.Errorf("failed to load game rules: %w", err)
	}

	provider := rng.NewProvider()
	if cfg.RNGSeed != nil {
		log.Info("Using seeded random provider", "seed", *cfg.RNGSeed)
		provider = rng.NewSeededProvider(*cfg.RNGSeed)
	}

	slotGame, err := slots.NewGame(provider, rules, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create slot game: %w", err)
	}

	defaultCode := cfg.DefaultGame
	if defaultCode == "" {
		defaultCode = slots.GameCode
	}

	resolver, err := game.NewResolver(defaultCode, game.Registration{Code: slots.GameCode, Game: slotGame})
	if err != nil {
		return nil, fmt.Errorf("failed to register games: %w", err)
	}

	active := slotGame.Rules()
	log.Info("Games registered",
		"games", resolver.Codes(),
		"default", resolver.DefaultCode(),
		"min_stake", active.MinStake.String(),
		"max_stake", active.MaxStake.String())

	w := wallet.NewWallet()
	return &components{
		wallet:  w,
		service: wallet.NewService(w, resolver),
	}, nil
}
