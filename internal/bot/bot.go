// Package bot provides simple automated players for driving tables in
// simulations and tests.
package bot

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/lox/holdem-engine/internal/deck"
	"github.com/lox/holdem-engine/internal/game"
)

// View is what a bot can see when it is asked to act
type View struct {
	PlayerID  string
	HoleCards []deck.Card
	State     game.GameState
}

// Decision is a bot's chosen action
type Decision struct {
	Action    game.Action
	Amount    int // raise increment for game.Raise
	Reasoning string
}

// Agent decides actions for one seat
type Agent interface {
	MakeDecision(view View, validActions []game.ValidAction) Decision
}

// Strategies lists the names accepted by New
var Strategies = []string{"rand", "call", "fold", "tag"}

// New creates an agent by strategy name
func New(strategy string, rng *rand.Rand, logger *log.Logger) (Agent, error) {
	logger = logger.WithPrefix("bot").With("strategy", strategy)
	switch strategy {
	case "rand":
		return NewRandBot(rng, logger), nil
	case "call":
		return NewCallBot(logger), nil
	case "fold":
		return NewFoldBot(logger), nil
	case "tag":
		return NewTAGBot(rng, logger), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q, want one of %v", strategy, Strategies)
	}
}

// find returns the valid action of the given kind
func find(validActions []game.ValidAction, action game.Action) (game.ValidAction, bool) {
	i := slices.IndexFunc(validActions, func(va game.ValidAction) bool { return va.Action == action })
	if i < 0 {
		return game.ValidAction{}, false
	}
	return validActions[i], true
}

// first returns a decision for the first of the preferred actions that is valid
func first(validActions []game.ValidAction, reasoning string, preferred ...game.Action) Decision {
	for _, a := range preferred {
		if va, ok := find(validActions, a); ok {
			amount := 0
			if a == game.Raise {
				amount = va.MinAmount
			}
			return Decision{Action: a, Amount: amount, Reasoning: reasoning}
		}
	}
	return Decision{Action: game.Fold, Reasoning: reasoning + " (fallback fold)"}
}
