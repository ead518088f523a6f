package bot

import (
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/lox/holdem-engine/internal/evaluator"
	"github.com/lox/holdem-engine/internal/game"
)

// Starting hand percentiles for raising and continuing preflop
const (
	strongPreflop   = 0.89
	playablePreflop = 0.70
)

// TAGBot is a tight aggressive bot: premium starting hands and made hands
// are raised, marginal ones checked or occasionally called
type TAGBot struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewTAGBot creates a new TAGBot
func NewTAGBot(rng *rand.Rand, logger *log.Logger) *TAGBot {
	return &TAGBot{rng: rng, logger: logger}
}

func (t *TAGBot) MakeDecision(view View, validActions []game.ValidAction) Decision {
	if len(view.HoleCards) != 2 {
		return first(validActions, "tag no cards", game.Check, game.Fold)
	}

	var strong, playable bool
	if view.State.Phase == game.PreFlop {
		pct := percentile(view.HoleCards)
		strong = pct >= strongPreflop
		playable = pct >= playablePreflop
	} else {
		hand := evaluator.Evaluate(view.HoleCards, view.State.CommunityCards)
		strong = hand.Tier >= evaluator.TwoPair
		playable = hand.Tier >= evaluator.OnePair
		t.logger.Debug("Postflop hand", "player", view.PlayerID, "hand", evaluator.Describe(hand))
	}

	if strong {
		if va, ok := find(validActions, game.Raise); ok {
			amount := va.MinAmount + (va.MaxAmount-va.MinAmount)/4
			return Decision{Action: game.Raise, Amount: amount, Reasoning: "tag raise strong hand"}
		}
		return first(validActions, "tag strong, cannot raise", game.Call, game.Check, game.AllIn)
	}
	if playable || t.rng.Float64() < 0.15 {
		return first(validActions, "tag continue", game.Check, game.Call)
	}
	return first(validActions, "tag give up", game.Check, game.Fold)
}
