package bot

import (
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/lox/holdem-engine/internal/game"
)

// RandBot makes uniform random legal actions
type RandBot struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewRandBot creates a new RandBot
func NewRandBot(rng *rand.Rand, logger *log.Logger) *RandBot {
	return &RandBot{rng: rng, logger: logger}
}

func (r *RandBot) MakeDecision(_ View, validActions []game.ValidAction) Decision {
	if len(validActions) == 0 {
		return Decision{Action: game.Fold, Reasoning: "rand-bot no valid actions"}
	}

	choice := validActions[r.rng.IntN(len(validActions))]
	amount := 0
	if choice.Action == game.Raise {
		amount = choice.MinAmount + r.rng.IntN(choice.MaxAmount-choice.MinAmount+1)
	}
	return Decision{Action: choice.Action, Amount: amount, Reasoning: "rand-bot random action"}
}
