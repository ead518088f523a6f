package game

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/lox/holdem-engine/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randomAction picks any legal action, with raises of a random legal size
func randomAction(rng *rand.Rand, actions []ValidAction) (Action, int) {
	va := actions[rng.IntN(len(actions))]
	if va.Action == Raise {
		return Raise, va.MinAmount + rng.IntN(va.MaxAmount-va.MinAmount+1)
	}
	return va.Action, 0
}

func TestChipsAreConservedOverRandomPlay(t *testing.T) {
	t.Parallel()

	for _, seed := range []int64{1, 2, 3, 42, 1337} {
		t.Run(fmt.Sprintf("seed %d", seed), func(t *testing.T) {
			t.Parallel()

			rng := randutil.New(seed)
			ids := []string{"p1", "p2", "p3", "p4", "p5", "p6"}
			stacks := make(map[string]int)
			for i, id := range ids {
				stacks[id] = 40 + 30*i
			}
			g, _ := newTestGame(t, testConfig(), stacks, ids, WithRNG(randutil.New(seed)))
			total := totalChips(g)

			for hand := 0; hand < 200 && g.CanStartNewHand(); hand++ {
				require.True(t, g.StartNewHand())

				for steps := 0; !g.IsGameOver(); steps++ {
					require.Less(t, steps, 500, "hand never finished")

					state := g.GetGameState()
					require.Equal(t, state.MainPot, sidePotTotal(state.SidePots))
					for _, ps := range state.Players {
						require.GreaterOrEqual(t, ps.Chips, 0)
						require.LessOrEqual(t, ps.CurrentBet, state.CurrentBet)
					}

					id := state.CurrentPlayer
					require.NotEmpty(t, id, "betting phase %s without an actor", state.Phase)
					action, amount := randomAction(rng, g.ValidActions(id))
					require.True(t, g.HandlePlayerAction(id, action, amount), "%s %s %d", id, action, amount)
				}

				assert.Equal(t, total, totalChips(g), "hand %d", hand)

				sum := 0
				for _, r := range g.GetGameResults() {
					sum += r.Profit
				}
				assert.Zero(t, sum, "profits net to zero in hand %d", hand)
			}
		})
	}
}
