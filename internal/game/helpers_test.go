package game

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/holdem-engine/internal/deck"
	"github.com/lox/holdem-engine/internal/randutil"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		SmallBlind:          1,
		BigBlind:            2,
		MaxSeats:            6,
		ActionTimeout:       30 * time.Second,
		RotateStreetStarter: true,
	}
}

// newTestGame seats players in order (seat 0 gets the first button) on a
// table driven by a mock clock
func newTestGame(t *testing.T, cfg Config, stacks map[string]int, order []string, opts ...Option) (*Game, *quartz.Mock) {
	t.Helper()

	mClock := quartz.NewMock(t)
	base := []Option{
		WithClock(mClock),
		WithLogger(log.New(io.Discard)),
		WithRNG(randutil.New(1)),
	}
	g := NewGame("test-table", cfg, append(base, opts...)...)
	for _, id := range order {
		require.True(t, g.AddPlayer(id, stacks[id]), "seating %s", id)
	}
	return g, mClock
}

// stackedDeck deals holes in the given order, one card at a time, then the
// board with a burn before the flop, turn and river
func stackedDeck(t *testing.T, holes []string, board string) *deck.Deck {
	t.Helper()

	hands := make([][]deck.Card, len(holes))
	for i, h := range holes {
		hands[i] = deck.MustParseCards(h)
		require.Len(t, hands[i], 2)
	}
	community := deck.MustParseCards(board)
	require.Len(t, community, 5)

	used := make(map[deck.Card]bool)
	var order []deck.Card
	for round := range 2 {
		for _, h := range hands {
			order = append(order, h[round])
			used[h[round]] = true
		}
	}
	for _, c := range community {
		used[c] = true
	}

	var burns []deck.Card
	for _, suit := range deck.Suits {
		for rank := deck.Two; rank <= deck.Ace && len(burns) < 3; rank++ {
			if c := deck.NewCard(suit, rank); !used[c] {
				burns = append(burns, c)
			}
		}
	}

	order = append(order, burns[0])
	order = append(order, community[:3]...)
	order = append(order, burns[1], community[3], burns[2], community[4])
	return deck.NewStackedDeck(order...)
}

func act(t *testing.T, g *Game, id string, action Action, amount int) {
	t.Helper()
	require.NoError(t, g.ValidateAction(id, action, amount))
	require.True(t, g.HandlePlayerAction(id, action, amount), "%s %s %d", id, action, amount)
}

func totalChips(g *Game) int {
	sum := 0
	for _, ps := range g.GetGameState().Players {
		sum += ps.Chips
	}
	return sum
}

func sidePotTotal(pots []SidePot) int {
	sum := 0
	for _, p := range pots {
		sum += p.Amount
	}
	return sum
}
