package game

import (
	"maps"
	"slices"

	"github.com/lox/holdem-engine/internal/deck"
)

// PlayerState is the public view of a seated player
type PlayerState struct {
	ID           string
	Seat         int
	Chips        int
	CurrentBet   int
	TotalBet     int
	Status       PlayerStatus
	IsDealer     bool
	IsSmallBlind bool
	IsBigBlind   bool
	LastAction   string      // empty until the player acts this street
	ShownCards   []deck.Card // hole cards, only once the hand is shown down
}

// GameState is a point-in-time snapshot safe to hand to other goroutines
type GameState struct {
	TableID        string
	HandID         string
	HandNumber     int
	Phase          Phase
	CommunityCards []deck.Card
	MainPot        int // everything bet this hand
	SidePots       []SidePot
	CurrentBet     int
	MinRaise       int
	CurrentPlayer  string
	DealerSeat     int
	SmallBlind     int
	BigBlind       int
	Players        []PlayerState
}

// GetGameState returns a snapshot of the table
func (g *Game) GetGameState() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()

	state := GameState{
		TableID:        g.id,
		HandID:         g.handID,
		HandNumber:     g.handNumber,
		Phase:          g.phase,
		CommunityCards: slices.Clone(g.community),
		MainPot:        g.pot.Total(),
		SidePots:       g.pot.SidePots(),
		CurrentBet:     g.currentBet,
		MinRaise:       g.minRaise,
		DealerSeat:     g.dealer,
		SmallBlind:     g.cfg.SmallBlind,
		BigBlind:       g.cfg.BigBlind,
		Players:        g.playerStates(),
	}
	if g.current >= 0 && g.seats[g.current] != nil {
		state.CurrentPlayer = g.seats[g.current].ID
	}
	return state
}

func (g *Game) playerStates() []PlayerState {
	shown := g.phase == GameOver && g.results != nil && g.shownDown()

	states := make([]PlayerState, 0, len(g.index))
	for _, p := range g.seats {
		if p == nil {
			continue
		}
		ps := PlayerState{
			ID:           p.ID,
			Seat:         p.Seat,
			Chips:        p.Chips,
			CurrentBet:   p.CurrentBet,
			TotalBet:     p.TotalBet,
			Status:       p.Status,
			IsDealer:     p.IsDealer,
			IsSmallBlind: p.IsSmallBlind,
			IsBigBlind:   p.IsBigBlind,
		}
		if p.LastAction != nil {
			ps.LastAction = p.LastAction.String()
		}
		if shown && p.InHand() {
			ps.ShownCards = slices.Clone(p.HoleCards)
		}
		states = append(states, ps)
	}
	return states
}

// shownDown reports whether the last hand reached a showdown
func (g *Game) shownDown() bool {
	for _, r := range g.results {
		if r.Evaluation != nil {
			return true
		}
	}
	return false
}

// GetGameResults returns the results of the last finished hand, or nil while
// a hand is running
func (g *Game) GetGameResults() map[string]PlayerResult {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.results == nil {
		return nil
	}
	return copyResults(g.results)
}

// GetCommunityCards returns the board dealt so far
func (g *Game) GetCommunityCards() []deck.Card {
	g.mu.Lock()
	defer g.mu.Unlock()
	return slices.Clone(g.community)
}

// GetPlayerCards returns a player's private hole cards
func (g *Game) GetPlayerCards(playerID string) []deck.Card {
	g.mu.Lock()
	defer g.mu.Unlock()

	p := g.player(playerID)
	if p == nil {
		return nil
	}
	return slices.Clone(p.HoleCards)
}

// IsGameOver reports whether the current hand has finished
func (g *Game) IsGameOver() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.phase == GameOver
}

// Phase returns the current phase
func (g *Game) Phase() Phase {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.phase
}

// CurrentPlayer returns the ID of the player to act, or "" if nobody is
func (g *Game) CurrentPlayer() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.current < 0 || g.seats[g.current] == nil {
		return ""
	}
	return g.seats[g.current].ID
}

// TotalPot returns everything bet in the current hand
func (g *Game) TotalPot() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.pot.Total()
}

// PlayerChips returns a seated player's stack
func (g *Game) PlayerChips(playerID string) (int, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	p := g.player(playerID)
	if p == nil {
		return 0, false
	}
	return p.Chips, true
}

// Players returns seated player IDs in seat order
func (g *Game) Players() []string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ids := slices.Collect(maps.Keys(g.index))
	slices.SortFunc(ids, func(a, b string) int { return g.index[a] - g.index[b] })
	return ids
}

// ActionHistory returns the actions committed so far this hand
func (g *Game) ActionHistory() []ActionRecord {
	g.mu.Lock()
	defer g.mu.Unlock()
	return slices.Clone(g.history)
}
