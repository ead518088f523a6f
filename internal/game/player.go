package game

import (
	"fmt"

	"github.com/lox/holdem-engine/internal/deck"
)

// PlayerStatus is a player's standing in the current hand
type PlayerStatus int

const (
	StatusWaiting PlayerStatus = iota
	StatusActive
	StatusFolded
	StatusAllIn
)

func (s PlayerStatus) String() string {
	switch s {
	case StatusWaiting:
		return "waiting"
	case StatusActive:
		return "active"
	case StatusFolded:
		return "folded"
	case StatusAllIn:
		return "all_in"
	default:
		return "unknown"
	}
}

// Player is a seated player. Chips are owned by the engine while seated and
// only change through blinds, bets and pot awards.
type Player struct {
	ID         string
	Seat       int
	Chips      int
	HoleCards  []deck.Card
	CurrentBet int // this betting round
	TotalBet   int // this hand
	Status     PlayerStatus

	IsDealer     bool
	IsSmallBlind bool
	IsBigBlind   bool

	LastAction *Action
	// Acted is set once the player has acted since the last full raise
	Acted bool
}

func newPlayer(id string, seat, chips int) *Player {
	return &Player{
		ID:     id,
		Seat:   seat,
		Chips:  chips,
		Status: StatusWaiting,
	}
}

// ResetForNewHand clears cards, bets and position markers, keeping chips and seat
func (p *Player) ResetForNewHand() {
	p.HoleCards = nil
	p.CurrentBet = 0
	p.TotalBet = 0
	p.Status = StatusWaiting
	p.IsDealer = false
	p.IsSmallBlind = false
	p.IsBigBlind = false
	p.LastAction = nil
	p.Acted = false
}

func (p *Player) resetForNewRound() {
	p.CurrentBet = 0
	p.LastAction = nil
	p.Acted = false
}

// InHand reports whether the player still holds live cards
func (p *Player) InHand() bool {
	return p.Status == StatusActive || p.Status == StatusAllIn
}

// CanAct reports whether the player can still make betting decisions
func (p *Player) CanAct() bool {
	return p.Status == StatusActive && p.Chips > 0
}

// commit moves chips from the stack into the current bet
func (p *Player) commit(amount int) {
	if amount < 0 || amount > p.Chips {
		panic(fmt.Sprintf("game: player %s committing %d chips from a stack of %d", p.ID, amount, p.Chips))
	}
	p.Chips -= amount
	p.CurrentBet += amount
	p.TotalBet += amount
	if p.Chips == 0 {
		p.Status = StatusAllIn
	}
}

func (p *Player) setLastAction(a Action) {
	p.LastAction = &a
}
