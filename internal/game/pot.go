package game

import (
	"fmt"
	"slices"
)

// SidePot is one layer of the pot and the players who can win it
type SidePot struct {
	Amount       int
	Eligible     []string // player IDs, seat order
	Contributors int      // players with chips in this layer, folded included
}

// Contribution is everything one player has put into the pot this hand
type Contribution struct {
	PlayerID string
	Seat     int
	Amount   int
	Folded   bool
}

// PotManager records contributions for the hand. Contributions outlive the
// player's seat, so chips left behind by a departed player stay in the pot.
type PotManager struct {
	contributions map[string]*Contribution
	total         int
}

// NewPotManager creates an empty pot manager
func NewPotManager() *PotManager {
	return &PotManager{contributions: make(map[string]*Contribution)}
}

// Reset empties the pot for a new hand
func (pm *PotManager) Reset() {
	clear(pm.contributions)
	pm.total = 0
}

// Add records chips put in by a player
func (pm *PotManager) Add(playerID string, seat, amount int) {
	if amount < 0 {
		panic(fmt.Sprintf("pot: negative contribution %d from %s", amount, playerID))
	}
	c, ok := pm.contributions[playerID]
	if !ok {
		c = &Contribution{PlayerID: playerID, Seat: seat}
		pm.contributions[playerID] = c
	}
	c.Amount += amount
	pm.total += amount
}

// MarkFolded excludes a player from winning while keeping their chips in the pot
func (pm *PotManager) MarkFolded(playerID string) {
	if c, ok := pm.contributions[playerID]; ok {
		c.Folded = true
	}
}

// Total returns the total amount in the pot
func (pm *PotManager) Total() int {
	return pm.total
}

// Contributions returns a copy of the contributions in seat order
func (pm *PotManager) Contributions() []Contribution {
	out := make([]Contribution, 0, len(pm.contributions))
	for _, c := range pm.contributions {
		out = append(out, *c)
	}
	slices.SortFunc(out, func(a, b Contribution) int { return a.Seat - b.Seat })
	return out
}

// SidePots splits the pot into layers, one per distinct contribution level.
// Layer i holds (level_i - level_i-1) from every player who put in at least
// level_i, and can be won by the non-folded players among them.
func (pm *PotManager) SidePots() []SidePot {
	pots := CalculateSidePots(pm.Contributions())

	sum := 0
	for _, p := range pots {
		sum += p.Amount
	}
	if sum != pm.total {
		panic(fmt.Sprintf("pot: side pots hold %d but %d was contributed", sum, pm.total))
	}
	return pots
}

// CalculateSidePots layers contributions into pots. A layer whose contributors
// have all folded (only possible when a player leaves mid-hand) is merged into
// the layer below it, or the one above when it is the lowest.
func CalculateSidePots(contributions []Contribution) []SidePot {
	levels := make([]int, 0, len(contributions))
	for _, c := range contributions {
		if c.Amount > 0 {
			levels = append(levels, c.Amount)
		}
	}
	slices.Sort(levels)
	levels = slices.Compact(levels)

	var pots []SidePot
	carry, carried := 0, 0
	prev := 0
	for _, level := range levels {
		pot := SidePot{Amount: carry}
		count := 0
		for _, c := range contributions {
			if c.Amount >= level {
				pot.Amount += level - prev
				count++
				if !c.Folded {
					pot.Eligible = append(pot.Eligible, c.PlayerID)
				}
			}
		}
		pot.Contributors = max(count, carried)
		carry, carried = 0, 0
		prev = level

		switch {
		case len(pot.Eligible) > 0:
			pots = append(pots, pot)
		case len(pots) > 0:
			pots[len(pots)-1].Amount += pot.Amount
			pots[len(pots)-1].Contributors = max(pots[len(pots)-1].Contributors, pot.Contributors)
		default:
			carry, carried = pot.Amount, pot.Contributors
		}
	}

	if carry > 0 {
		// Nobody live anywhere; callers award the whole pot before this happens
		pots = append(pots, SidePot{Amount: carry, Contributors: carried})
	}
	return pots
}

// SplitPot divides amount between winners, who must be given in payout order.
// Odd chips go one at a time from the front of the list.
func SplitPot(amount int, winners []string) map[string]int {
	shares := make(map[string]int, len(winners))
	if len(winners) == 0 || amount <= 0 {
		return shares
	}
	each := amount / len(winners)
	remainder := amount % len(winners)
	for i, id := range winners {
		shares[id] = each
		if i < remainder {
			shares[id]++
		}
	}
	return shares
}
