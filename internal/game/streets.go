package game

import (
	"fmt"
	"slices"

	"github.com/lox/holdem-engine/internal/deck"
	"github.com/lox/holdem-engine/internal/evaluator"
)

// PlayerResult is one participant's outcome for a finished hand
type PlayerResult struct {
	PlayerID   string
	Profit     int  // final chips minus chips at hand start
	Won        bool // collected at least part of a contested pot
	Winnings   int
	Evaluation *evaluator.HandEvaluation // nil unless shown down
	FinalChips int
	HoleCards  []deck.Card
	Folded     bool
	Departed   bool // left the table during the hand
}

// settle runs the hand forward until someone has to act or the hand is over.
// from is the seat to start looking for the next actor.
func (g *Game) settle(from int) {
	for {
		if g.liveCount() <= 1 {
			g.awardUncontested()
			return
		}
		if !g.roundClosed() {
			g.setActor(g.nextToAct(from))
			return
		}
		if !g.advanceStreet() {
			return
		}
		from = g.streetOpener()
	}
}

// roundClosed reports whether the current betting round is over: every player
// who can still act has matched the bet and acted since the last full raise.
// A single player left with chips who has already matched has nobody to bet
// against.
func (g *Game) roundClosed() bool {
	if g.liveCount() <= 1 {
		return true
	}
	order := ActingOrder(g.seats, 0)
	if len(order) == 0 {
		return true
	}
	if len(order) == 1 && g.seats[order[0]].CurrentBet >= g.currentBet {
		return true
	}
	for _, seat := range order {
		if g.needsAction(g.seats[seat]) {
			return false
		}
	}
	return true
}

func (g *Game) needsAction(p *Player) bool {
	return !p.Acted || p.CurrentBet < g.currentBet
}

func (g *Game) nextToAct(from int) int {
	for _, seat := range ActingOrder(g.seats, from) {
		if g.needsAction(g.seats[seat]) {
			return seat
		}
	}
	panic("game: betting round open with nobody to act")
}

// setActor hands the turn to seat and arms its timer. An actor who keeps the
// turn keeps their running timer.
func (g *Game) setActor(seat int) {
	if seat == g.current && g.scheduler.Armed() {
		return
	}
	g.current = seat
	turn := g.scheduler.Arm(g.onTimeout)
	g.logger.Debug("Turn", "player", g.seats[seat].ID, "seat", seat, "turn", turn, "to_call", g.currentBet-g.seats[seat].CurrentBet)
}

func (g *Game) liveCount() int {
	return len(seatsFrom(g.seats, 0, (*Player).InHand))
}

// advanceStreet closes the round and deals the next street. It returns false
// once the hand has been settled at showdown.
func (g *Game) advanceStreet() bool {
	g.checkPot()

	for _, p := range g.seats {
		if p != nil {
			p.resetForNewRound()
		}
	}
	g.currentBet = 0
	g.minRaise = g.cfg.BigBlind
	g.lastRaiser = ""
	g.current = -1

	next, cards := g.phase.next()
	if next == Showdown {
		g.showdown()
		return false
	}

	g.deck.Burn()
	g.community = append(g.community, g.deck.DealCards(cards)...)
	g.phase = next

	g.logger.Debug("Street", "phase", g.phase, "board", g.community, "pot", g.pot.Total())
	g.publish(StreetChangeEvent{
		TableID:        g.id,
		HandID:         g.handID,
		Phase:          g.phase,
		CommunityCards: slices.Clone(g.community),
		Pot:            g.pot.Total(),
		timestamp:      g.clock.Now(),
	})
	return true
}

// streetOpener picks the first seat to act after the flop: the small blind or
// the next live seat, or with rotation the seat after the previous opener.
func (g *Game) streetOpener() int {
	from := g.smallBlind
	if g.cfg.RotateStreetStarter && g.streetStarter >= 0 {
		from = g.streetStarter + 1
	}
	order := ActingOrder(g.seats, from)
	if len(order) == 0 {
		return from
	}
	g.streetStarter = order[0]
	return order[0]
}

// awardUncontested gives the whole pot to the last player holding cards
func (g *Game) awardUncontested() {
	g.checkPot()

	live := seatsFrom(g.seats, 0, (*Player).InHand)
	if len(live) != 1 {
		panic(fmt.Sprintf("game: uncontested award with %d live players", len(live)))
	}
	winner := g.seats[live[0]]
	total := g.pot.Total()
	winner.Chips += total

	g.logger.Info("Hand won uncontested", "winner", winner.ID, "pot", total)
	g.finishHand(map[string]int{winner.ID: total}, map[string]bool{winner.ID: total > winner.TotalBet}, nil, false)
}

// showdown ranks every live hand and awards each pot layer to its best
// eligible hands
func (g *Game) showdown() {
	g.phase = Showdown

	evals := make(map[string]evaluator.HandEvaluation)
	for _, seat := range seatsFrom(g.seats, 0, (*Player).InHand) {
		p := g.seats[seat]
		evals[p.ID] = evaluator.Evaluate(p.HoleCards, g.community)
	}

	// Payout order for odd chips: seat order starting left of the button
	payoutOrder := make(map[string]int)
	for i, seat := range seatsFrom(g.seats, g.dealer+1, (*Player).InHand) {
		payoutOrder[g.seats[seat].ID] = i
	}

	winnings := make(map[string]int)
	won := make(map[string]bool)
	for i, pot := range g.pot.SidePots() {
		if len(pot.Eligible) == 0 {
			panic(fmt.Sprintf("game: pot %d of %d has no eligible player at showdown", i, pot.Amount))
		}

		var best []string
		for _, id := range pot.Eligible {
			if len(best) == 0 {
				best = []string{id}
				continue
			}
			switch c := evals[id].Compare(evals[best[0]]); {
			case c > 0:
				best = []string{id}
			case c == 0:
				best = append(best, id)
			}
		}
		slices.SortFunc(best, func(a, b string) int { return payoutOrder[a] - payoutOrder[b] })

		for id, share := range SplitPot(pot.Amount, best) {
			winnings[id] += share
			g.seats[g.index[id]].Chips += share
			if pot.Contributors > 1 {
				won[id] = true
			}
		}
		g.logger.Debug("Pot awarded", "pot", i, "amount", pot.Amount, "winners", best, "hand", evaluator.Describe(evals[best[0]]))
	}

	g.logger.Info("Showdown", "board", g.community, "winnings", winnings)
	g.finishHand(winnings, won, evals, true)
}

// finishHand moves to GameOver, builds results and checks that no chips were
// created or lost
func (g *Game) finishHand(winnings map[string]int, won map[string]bool, evals map[string]evaluator.HandEvaluation, showdown bool) {
	g.scheduler.Cancel()
	g.current = -1
	g.phase = GameOver

	results := make(map[string]PlayerResult, len(g.startChips))
	before, after := 0, 0
	for id, start := range g.startChips {
		r := PlayerResult{PlayerID: id, Winnings: winnings[id], Won: won[id]}
		if p := g.player(id); p != nil {
			r.FinalChips = p.Chips
			r.HoleCards = slices.Clone(p.HoleCards)
			r.Folded = p.Status == StatusFolded
		} else if d, ok := g.departed[id]; ok {
			r.FinalChips = d.chips
			r.HoleCards = slices.Clone(d.holeCards)
			r.Folded = true
			r.Departed = true
		}
		if e, ok := evals[id]; ok {
			r.Evaluation = &e
		}
		r.Profit = r.FinalChips - start
		results[id] = r

		before += start
		after += r.FinalChips
	}
	g.results = results

	if before != after {
		g.logger.Error("Chip conservation violated", "before", before, "after", after, "hand_id", g.handID)
		panic(fmt.Sprintf("game: hand %s started with %d chips and ended with %d", g.handID, before, after))
	}

	g.logger.Info("Hand complete", "hand", g.handNumber, "hand_id", g.handID, "pot", g.pot.Total(), "showdown", showdown)
	g.publish(HandEndEvent{
		TableID:    g.id,
		HandID:     g.handID,
		Results:    copyResults(results),
		PotSize:    g.pot.Total(),
		Showdown:   showdown,
		FinalBoard: slices.Clone(g.community),
		timestamp:  g.clock.Now(),
	})
}

// checkPot panics if the pot no longer matches what players have bet
func (g *Game) checkPot() {
	bet := 0
	for _, c := range g.pot.Contributions() {
		p := g.player(c.PlayerID)
		_, left := g.departed[c.PlayerID]
		switch {
		case p != nil && p.TotalBet != c.Amount:
			g.logger.Error("Pot accounting violated", "player", p.ID, "total_bet", p.TotalBet, "contributed", c.Amount)
			panic(fmt.Sprintf("game: %s bet %d but the pot holds %d from them", p.ID, p.TotalBet, c.Amount))
		case p == nil && !left:
			panic(fmt.Sprintf("game: pot holds %d from unknown player %s", c.Amount, c.PlayerID))
		}
		bet += c.Amount
	}
	if bet != g.pot.Total() {
		g.logger.Error("Pot accounting violated", "pot", g.pot.Total(), "bets", bet)
		panic(fmt.Sprintf("game: pot holds %d but players bet %d", g.pot.Total(), bet))
	}
}

func copyResults(in map[string]PlayerResult) map[string]PlayerResult {
	out := make(map[string]PlayerResult, len(in))
	for id, r := range in {
		r.HoleCards = slices.Clone(r.HoleCards)
		out[id] = r
	}
	return out
}
