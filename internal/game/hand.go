package game

import "github.com/lox/holdem-engine/internal/deck"

// CanStartNewHand reports whether no hand is running and at least two
// seated players have chips
func (g *Game) CanStartNewHand() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.canStartLocked()
}

func (g *Game) canStartLocked() bool {
	if g.phase.IsBetting() || g.phase == Showdown {
		return false
	}
	return len(seatsFrom(g.seats, 0, funded)) >= 2
}

// StartNewHand moves the button, posts blinds, deals hole cards and arms the
// timer for the first actor. It returns false if a hand cannot start.
func (g *Game) StartNewHand() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.canStartLocked() {
		g.logger.Warn("Cannot start hand", "phase", g.phase, "funded", len(seatsFrom(g.seats, 0, funded)))
		return false
	}

	g.resetHand()
	g.assignPositions()
	g.dealHoleCards()
	g.postBlinds()

	g.logger.Info("Hand started",
		"hand", g.handNumber,
		"hand_id", g.handID,
		"dealer", g.dealer,
		"players", len(g.startChips))

	g.publish(HandStartEvent{
		TableID:    g.id,
		HandID:     g.handID,
		HandNumber: g.handNumber,
		DealerSeat: g.dealer,
		Players:    g.playerStates(),
		SmallBlind: g.cfg.SmallBlind,
		BigBlind:   g.cfg.BigBlind,
		InitialPot: g.pot.Total(),
		timestamp:  g.clock.Now(),
	})

	g.settle(g.bigBlind + 1)
	return true
}

func (g *Game) resetHand() {
	g.scheduler.Cancel()

	g.handNumber++
	g.handID = g.ids.Generate()
	g.phase = PreFlop
	g.community = make([]deck.Card, 0, 5)
	g.pot.Reset()
	g.currentBet = 0
	g.minRaise = g.cfg.BigBlind
	g.lastRaiser = ""
	g.current = -1
	g.streetStarter = -1
	g.results = nil
	g.history = nil
	clear(g.departed)

	g.startChips = make(map[string]int)
	for _, p := range g.seats {
		if p == nil {
			continue
		}
		p.ResetForNewHand()
		if p.Chips > 0 {
			p.Status = StatusActive
			g.startChips[p.ID] = p.Chips
		}
	}

	g.deck.Reset()
}

// assignPositions moves the button to the next funded seat and places the
// blinds after it. Heads-up the dealer posts the small blind.
func (g *Game) assignPositions() {
	g.dealer = nextSeat(g.seats, g.dealer, dealtIn)
	if len(g.startChips) == 2 {
		g.smallBlind = g.dealer
	} else {
		g.smallBlind = nextSeat(g.seats, g.dealer, dealtIn)
	}
	g.bigBlind = nextSeat(g.seats, g.smallBlind, dealtIn)

	g.seats[g.dealer].IsDealer = true
	g.seats[g.smallBlind].IsSmallBlind = true
	g.seats[g.bigBlind].IsBigBlind = true
}

// dealHoleCards deals one card at a time to each player, starting left of
// the button
func (g *Game) dealHoleCards() {
	order := seatsFrom(g.seats, g.dealer+1, dealtIn)
	for range 2 {
		for _, seat := range order {
			p := g.seats[seat]
			p.HoleCards = append(p.HoleCards, g.deck.DealCard())
		}
	}
}

// postBlinds collects the blinds. A short stack posts what it has and is
// all-in, and the table bet is the larger blind actually posted.
func (g *Game) postBlinds() {
	sb := g.seats[g.smallBlind]
	bb := g.seats[g.bigBlind]

	g.bet(sb, min(g.cfg.SmallBlind, sb.Chips))
	g.bet(bb, min(g.cfg.BigBlind, bb.Chips))

	g.currentBet = max(sb.CurrentBet, bb.CurrentBet)
	g.minRaise = g.cfg.BigBlind
	g.lastRaiser = bb.ID

	g.logger.Debug("Blinds posted",
		"small_blind", sb.ID, "sb_amount", sb.CurrentBet,
		"big_blind", bb.ID, "bb_amount", bb.CurrentBet)
}

// bet moves chips from a player into the pot
func (g *Game) bet(p *Player, amount int) {
	p.commit(amount)
	g.pot.Add(p.ID, p.Seat, amount)
}
