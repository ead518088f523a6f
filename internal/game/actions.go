package game

import (
	"fmt"
)

// HandlePlayerAction applies an action for the current actor. For Raise,
// amount is the raise on top of the call; it is ignored for other actions.
// It returns false without changing anything if the action is not legal.
func (g *Game) HandlePlayerAction(playerID string, action Action, amount int) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	p, err := g.validateLocked(playerID, action, amount)
	if err != nil {
		g.logger.Warn("Rejected action", "player", playerID, "action", action, "amount", amount, "error", err)
		return false
	}

	g.scheduler.Cancel()
	g.commitAction(p, action, amount, false, p.Seat+1)
	return true
}

// ValidateAction reports why an action would be rejected, or nil if
// HandlePlayerAction would accept it
func (g *Game) ValidateAction(playerID string, action Action, amount int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	_, err := g.validateLocked(playerID, action, amount)
	return err
}

func (g *Game) validateLocked(playerID string, action Action, amount int) (*Player, error) {
	if !g.phase.IsBetting() {
		return nil, fmt.Errorf("%w: phase is %s", ErrHandNotInProgress, g.phase)
	}
	p := g.player(playerID)
	if p == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPlayer, playerID)
	}
	if p.Seat != g.current {
		return nil, fmt.Errorf("%w: %s", ErrNotYourTurn, playerID)
	}
	if !p.CanAct() {
		return nil, fmt.Errorf("%w: %s is %s", ErrIllegalAction, playerID, p.Status)
	}

	toCall := g.currentBet - p.CurrentBet
	switch action {
	case Fold:
		return p, nil
	case AllIn:
		if p.Chips > toCall && !g.reopened(p) {
			return nil, fmt.Errorf("%w: action was not reopened for %s", ErrIllegalAction, playerID)
		}
		return p, nil
	case Check:
		if toCall > 0 {
			return nil, fmt.Errorf("%w: cannot check facing %d to call", ErrIllegalAction, toCall)
		}
		return p, nil
	case Call:
		if toCall <= 0 {
			return nil, fmt.Errorf("%w: nothing to call", ErrIllegalAction)
		}
		return p, nil
	case Raise:
		if amount < g.minRaise {
			return nil, fmt.Errorf("%w: raise of %d, minimum is %d", ErrRaiseTooSmall, amount, g.minRaise)
		}
		if amount > p.Chips-toCall {
			return nil, fmt.Errorf("%w: raise of %d over a call of %d, have %d", ErrInsufficientChips, amount, toCall, p.Chips)
		}
		if !g.reopened(p) {
			return nil, fmt.Errorf("%w: action was not reopened for %s", ErrIllegalAction, playerID)
		}
		return p, nil
	default:
		return nil, fmt.Errorf("%w: unknown action %d", ErrIllegalAction, action)
	}
}

// ValidActions lists the legal actions for a player, empty unless it is
// their turn
func (g *Game) ValidActions(playerID string) []ValidAction {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.phase.IsBetting() {
		return nil
	}
	p := g.player(playerID)
	if p == nil || p.Seat != g.current || !p.CanAct() {
		return nil
	}

	toCall := g.currentBet - p.CurrentBet
	actions := []ValidAction{{Action: Fold}}
	if toCall <= 0 {
		actions = append(actions, ValidAction{Action: Check})
	} else {
		call := min(toCall, p.Chips)
		actions = append(actions, ValidAction{Action: Call, MinAmount: call, MaxAmount: call})
	}
	reopened := g.reopened(p)
	if reopened && p.Chips-toCall >= g.minRaise {
		actions = append(actions, ValidAction{Action: Raise, MinAmount: g.minRaise, MaxAmount: p.Chips - toCall})
	}
	if reopened || p.Chips <= toCall {
		actions = append(actions, ValidAction{Action: AllIn, MinAmount: p.Chips, MaxAmount: p.Chips})
	}
	return actions
}

// reopened reports whether p may still raise. A player who has acted since
// the last full raise and now faces only a short all-in may call or fold.
func (g *Game) reopened(p *Player) bool {
	return !p.Acted || p.CurrentBet >= g.currentBet
}

// commitAction applies an already validated action and runs the hand forward.
// from is where the search for the next actor starts.
func (g *Game) commitAction(p *Player, action Action, amount int, timedOut bool, from int) {
	toCall := max(g.currentBet-p.CurrentBet, 0)
	paid := 0

	switch action {
	case Fold:
		p.Status = StatusFolded
		g.pot.MarkFolded(p.ID)
	case Check:
	case Call:
		paid = min(toCall, p.Chips)
		g.bet(p, paid)
	case Raise:
		paid = toCall + amount
		g.bet(p, paid)
		g.raiseTo(p)
	case AllIn:
		paid = p.Chips
		g.bet(p, paid)
		if p.CurrentBet > g.currentBet {
			g.raiseTo(p)
		}
	}
	p.Acted = true
	p.setLastAction(action)

	g.history = append(g.history, ActionRecord{
		PlayerID:  p.ID,
		Action:    action,
		Amount:    paid,
		Phase:     g.phase,
		Timestamp: g.clock.Now(),
		TimedOut:  timedOut,
	})

	g.logger.Debug("Action",
		"player", p.ID,
		"action", action,
		"paid", paid,
		"phase", g.phase,
		"pot", g.pot.Total(),
		"timed_out", timedOut)

	g.publish(PlayerActionEvent{
		TableID:   g.id,
		HandID:    g.handID,
		PlayerID:  p.ID,
		Action:    action,
		Amount:    paid,
		Phase:     g.phase,
		PotAfter:  g.pot.Total(),
		TimedOut:  timedOut,
		timestamp: g.clock.Now(),
	})

	g.settle(from)
}

// raiseTo makes p's bet the new table bet. A raise of at least the minimum
// reopens the action for everyone else and becomes the new minimum; a short
// all-in only lifts the bet.
func (g *Game) raiseTo(p *Player) {
	increment := p.CurrentBet - g.currentBet
	g.currentBet = p.CurrentBet
	if increment < g.minRaise {
		return
	}

	g.minRaise = increment
	g.lastRaiser = p.ID
	for _, other := range g.seats {
		if other != nil && other != p {
			other.Acted = false
		}
	}
}

// onTimeout folds the current actor if the given turn is still current
func (g *Game) onTimeout(turn uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.scheduler.Expire(turn) {
		g.logger.Debug("Ignoring stale action timer", "turn", turn)
		return
	}
	if !g.phase.IsBetting() || g.current < 0 {
		return
	}

	p := g.seats[g.current]
	g.logger.Warn("Action timed out, folding", "player", p.ID, "timeout", g.cfg.ActionTimeout)
	g.commitAction(p, Fold, 0, true, p.Seat+1)
}
