// Package game implements the No-Limit Texas Hold'em rules engine for a single table.
//
// The main type is Game, which owns the seats at one table and runs hands
// through the phases Waiting → PreFlop → Flop → Turn → River → Showdown →
// GameOver, validating actions, maintaining pots and choosing who acts next.
//
// # Basic Usage
//
//	g := game.NewGame("table-1", game.Config{SmallBlind: 1, BigBlind: 2, MaxSeats: 6, ActionTimeout: 30 * time.Second})
//	g.AddPlayer("alice", 100)
//	g.AddPlayer("bob", 100)
//	g.StartNewHand()
//	g.HandlePlayerAction("alice", game.Call, 0)
//	if g.IsGameOver() {
//	    results := g.GetGameResults()
//	}
//
// # Deterministic Testing
//
// Randomness and time are injected. Use WithRNG(randutil.New(seed)) or
// WithDeck(deck.NewStackedDeck(...)) for reproducible cards and
// WithClock(quartz.NewMock(t)) to drive action timeouts by hand.
//
// # Architecture
//
// Game delegates to specialized components:
//   - deck.Deck: shuffling and dealing (tail dealing, one burn per street)
//   - evaluator.Evaluate: best five of seven at showdown
//   - PotManager: per-player contributions and side pot layering
//   - TurnScheduler: the single cancellable action timer
//   - ActingOrder: the one function deciding which seats can act and in what order
//
// All exported Game methods are safe for concurrent use. Calls on one Game are
// serialized by its mutex; separate Games share nothing.
package game
