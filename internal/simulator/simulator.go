// Package simulator plays bot-driven hands on one engine table and checks
// that the money adds up.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/lox/holdem-engine/internal/bot"
	"github.com/lox/holdem-engine/internal/game"
	"github.com/lox/holdem-engine/internal/randutil"
	"github.com/lox/holdem-engine/internal/statistics"
)

// maxActionsPerHand bounds a hand; nine players cannot legally get near it
const maxActionsPerHand = 1000

// ErrChipsNotConserved is returned when the table total changes between hands
var ErrChipsNotConserved = errors.New("chips not conserved")

// Config holds configuration for one simulated table
type Config struct {
	Name       string
	Table      game.Config
	Players    int
	BuyIn      int
	Hands      int
	Strategies []string // assigned to seats in turn
	Seed       int64
	Logger     *log.Logger
}

// PlayerSummary is one bot's outcome over the run
type PlayerSummary struct {
	ID         string
	Strategy   string
	FinalChips int
	Busted     bool
	Stats      *statistics.Statistics
}

// Result summarises a run
type Result struct {
	Table      string
	Hands      int
	Showdowns  int
	BiggestPot int
	TotalChips int
	Players    []PlayerSummary // seat order
}

type seat struct {
	id       string
	strategy string
	agent    bot.Agent
	stats    *statistics.Statistics
}

// handEnd remembers the last HandEndEvent published by the table
type handEnd struct {
	last game.HandEndEvent
}

func (h *handEnd) OnEvent(event game.GameEvent) {
	if e, ok := event.(game.HandEndEvent); ok {
		h.last = e
	}
}

// Run plays up to cfg.Hands hands, stopping early when fewer than two
// players have chips or ctx is cancelled
func Run(ctx context.Context, cfg Config) (*Result, error) {
	if cfg.Players < 2 || cfg.Players > cfg.Table.MaxSeats {
		return nil, fmt.Errorf("table %s: %d players do not fit %d seats", cfg.Name, cfg.Players, cfg.Table.MaxSeats)
	}
	if len(cfg.Strategies) == 0 {
		cfg.Strategies = bot.Strategies
	}
	base := cfg.Logger
	if base == nil {
		base = log.New(io.Discard)
	}
	logger := base.WithPrefix("sim").With("table", cfg.Name)

	bus := game.NewEventBus()
	ends := &handEnd{}
	bus.Subscribe(ends)

	g := game.NewGame(cfg.Name, cfg.Table,
		game.WithLogger(base),
		game.WithRNG(randutil.New(cfg.Seed)),
		game.WithEventBus(bus))

	seats := make([]*seat, cfg.Players)
	byID := make(map[string]*seat, cfg.Players)
	for i := range seats {
		strategy := cfg.Strategies[i%len(cfg.Strategies)]
		agent, err := bot.New(strategy, randutil.New(cfg.Seed+int64(i)+1), logger)
		if err != nil {
			return nil, err
		}
		s := &seat{
			id:       fmt.Sprintf("bot%d-%s", i+1, strategy),
			strategy: strategy,
			agent:    agent,
			stats:    &statistics.Statistics{},
		}
		if _, err := g.Seat(s.id, cfg.BuyIn); err != nil {
			return nil, fmt.Errorf("seating %s: %w", s.id, err)
		}
		seats[i] = s
		byID[s.id] = s
	}

	total := cfg.BuyIn * cfg.Players
	result := &Result{Table: cfg.Name, TotalChips: total}

	for result.Hands < cfg.Hands && g.CanStartNewHand() {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if !g.StartNewHand() {
			break
		}
		if err := playHand(g, byID, logger); err != nil {
			return result, fmt.Errorf("table %s hand %d: %w", cfg.Name, result.Hands+1, err)
		}
		result.Hands++

		end := ends.last
		if end.Showdown {
			result.Showdowns++
		}
		result.BiggestPot = max(result.BiggestPot, end.PotSize)

		bb := float64(cfg.Table.BigBlind)
		for id, r := range g.GetGameResults() {
			byID[id].stats.Add(statistics.HandResult{
				NetBB:    float64(r.Profit) / bb,
				Showdown: r.Evaluation != nil,
				Won:      r.Won,
				PotBB:    float64(end.PotSize) / bb,
			})
		}

		if sum := tableChips(g); sum != total {
			return result, fmt.Errorf("%w: table %s holds %d after hand %d, started with %d",
				ErrChipsNotConserved, cfg.Name, sum, result.Hands, total)
		}
	}

	for _, s := range seats {
		chips, _ := g.PlayerChips(s.id)
		result.Players = append(result.Players, PlayerSummary{
			ID:         s.id,
			Strategy:   s.strategy,
			FinalChips: chips,
			Busted:     chips == 0,
			Stats:      s.stats,
		})
		logger.Debug("Player summary", "player", s.id, "stats", s.stats.Summary())
	}

	logger.Info("Simulation complete", "hands", result.Hands, "showdowns", result.Showdowns, "biggest_pot", result.BiggestPot)
	return result, nil
}

// playHand asks bots for actions until the hand is over. An illegal decision
// is logged and replaced with a fold.
func playHand(g *game.Game, seats map[string]*seat, logger *log.Logger) error {
	for range maxActionsPerHand {
		if g.IsGameOver() {
			return nil
		}
		id := g.CurrentPlayer()
		if id == "" {
			return fmt.Errorf("phase %s has no player to act", g.Phase())
		}
		s := seats[id]

		view := bot.View{PlayerID: id, HoleCards: g.GetPlayerCards(id), State: g.GetGameState()}
		d := s.agent.MakeDecision(view, g.ValidActions(id))
		if g.HandlePlayerAction(id, d.Action, d.Amount) {
			continue
		}
		logger.Warn("Illegal bot decision, folding",
			"player", id, "action", d.Action, "amount", d.Amount,
			"error", g.ValidateAction(id, d.Action, d.Amount))
		if !g.HandlePlayerAction(id, game.Fold, 0) {
			return fmt.Errorf("%s could not fold", id)
		}
	}
	return fmt.Errorf("hand did not finish within %d actions", maxActionsPerHand)
}

func tableChips(g *game.Game) int {
	sum := 0
	for _, ps := range g.GetGameState().Players {
		sum += ps.Chips
	}
	return sum
}
