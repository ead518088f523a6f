package game

import (
	"fmt"
	"io"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/holdem-engine/internal/deck"
	"github.com/lox/holdem-engine/internal/gameid"
	"github.com/lox/holdem-engine/internal/randutil"
)

// MaxTableSeats caps a table so one hand never needs more than 26 cards
// (9 × 2 hole cards, 5 community, 3 burns).
const MaxTableSeats = 9

// Config holds the fixed parameters of a table
type Config struct {
	SmallBlind    int
	BigBlind      int
	MaxSeats      int
	ActionTimeout time.Duration // zero disables the action timer

	// RotateStreetStarter makes each post-flop street open one seat after the
	// seat that opened the previous street. When false every post-flop street
	// opens at the small blind, or the next live seat.
	RotateStreetStarter bool
}

// DefaultConfig returns a 1/2 six-seat table with a 30 second action timer
func DefaultConfig() Config {
	return Config{
		SmallBlind:          1,
		BigBlind:            2,
		MaxSeats:            6,
		ActionTimeout:       30 * time.Second,
		RotateStreetStarter: true,
	}
}

// Validate checks the configuration is playable
func (c Config) Validate() error {
	if c.SmallBlind <= 0 {
		return fmt.Errorf("small blind must be positive, got %d", c.SmallBlind)
	}
	if c.BigBlind <= c.SmallBlind {
		return fmt.Errorf("big blind (%d) must be greater than small blind (%d)", c.BigBlind, c.SmallBlind)
	}
	if c.MaxSeats < 2 || c.MaxSeats > MaxTableSeats {
		return fmt.Errorf("max seats must be between 2 and %d, got %d", MaxTableSeats, c.MaxSeats)
	}
	if c.ActionTimeout < 0 {
		return fmt.Errorf("action timeout must not be negative, got %s", c.ActionTimeout)
	}
	return nil
}

// Option configures a Game during creation
type Option func(*options)

type options struct {
	logger *log.Logger
	clock  quartz.Clock
	rng    *rand.Rand
	deck   *deck.Deck
	events EventBus
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithClock sets the clock used for action timers and timestamps
func WithClock(clock quartz.Clock) Option {
	return func(o *options) { o.clock = clock }
}

// WithRNG shuffles with rng instead of a time-seeded generator
func WithRNG(rng *rand.Rand) Option {
	return func(o *options) { o.rng = rng }
}

// WithDeck uses the given deck, typically deck.NewStackedDeck in tests.
// It takes precedence over WithRNG for dealing.
func WithDeck(d *deck.Deck) Option {
	return func(o *options) { o.deck = d }
}

// WithEventBus publishes game events to bus
func WithEventBus(bus EventBus) Option {
	return func(o *options) { o.events = bus }
}

// departure is what a player who left mid-hand leaves behind for results
type departure struct {
	seat      int
	chips     int
	holeCards []deck.Card
}

// ActionRecord is one committed action in the current hand
type ActionRecord struct {
	PlayerID  string
	Action    Action
	Amount    int // chips put in by this action
	Phase     Phase
	Timestamp time.Time
	TimedOut  bool
}

// Game is the rules engine for one table. Seats form an arena indexed by
// seat number with a player ID lookup.
type Game struct {
	mu sync.Mutex

	id     string
	cfg    Config
	logger *log.Logger
	clock  quartz.Clock
	deck   *deck.Deck
	events EventBus
	ids    *gameid.Generator

	seats []*Player
	index map[string]int

	phase      Phase
	handID     string
	handNumber int
	community  []deck.Card
	pot        *PotManager
	currentBet int
	minRaise   int
	lastRaiser string

	current       int // seat to act, -1 when nobody
	dealer        int // -1 before the first hand
	smallBlind    int
	bigBlind      int
	streetStarter int // seat that opened the previous post-flop street

	scheduler *TurnScheduler

	startChips map[string]int // hand participants
	departed   map[string]departure
	results    map[string]PlayerResult
	history    []ActionRecord
}

// NewGame creates a table. It panics on an invalid config.
func NewGame(id string, cfg Config, opts ...Option) *Game {
	if err := cfg.Validate(); err != nil {
		panic("game: " + err.Error())
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}
	if o.clock == nil {
		o.clock = quartz.NewReal()
	}
	if o.rng == nil {
		o.rng = randutil.NewFromTime()
	}
	if o.deck == nil {
		o.deck = deck.NewDeck(o.rng)
	}
	if o.events == nil {
		o.events = NewEventBus()
	}

	return &Game{
		id:            id,
		cfg:           cfg,
		logger:        o.logger.WithPrefix("game").With("table", id),
		clock:         o.clock,
		deck:          o.deck,
		events:        o.events,
		ids:           gameid.NewGenerator(randutil.Intn{R: o.rng}, o.clock),
		seats:         make([]*Player, cfg.MaxSeats),
		index:         make(map[string]int),
		phase:         Waiting,
		pot:           NewPotManager(),
		current:       -1,
		dealer:        -1,
		smallBlind:    -1,
		bigBlind:      -1,
		streetStarter: -1,
		scheduler:     NewTurnScheduler(o.clock, cfg.ActionTimeout),
		departed:      make(map[string]departure),
	}
}

// ID returns the table identifier
func (g *Game) ID() string {
	return g.id
}

// Config returns the table configuration
func (g *Game) Config() Config {
	return g.cfg
}

// Events returns the bus the table publishes to
func (g *Game) Events() EventBus {
	return g.events
}

// AddPlayer seats a player with a buy-in at the first free seat.
// It returns false if the table is full or the ID is already seated.
func (g *Game) AddPlayer(id string, chips int) bool {
	_, err := g.Seat(id, chips)
	return err == nil
}

// Seat is AddPlayer returning the seat number or the reason for rejection.
// Players who join mid-hand wait for the next hand.
func (g *Game) Seat(id string, chips int) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if chips <= 0 {
		return -1, ErrInvalidBuyIn
	}
	if _, ok := g.index[id]; ok {
		return -1, fmt.Errorf("%w: %s", ErrDuplicatePlayer, id)
	}
	if _, ok := g.departed[id]; ok && g.phase.IsBetting() {
		return -1, fmt.Errorf("%w: %s left this hand", ErrDuplicatePlayer, id)
	}

	for seat, p := range g.seats {
		if p != nil {
			continue
		}
		g.seats[seat] = newPlayer(id, seat, chips)
		g.index[id] = seat
		g.logger.Info("Player seated", "player", id, "seat", seat, "chips", chips)
		return seat, nil
	}
	return -1, ErrTableFull
}

// RemovePlayer takes a player off the table. A player still holding live
// cards folds first through the normal action path, and their chips already
// in the pot stay there. With fewer than two players left the game is over.
func (g *Game) RemovePlayer(id string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	seat, ok := g.index[id]
	if !ok {
		return false
	}
	p := g.seats[seat]

	if g.phase.IsBetting() && p.InHand() {
		from := g.current
		if seat == g.current {
			g.scheduler.Cancel()
			from = seat + 1
		}
		g.logger.Info("Player left mid-hand, folding", "player", id)
		g.commitAction(p, Fold, 0, false, from)
	}

	if g.phase.IsBetting() && dealtIn(p) {
		g.departed[id] = departure{seat: seat, chips: p.Chips, holeCards: p.HoleCards}
	}

	g.seats[seat] = nil
	delete(g.index, id)
	g.logger.Info("Player removed", "player", id, "seat", seat, "chips", p.Chips)

	if !g.phase.IsBetting() && g.seatedCount() < 2 {
		g.phase = GameOver
	}
	return true
}

func (g *Game) seatedCount() int {
	return len(g.index)
}

func (g *Game) player(id string) *Player {
	seat, ok := g.index[id]
	if !ok {
		return nil
	}
	return g.seats[seat]
}

func (g *Game) publish(event GameEvent) {
	g.events.Publish(event)
}
