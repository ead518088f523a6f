package game

import (
	"reflect"
	"sync"
	"time"

	"github.com/lox/holdem-engine/internal/deck"
)

// EventType identifies a game event
type EventType string

const (
	EventTypeHandStart    EventType = "hand_start"
	EventTypeHandEnd      EventType = "hand_end"
	EventTypeStreetChange EventType = "street_change"
	EventTypePlayerAction EventType = "player_action"
)

func (et EventType) String() string {
	return string(et)
}

// GameEvent is anything the table publishes to subscribers
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// HandStartEvent is published once blinds are posted and cards are dealt
type HandStartEvent struct {
	TableID    string
	HandID     string
	HandNumber int
	DealerSeat int
	Players    []PlayerState
	SmallBlind int
	BigBlind   int
	InitialPot int
	timestamp  time.Time
}

func (e HandStartEvent) EventType() EventType { return EventTypeHandStart }
func (e HandStartEvent) Timestamp() time.Time { return e.timestamp }

// PlayerActionEvent is published for every committed action, including
// folds synthesized by the action timer
type PlayerActionEvent struct {
	TableID   string
	HandID    string
	PlayerID  string
	Action    Action
	Amount    int
	Phase     Phase
	PotAfter  int
	TimedOut  bool
	timestamp time.Time
}

func (e PlayerActionEvent) EventType() EventType { return EventTypePlayerAction }
func (e PlayerActionEvent) Timestamp() time.Time { return e.timestamp }

// StreetChangeEvent is published when community cards are dealt for a new street
type StreetChangeEvent struct {
	TableID        string
	HandID         string
	Phase          Phase
	CommunityCards []deck.Card
	Pot            int
	timestamp      time.Time
}

func (e StreetChangeEvent) EventType() EventType { return EventTypeStreetChange }
func (e StreetChangeEvent) Timestamp() time.Time { return e.timestamp }

// HandEndEvent is published when the hand reaches GameOver
type HandEndEvent struct {
	TableID    string
	HandID     string
	Results    map[string]PlayerResult
	PotSize    int
	Showdown   bool // false when everyone else folded
	FinalBoard []deck.Card
	timestamp  time.Time
}

func (e HandEndEvent) EventType() EventType { return EventTypeHandEnd }
func (e HandEndEvent) Timestamp() time.Time { return e.timestamp }

// Winners returns the IDs of players who won chips this hand
func (e HandEndEvent) Winners() []string {
	var ids []string
	for id, r := range e.Results {
		if r.Won {
			ids = append(ids, id)
		}
	}
	return ids
}

// EventSubscriber receives game events. Events are delivered synchronously
// while the table is locked, so subscribers must not call back into the Game.
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// SubscriberFunc adapts a function to EventSubscriber
type SubscriberFunc func(GameEvent)

func (f SubscriberFunc) OnEvent(event GameEvent) { f(event) }

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus is an in-memory event bus
type SimpleEventBus struct {
	mu          sync.RWMutex
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() *SimpleEventBus {
	return &SimpleEventBus{}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber. Subscribers of an uncomparable type,
// such as SubscriberFunc, are never matched and stay subscribed.
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	if subscriber == nil || !reflect.TypeOf(subscriber).Comparable() {
		return
	}

	bus.mu.Lock()
	defer bus.mu.Unlock()
	for i, sub := range bus.subscribers {
		if sub == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			return
		}
	}
}

// Publish sends an event to all subscribers
func (bus *SimpleEventBus) Publish(event GameEvent) {
	bus.mu.RLock()
	subs := make([]EventSubscriber, len(bus.subscribers))
	copy(subs, bus.subscribers)
	bus.mu.RUnlock()

	for _, subscriber := range subs {
		subscriber.OnEvent(event)
	}
}
