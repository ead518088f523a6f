package game

import (
	"sync"
	"time"

	"github.com/coder/quartz"
)

// TurnScheduler owns the single action timer of a table. Each armed turn gets
// a token; a timer that fires after its turn has been cancelled or re-armed
// presents a stale token and is ignored.
type TurnScheduler struct {
	clock   quartz.Clock
	timeout time.Duration

	mu    sync.Mutex
	timer *quartz.Timer
	turn  uint64
	armed bool
}

// NewTurnScheduler creates a scheduler. A zero timeout disables timers.
func NewTurnScheduler(clock quartz.Clock, timeout time.Duration) *TurnScheduler {
	return &TurnScheduler{clock: clock, timeout: timeout}
}

// Arm cancels any outstanding timer and starts a new one for the next turn.
// onExpire receives the turn token and should pass it to Expire before acting.
func (s *TurnScheduler) Arm(onExpire func(turn uint64)) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLocked()
	s.turn++
	if s.timeout <= 0 {
		return s.turn
	}

	turn := s.turn
	s.armed = true
	s.timer = s.clock.AfterFunc(s.timeout, func() { onExpire(turn) }, "turn")
	return turn
}

// Cancel stops the outstanding timer and invalidates its token
func (s *TurnScheduler) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLocked()
	s.turn++
}

// Expire claims the given turn for a timeout. It returns false when the turn
// has already been cancelled or superseded.
func (s *TurnScheduler) Expire(turn uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.armed || turn != s.turn {
		return false
	}
	s.armed = false
	s.timer = nil
	return true
}

// Armed reports whether a timer is outstanding
func (s *TurnScheduler) Armed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.armed
}

// Turn returns the current turn token
func (s *TurnScheduler) Turn() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.turn
}

func (s *TurnScheduler) stopLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.armed = false
}
