package game

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTurnSchedulerFiresOnce(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	mClock := quartz.NewMock(t)
	s := NewTurnScheduler(mClock, 10*time.Second)

	var fired atomic.Int32
	var claimed atomic.Int32
	s.Arm(func(turn uint64) {
		fired.Add(1)
		if s.Expire(turn) {
			claimed.Add(1)
		}
	})
	assert.True(t, s.Armed())

	d, w := mClock.AdvanceNext()
	w.MustWait(ctx)
	assert.Equal(t, 10*time.Second, d)
	assert.Equal(t, int32(1), fired.Load())
	assert.Equal(t, int32(1), claimed.Load())
	assert.False(t, s.Armed())
}

func TestTurnSchedulerRearmCancelsPrevious(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	mClock := quartz.NewMock(t)
	s := NewTurnScheduler(mClock, 10*time.Second)

	var turns []uint64
	record := func(turn uint64) {
		if s.Expire(turn) {
			turns = append(turns, turn)
		}
	}

	first := s.Arm(record)
	mClock.Advance(5 * time.Second).MustWait(ctx)
	second := s.Arm(record)
	require.NotEqual(t, first, second)

	_, w := mClock.AdvanceNext()
	w.MustWait(ctx)
	assert.Equal(t, []uint64{second}, turns)
}

func TestTurnSchedulerRejectsStaleTokens(t *testing.T) {
	t.Parallel()

	s := NewTurnScheduler(quartz.NewMock(t), time.Minute)
	noop := func(uint64) {}

	first := s.Arm(noop)
	s.Cancel()
	assert.False(t, s.Expire(first), "cancelled turn")
	assert.False(t, s.Armed())

	second := s.Arm(noop)
	assert.False(t, s.Expire(first), "superseded turn")
	assert.True(t, s.Expire(second))
	assert.False(t, s.Expire(second), "turn can only expire once")
}

func TestTurnSchedulerWithoutTimeout(t *testing.T) {
	t.Parallel()

	s := NewTurnScheduler(quartz.NewMock(t), 0)
	turn := s.Arm(func(uint64) { t.Fatal("timer should not fire") })
	assert.False(t, s.Armed())
	assert.False(t, s.Expire(turn))
}
