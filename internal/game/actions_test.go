package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func headsUp(t *testing.T) *Game {
	t.Helper()
	g, _ := newTestGame(t, testConfig(),
		map[string]int{"alice": 100, "bob": 100}, []string{"alice", "bob"})
	require.True(t, g.StartNewHand())
	return g
}

func TestValidateActionReasons(t *testing.T) {
	t.Parallel()

	g, _ := newTestGame(t, testConfig(),
		map[string]int{"alice": 100, "bob": 100}, []string{"alice", "bob"})
	assert.ErrorIs(t, g.ValidateAction("alice", Call, 0), ErrHandNotInProgress)

	require.True(t, g.StartNewHand())

	tests := []struct {
		name   string
		player string
		action Action
		amount int
		want   error
	}{
		{name: "unknown player", player: "carol", action: Fold, want: ErrUnknownPlayer},
		{name: "out of turn", player: "bob", action: Check, want: ErrNotYourTurn},
		{name: "check facing a bet", player: "alice", action: Check, want: ErrIllegalAction},
		{name: "raise below big blind", player: "alice", action: Raise, amount: 1, want: ErrRaiseTooSmall},
		{name: "raise beyond stack", player: "alice", action: Raise, amount: 99, want: ErrInsufficientChips},
		{name: "raise that overflows", player: "alice", action: Raise, amount: math.MaxInt, want: ErrInsufficientChips},
		{name: "unknown action", player: "alice", action: Action(42), want: ErrIllegalAction},
		{name: "fold", player: "alice", action: Fold},
		{name: "call", player: "alice", action: Call},
		{name: "min raise", player: "alice", action: Raise, amount: 2},
		{name: "raise all chips", player: "alice", action: Raise, amount: 98},
		{name: "all in", player: "alice", action: AllIn},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := g.ValidateAction(tt.player, tt.action, tt.amount)
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestRejectedActionChangesNothing(t *testing.T) {
	t.Parallel()

	g := headsUp(t)
	before := g.GetGameState()

	assert.False(t, g.HandlePlayerAction("bob", Check, 0))
	assert.False(t, g.HandlePlayerAction("alice", Check, 0))
	assert.False(t, g.HandlePlayerAction("alice", Raise, 1))
	assert.False(t, g.HandlePlayerAction("ghost", Fold, 0))
	assert.False(t, g.HandlePlayerAction("alice", Raise, math.MaxInt))

	assert.Equal(t, before, g.GetGameState())
	assert.Empty(t, g.ActionHistory())
}

func TestNothingToCallAfterStreetChange(t *testing.T) {
	t.Parallel()

	g := headsUp(t)
	act(t, g, "alice", Call, 0)
	act(t, g, "bob", Check, 0)

	require.Equal(t, Flop, g.Phase())
	assert.ErrorIs(t, g.ValidateAction("alice", Call, 0), ErrIllegalAction)
	assert.NoError(t, g.ValidateAction("alice", Check, 0))
}

func TestMinimumRaiseFollowsLastRaise(t *testing.T) {
	t.Parallel()

	g := headsUp(t)

	act(t, g, "alice", Raise, 4) // calls 1, raises 4: bet is 6
	state := g.GetGameState()
	assert.Equal(t, 6, state.CurrentBet)
	assert.Equal(t, 4, state.MinRaise)

	assert.ErrorIs(t, g.ValidateAction("bob", Raise, 3), ErrRaiseTooSmall)
	act(t, g, "bob", Raise, 10) // bet is 16
	state = g.GetGameState()
	assert.Equal(t, 16, state.CurrentBet)
	assert.Equal(t, 10, state.MinRaise)
	assert.Equal(t, "alice", state.CurrentPlayer, "a full raise reopens the action")

	act(t, g, "alice", Call, 0)
	assert.Equal(t, Flop, g.Phase())
	assert.Equal(t, 2, g.GetGameState().MinRaise, "minimum raise resets to the big blind each street")
}

func TestShortAllInDoesNotReopenAction(t *testing.T) {
	t.Parallel()

	// a has the button, b the small blind, c the big blind with 7 chips
	g, _ := newTestGame(t, testConfig(),
		map[string]int{"a": 100, "b": 100, "c": 7}, []string{"a", "b", "c"})
	require.True(t, g.StartNewHand())

	act(t, g, "a", Raise, 4) // bet 6
	act(t, g, "b", Call, 0)
	act(t, g, "c", AllIn, 0) // 7 total, one more than the bet

	state := g.GetGameState()
	assert.Equal(t, 7, state.CurrentBet)
	assert.Equal(t, 4, state.MinRaise, "short all-in leaves the minimum raise alone")
	assert.Equal(t, "a", state.CurrentPlayer)

	assert.Equal(t, []ValidAction{
		{Action: Fold},
		{Action: Call, MinAmount: 1, MaxAmount: 1},
	}, g.ValidActions("a"), "a already acted and may only call or fold")
	assert.ErrorIs(t, g.ValidateAction("a", Raise, 4), ErrIllegalAction)
	assert.ErrorIs(t, g.ValidateAction("a", AllIn, 0), ErrIllegalAction)
	assert.False(t, g.HandlePlayerAction("a", Raise, 10))

	act(t, g, "a", Call, 0)
	assert.Equal(t, "b", g.CurrentPlayer())
	act(t, g, "b", Call, 0)
	assert.Equal(t, Flop, g.Phase())
	assert.Equal(t, 21, g.TotalPot())
}

func TestCallShortIsImplicitAllIn(t *testing.T) {
	t.Parallel()

	g, _ := newTestGame(t, testConfig(),
		map[string]int{"alice": 100, "bob": 30}, []string{"alice", "bob"})
	require.True(t, g.StartNewHand())

	act(t, g, "alice", Raise, 50) // bet 52
	act(t, g, "bob", Call, 0)     // only 28 more to give

	chips, ok := g.PlayerChips("bob")
	require.True(t, ok)
	assert.Zero(t, chips)
	require.True(t, g.IsGameOver(), "board runs out with bob all-in")

	history := g.ActionHistory()
	require.Len(t, history, 2)
	assert.Equal(t, Call, history[1].Action)
	assert.Equal(t, 28, history[1].Amount)

	results := g.GetGameResults()
	assert.Equal(t, 130, results["alice"].FinalChips+results["bob"].FinalChips)
}

func TestValidActions(t *testing.T) {
	t.Parallel()

	g := headsUp(t)

	assert.Nil(t, g.ValidActions("bob"), "not bob's turn")
	assert.Equal(t, []ValidAction{
		{Action: Fold},
		{Action: Call, MinAmount: 1, MaxAmount: 1},
		{Action: Raise, MinAmount: 2, MaxAmount: 98},
		{Action: AllIn, MinAmount: 99, MaxAmount: 99},
	}, g.ValidActions("alice"))

	act(t, g, "alice", Call, 0)
	assert.Equal(t, []ValidAction{
		{Action: Fold},
		{Action: Check},
		{Action: Raise, MinAmount: 2, MaxAmount: 98},
		{Action: AllIn, MinAmount: 98, MaxAmount: 98},
	}, g.ValidActions("bob"))
}

func TestBigBlindOptionAndRotation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		rotate bool
		turn   string
		river  string
	}{
		{name: "rotating opener", rotate: true, turn: "c", river: "a"},
		{name: "small blind opens every street", rotate: false, turn: "b", river: "b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := testConfig()
			cfg.RotateStreetStarter = tt.rotate
			g, _ := newTestGame(t, cfg,
				map[string]int{"a": 100, "b": 100, "c": 100}, []string{"a", "b", "c"})
			require.True(t, g.StartNewHand())

			assert.Equal(t, "a", g.CurrentPlayer(), "first to act sits left of the big blind")
			act(t, g, "a", Call, 0)
			act(t, g, "b", Call, 0)
			assert.Equal(t, "c", g.CurrentPlayer(), "big blind gets an option")
			act(t, g, "c", Check, 0)

			require.Equal(t, Flop, g.Phase())
			assert.Equal(t, "b", g.CurrentPlayer())
			act(t, g, "b", Check, 0)
			act(t, g, "c", Check, 0)
			act(t, g, "a", Check, 0)

			require.Equal(t, Turn, g.Phase())
			assert.Equal(t, tt.turn, g.CurrentPlayer())
			for g.Phase() == Turn {
				act(t, g, g.CurrentPlayer(), Check, 0)
			}

			require.Equal(t, River, g.Phase())
			assert.Equal(t, tt.river, g.CurrentPlayer())
		})
	}
}

func TestButtonMovesBetweenHands(t *testing.T) {
	t.Parallel()

	g, _ := newTestGame(t, testConfig(),
		map[string]int{"a": 100, "b": 100, "c": 100}, []string{"a", "b", "c"})

	for _, want := range []int{0, 1, 2, 0} {
		require.True(t, g.StartNewHand())
		assert.Equal(t, want, g.GetGameState().DealerSeat)
		for !g.IsGameOver() {
			act(t, g, g.CurrentPlayer(), Fold, 0)
		}
	}
	assert.Equal(t, 4, g.GetGameState().HandNumber)
	assert.Equal(t, 300, totalChips(g))
}
