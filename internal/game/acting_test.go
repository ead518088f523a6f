package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActingOrder(t *testing.T) {
	t.Parallel()

	active := func(id string, seat int) *Player {
		p := newPlayer(id, seat, 100)
		p.Status = StatusActive
		return p
	}
	allIn := active("d", 4)
	allIn.Chips = 0
	allIn.Status = StatusAllIn
	folded := active("b", 1)
	folded.Status = StatusFolded
	waiting := newPlayer("f", 6, 100)

	seats := []*Player{active("a", 0), folded, active("c", 2), nil, allIn, active("e", 5), waiting}

	tests := []struct {
		name string
		from int
		want []int
	}{
		{name: "from the first seat", from: 0, want: []int{0, 2, 5}},
		{name: "from the middle wraps", from: 3, want: []int{5, 0, 2}},
		{name: "start seat is inclusive", from: 2, want: []int{2, 5, 0}},
		{name: "past the end wraps", from: 7, want: []int{0, 2, 5}},
		{name: "negative wraps", from: -1, want: []int{0, 2, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ActingOrder(seats, tt.from))
		})
	}
}

func TestNextSeat(t *testing.T) {
	t.Parallel()

	seats := []*Player{newPlayer("a", 0, 10), nil, newPlayer("c", 2, 0), newPlayer("d", 3, 5)}

	assert.Equal(t, 3, nextSeat(seats, 0, funded))
	assert.Equal(t, 0, nextSeat(seats, 3, funded))
	assert.Equal(t, 0, nextSeat(seats, -1, funded))
	assert.Equal(t, -1, nextSeat([]*Player{nil, nil}, 0, funded))
}
