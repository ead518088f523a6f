package game

// ActingOrder returns the seats that can still make a betting decision,
// in seat order starting at from (inclusive) and wrapping around the table.
// Every "who acts" question in the engine goes through this function.
func ActingOrder(seats []*Player, from int) []int {
	return seatsFrom(seats, from, (*Player).CanAct)
}

// seatsFrom lists occupied seats matching keep, starting at from and wrapping
func seatsFrom(seats []*Player, from int, keep func(*Player) bool) []int {
	n := len(seats)
	if n == 0 {
		return nil
	}
	from = ((from % n) + n) % n

	var order []int
	for i := range n {
		seat := (from + i) % n
		if p := seats[seat]; p != nil && keep(p) {
			order = append(order, seat)
		}
	}
	return order
}

// nextSeat returns the first seat strictly after seat matching keep, or -1
func nextSeat(seats []*Player, seat int, keep func(*Player) bool) int {
	order := seatsFrom(seats, seat+1, keep)
	if len(order) == 0 {
		return -1
	}
	return order[0]
}

func funded(p *Player) bool { return p.Chips > 0 }

func dealtIn(p *Player) bool { return p.Status != StatusWaiting }
