package deck

import (
	"fmt"
	"math/rand/v2"
)

// Size is the number of cards in a standard deck
const Size = 52

// Deck represents a deck of playing cards. Cards are dealt from the tail.
type Deck struct {
	cards   []Card
	rng     *rand.Rand
	stacked []Card // deal order for stacked decks, nil when shuffled
}

// NewDeck creates a new standard 52-card deck shuffled with rng
func NewDeck(rng *rand.Rand) *Deck {
	if rng == nil {
		panic("deck: rng is required")
	}
	d := &Deck{
		cards: make([]Card, 0, Size),
		rng:   rng,
	}
	d.Reset()
	return d
}

// NewStackedDeck creates a deck that deals the given cards first, in order,
// followed by the rest of the deck in construction order. Reset restores the
// same order instead of shuffling, which keeps tests deterministic.
func NewStackedDeck(first ...Card) *Deck {
	seen := make(map[Card]bool, Size)
	order := make([]Card, 0, Size)
	for _, c := range first {
		if !c.IsValid() {
			panic(fmt.Sprintf("deck: invalid stacked card %v", c))
		}
		if seen[c] {
			panic(fmt.Sprintf("deck: duplicate stacked card %s", c))
		}
		seen[c] = true
		order = append(order, c)
	}
	for _, c := range fullDeck() {
		if !seen[c] {
			order = append(order, c)
		}
	}

	d := &Deck{
		cards:   make([]Card, 0, Size),
		stacked: order,
	}
	d.Reset()
	return d
}

func fullDeck() []Card {
	cards := make([]Card, 0, Size)
	for _, suit := range Suits {
		for rank := Two; rank <= Ace; rank++ {
			cards = append(cards, NewCard(suit, rank))
		}
	}
	return cards
}

// Reset restores the deck to a full 52 cards and shuffles it
func (d *Deck) Reset() {
	d.cards = d.cards[:0]

	if d.stacked != nil {
		// Tail dealing: store the deal order reversed
		for i := len(d.stacked) - 1; i >= 0; i-- {
			d.cards = append(d.cards, d.stacked[i])
		}
		return
	}

	d.cards = append(d.cards, fullDeck()...)
	d.Shuffle()
}

// Shuffle randomizes the order of the remaining cards (Fisher–Yates)
func (d *Deck) Shuffle() {
	if d.rng == nil {
		return
	}
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// DealCard removes and returns the card at the tail of the deck.
// A table never needs more than 26 cards, so running out is a bug and panics.
func (d *Deck) DealCard() Card {
	n := len(d.cards)
	if n == 0 {
		panic("deck: exhausted")
	}
	card := d.cards[n-1]
	d.cards = d.cards[:n-1]
	return card
}

// DealCards deals n cards from the deck
func (d *Deck) DealCards(n int) []Card {
	if n > len(d.cards) {
		panic(fmt.Sprintf("deck: exhausted, wanted %d cards with %d left", n, len(d.cards)))
	}
	cards := make([]Card, n)
	for i := range cards {
		cards[i] = d.DealCard()
	}
	return cards
}

// Burn discards the next card face down
func (d *Deck) Burn() {
	d.DealCard()
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return len(d.cards)
}
