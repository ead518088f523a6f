package evaluator

import (
	"fmt"
	"strings"

	"github.com/lox/holdem-engine/internal/deck"
)

// Tier is the category of a poker hand, weakest first
type Tier int

const (
	HighCard Tier = iota + 1
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns the readable name of the tier
func (t Tier) String() string {
	switch t {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// HandEvaluation is the ranked value of a hand.
//
// Primary and Secondary hold the ranks that define the tier (the quad rank,
// the trips and pair of a full house, both pairs of two pair, the high card
// of a straight). Kickers hold the remaining ranks, highest first. For a
// five-high straight the Ace counts as rank 1.
type HandEvaluation struct {
	Tier      Tier
	Primary   deck.Rank
	Secondary deck.Rank
	Kickers   []deck.Rank
	Cards     []deck.Card // the five cards making the hand, defining cards first
}

// Compare returns 1 if h beats other, -1 if other beats h and 0 on a tie.
// Ties split the pot.
func (h HandEvaluation) Compare(other HandEvaluation) int {
	if c := cmpInt(int(h.Tier), int(other.Tier)); c != 0 {
		return c
	}
	if c := cmpInt(int(h.Primary), int(other.Primary)); c != 0 {
		return c
	}
	if c := cmpInt(int(h.Secondary), int(other.Secondary)); c != 0 {
		return c
	}
	for i := 0; i < len(h.Kickers) && i < len(other.Kickers); i++ {
		if c := cmpInt(int(h.Kickers[i]), int(other.Kickers[i])); c != 0 {
			return c
		}
	}
	// Only reachable for partial hands evaluated before the river
	return cmpInt(len(h.Kickers), len(other.Kickers))
}

// Beats reports whether h is strictly stronger than other
func (h HandEvaluation) Beats(other HandEvaluation) bool {
	return h.Compare(other) > 0
}

// Ties reports whether h and other split a pot
func (h HandEvaluation) Ties(other HandEvaluation) bool {
	return h.Compare(other) == 0
}

// String returns the description followed by the cards, e.g.
// "Straight, Seven high [7♦ 6♥ 5♠ 4♣ 3♦]"
func (h HandEvaluation) String() string {
	cards := make([]string, len(h.Cards))
	for i, c := range h.Cards {
		cards[i] = c.String()
	}
	return fmt.Sprintf("%s [%s]", Describe(h), strings.Join(cards, " "))
}

// Describe returns a human-readable description of the hand
func Describe(h HandEvaluation) string {
	switch h.Tier {
	case RoyalFlush:
		return "Royal Flush"
	case StraightFlush:
		return fmt.Sprintf("Straight Flush, %s high", h.Primary.Name())
	case FourOfAKind:
		return fmt.Sprintf("Four of a Kind, %s", plural(h.Primary))
	case FullHouse:
		return fmt.Sprintf("Full House, %s full of %s", plural(h.Primary), plural(h.Secondary))
	case Flush:
		return fmt.Sprintf("Flush, %s high", h.Primary.Name())
	case Straight:
		return fmt.Sprintf("Straight, %s high", h.Primary.Name())
	case ThreeOfAKind:
		return fmt.Sprintf("Three of a Kind, %s", plural(h.Primary))
	case TwoPair:
		return fmt.Sprintf("Two Pair, %s and %s", plural(h.Primary), plural(h.Secondary))
	case OnePair:
		return fmt.Sprintf("One Pair, %s", plural(h.Primary))
	case HighCard:
		return fmt.Sprintf("High Card, %s", h.Primary.Name())
	default:
		return "Unknown"
	}
}

func plural(r deck.Rank) string {
	if r == deck.Six {
		return "Sixes"
	}
	return r.Name() + "s"
}

func cmpInt(a, b int) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}
