// Package evaluator ranks Texas Hold'em hands.
//
// Evaluate picks the best five cards out of a player's hole cards and the
// board by scoring every five-card subset (at most 21 for seven cards) with
// EvaluateFive and keeping the maximum under HandEvaluation.Compare.
package evaluator

import (
	"fmt"
	"slices"

	"github.com/lox/holdem-engine/internal/deck"
)

// Evaluate returns the best hand that can be made from hole and community cards.
// With fewer than five cards in total only rank groupings are scored; straights
// and flushes need five cards.
func Evaluate(hole, community []deck.Card) HandEvaluation {
	all := make([]deck.Card, 0, len(hole)+len(community))
	all = append(all, hole...)
	all = append(all, community...)

	if len(all) == 0 {
		panic("evaluator: no cards to evaluate")
	}
	checkDistinct(all)

	if len(all) < 5 {
		return evaluateGroups(all)
	}

	var best HandEvaluation
	found := false
	forEachFive(all, func(five []deck.Card) {
		eval := EvaluateFive(five)
		if !found || eval.Beats(best) {
			best = eval
			found = true
		}
	})
	return best
}

// forEachFive calls fn with every 5-card subset of cards. The slice passed to
// fn is reused between calls.
func forEachFive(cards []deck.Card, fn func([]deck.Card)) {
	n := len(cards)
	five := make([]deck.Card, 5)
	for a := 0; a < n-4; a++ {
		for b := a + 1; b < n-3; b++ {
			for c := b + 1; c < n-2; c++ {
				for d := c + 1; d < n-1; d++ {
					for e := d + 1; e < n; e++ {
						five[0], five[1], five[2], five[3], five[4] = cards[a], cards[b], cards[c], cards[d], cards[e]
						fn(five)
					}
				}
			}
		}
	}
}

// EvaluateFive classifies exactly five cards
func EvaluateFive(cards []deck.Card) HandEvaluation {
	if len(cards) != 5 {
		panic(fmt.Sprintf("evaluator: EvaluateFive needs 5 cards, got %d", len(cards)))
	}

	groups := groupByRank(cards)
	flush := isFlush(cards)
	straightHigh, straight := straightHigh(groups)

	if straight {
		ordered := straightOrder(cards, straightHigh)
		tier := Straight
		if flush {
			tier = StraightFlush
			if straightHigh == deck.Ace {
				tier = RoyalFlush
			}
		}
		return HandEvaluation{Tier: tier, Primary: straightHigh, Cards: ordered}
	}

	ordered := groupOrder(cards, groups)

	switch {
	case groups[0].count == 4:
		return HandEvaluation{
			Tier:    FourOfAKind,
			Primary: groups[0].rank,
			Kickers: []deck.Rank{groups[1].rank},
			Cards:   ordered,
		}
	case groups[0].count == 3 && groups[1].count == 2:
		return HandEvaluation{
			Tier:      FullHouse,
			Primary:   groups[0].rank,
			Secondary: groups[1].rank,
			Cards:     ordered,
		}
	case flush:
		return HandEvaluation{
			Tier:    Flush,
			Primary: groups[0].rank,
			Kickers: ranksOf(groups[1:]),
			Cards:   ordered,
		}
	}

	return classifyGroups(groups, ordered)
}

// evaluateGroups scores fewer than five cards by rank groupings only
func evaluateGroups(cards []deck.Card) HandEvaluation {
	groups := groupByRank(cards)
	return classifyGroups(groups, groupOrder(cards, groups))
}

// classifyGroups handles the tiers decided purely by the rank histogram
func classifyGroups(groups []rankGroup, ordered []deck.Card) HandEvaluation {
	eval := HandEvaluation{Primary: groups[0].rank, Cards: ordered}

	switch {
	case groups[0].count == 4:
		eval.Tier = FourOfAKind
		eval.Kickers = ranksOf(groups[1:])
	case groups[0].count == 3 && len(groups) > 1 && groups[1].count == 2:
		eval.Tier = FullHouse
		eval.Secondary = groups[1].rank
	case groups[0].count == 3:
		eval.Tier = ThreeOfAKind
		eval.Kickers = ranksOf(groups[1:])
	case groups[0].count == 2 && len(groups) > 1 && groups[1].count == 2:
		eval.Tier = TwoPair
		eval.Secondary = groups[1].rank
		eval.Kickers = ranksOf(groups[2:])
	case groups[0].count == 2:
		eval.Tier = OnePair
		eval.Kickers = ranksOf(groups[1:])
	default:
		eval.Tier = HighCard
		eval.Kickers = ranksOf(groups[1:])
	}

	return eval
}

type rankGroup struct {
	rank  deck.Rank
	count int
}

// groupByRank builds the rank histogram ordered by count, then rank, descending
func groupByRank(cards []deck.Card) []rankGroup {
	var counts [deck.Ace + 1]int
	for _, c := range cards {
		counts[c.Rank]++
	}

	groups := make([]rankGroup, 0, len(cards))
	for r := deck.Ace; r >= deck.Two; r-- {
		if counts[r] > 0 {
			groups = append(groups, rankGroup{rank: r, count: counts[r]})
		}
	}

	slices.SortStableFunc(groups, func(a, b rankGroup) int {
		return b.count - a.count
	})
	return groups
}

func ranksOf(groups []rankGroup) []deck.Rank {
	ranks := make([]deck.Rank, len(groups))
	for i, g := range groups {
		ranks[i] = g.rank
	}
	return ranks
}

func isFlush(cards []deck.Card) bool {
	for _, c := range cards[1:] {
		if c.Suit != cards[0].Suit {
			return false
		}
	}
	return true
}

// straightHigh reports the high card of a straight. A-2-3-4-5 is the five-high
// wheel and ranks below 2-3-4-5-6.
func straightHigh(groups []rankGroup) (deck.Rank, bool) {
	if len(groups) != 5 {
		return 0, false
	}
	// groups are all singletons, so they are sorted by rank descending
	high, low := groups[0].rank, groups[4].rank
	if high-low == 4 {
		return high, true
	}
	if high == deck.Ace && groups[1].rank == deck.Five && low == deck.Two {
		return deck.Five, true
	}
	return 0, false
}

// straightOrder returns the straight's cards from the top down, Ace last in a wheel
func straightOrder(cards []deck.Card, high deck.Rank) []deck.Card {
	ordered := slices.Clone(cards)
	value := func(c deck.Card) int {
		if high == deck.Five && c.Rank == deck.Ace {
			return int(deck.LowAce)
		}
		return int(c.Rank)
	}
	slices.SortFunc(ordered, func(a, b deck.Card) int {
		return value(b) - value(a)
	})
	return ordered
}

// groupOrder returns the cards with the largest groups first, then by rank
func groupOrder(cards []deck.Card, groups []rankGroup) []deck.Card {
	position := make(map[deck.Rank]int, len(groups))
	for i, g := range groups {
		position[g.rank] = i
	}
	ordered := slices.Clone(cards)
	slices.SortStableFunc(ordered, func(a, b deck.Card) int {
		return position[a.Rank] - position[b.Rank]
	})
	return ordered
}

func checkDistinct(cards []deck.Card) {
	seen := make(map[deck.Card]bool, len(cards))
	for _, c := range cards {
		if !c.IsValid() {
			panic(fmt.Sprintf("evaluator: invalid card %v", c))
		}
		if seen[c] {
			panic(fmt.Sprintf("evaluator: duplicate card %s", c))
		}
		seen[c] = true
	}
}
