package evaluator

import (
	"testing"

	"github.com/chehsunliu/poker"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-engine/internal/deck"
	"github.com/lox/holdem-engine/internal/randutil"
)

// Rank classes reported by chehsunliu/poker, strongest first
var tierForClass = map[int32][]Tier{
	1: {StraightFlush, RoyalFlush},
	2: {FourOfAKind},
	3: {FullHouse},
	4: {Flush},
	5: {Straight},
	6: {ThreeOfAKind},
	7: {TwoPair},
	8: {OnePair},
	9: {HighCard},
}

func toReference(cards []deck.Card) []poker.Card {
	out := make([]poker.Card, len(cards))
	for i, c := range cards {
		out[i] = poker.NewCard(c.Code())
	}
	return out
}

func sign(x int32) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

func TestAgreesWithReferenceEvaluator(t *testing.T) {
	t.Parallel()

	rng := randutil.New(7)
	var prevCards []deck.Card
	var prevEval HandEvaluation
	var prevRank int32

	for i := 0; i < 3000; i++ {
		cards := deck.NewDeck(rng).DealCards(7)
		ours := Evaluate(cards[:2], cards[2:])
		ref := poker.Evaluate(toReference(cards))

		require.Contains(t, tierForClass[poker.RankClass(ref)], ours.Tier,
			"%v: reference says %s, we say %s", cards, poker.RankString(ref), ours.Tier)

		if prevCards != nil {
			// Lower reference ranks are stronger
			require.Equal(t, sign(prevRank-ref), ours.Compare(prevEval),
				"%v vs %v", cards, prevCards)
		}
		prevCards, prevEval, prevRank = cards, ours, ref
	}
}
