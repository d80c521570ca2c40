package poker

import (
	"fmt"
	"sort"

	"holdem-table-server/pkg/deck"
)

// categoryWeight spaces the hand categories far enough apart that no
// tiebreak value can ever cross a category boundary. The largest tiebreak
// is five kickers in base 100 (14*100^4), well below 10^10.
const categoryWeight = int64(10_000_000_000)

// Result is the outcome of evaluating a seven-card hand.
// Score provides a total order over all hands: a higher score is a strictly
// better hand, and equal scores are equal-strength hands.
type Result struct {
	Hand  Hand
	Score int64
}

// Evaluate finds the best five-card hand makeable from exactly seven cards
// (two hole cards plus five community cards). All C(7,5)=21 subsets are
// scored and the maximum wins.
func Evaluate(cards []*deck.Card) (*Result, error) {
	if len(cards) != 7 {
		return nil, fmt.Errorf("expected 7 cards, got %d", len(cards))
	}

	best := &Result{Score: -1}

	subset := make([]*deck.Card, 0, 5)
	for i := 0; i < 7; i++ {
		for j := i + 1; j < 7; j++ {
			subset = subset[:0]
			for k, card := range cards {
				if k != i && k != j {
					subset = append(subset, card)
				}
			}

			hand, score := scoreFive(subset)
			if score > best.Score {
				best.Hand = hand
				best.Score = score
			}
		}
	}

	return best, nil
}

// scoreFive classifies a five-card hand and computes its strength score
func scoreFive(cards []*deck.Card) (Hand, int64) {
	sorted := make([]*deck.Card, len(cards))
	copy(sorted, cards)
	sort.Sort(sort.Reverse(sortByRank(sorted)))

	ranks := make([]int, 5)
	flush := true
	for i, card := range sorted {
		ranks[i] = card.Rank
		if card.Suit != sorted[0].Suit {
			flush = false
		}
	}

	straightHigh := straightHighCard(ranks)

	if straightHigh > 0 && flush {
		return StraightFlush, score(StraightFlush, straightHigh)
	}

	groups := groupByCount(ranks)

	switch {
	case groups[0].count == 4:
		return FourOfAKind, score(FourOfAKind, groups[0].rank*100+groups[1].rank)
	case groups[0].count == 3 && groups[1].count == 2:
		return FullHouse, score(FullHouse, groups[0].rank*100+groups[1].rank)
	case flush:
		return Flush, score(Flush, kickerWeight(ranks))
	case straightHigh > 0:
		return Straight, score(Straight, straightHigh)
	case groups[0].count == 3:
		return ThreeOfAKind, score(ThreeOfAKind,
			groups[0].rank*100*100+groups[1].rank*100+groups[2].rank)
	case groups[0].count == 2 && groups[1].count == 2:
		return TwoPair, score(TwoPair,
			groups[0].rank*100*100+groups[1].rank*100+groups[2].rank)
	case groups[0].count == 2:
		return OnePair, score(OnePair,
			groups[0].rank*100*100*100+groups[1].rank*100*100+groups[2].rank*100+groups[3].rank)
	}

	return HighCard, score(HighCard, kickerWeight(ranks))
}

func score(hand Hand, tiebreak int) int64 {
	return int64(hand)*categoryWeight + int64(tiebreak)
}

// straightHighCard returns the high card of the straight the five ranks form,
// or 0 if they do not form one. The ranks must be sorted descending.
// The wheel (A-2-3-4-5) is a straight whose high card is 5, not the ace.
func straightHighCard(ranks []int) int {
	// wheel check: A,5,4,3,2 sorted descending
	if ranks[0] == deck.Ace && ranks[1] == 5 && ranks[2] == 4 && ranks[3] == 3 && ranks[4] == 2 {
		return 5
	}

	for i := 1; i < 5; i++ {
		if ranks[i] != ranks[i-1]-1 {
			return 0
		}
	}

	return ranks[0]
}

// kickerWeight weighs five descending ranks positionally in base 100 so the
// highest card dominates and each kicker breaks ties below it
func kickerWeight(ranks []int) int {
	weight := 0
	for _, rank := range ranks {
		weight = weight*100 + rank
	}

	return weight
}

type rankGroup struct {
	rank  int
	count int
}

// groupByCount collapses the descending ranks into groups ordered by
// multiplicity first, rank second (quads before trips before pairs before
// kickers; within a multiplicity, higher ranks first)
func groupByCount(ranks []int) []rankGroup {
	groups := make([]rankGroup, 0, 5)
	for _, rank := range ranks {
		if n := len(groups); n > 0 && groups[n-1].rank == rank {
			groups[n-1].count++
			continue
		}

		groups = append(groups, rankGroup{rank: rank, count: 1})
	}

	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].count != groups[j].count {
			return groups[i].count > groups[j].count
		}

		return groups[i].rank > groups[j].rank
	})

	return groups
}
