package poker

import "fmt"

// Hand is a poker hand category, i.e., straight flush
// Higher values strictly beat lower values.
type Hand int

// Constants for hand
const (
	HighCard Hand = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

var handNames = [...]string{
	HighCard:      "High card",
	OnePair:       "Pair",
	TwoPair:       "Two pair",
	ThreeOfAKind:  "Three of a kind",
	Straight:      "Straight",
	Flush:         "Flush",
	FullHouse:     "Full house",
	FourOfAKind:   "Four of a kind",
	StraightFlush: "Straight flush",
}

// String returns the display name of a hand
func (h Hand) String() string {
	if h < HighCard || h > StraightFlush {
		panic(fmt.Sprintf("unknown hand: %d", h))
	}

	return handNames[h]
}
