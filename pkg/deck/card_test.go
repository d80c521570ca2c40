package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCard_String(t *testing.T) {
	a := assert.New(t)
	a.Equal("2♣", (&Card{Rank: 2, Suit: Clubs}).String())
	a.Equal("10♢", (&Card{Rank: 10, Suit: Diamonds}).String())
	a.Equal("J♡", (&Card{Rank: Jack, Suit: Hearts}).String())
	a.Equal("Q♠", (&Card{Rank: Queen, Suit: Spades}).String())
	a.Equal("K♣", (&Card{Rank: King, Suit: Clubs}).String())
	a.Equal("A♠", (&Card{Rank: Ace, Suit: Spades}).String())
}

func TestCardFromString(t *testing.T) {
	a := assert.New(t)

	a.Equal(&Card{Rank: 2, Suit: Clubs}, CardFromString("2c"))
	a.Equal(&Card{Rank: 14, Suit: Spades}, CardFromString("14s"))
	a.Equal(&Card{Rank: 10, Suit: Hearts}, CardFromString("10h"))
	a.Nil(CardFromString(""))

	a.Panics(func() {
		CardFromString("15c")
	})

	a.Panics(func() {
		CardFromString("2x")
	})
}

func TestCardsFromString(t *testing.T) {
	a := assert.New(t)

	cards := CardsFromString("2c,3h,14s")
	a.Equal(3, len(cards))
	a.Equal("2c,3h,14s", CardsToString(cards))

	a.Equal(0, len(CardsFromString("")))
}

func TestCard_Equal(t *testing.T) {
	a := assert.New(t)
	a.True(CardFromString("5s").Equal(CardFromString("5s")))
	a.False(CardFromString("5s").Equal(CardFromString("5c")))
	a.False(CardFromString("5s").Equal(CardFromString("6s")))
}

func TestCard_AceLowRank(t *testing.T) {
	a := assert.New(t)
	a.Equal(1, CardFromString("14c").AceLowRank())
	a.Equal(13, CardFromString("13c").AceLowRank())
	a.Equal(2, CardFromString("2c").AceLowRank())
}
