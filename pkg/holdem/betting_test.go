package holdem

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"holdem-table-server/pkg/deck"
)

func TestTable_preFlopCallsReachTheFlop(t *testing.T) {
	tbl, _ := testTable(t, testOptions(), "p1", "p2", "p3")
	assert.NoError(t, tbl.StartGame("p1"))

	assert.Equal(t, ErrNotYourTurn, tbl.PlayerAction("p2", Call()))
	assert.Equal(t, ErrNotSeated, tbl.PlayerAction("nobody", Call()))

	// the pot reflects every chip placed as soon as it is placed
	assert.NoError(t, tbl.PlayerAction("p1", Call()))
	assert.Equal(t, 5, tbl.pot)
	assert.Equal(t, 98, tbl.player("p1").Chips())
	assert.Equal(t, 99, tbl.player("p2").Chips())

	assert.NoError(t, tbl.PlayerAction("p2", Call()))
	assert.NoError(t, tbl.PlayerAction("p3", Check()))

	assert.Equal(t, PhaseFlop, tbl.Phase())
	assert.Equal(t, 3, len(tbl.community))
	assert.Equal(t, 6, tbl.pot)
	assert.Equal(t, 0, tbl.currentBet)
	assert.Equal(t, 2, tbl.minRaise)

	// action starts left of the button on every street after the first
	assert.Equal(t, 1, tbl.turnPos)
	for _, p := range tbl.players {
		assert.Equal(t, 0, p.bet)
	}
}

func TestTable_checkFacingBetRejected(t *testing.T) {
	tbl, _ := testTable(t, testOptions(), "p1", "p2", "p3")
	assert.NoError(t, tbl.StartGame("p1"))

	err := tbl.PlayerAction("p1", Check())
	assert.EqualError(t, err, "cannot check when facing a bet of 2")

	// a rejected action does not consume the turn
	assert.Equal(t, 0, tbl.turnPos)
	assert.NoError(t, tbl.PlayerAction("p1", Call()))
}

func TestTable_raiseReopensAction(t *testing.T) {
	tbl, _ := testTable(t, testOptions(), "p1", "p2", "p3")
	assert.NoError(t, tbl.StartGame("p1"))

	assert.NoError(t, tbl.PlayerAction("p1", Raise(4)))
	assert.Equal(t, 4, tbl.currentBet)
	assert.Equal(t, 2, tbl.minRaise)

	assert.NoError(t, tbl.PlayerAction("p2", Call()))
	assert.Equal(t, PhasePreFlop, tbl.Phase())

	// the big blind still owes a decision after the raise
	assert.NoError(t, tbl.PlayerAction("p3", Call()))
	assert.Equal(t, PhaseFlop, tbl.Phase())
	assert.Equal(t, 12, tbl.pot)
}

func TestTable_raiseBelowMinimumRejected(t *testing.T) {
	tbl, _ := testTable(t, testOptions(), "p1", "p2", "p3")
	assert.NoError(t, tbl.StartGame("p1"))

	err := tbl.PlayerAction("p1", Raise(3))
	assert.EqualError(t, err, "raise must increase the bet by at least 2")

	err = tbl.PlayerAction("p1", Raise(2))
	assert.EqualError(t, err, "raise to 2 does not exceed the current bet of 2")

	err = tbl.PlayerAction("p1", Raise(500))
	assert.EqualError(t, err, "raise to 500 exceeds your stack")
}

func TestTable_allInShortRaiseAllowed(t *testing.T) {
	tbl, _ := testTable(t, testOptions(), "p1", "p2", "p3")
	assert.NoError(t, tbl.StartGame("p1"))

	tbl.players[0].chips = 3

	assert.NoError(t, tbl.PlayerAction("p1", Raise(3)))
	assert.True(t, tbl.players[0].allIn)
	assert.Equal(t, 3, tbl.currentBet)
	assert.Equal(t, 1, tbl.minRaise)
}

func TestTable_lastPlayerStandingWinsPot(t *testing.T) {
	tbl, sched := testTable(t, testOptions(), "p1", "p2", "p3")
	assert.NoError(t, tbl.StartGame("p1"))

	assert.NoError(t, tbl.PlayerAction("p1", Fold()))
	assert.NoError(t, tbl.PlayerAction("p2", Fold()))

	assert.Equal(t, PhaseWaitingNextHand, tbl.Phase())
	assert.Equal(t, 0, tbl.pot)
	assert.Equal(t, 101, tbl.player("p3").Chips())

	// the next-hand delay elapses and a fresh hand begins
	assert.True(t, sched.fire())
	assert.Equal(t, PhasePreFlop, tbl.Phase())
	assert.Equal(t, 2, tbl.handNum)
	assert.Equal(t, 1, tbl.dealerPos)
	assert.Equal(t, 0, len(tbl.community))
}

func TestTable_showdownSplitsPotEvenly(t *testing.T) {
	tbl, _ := testTable(t, testOptions(), "p1", "p2", "p3")
	assert.NoError(t, tbl.StartGame("p1"))

	// p1 and p2 both play the board's aces up with a queen kicker, p3 is
	// stuck with the board's nine
	tbl.players[0].cards = deck.CardsFromString("12c,2c")
	tbl.players[1].cards = deck.CardsFromString("12d,3c")
	tbl.players[2].cards = deck.CardsFromString("2d,3h")
	tbl.deck.Cards = deck.CardsFromString("14s,14d,13s,13d,9h")

	assert.NoError(t, tbl.PlayerAction("p1", Call()))
	assert.NoError(t, tbl.PlayerAction("p2", Call()))
	assert.NoError(t, tbl.PlayerAction("p3", Check()))

	assert.NoError(t, tbl.PlayerAction("p2", Raise(3)))
	assert.NoError(t, tbl.PlayerAction("p3", Call()))
	assert.NoError(t, tbl.PlayerAction("p1", Call()))

	for tbl.Phase() == PhaseTurn || tbl.Phase() == PhaseRiver {
		assert.NoError(t, tbl.PlayerAction("p2", Check()))
		assert.NoError(t, tbl.PlayerAction("p3", Check()))
		assert.NoError(t, tbl.PlayerAction("p1", Check()))
	}

	// pot of 15 splits 7/7 between the winners; the odd chip is dropped
	assert.Equal(t, PhaseWaitingNextHand, tbl.Phase())
	assert.Equal(t, 0, tbl.pot)
	assert.Equal(t, 102, tbl.player("p1").Chips())
	assert.Equal(t, 102, tbl.player("p2").Chips())
	assert.Equal(t, 95, tbl.player("p3").Chips())
}

func TestTable_allInsRunTheBoardOut(t *testing.T) {
	tbl, _ := testTable(t, testOptions(), "p1", "p2")
	assert.NoError(t, tbl.StartGame("p1"))

	tbl.players[0].cards = deck.CardsFromString("14s,14d")
	tbl.players[1].cards = deck.CardsFromString("13c,12c")
	tbl.deck.Cards = deck.CardsFromString("2h,7d,9c,6s,3h")

	assert.NoError(t, tbl.PlayerAction("p1", Raise(100)))
	assert.NoError(t, tbl.PlayerAction("p2", Call()))

	// both players were all in, so the board ran out and the loser busted
	assert.Equal(t, 5, len(tbl.community))
	assert.Equal(t, PhaseEnded, tbl.Phase())
	assert.Equal(t, 200, tbl.player("p1").Chips())
	assert.Nil(t, tbl.player("p2"))
	assert.Equal(t, "p2", tbl.spectators["p2"])
}

func TestTable_bustedButtonPassesToTheNextSeat(t *testing.T) {
	tbl, sched := testTable(t, testOptions(), "p1", "p2", "p3")
	assert.NoError(t, tbl.StartGame("p1"))

	tbl.players[0].cards = deck.CardsFromString("13c,12c")
	tbl.players[1].cards = deck.CardsFromString("14s,14d")
	tbl.deck.Cards = deck.CardsFromString("2h,7d,9c,6s,3h")

	assert.NoError(t, tbl.PlayerAction("p1", Raise(100)))
	assert.NoError(t, tbl.PlayerAction("p2", Call()))
	assert.NoError(t, tbl.PlayerAction("p3", Fold()))

	assert.Equal(t, PhaseWaitingNextHand, tbl.Phase())
	assert.Nil(t, tbl.player("p1"))

	// the busted seat held the button, which passes to the next seat over
	assert.True(t, sched.fire())
	assert.Equal(t, "p2", tbl.players[tbl.dealerPos].ConnID)
}

func TestTable_eliminationRaisesBlinds(t *testing.T) {
	opts := testOptions()
	opts.BlindIncrease = BlindIncreasePerElimination
	opts.BlindIncreaseAmount = 1
	tbl, sched := testTable(t, opts, "p1", "p2", "p3")
	assert.NoError(t, tbl.StartGame("p1"))

	tbl.players[0].cards = deck.CardsFromString("14s,14d")
	tbl.players[1].cards = deck.CardsFromString("13c,12c")
	tbl.deck.Cards = deck.CardsFromString("2h,7d,9c,6s,3h")

	assert.NoError(t, tbl.PlayerAction("p1", Raise(100)))
	assert.NoError(t, tbl.PlayerAction("p2", Call()))
	assert.NoError(t, tbl.PlayerAction("p3", Fold()))

	assert.Equal(t, PhaseWaitingNextHand, tbl.Phase())
	assert.Equal(t, 2, tbl.smallBlind)
	assert.Equal(t, 4, tbl.bigBlind)
	assert.Equal(t, 2, len(tbl.players))
	assert.Equal(t, "p2", tbl.spectators["p2"])
	assert.Equal(t, 202, tbl.player("p1").Chips())

	// the next hand uses the escalated blinds
	assert.True(t, sched.fire())
	assert.Equal(t, PhasePreFlop, tbl.Phase())
	assert.Equal(t, 4, tbl.currentBet)
	assert.Equal(t, 2, tbl.players[tbl.dealerPos].bet)
}
