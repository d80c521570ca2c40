package holdem

import "fmt"

// advanceStreet resets the betting round and deals the next street. If at
// most one player can still act, the remaining board is run out to
// showdown.
func (t *Table) advanceStreet() {
	t.currentBet = 0
	t.minRaise = t.bigBlind

	for _, p := range t.players {
		p.newStreet()
	}

	// nobody left to bet, run the board out
	if t.canActCount() <= 1 {
		for len(t.community) < 5 {
			if err := t.dealCommunity(1); err != nil {
				return
			}
		}

		t.showdown()
		return
	}

	var err error
	switch t.phase {
	case PhasePreFlop:
		t.phase = PhaseFlop
		err = t.dealCommunity(3)
	case PhaseFlop:
		t.phase = PhaseTurn
		err = t.dealCommunity(1)
	case PhaseTurn:
		t.phase = PhaseRiver
		err = t.dealCommunity(1)
	case PhaseRiver:
		t.showdown()
		return
	default:
		t.fail(fmt.Errorf("cannot advance from phase %s", t.phase))
		return
	}

	if err != nil {
		return
	}

	t.logEvent("%s: %s", t.phase, t.community)

	t.turnPos = t.nextActionSeat(t.dealerPos)
	t.startTurnTimer()
}

func (t *Table) dealCommunity(n int) error {
	for i := 0; i < n; i++ {
		card, err := t.deck.Draw()
		if err != nil {
			t.fail(err)
			return err
		}

		t.community.AddCard(card)
	}

	return nil
}
