package holdem

import "fmt"

// PlayerAction applies a betting action for the player whose turn it is.
// Raise amounts are the new total street bet, not the delta on top of the
// current bet.
func (t *Table) PlayerAction(connID string, action Action) error {
	if t.paused {
		return ErrGamePaused
	}

	if !t.phase.isBettingPhase() {
		return ErrNotBettingRound
	}

	p := t.player(connID)
	if p == nil {
		return ErrNotSeated
	}

	if t.turnPos < 0 || t.players[t.turnPos] != p {
		return ErrNotYourTurn
	}

	if !p.canAct() {
		return ErrNotYourTurn
	}

	if err := t.applyAction(p, action); err != nil {
		return err
	}

	p.hasActed = true
	p.lastAction = action.Type.String()
	t.clearTurnTimer()

	if t.nonFoldedCount() == 1 {
		t.awardPotToLastStanding()
		return nil
	}

	if t.isRoundComplete() {
		t.advanceStreet()
		return nil
	}

	t.turnPos = t.nextActionSeat(t.turnPos)
	if t.turnPos < 0 {
		t.fail(fmt.Errorf("no seat to act after %s", p.Name))
		return nil
	}

	t.startTurnTimer()
	return nil
}

// commit moves up to amount chips from the player's stack into the pot,
// keeping the per-street bet bookkeeping in sync. The pot always reflects
// every chip placed so far.
func (t *Table) commit(p *Player, amount int) int {
	paid := p.put(amount)
	t.pot += paid

	return paid
}

func (t *Table) applyAction(p *Player, action Action) error {
	switch action.Type {
	case ActionFold:
		p.folded = true
		t.logPlayerEvent(p, "folds")
		return nil
	case ActionCheck:
		if p.bet != t.currentBet {
			return fmt.Errorf("cannot check when facing a bet of %d", t.currentBet)
		}

		t.logPlayerEvent(p, "checks")
		return nil
	case ActionCall:
		owed := t.currentBet - p.bet
		if owed <= 0 {
			return fmt.Errorf("nothing to call")
		}

		paid := t.commit(p, owed)
		if p.allIn {
			t.logPlayerEvent(p, "calls %d and is all in", paid)
		} else {
			t.logPlayerEvent(p, "calls %d", paid)
		}

		return nil
	case ActionRaise:
		return t.applyRaise(p, action.Amount)
	}

	return fmt.Errorf("unknown action %q", action.Type)
}

// applyRaise raises the street bet to amount. A raise must increase the bet
// by at least the minimum raise, unless the player is going all-in for less.
func (t *Table) applyRaise(p *Player, amount int) error {
	if amount <= t.currentBet {
		return fmt.Errorf("raise to %d does not exceed the current bet of %d", amount, t.currentBet)
	}

	owed := amount - p.bet
	if owed > p.chips {
		return fmt.Errorf("raise to %d exceeds your stack", amount)
	}

	increase := amount - t.currentBet
	allIn := owed == p.chips
	if increase < t.minRaise && !allIn {
		return fmt.Errorf("raise must increase the bet by at least %d", t.minRaise)
	}

	t.commit(p, owed)
	t.minRaise = increase
	t.currentBet = amount

	// everyone else gets a chance to respond to the raise
	for _, other := range t.players {
		if other != p {
			other.hasActed = false
		}
	}

	if p.allIn {
		t.logPlayerEvent(p, "raises to %d and is all in", amount)
	} else {
		t.logPlayerEvent(p, "raises to %d", amount)
	}

	return nil
}

// isRoundComplete reports whether the betting round is over: every player
// who may still act has acted and matched the current bet. If nobody may
// act, the round is trivially complete.
func (t *Table) isRoundComplete() bool {
	for _, p := range t.players {
		if !p.canAct() {
			continue
		}

		if !p.hasActed || p.bet != t.currentBet {
			return false
		}
	}

	return true
}
