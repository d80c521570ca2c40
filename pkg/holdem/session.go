package holdem

// Pause freezes the table. Turn and next-hand timers stop; seats, bets and
// the board stay exactly as they were. Host only.
func (t *Table) Pause(connID string) error {
	if connID != t.hostID {
		return ErrNotHost
	}

	if t.paused {
		return nil
	}

	t.paused = true
	t.clearTurnTimer()
	t.clearNextHandTimer()
	t.logEvent("The game is paused")

	return nil
}

// Resume unfreezes the table. The interrupted player gets a full, fresh
// turn interval. Host only.
func (t *Table) Resume(connID string) error {
	if connID != t.hostID {
		return ErrNotHost
	}

	if !t.paused {
		return nil
	}

	t.paused = false
	t.logEvent("The game resumed")

	switch {
	case t.phase.isBettingPhase() && t.turnPos >= 0:
		t.startTurnTimer()
	case t.phase == PhaseWaitingNextHand:
		t.startNextHandTimer()
	}

	return nil
}

// Kick removes a player from the table. Their chips are forfeited. Host
// only; the host cannot kick themselves.
func (t *Table) Kick(connID, targetID string) error {
	if connID != t.hostID {
		return ErrNotHost
	}

	if targetID == t.hostID {
		return ErrNotSeated
	}

	if name, ok := t.spectators[targetID]; ok {
		delete(t.spectators, targetID)
		t.logEvent("%s was removed from the table", name)
		return nil
	}

	p := t.player(targetID)
	if p == nil {
		return ErrNotSeated
	}

	t.logPlayerEvent(p, "was removed from the table")
	t.forfeitSeat(targetID)

	return nil
}

// Leave removes the caller from the table, forfeiting any chips in play.
// The room layer closes the whole table instead when the host leaves.
func (t *Table) Leave(connID string) error {
	if _, ok := t.spectators[connID]; ok {
		delete(t.spectators, connID)
		return nil
	}

	p := t.player(connID)
	if p == nil {
		return ErrNotSeated
	}

	t.logPlayerEvent(p, "left the table")
	t.forfeitSeat(connID)

	return nil
}

// Disconnect marks a seated player as away. They are skipped by the turn
// order until they reconnect, and their seat is forfeited if the grace
// period runs out first. Spectators are simply removed.
func (t *Table) Disconnect(connID string) {
	if _, ok := t.spectators[connID]; ok {
		delete(t.spectators, connID)
		return
	}

	p := t.player(connID)
	if p == nil {
		return
	}

	p.disconnected = true
	t.logPlayerEvent(p, "disconnected")
	t.startDisconnectTimer(connID)

	t.skipIfCurrentTurn(p)
}

// Reconnect seats a returning player back into the game
func (t *Table) Reconnect(connID string) error {
	p := t.player(connID)
	if p == nil {
		return ErrNotSeated
	}

	t.cancelDisconnectTimer(connID)

	if p.disconnected {
		p.disconnected = false
		t.logPlayerEvent(p, "reconnected")
	}

	return nil
}

// forfeitSeat removes a seat entirely. If a hand is live the player is
// folded out of it first so the betting round can resolve.
func (t *Table) forfeitSeat(connID string) {
	p := t.player(connID)
	if p == nil {
		return
	}

	t.cancelDisconnectTimer(connID)

	if t.phase.isBettingPhase() && !p.folded {
		p.folded = true
		t.skipIfCurrentTurn(p)

		// a fold out of turn can still leave a single contender
		if t.phase.isBettingPhase() && t.nonFoldedCount() == 1 {
			t.awardPotToLastStanding()
		}
	}

	// resolving the fold may have reshuffled seats, look the index up fresh
	if idx := t.playerIndex(connID); idx >= 0 {
		t.removeSeat(idx)
	}

	if t.phase == PhaseWaitingNextHand && t.activeCount() < 2 {
		t.endGame()
	}
}

// skipIfCurrentTurn moves the action along when the player it was waiting
// on can no longer act
func (t *Table) skipIfCurrentTurn(p *Player) {
	if !t.phase.isBettingPhase() {
		return
	}

	if t.turnPos < 0 || t.players[t.turnPos] != p {
		return
	}

	t.clearTurnTimer()

	if t.nonFoldedCount() == 1 {
		t.awardPotToLastStanding()
		return
	}

	if t.isRoundComplete() {
		t.advanceStreet()
		return
	}

	t.turnPos = t.nextActionSeat(t.turnPos)
	t.startTurnTimer()
}
