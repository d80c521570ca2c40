package holdem

// StartGame begins the first hand. Only the host may start, and at least
// two players with chips must be seated.
func (t *Table) StartGame(connID string) error {
	if connID != t.hostID {
		return ErrNotHost
	}

	if t.phase != PhaseWaiting {
		return ErrGameInProgress
	}

	if t.activeCount() < 2 {
		return ErrNotEnoughPlayers
	}

	t.log.WithField("players", t.activeCount()).Debug("game started")
	t.startNewHand()

	return nil
}

// startNewHand resets per-hand state, advances the button, posts blinds and
// deals hole cards. The table must have at least two active players.
func (t *Table) startNewHand() {
	if t.activeCount() < 2 {
		t.endGame()
		return
	}

	t.handNum++
	t.deck.Reset()

	t.actionLog = t.actionLog[:0]
	t.community = t.community[:0]
	t.pot = 0
	t.currentBet = 0
	t.minRaise = t.bigBlind

	for _, p := range t.players {
		p.newHand()
	}

	t.dealerPos = t.nextActiveSeat(t.dealerPos)

	var sbPos, bbPos int
	if t.activeCount() == 2 {
		// heads-up: the dealer posts the small blind and acts first pre-flop
		sbPos = t.dealerPos
		bbPos = t.nextActiveSeat(sbPos)
		t.turnPos = sbPos
	} else {
		sbPos = t.nextActiveSeat(t.dealerPos)
		bbPos = t.nextActiveSeat(sbPos)
		t.turnPos = t.nextActiveSeat(bbPos)
	}

	t.postBlind(t.players[sbPos], t.smallBlind, "small")
	t.postBlind(t.players[bbPos], t.bigBlind, "big")
	t.currentBet = t.bigBlind

	for i := 0; i < 2; i++ {
		for _, p := range t.players {
			if p.folded {
				continue
			}

			card, err := t.deck.Draw()
			if err != nil {
				t.fail(err)
				return
			}

			p.cards.AddCard(card)
		}
	}

	t.phase = PhasePreFlop
	t.logEvent("Hand #%d: %s has the button", t.handNum, t.players[t.dealerPos].Name)

	// everyone already all-in on the blinds
	if t.canActCount() <= 1 && t.isRoundComplete() {
		t.advanceStreet()
		return
	}

	if !t.players[t.turnPos].canAct() {
		t.turnPos = t.nextActionSeat(t.turnPos)
	}

	t.startTurnTimer()
}

// postBlind moves a forced bet into the pot, capped at the player's stack
func (t *Table) postBlind(p *Player, amount int, name string) {
	paid := t.commit(p, amount)
	t.logPlayerEvent(p, "posts the %s blind (%d)", name, paid)
}
