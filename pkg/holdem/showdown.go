package holdem

import (
	"holdem-table-server/pkg/deck"
	"holdem-table-server/pkg/poker"
)

// showdown evaluates every remaining player's best five-card hand from
// their hole cards and the board, splits the pot evenly among the winners
// and schedules the next hand. Odd chips left by the split stay off the
// table.
func (t *Table) showdown() {
	t.clearTurnTimer()
	t.phase = PhaseShowdown

	type contender struct {
		player *Player
		result *poker.Result
	}

	var best int64
	contenders := make([]*contender, 0, len(t.players))
	for _, p := range t.players {
		if p.folded {
			continue
		}

		cards := make([]*deck.Card, 0, 7)
		cards = append(cards, p.cards...)
		cards = append(cards, t.community...)

		result, err := poker.Evaluate(cards)
		if err != nil {
			t.fail(err)
			return
		}

		t.logPlayerEvent(p, "shows %s (%s)", p.cards, result.Hand)

		contenders = append(contenders, &contender{player: p, result: result})
		if result.Score > best {
			best = result.Score
		}
	}

	winners := make([]*contender, 0, len(contenders))
	for _, c := range contenders {
		if c.result.Score == best {
			winners = append(winners, c)
		}
	}

	if len(winners) == 0 {
		t.fail(errNoShowdownWinner)
		return
	}

	share := t.pot / len(winners)
	for _, c := range winners {
		c.player.chips += share
		t.logPlayerEvent(c.player, "wins %d with %s", share, c.result.Hand)
	}

	t.pot = 0
	t.scheduleNextHand()
}

// awardPotToLastStanding gives the pot to the only player left in the hand
func (t *Table) awardPotToLastStanding() {
	t.clearTurnTimer()

	var winner *Player
	for _, p := range t.players {
		if !p.folded {
			winner = p
			break
		}
	}

	if winner == nil {
		t.fail(errNoShowdownWinner)
		return
	}

	winner.chips += t.pot
	t.logPlayerEvent(winner, "wins %d", t.pot)
	t.pot = 0

	t.phase = PhaseShowdown
	t.scheduleNextHand()
}

// scheduleNextHand handles eliminations and blind escalation, then either
// ends the game or arms the next-hand timer
func (t *Table) scheduleNextHand() {
	for _, p := range t.players {
		if p.chips == 0 && !p.eliminated {
			p.eliminated = true
			t.logPlayerEvent(p, "is eliminated")

			if t.opts.BlindIncrease == BlindIncreasePerElimination {
				t.smallBlind += t.opts.BlindIncreaseAmount
				t.bigBlind = t.smallBlind * 2
				t.logEvent("Blinds are now %d/%d", t.smallBlind, t.bigBlind)
			}
		}
	}

	t.removeEliminated()

	if t.activeCount() < 2 {
		t.endGame()
		return
	}

	t.phase = PhaseWaitingNextHand
	t.startNextHandTimer()
}

// removeEliminated converts busted seats into spectators. Seat indexes
// shift, so the button and turn markers are fixed up as seats are removed.
func (t *Table) removeEliminated() {
	for i := len(t.players) - 1; i >= 0; i-- {
		p := t.players[i]
		if !p.eliminated {
			continue
		}

		t.removeSeat(i)
		t.spectators[p.ConnID] = p.Name
	}
}

// removeSeat deletes the seat at index idx and adjusts position markers
func (t *Table) removeSeat(idx int) {
	t.players = append(t.players[:idx], t.players[idx+1:]...)

	if t.dealerPos >= idx {
		// -1 when the removed seat held the button at index 0, so the
		// button passes to whichever seat slides into its place
		t.dealerPos--
	}

	if t.turnPos > idx {
		t.turnPos--
	} else if t.turnPos == idx {
		t.turnPos = -1
	}
}

// endGame finishes the session. The player with chips remaining (if any)
// is announced as the winner.
func (t *Table) endGame() {
	t.clearTurnTimer()
	t.clearNextHandTimer()
	t.phase = PhaseEnded
	t.turnPos = -1

	for _, p := range t.players {
		if p.chips > 0 {
			t.logPlayerEvent(p, "wins the game with %d chips", p.chips)
			return
		}
	}

	t.logEvent("The game is over")
}
