package holdem

import "time"

// CancelFunc stops a scheduled callback from firing. Calling it after the
// callback ran is a no-op.
type CancelFunc func()

// Scheduler runs a function after a delay. Implementations must run the
// callback on the same logical queue as every other table entry point; the
// room package's dealer does this by posting the callback into its run
// loop.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) CancelFunc
}

// startTurnTimer arms the auto-fold timer for the player at turnPos. Each
// armed timer carries a sequence number so a callback that fires after the
// turn already moved on does nothing.
func (t *Table) startTurnTimer() {
	t.clearTurnTimer()

	if t.opts.TurnTimer <= 0 || t.turnPos < 0 {
		return
	}

	t.turnSeq++
	seq := t.turnSeq
	connID := t.players[t.turnPos].ConnID

	deadline := time.Now().Add(t.opts.TurnTimer)
	t.turnDeadline = &deadline

	t.turnCancel = t.scheduler.Schedule(t.opts.TurnTimer, func() {
		if t.turnSeq != seq || t.paused {
			return
		}

		p := t.player(connID)
		if p == nil || t.turnPos < 0 || t.players[t.turnPos] != p {
			return
		}

		t.logPlayerEvent(p, "ran out of time")
		if err := t.PlayerAction(connID, Fold()); err != nil {
			t.log.WithError(err).WithField("player", connID).Error("auto-fold failed")
		}
	})
}

func (t *Table) clearTurnTimer() {
	if t.turnCancel != nil {
		t.turnCancel()
		t.turnCancel = nil
	}

	t.turnDeadline = nil
}

// startNextHandTimer arms the delay between hands
func (t *Table) startNextHandTimer() {
	t.clearNextHandTimer()

	if t.opts.NextHandDelay <= 0 {
		t.startNewHand()
		return
	}

	t.nextHandCancel = t.scheduler.Schedule(t.opts.NextHandDelay, func() {
		t.nextHandCancel = nil
		if t.phase != PhaseWaitingNextHand || t.paused {
			return
		}

		t.startNewHand()
	})
}

func (t *Table) clearNextHandTimer() {
	if t.nextHandCancel != nil {
		t.nextHandCancel()
		t.nextHandCancel = nil
	}
}

// startDisconnectTimer forfeits a disconnected player's seat after the
// grace period
func (t *Table) startDisconnectTimer(connID string) {
	t.cancelDisconnectTimer(connID)

	if t.opts.DisconnectGrace <= 0 {
		return
	}

	t.discCancel[connID] = t.scheduler.Schedule(t.opts.DisconnectGrace, func() {
		delete(t.discCancel, connID)
		t.forfeitSeat(connID)
	})
}

func (t *Table) cancelDisconnectTimer(connID string) {
	if cancel, ok := t.discCancel[connID]; ok {
		cancel()
		delete(t.discCancel, connID)
	}
}
