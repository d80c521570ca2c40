package holdem

import (
	"time"

	"holdem-table-server/pkg/deck"
)

// State is the view of a table sent to one connection. Hole cards other
// than the viewer's own are omitted until showdown.
type State struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Phase        Phase          `json:"phase"`
	Paused       bool           `json:"paused"`
	HostID       string         `json:"hostId"`
	HandNum      int            `json:"handNum"`
	Players      []*playerState `json:"players"`
	Spectators   []string       `json:"spectators"`
	Community    deck.Hand      `json:"community"`
	Pot          int            `json:"pot"`
	CurrentBet   int            `json:"currentBet"`
	MinRaise     int            `json:"minRaise"`
	SmallBlind   int            `json:"smallBlind"`
	BigBlind     int            `json:"bigBlind"`
	DealerID     string         `json:"dealerId,omitempty"`
	TurnID       string         `json:"turnId,omitempty"`
	TurnDeadline *time.Time     `json:"turnDeadline,omitempty"`
	ActionLog    []*LogEntry    `json:"actionLog"`
}

// StateFor builds the state view for one connection
func (t *Table) StateFor(connID string) *State {
	reveal := t.phase == PhaseShowdown || t.phase == PhaseWaitingNextHand || t.phase == PhaseEnded

	players := make([]*playerState, len(t.players))
	for i, p := range t.players {
		players[i] = p.state(p.ConnID == connID || (reveal && !p.folded))
	}

	spectators := make([]string, 0, len(t.spectators))
	for _, name := range t.spectators {
		spectators = append(spectators, name)
	}

	s := &State{
		ID:           t.ID,
		Name:         t.opts.Name,
		Phase:        t.phase,
		Paused:       t.paused,
		HostID:       t.hostID,
		HandNum:      t.handNum,
		Players:      players,
		Spectators:   spectators,
		Community:    t.community,
		Pot:          t.pot,
		CurrentBet:   t.currentBet,
		MinRaise:     t.minRaise,
		SmallBlind:   t.smallBlind,
		BigBlind:     t.bigBlind,
		TurnDeadline: t.turnDeadline,
		ActionLog:    t.actionLog,
	}

	if t.dealerPos >= 0 && t.dealerPos < len(t.players) {
		s.DealerID = t.players[t.dealerPos].ConnID
	}

	if t.phase.isBettingPhase() && t.turnPos >= 0 && t.turnPos < len(t.players) {
		s.TurnID = t.players[t.turnPos].ConnID
	}

	return s
}

// Summary is the lobby listing for a table
type Summary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Phase       Phase  `json:"phase"`
	Players     int    `json:"players"`
	MaxPlayers  int    `json:"maxPlayers"`
	HasPassword bool   `json:"hasPassword"`
}

// Summary returns the table's lobby listing
func (t *Table) Summary() *Summary {
	return &Summary{
		ID:          t.ID,
		Name:        t.opts.Name,
		Phase:       t.phase,
		Players:     len(t.players),
		MaxPlayers:  t.opts.MaxPlayers,
		HasPassword: t.passwordHash != "",
	}
}
