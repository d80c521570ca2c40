package holdem

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// LogEntry is a line in the table's action log
type LogEntry struct {
	UUID     string    `json:"uuid"`
	PlayerID string    `json:"playerId,omitempty"`
	Message  string    `json:"message"`
	Time     time.Time `json:"time"`
}

// logEvent appends a general entry to the action log
func (t *Table) logEvent(format string, a ...interface{}) {
	t.appendLog("", format, a...)
}

// logPlayerEvent appends an entry attributed to a player
func (t *Table) logPlayerEvent(p *Player, format string, a ...interface{}) {
	t.appendLog(p.ConnID, "%s %s", p.Name, fmt.Sprintf(format, a...))
}

// Chat records a chat message from anyone at the table, seated or watching
func (t *Table) Chat(connID, message string) error {
	if p := t.player(connID); p != nil {
		t.appendLog(connID, "%s: %s", p.Name, message)
		return nil
	}

	if name, ok := t.spectators[connID]; ok {
		t.appendLog(connID, "%s: %s", name, message)
		return nil
	}

	return ErrNotSeated
}

func (t *Table) appendLog(playerID, format string, a ...interface{}) {
	t.actionLog = append(t.actionLog, &LogEntry{
		UUID:     uuid.New().String(),
		PlayerID: playerID,
		Message:  fmt.Sprintf(format, a...),
		Time:     time.Now(),
	})
}
