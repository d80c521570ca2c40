package holdem

import "encoding/json"

// Phase represents where a table is in its lifecycle
type Phase int

// constants for Phase
const (
	PhaseWaiting Phase = iota
	PhasePreFlop
	PhaseFlop
	PhaseTurn
	PhaseRiver
	PhaseShowdown
	PhaseWaitingNextHand
	PhaseEnded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseWaiting:
		return "waiting"
	case PhasePreFlop:
		return "preflop"
	case PhaseFlop:
		return "flop"
	case PhaseTurn:
		return "turn"
	case PhaseRiver:
		return "river"
	case PhaseShowdown:
		return "showdown"
	case PhaseWaitingNextHand:
		return "waiting-next-hand"
	case PhaseEnded:
		return "ended"
	case PhaseFailed:
		return "failed"
	}

	return ""
}

// MarshalJSON encodes JSON
func (p Phase) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(p),
		Name: p.String(),
	})
}

// UnmarshalJSON decodes the object produced by MarshalJSON
func (p *Phase) UnmarshalJSON(data []byte) error {
	var obj struct {
		ID int `json:"id"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}

	*p = Phase(obj.ID)
	return nil
}

// isBettingPhase returns true if players may act in this phase.
// The river betting round happens in PhaseRiver; its completion moves the
// table straight to showdown.
func (p Phase) isBettingPhase() bool {
	return p == PhasePreFlop || p == PhaseFlop || p == PhaseTurn || p == PhaseRiver
}
