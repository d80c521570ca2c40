package holdem

import "fmt"

// ActionType is one of the four things a player may do on their turn
type ActionType int

// action types
const (
	ActionFold ActionType = iota
	ActionCheck
	ActionCall
	ActionRaise
)

// Action is a player intent. Amount is only meaningful for a raise, where it
// is the player's new total bet for the street, not a delta.
type Action struct {
	Type   ActionType
	Amount int
}

// Fold returns a fold action
func Fold() Action {
	return Action{Type: ActionFold}
}

// Check returns a check action
func Check() Action {
	return Action{Type: ActionCheck}
}

// Call returns a call action
func Call() Action {
	return Action{Type: ActionCall}
}

// Raise returns a raise action to the specified total bet for the street
func Raise(amount int) Action {
	return Action{Type: ActionRaise, Amount: amount}
}

// ActionFromString parses a client-supplied action name
func ActionFromString(name string, amount int) (Action, error) {
	switch name {
	case "fold":
		return Fold(), nil
	case "check":
		return Check(), nil
	case "call":
		return Call(), nil
	case "raise":
		return Raise(amount), nil
	}

	return Action{}, fmt.Errorf("unknown action: %s", name)
}

func (a ActionType) String() string {
	switch a {
	case ActionFold:
		return "fold"
	case ActionCheck:
		return "check"
	case ActionCall:
		return "call"
	case ActionRaise:
		return "raise"
	}

	return ""
}
