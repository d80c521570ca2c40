package holdem

import "errors"

// errors that may be returned when an intent is rejected.
// A rejected intent never mutates table state.
var (
	ErrTableFull         = errors.New("Table is full")
	ErrIncorrectPassword = errors.New("Incorrect password")
	ErrAlreadySeated     = errors.New("you are already at this table")
	ErrNotSeated         = errors.New("you are not seated at this table")
	ErrNotHost           = errors.New("only the host may do that")
	ErrNotYourTurn       = errors.New("it is not your turn")
	ErrGamePaused        = errors.New("the game is paused")
	ErrNotBettingRound   = errors.New("not in a betting round")
	ErrGameInProgress    = errors.New("the game already started")
	ErrNotEnoughPlayers  = errors.New("at least two active players are required")
)

// errNoShowdownWinner indicates a hand ended with no player left in it,
// which the betting rules should make impossible
var errNoShowdownWinner = errors.New("no player remained in the hand")
