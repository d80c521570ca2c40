package holdem

import (
	"errors"
	"fmt"
	"time"
)

// BlindIncreasePolicy determines when the blinds go up
type BlindIncreasePolicy string

// blind increase policies
const (
	BlindIncreaseNone           BlindIncreasePolicy = "none"
	BlindIncreasePerElimination BlindIncreasePolicy = "perElimination"
)

// NewPlayerChipPolicy determines how many chips a late joiner receives
type NewPlayerChipPolicy string

// new player chip policies
const (
	NewPlayerChipsStarting NewPlayerChipPolicy = "starting"
	NewPlayerChipsLowest   NewPlayerChipPolicy = "lowest"
)

// Options configures a table
type Options struct {
	Name                string
	Password            string
	MaxPlayers          int
	StartingChips       int
	SmallBlind          int
	BigBlind            int
	TurnTimer           time.Duration
	BlindIncrease       BlindIncreasePolicy
	BlindIncreaseAmount int
	NewPlayerChips      NewPlayerChipPolicy
	NextHandDelay       time.Duration
	DisconnectGrace     time.Duration
}

// DefaultOptions returns the default options for a table
func DefaultOptions() Options {
	return Options{
		Name:            "Texas Hold'em",
		MaxPlayers:      10,
		StartingChips:   1000,
		SmallBlind:      5,
		BigBlind:        10,
		TurnTimer:       time.Second * 90,
		BlindIncrease:   BlindIncreaseNone,
		NewPlayerChips:  NewPlayerChipsStarting,
		NextHandDelay:   time.Second * 5,
		DisconnectGrace: time.Minute * 5,
	}
}

func validateOptions(opts *Options) error {
	if opts.Name == "" {
		return errors.New("table name must not be empty")
	}

	if opts.MaxPlayers < 2 || opts.MaxPlayers > 10 {
		return fmt.Errorf("maxPlayers must be between 2 and 10, got %d", opts.MaxPlayers)
	}

	if opts.SmallBlind < 1 {
		return errors.New("small blind must be at least 1")
	}

	if opts.BigBlind <= opts.SmallBlind {
		return errors.New("big blind must be greater than the small blind")
	}

	if opts.StartingChips < opts.BigBlind {
		return errors.New("starting chips must cover at least the big blind")
	}

	if opts.BlindIncrease == "" {
		opts.BlindIncrease = BlindIncreaseNone
	}

	switch opts.BlindIncrease {
	case BlindIncreaseNone:
	case BlindIncreasePerElimination:
		if opts.BlindIncreaseAmount < 1 {
			return errors.New("blind increase amount must be at least 1")
		}
	default:
		return fmt.Errorf("unknown blind increase policy: %s", opts.BlindIncrease)
	}

	if opts.NewPlayerChips == "" {
		opts.NewPlayerChips = NewPlayerChipsStarting
	}

	if opts.NewPlayerChips != NewPlayerChipsStarting && opts.NewPlayerChips != NewPlayerChipsLowest {
		return fmt.Errorf("unknown new player chip policy: %s", opts.NewPlayerChips)
	}

	if opts.TurnTimer <= 0 {
		opts.TurnTimer = DefaultOptions().TurnTimer
	}

	if opts.NextHandDelay <= 0 {
		opts.NextHandDelay = DefaultOptions().NextHandDelay
	}

	if opts.DisconnectGrace <= 0 {
		opts.DisconnectGrace = DefaultOptions().DisconnectGrace
	}

	return nil
}
