package holdem

import "holdem-table-server/pkg/deck"

// Player is a seat at a table. Players are only ever mutated by the table
// engine in response to validated actions or street transitions.
type Player struct {
	ConnID string
	Name   string

	chips int
	bet   int // this street only

	cards deck.Hand

	folded       bool
	allIn        bool
	disconnected bool
	hasActed     bool
	eliminated   bool

	lastAction string
}

func newPlayer(connID, name string, chips int) *Player {
	return &Player{
		ConnID: connID,
		Name:   name,
		chips:  chips,
	}
}

// Chips returns the player's current stack
func (p *Player) Chips() int {
	return p.chips
}

// isActive returns true if the player can take part in a new hand
func (p *Player) isActive() bool {
	return p.chips > 0 && !p.disconnected
}

// canAct returns true if the player may still act in the current hand
func (p *Player) canAct() bool {
	return !p.folded && !p.allIn && !p.disconnected && p.chips > 0
}

// put moves up to amount chips from the stack into the player's street bet,
// returning how many chips actually moved. Exhausting the stack puts the
// player all-in.
func (p *Player) put(amount int) int {
	if amount > p.chips {
		amount = p.chips
	}

	p.chips -= amount
	p.bet += amount
	if p.chips == 0 {
		p.allIn = true
	}

	return amount
}

// newHand resets the per-hand fields. Seats that cannot take part start the
// hand folded so turn order skips them.
func (p *Player) newHand() {
	p.bet = 0
	p.cards = make(deck.Hand, 0, 2)
	p.folded = !p.isActive()
	p.allIn = false
	p.hasActed = false
	p.lastAction = ""
}

// newStreet resets the per-street fields
func (p *Player) newStreet() {
	p.bet = 0
	p.hasActed = false
}

type playerState struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Chips        int       `json:"chips"`
	Bet          int       `json:"bet"`
	Folded       bool      `json:"folded"`
	AllIn        bool      `json:"allIn"`
	Disconnected bool      `json:"disconnected"`
	LastAction   string    `json:"lastAction,omitempty"`
	HasCards     bool      `json:"hasCards"`
	Cards        deck.Hand `json:"cards,omitempty"`
}

// state returns the public view of the seat. Hole cards are only included
// for the player themselves; this is the privacy boundary the engine
// enforces.
func (p *Player) state(forOwner bool) *playerState {
	ps := &playerState{
		ID:           p.ConnID,
		Name:         p.Name,
		Chips:        p.chips,
		Bet:          p.bet,
		Folded:       p.folded,
		AllIn:        p.allIn,
		Disconnected: p.disconnected,
		LastAction:   p.lastAction,
		HasCards:     len(p.cards) > 0,
	}

	if forOwner {
		ps.Cards = p.cards
	}

	return ps
}
