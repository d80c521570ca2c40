package holdem

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/synacor/argon2id"

	"holdem-table-server/pkg/deck"
)

// Table owns the entire state of one table: seats, cards, chips, turn order
// and timers. It is not safe for concurrent use; the caller must serialize
// every entry point (client intents and timer callbacks) onto a single
// logical queue. The room package runs one such queue per table.
type Table struct {
	ID     string
	log    logrus.FieldLogger
	opts   Options
	hostID string

	passwordHash string

	players    []*Player
	spectators map[string]string // conn id -> display name

	deck      *deck.Deck
	community deck.Hand

	pot        int
	currentBet int
	minRaise   int

	smallBlind int
	bigBlind   int

	dealerPos int
	turnPos   int

	phase  Phase
	paused bool

	handNum   int
	actionLog []*LogEntry

	scheduler    Scheduler
	turnSeq      int
	turnCancel   CancelFunc
	turnDeadline *time.Time

	nextHandCancel CancelFunc
	discCancel     map[string]CancelFunc
}

// NewTable creates a new table with the given host. The host still needs a
// seat; call AddPlayer. The password, if any, is stored as an argon2id hash.
func NewTable(logger logrus.FieldLogger, scheduler Scheduler, hostID string, opts Options) (*Table, error) {
	if err := validateOptions(&opts); err != nil {
		return nil, err
	}

	var passwordHash string
	if opts.Password != "" {
		hash, err := argon2id.DefaultHashPassword(opts.Password)
		if err != nil {
			return nil, err
		}

		passwordHash = hash
		opts.Password = ""
	}

	id := uuid.New().String()

	return &Table{
		ID:           id,
		log:          logger.WithField("table", id),
		opts:         opts,
		hostID:       hostID,
		passwordHash: passwordHash,
		players:      make([]*Player, 0, opts.MaxPlayers),
		spectators:   make(map[string]string),
		deck:         deck.New(),
		community:    make(deck.Hand, 0, 5),
		smallBlind:   opts.SmallBlind,
		bigBlind:     opts.BigBlind,
		dealerPos:    -1,
		turnPos:      -1,
		phase:        PhaseWaiting,
		scheduler:    scheduler,
		discCancel:   make(map[string]CancelFunc),
	}, nil
}

// Name returns the table's display name
func (t *Table) Name() string {
	return t.opts.Name
}

// HostID returns the connection id of the table's host
func (t *Table) HostID() string {
	return t.hostID
}

// Phase returns the table's current phase
func (t *Table) Phase() Phase {
	return t.phase
}

// Empty returns true if nobody is seated or spectating
func (t *Table) Empty() bool {
	return len(t.players) == 0 && len(t.spectators) == 0
}

// CheckPassword validates a join attempt's password
func (t *Table) CheckPassword(password string) error {
	if t.passwordHash == "" {
		return nil
	}

	if err := argon2id.Compare(t.passwordHash, password); err != nil {
		return ErrIncorrectPassword
	}

	return nil
}

// AddPlayer seats a player, or admits a spectator. Spectators are always
// admitted; a seat request fails if the table is full. A seat added after
// the game started joins folded and is dealt in on the next hand.
func (t *Table) AddPlayer(connID, name string, spectator bool) error {
	if t.player(connID) != nil || t.spectators[connID] != "" {
		return ErrAlreadySeated
	}

	if spectator {
		t.spectators[connID] = name
		t.logEvent("%s is watching", name)
		return nil
	}

	if len(t.players) >= t.opts.MaxPlayers {
		return ErrTableFull
	}

	p := newPlayer(connID, name, t.startingChipsForNewPlayer())
	if t.phase != PhaseWaiting {
		// skipped by turn order until the next hand starts
		p.folded = true
	}

	t.players = append(t.players, p)
	t.logEvent("%s sat down with %d chips", name, p.chips)

	return nil
}

// startingChipsForNewPlayer applies the new-player chip policy. Under the
// "lowest" policy, a late joiner cannot out-stack the current field.
func (t *Table) startingChipsForNewPlayer() int {
	if t.phase == PhaseWaiting || t.opts.NewPlayerChips != NewPlayerChipsLowest {
		return t.opts.StartingChips
	}

	lowest := 0
	for _, p := range t.players {
		if p.chips > 0 && (lowest == 0 || p.chips < lowest) {
			lowest = p.chips
		}
	}

	if lowest == 0 {
		return t.opts.StartingChips
	}

	return lowest
}

// player returns the seated player with the given connection id, or nil
func (t *Table) player(connID string) *Player {
	for _, p := range t.players {
		if p.ConnID == connID {
			return p
		}
	}

	return nil
}

func (t *Table) playerIndex(connID string) int {
	for i, p := range t.players {
		if p.ConnID == connID {
			return i
		}
	}

	return -1
}

// activeCount returns the number of players who could take part in a new
// hand (connected with chips)
func (t *Table) activeCount() int {
	n := 0
	for _, p := range t.players {
		if p.isActive() {
			n++
		}
	}

	return n
}

// nonFoldedCount returns how many players are still in the current hand
func (t *Table) nonFoldedCount() int {
	n := 0
	for _, p := range t.players {
		if !p.folded {
			n++
		}
	}

	return n
}

// canActCount returns how many players may still make betting decisions
func (t *Table) canActCount() int {
	n := 0
	for _, p := range t.players {
		if p.canAct() {
			n++
		}
	}

	return n
}

// nextActiveSeat returns the index of the next seat after pos (wrapping)
// that could take part in a new hand, or -1 if there is none
func (t *Table) nextActiveSeat(pos int) int {
	n := len(t.players)
	for i := 1; i <= n; i++ {
		idx := ((pos+i)%n + n) % n
		if t.players[idx].isActive() {
			return idx
		}
	}

	return -1
}

// nextSeatInHand returns the index of the next seat after pos (wrapping)
// that has not folded, or -1 if there is none. All-in players are included.
func (t *Table) nextSeatInHand(pos int) int {
	n := len(t.players)
	for i := 1; i <= n; i++ {
		idx := ((pos+i)%n + n) % n
		if !t.players[idx].folded {
			return idx
		}
	}

	return -1
}

// nextActionSeat returns the index of the next seat after pos (wrapping)
// that may still act this street, or -1 if there is none
func (t *Table) nextActionSeat(pos int) int {
	n := len(t.players)
	for i := 1; i <= n; i++ {
		idx := ((pos+i)%n + n) % n
		if t.players[idx].canAct() {
			return idx
		}
	}

	return -1
}

// fail marks the table as irrecoverably broken. Engine invariants were
// violated; no further intents will be accepted, other tables are
// unaffected.
func (t *Table) fail(err error) {
	t.log.WithError(err).Error("table failed")
	t.clearTurnTimer()
	t.clearNextHandTimer()
	t.phase = PhaseFailed
	t.logEvent("The table hit an internal error and was shut down")
}
