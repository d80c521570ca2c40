package room

import (
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"holdem-table-server/pkg/holdem"
)

// Dealer runs a single table. Every table mutation happens inside the
// dealer's run loop, so the engine itself never needs a lock. Timer
// callbacks are posted into the same loop.
type Dealer struct {
	directory *Directory
	table     *holdem.Table
	log       logrus.FieldLogger

	clients map[*Client]bool
	lock    sync.RWMutex

	execInRunLoop chan func()
	stateChanged  chan bool
	close         chan bool
}

// NewDealer creates the dealer and its table. The host still connects like
// any other client; the table remembers their connection id.
func NewDealer(directory *Directory, logger logrus.FieldLogger, hostID string, opts holdem.Options) (*Dealer, error) {
	d := &Dealer{
		directory:     directory,
		clients:       make(map[*Client]bool),
		execInRunLoop: make(chan func(), 256),
		stateChanged:  make(chan bool, 256),
		close:         make(chan bool),
	}

	table, err := holdem.NewTable(logger, d, hostID, opts)
	if err != nil {
		return nil, err
	}

	d.table = table
	d.log = logger.WithField("table", table.ID)

	return d, nil
}

// Table returns the dealer's table. Only safe for reads that do not race
// the run loop, like the immutable ID and host.
func (d *Dealer) Table() *holdem.Table {
	return d.table
}

// Schedule satisfies the table's scheduler by bouncing the callback through
// the run loop once the timer fires
func (d *Dealer) Schedule(wait time.Duration, fn func()) holdem.CancelFunc {
	timer := time.AfterFunc(wait, func() {
		d.execInRunLoop <- fn
		d.stateChanged <- true
	})

	return func() {
		timer.Stop()
	}
}

// Clients will return a slice of connected (at the time) clients
func (d *Dealer) Clients() []*Client {
	d.lock.RLock()
	defer d.lock.RUnlock()

	clients := make([]*Client, 0, len(d.clients))
	for client := range d.clients {
		clients = append(clients, client)
	}

	return clients
}

// StartShift starts the run loop
func (d *Dealer) StartShift() {
	go d.runLoop()
}

func (d *Dealer) runLoop() {
	d.log.Debug("creating dealer run loop")
	for {
		select {
		case <-d.stateChanged:
			d.sendGameData()
		case fn := <-d.execInRunLoop:
			fn()
		case <-d.close:
			d.log.Debug("terminating dealer run loop")
			return
		}
	}
}

// AddClient attaches a connection to the table.
// This method must return quickly.
func (d *Dealer) AddClient(client *Client) {
	d.lock.Lock()
	client.dealer = d
	d.clients[client] = true
	d.lock.Unlock()

	d.stateChanged <- true
}

// RemoveClient detaches a connection.
// This method must return quickly.
func (d *Dealer) RemoveClient(client *Client) {
	d.lock.Lock()
	delete(d.clients, client)
	d.lock.Unlock()

	client.dealer = nil
	d.stateChanged <- true
}

// EndShift is called when the dealer is no longer needed
func (d *Dealer) EndShift() {
	close(d.close)
}

// NOTE: must only be called from the run loop
func (d *Dealer) sendGameData() {
	for _, client := range d.Clients() {
		client.Send(&Response{
			Key:  "game",
			Data: d.table.StateFor(client.ConnID),
		})
	}
}

// ReceivedMessage is called when a client sends a message to the server
func (d *Dealer) ReceivedMessage(c *Client, msg *PayloadIn) {
	switch msg.Action {
	case "start":
		d.performIntent(c, msg, func() error {
			return d.table.StartGame(c.ConnID)
		})
	case "fold", "check", "call", "raise":
		amount, _ := msg.AdditionalData.GetInt("amount")
		action, err := holdem.ActionFromString(msg.Action, amount)
		if err != nil {
			c.Send(newErrorResponse(msg.Context, err))
			return
		}

		d.performIntent(c, msg, func() error {
			return d.table.PlayerAction(c.ConnID, action)
		})
	case "pause":
		d.performIntent(c, msg, func() error {
			return d.table.Pause(c.ConnID)
		})
	case "resume":
		d.performIntent(c, msg, func() error {
			return d.table.Resume(c.ConnID)
		})
	case "kick":
		target, ok := msg.AdditionalData.GetString("playerId")
		if !ok {
			c.Send(newErrorResponse(msg.Context, errors.New("could not obtain playerId")))
			return
		}

		d.performIntent(c, msg, func() error {
			return d.table.Kick(c.ConnID, target)
		})
	case "chat":
		message, ok := msg.AdditionalData.GetString("message")
		if !ok || message == "" {
			c.Send(newErrorResponse(msg.Context, errors.New("could not obtain message")))
			return
		}

		d.performIntent(c, msg, func() error {
			return d.table.Chat(c.ConnID, message)
		})
	case "reaction":
		// pure fan-out, no game-state effect
		reaction, ok := msg.AdditionalData.GetString("reaction")
		if !ok || reaction == "" {
			c.Send(newErrorResponse(msg.Context, errors.New("could not obtain reaction")))
			return
		}

		for _, client := range d.Clients() {
			client.Send(&Response{
				Key:   "reaction",
				Value: reaction,
				Data:  c.ConnID,
			})
		}
	case "leave":
		if c.ConnID == d.table.HostID() {
			d.directory.closeTable(d)
			return
		}

		d.performIntent(c, msg, func() error {
			return d.table.Leave(c.ConnID)
		})

		d.directory.clearSeat(c.ConnID)
		d.RemoveClient(c)
	case "state":
		d.execInRunLoop <- func() {
			c.Send(&Response{
				Key:     "game",
				Data:    d.table.StateFor(c.ConnID),
				Context: msg.Context,
			})
		}
	default:
		d.log.WithField("msg", msg).Warn("unknown message")
	}
}

// performIntent runs a table mutation inside the run loop and reports the
// outcome back to the requesting client
func (d *Dealer) performIntent(c *Client, msg *PayloadIn, fn func() error) {
	d.execInRunLoop <- func() {
		if err := fn(); err != nil {
			c.Send(newErrorResponse(msg.Context, err))
			return
		}

		c.Send(OK(msg.Context))
		d.stateChanged <- true
	}
}

// seatClient checks the password and seats (or admits) the connection
// inside the run loop
func (d *Dealer) seatClient(c *Client, password string, spectator bool, ctx string) {
	d.execInRunLoop <- func() {
		if err := d.table.CheckPassword(password); err != nil {
			c.Send(newErrorResponse(ctx, err))
			return
		}

		if err := d.table.AddPlayer(c.ConnID, c.Name, spectator); err != nil {
			c.Send(newErrorResponse(ctx, err))
			return
		}

		if !spectator {
			d.directory.recordSeat(c.ConnID, d)
		}

		d.AddClient(c)
		c.Send(OK(ctx))
	}
}

// Summary fetches the lobby listing through the run loop. A dealer that is
// shutting down returns nil.
func (d *Dealer) Summary() *holdem.Summary {
	result := make(chan *holdem.Summary, 1)
	d.execInRunLoop <- func() {
		result <- d.table.Summary()
	}

	select {
	case summary := <-result:
		return summary
	case <-d.close:
		return nil
	case <-time.After(time.Second):
		return nil
	}
}

// clientDisconnected marks the seat as away, or closes the table if the
// host is gone
func (d *Dealer) clientDisconnected(c *Client) {
	if c.ConnID == d.table.HostID() {
		d.directory.closeTable(d)
		return
	}

	d.execInRunLoop <- func() {
		d.table.Disconnect(c.ConnID)
		d.stateChanged <- true
	}

	d.RemoveClient(c)
}

// clientReconnected re-attaches a returning connection to its seat
func (d *Dealer) clientReconnected(c *Client, ctx string) {
	d.AddClient(c)
	d.performIntent(c, &PayloadIn{Context: ctx}, func() error {
		return d.table.Reconnect(c.ConnID)
	})
}
