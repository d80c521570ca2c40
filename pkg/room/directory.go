package room

import (
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"holdem-table-server/pkg/holdem"
)

// Directory tracks every live table and which table each seated connection
// belongs to. The seat index survives a disconnect so a returning client
// can be routed back to its dealer.
type Directory struct {
	log  logrus.FieldLogger
	lock sync.RWMutex

	dealers map[string]*Dealer // table id -> dealer
	seats   map[string]*Dealer // conn id -> dealer
}

// NewDirectory returns a new directory object
func NewDirectory(logger logrus.FieldLogger) *Directory {
	return &Directory{
		log:     logger,
		dealers: make(map[string]*Dealer),
		seats:   make(map[string]*Dealer),
	}
}

// ReceivedMessage handles lobby messages from clients not yet at a table
func (dir *Directory) ReceivedMessage(c *Client, msg *PayloadIn) {
	switch msg.Action {
	case "createTable":
		dir.createTable(c, msg)
	case "joinTable":
		dir.joinTable(c, msg)
	case "reconnect":
		dir.reconnect(c, msg)
	case "tables":
		c.Send(&Response{
			Key:     "tables",
			Data:    dir.Tables(),
			Context: msg.Context,
		})
	default:
		dir.log.WithField("msg", msg).Warn("unknown lobby message")
	}
}

func (dir *Directory) createTable(c *Client, msg *PayloadIn) {
	dealer, err := NewDealer(dir, dir.log, c.ConnID, optionsFromPayload(msg.AdditionalData))
	if err != nil {
		c.Send(newErrorResponse(msg.Context, err))
		return
	}

	dir.lock.Lock()
	dir.dealers[dealer.table.ID] = dealer
	dir.lock.Unlock()

	dealer.StartShift()
	dir.log.WithFields(logrus.Fields{
		"table": dealer.table.ID,
		"host":  c.ConnID,
	}).Debug("table created")

	// the host takes the first seat using the password they just chose
	password, _ := msg.AdditionalData.GetString("password")
	dealer.seatClient(c, password, false, msg.Context)
}

func (dir *Directory) joinTable(c *Client, msg *PayloadIn) {
	tableID, ok := msg.AdditionalData.GetString("tableId")
	if !ok {
		c.Send(newErrorResponse(msg.Context, errors.New("could not obtain tableId")))
		return
	}

	dir.lock.RLock()
	dealer, found := dir.dealers[tableID]
	dir.lock.RUnlock()

	if !found {
		c.Send(newErrorResponse(msg.Context, errors.New("table not found")))
		return
	}

	password, _ := msg.AdditionalData.GetString("password")
	spectator, _ := msg.AdditionalData.GetBool("spectator")
	dealer.seatClient(c, password, spectator, msg.Context)
}

// reconnect routes a returning connection back to the table it was seated
// at. The connection id was restored from the client's token upstream.
func (dir *Directory) reconnect(c *Client, msg *PayloadIn) {
	dir.lock.RLock()
	dealer, found := dir.seats[c.ConnID]
	dir.lock.RUnlock()

	if !found {
		c.Send(newErrorResponse(msg.Context, errors.New("no seat to reconnect to")))
		return
	}

	dealer.clientReconnected(c, msg.Context)
}

// Tables returns the lobby listing of every live table
func (dir *Directory) Tables() []*holdem.Summary {
	dir.lock.RLock()
	dealers := make([]*Dealer, 0, len(dir.dealers))
	for _, dealer := range dir.dealers {
		dealers = append(dealers, dealer)
	}
	dir.lock.RUnlock()

	summaries := make([]*holdem.Summary, 0, len(dealers))
	for _, dealer := range dealers {
		if summary := dealer.Summary(); summary != nil {
			summaries = append(summaries, summary)
		}
	}

	return summaries
}

// ClientDisconnected is called when a websocket drops. Seated players keep
// their seat until the table's grace period expires.
func (dir *Directory) ClientDisconnected(c *Client) {
	if dealer := c.dealer; dealer != nil {
		dealer.clientDisconnected(c)
	}
}

// closeTable tears a table down and tells everyone at it
func (dir *Directory) closeTable(d *Dealer) {
	dir.lock.Lock()
	delete(dir.dealers, d.table.ID)
	for connID, dealer := range dir.seats {
		if dealer == d {
			delete(dir.seats, connID)
		}
	}
	dir.lock.Unlock()

	for _, client := range d.Clients() {
		client.Send(&Response{Key: "tableClosed"})
		d.RemoveClient(client)
	}

	d.EndShift()
	dir.log.WithField("table", d.table.ID).Debug("table closed")
}

func (dir *Directory) recordSeat(connID string, d *Dealer) {
	dir.lock.Lock()
	dir.seats[connID] = d
	dir.lock.Unlock()
}

func (dir *Directory) clearSeat(connID string) {
	dir.lock.Lock()
	delete(dir.seats, connID)
	dir.lock.Unlock()
}

// optionsFromPayload builds table options from a createTable payload,
// falling back to the defaults for anything the client left out
func optionsFromPayload(data AdditionalData) holdem.Options {
	opts := holdem.DefaultOptions()

	if name, ok := data.GetString("name"); ok {
		opts.Name = name
	}

	if password, ok := data.GetString("password"); ok {
		opts.Password = password
	}

	if n, ok := data.GetInt("maxPlayers"); ok {
		opts.MaxPlayers = n
	}

	if n, ok := data.GetInt("startingChips"); ok {
		opts.StartingChips = n
	}

	if n, ok := data.GetInt("smallBlind"); ok {
		opts.SmallBlind = n
	}

	if n, ok := data.GetInt("bigBlind"); ok {
		opts.BigBlind = n
	}

	if n, ok := data.GetInt("turnTimer"); ok {
		opts.TurnTimer = time.Duration(n) * time.Second
	}

	if policy, ok := data.GetString("blindIncrease"); ok {
		opts.BlindIncrease = holdem.BlindIncreasePolicy(policy)
	}

	if n, ok := data.GetInt("blindIncreaseAmount"); ok {
		opts.BlindIncreaseAmount = n
	}

	if policy, ok := data.GetString("newPlayerChips"); ok {
		opts.NewPlayerChips = holdem.NewPlayerChipPolicy(policy)
	}

	if n, ok := data.GetInt("nextHandDelay"); ok {
		opts.NextHandDelay = time.Duration(n) * time.Second
	}

	if n, ok := data.GetInt("disconnectGrace"); ok {
		opts.DisconnectGrace = time.Duration(n) * time.Second
	}

	return opts
}
