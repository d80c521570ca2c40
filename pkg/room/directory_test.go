package room

import (
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"holdem-table-server/pkg/holdem"
)

func testDirectory() *Directory {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return NewDirectory(logger)
}

// waitForKey reads the client's send channel until a response with the key
// arrives. Game state broadcasts interleave with direct responses, so
// anything else is skipped.
func waitForKey(t *testing.T, c *Client, key string) *Response {
	t.Helper()

	timeout := time.After(time.Second * 2)
	for {
		select {
		case msg := <-c.SendChan():
			res, ok := msg.(*Response)
			if !ok {
				continue
			}

			if res.Key == key || res.Key == "error" {
				return res
			}
		case <-timeout:
			t.Fatalf("timed out waiting for %q", key)
			return nil
		}
	}
}

func TestDirectory_createAndJoin(t *testing.T) {
	dir := testDirectory()

	host := NewClient(nil, dir, "host-conn", "Alice")
	host.ReceivedMessage(&PayloadIn{
		Action: "createTable",
		AdditionalData: AdditionalData{
			"name":     "Friday Night",
			"password": "let me in",
		},
		Context: "create-1",
	})

	res := waitForKey(t, host, "status")
	assert.Equal(t, "OK", res.Value)
	assert.Equal(t, "create-1", res.Context)
	assert.NotNil(t, host.dealer)

	tables := dir.Tables()
	assert.Equal(t, 1, len(tables))
	assert.Equal(t, "Friday Night", tables[0].Name)
	assert.True(t, tables[0].HasPassword)
	tableID := tables[0].ID

	// wrong password is rejected
	guest := NewClient(nil, dir, "guest-conn", "Bob")
	guest.ReceivedMessage(&PayloadIn{
		Action: "joinTable",
		AdditionalData: AdditionalData{
			"tableId":  tableID,
			"password": "let me out",
		},
	})
	res = waitForKey(t, guest, "status")
	assert.Equal(t, "error", res.Key)
	assert.Equal(t, "Incorrect password", res.Value)

	guest.ReceivedMessage(&PayloadIn{
		Action: "joinTable",
		AdditionalData: AdditionalData{
			"tableId":  tableID,
			"password": "let me in",
		},
	})
	res = waitForKey(t, guest, "status")
	assert.Equal(t, "OK", res.Value)

	tables = dir.Tables()
	assert.Equal(t, 2, tables[0].Players)

	// joining a table that does not exist
	stray := NewClient(nil, dir, "stray-conn", "Carol")
	stray.ReceivedMessage(&PayloadIn{
		Action:         "joinTable",
		AdditionalData: AdditionalData{"tableId": "no-such-table"},
	})
	res = waitForKey(t, stray, "error")
	assert.Equal(t, "table not found", res.Value)
}

func TestDirectory_hostLeavingClosesTheTable(t *testing.T) {
	dir := testDirectory()

	host := NewClient(nil, dir, "host-conn", "Alice")
	host.ReceivedMessage(&PayloadIn{Action: "createTable"})
	waitForKey(t, host, "status")

	guest := NewClient(nil, dir, "guest-conn", "Bob")
	guest.ReceivedMessage(&PayloadIn{
		Action:         "joinTable",
		AdditionalData: AdditionalData{"tableId": dir.Tables()[0].ID},
	})
	waitForKey(t, guest, "status")

	host.ReceivedMessage(&PayloadIn{Action: "leave"})
	waitForKey(t, guest, "tableClosed")

	assert.Equal(t, 0, len(dir.Tables()))
}

func TestDirectory_gameplayThroughTheDealer(t *testing.T) {
	dir := testDirectory()

	host := NewClient(nil, dir, "host-conn", "Alice")
	host.ReceivedMessage(&PayloadIn{
		Action:         "createTable",
		AdditionalData: AdditionalData{"smallBlind": float64(1), "bigBlind": float64(2)},
	})
	waitForKey(t, host, "status")

	guest := NewClient(nil, dir, "guest-conn", "Bob")
	guest.ReceivedMessage(&PayloadIn{
		Action:         "joinTable",
		AdditionalData: AdditionalData{"tableId": dir.Tables()[0].ID},
	})
	waitForKey(t, guest, "status")

	// only the host may start the game
	guest.ReceivedMessage(&PayloadIn{Action: "start", Context: "start-1"})
	res := waitForKey(t, guest, "status")
	assert.Equal(t, "error", res.Key)

	host.ReceivedMessage(&PayloadIn{Action: "start", Context: "start-2"})
	res = waitForKey(t, host, "status")
	assert.Equal(t, "OK", res.Value)

	host.ReceivedMessage(&PayloadIn{Action: "state", Context: "state-1"})
	res = waitForKey(t, host, "game")
	state, ok := res.Data.(*holdem.State)
	assert.True(t, ok)
	assert.Equal(t, holdem.PhasePreFlop, state.Phase)
	assert.Equal(t, 2, len(state.Players))
}

func TestOptionsFromPayload(t *testing.T) {
	opts := optionsFromPayload(AdditionalData{
		"name":          "High Rollers",
		"maxPlayers":    float64(4),
		"startingChips": float64(500),
		"smallBlind":    float64(5),
		"bigBlind":      float64(10),
		"turnTimer":     float64(30),
		"blindIncrease": "perElimination",
	})

	assert.Equal(t, "High Rollers", opts.Name)
	assert.Equal(t, 4, opts.MaxPlayers)
	assert.Equal(t, 500, opts.StartingChips)
	assert.Equal(t, 5, opts.SmallBlind)
	assert.Equal(t, 10, opts.BigBlind)
	assert.Equal(t, time.Second*30, opts.TurnTimer)
	assert.Equal(t, holdem.BlindIncreasePerElimination, opts.BlindIncrease)

	defaults := optionsFromPayload(AdditionalData{})
	assert.Equal(t, holdem.DefaultOptions(), defaults)
}
