package room

import (
	"fmt"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Client is a client connected to the server via websockets
type Client struct {
	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// ConnID uniquely identifies this connection. A reconnecting client
	// presents a token that restores its previous id.
	ConnID string

	// Name is the client's display name
	Name string

	// send is a channel for sending messages to the client
	send chan interface{}

	// Close is a channel for closing the client
	Close chan string

	// CloseError contains the reason why the connection was closed
	CloseError error

	directory *Directory
	dealer    *Dealer
}

// NewClient returns a new client object
func NewClient(conn *websocket.Conn, directory *Directory, connID, name string) *Client {
	return &Client{
		Conn:      conn,
		ConnID:    connID,
		Name:      name,
		send:      make(chan interface{}, 256),
		Close:     make(chan string),
		directory: directory,
	}
}

// Send sends a message to the web client
func (c *Client) Send(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// SendChan returns a read-only channel
func (c *Client) SendChan() <-chan interface{} {
	return c.send
}

// String returns a traceable identifier for the connection
func (c *Client) String() string {
	return fmt.Sprintf("%s:%s", c.Name, c.ConnID)
}

// ReceivedMessage is called when the server receives a message from a
// connected client. Lobby messages go to the directory until the client is
// at a table.
func (c *Client) ReceivedMessage(msg *PayloadIn) {
	if dealer := c.dealer; dealer != nil {
		dealer.ReceivedMessage(c, msg)
		return
	}

	if c.directory == nil {
		logrus.WithField("msg", msg).Warn("received message, but directory not found")
		return
	}

	c.directory.ReceivedMessage(c, msg)
}
