package mux

import (
	"net/http"

	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"holdem-table-server/pkg/room"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version   string
	directory *room.Directory
}

// NewMux returns a new HTTP mux
func NewMux(version string) *Mux {
	this := &Mux{
		Router:    gmux.NewRouter(),
		version:   version,
		directory: room.NewDirectory(logrus.StandardLogger()),
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodGet).Path("/table").Handler(this.getTable())
	r.Methods(http.MethodGet).Path("/ws").Handler(this.getWS())

	return this
}
