package mux

import "net/http"

// getTable lists the live tables for the lobby
func (m *Mux) getTable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, m.directory.Tables())
	}
}
