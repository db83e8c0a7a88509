// Package common is the liveness resource module. It serves the static
// status page and is deliberately left outside the authenticated surface.
package common

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/smoretta/books-api/internal/modules"
)

const statusPage = `<!doctype html>
<html>
    <head><title>Status Page</title></head>
    <body>
        <h1>Status</h1>
        <p>The server is working fine!</p>
    </body>
</html>`

// Module serves GET /status. It needs no services of its own.
type Module struct{}

func NewModule() *Module {
	return &Module{}
}

func (m *Module) BaseRoute() string { return "/status" }

func (m *Module) Protected() bool { return false }

func (m *Module) RegisterServices(_ *modules.Container) error { return nil }

func (m *Module) RegisterRoutes(r chi.Router) {
	r.Get(m.BaseRoute(), m.getStatus)
}

func (m *Module) getStatus(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(statusPage))
}
