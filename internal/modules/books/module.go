// Package books is the book resource module: routes, handlers, and service
// wiring for the /books endpoints.
package books

import (
	"github.com/go-chi/chi/v5"

	"github.com/smoretta/books-api/internal/logger"
	"github.com/smoretta/books-api/internal/modules"
	"github.com/smoretta/books-api/internal/service"
	"github.com/smoretta/books-api/internal/store"
	"github.com/smoretta/books-api/internal/validators"
)

// Module wires the book repository, service, and validator and serves the
// five book routes. It satisfies [modules.Module].
type Module struct {
	service   service.BookService
	validator validators.BookValidator
	logger    *logger.Logger
}

func NewModule() *Module {
	return &Module{}
}

func (m *Module) BaseRoute() string { return "/books" }

func (m *Module) Protected() bool { return true }

func (m *Module) RegisterServices(c *modules.Container) error {
	repository := store.NewBookRepository(c.DB, c.Logger)

	m.service = service.NewBookService(repository, c.Logger)
	m.validator = validators.NewBookValidator()
	m.logger = c.Logger

	return nil
}

func (m *Module) RegisterRoutes(r chi.Router) {
	r.Route(m.BaseRoute(), func(r chi.Router) {
		r.Get("/", m.getBooks)
		r.Post("/", m.createBook)
		r.Get("/{isbn}", m.getBook)
		r.Put("/{isbn}", m.updateBook)
		r.Delete("/{isbn}", m.deleteBook)
	})
}
