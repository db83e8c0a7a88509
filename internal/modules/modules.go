// Package modules implements the resource module composition system.
//
// A resource module is a self-contained unit (books, the status page) that
// registers both its HTTP routes and its service dependencies. The registry
// holds a static, closed list of modules declared at composition time and
// wires every one of them before the server starts accepting connections,
// so the entrypoint never needs to know a module's internals.
package modules

import (
	"fmt"

	"github.com/go-chi/chi/v5"

	"github.com/smoretta/books-api/internal/config"
	"github.com/smoretta/books-api/internal/logger"
	"github.com/smoretta/books-api/internal/store"
)

// Container carries the shared dependencies a module may draw from when
// registering its services.
type Container struct {
	DB     *store.DB
	Config *config.Config
	Logger *logger.Logger
}

// Module is the contract every resource module satisfies.
type Module interface {
	// BaseRoute is the module's base path segment (e.g. "/books").
	BaseRoute() string

	// Protected reports whether the module's routes require the API key.
	Protected() bool

	// RegisterServices builds the module's own services from the shared
	// container. It runs exactly once, before RegisterRoutes.
	RegisterServices(c *Container) error

	// RegisterRoutes registers the module's HTTP routes on the given router.
	RegisterRoutes(r chi.Router)
}

// Registry enumerates the known resource modules.
type Registry struct {
	modules []Module
}

// NewRegistry builds a registry over the statically declared module list.
func NewRegistry(modules ...Module) *Registry {
	return &Registry{modules: modules}
}

// Init invokes RegisterServices on every module. A failing module aborts
// startup; the server must not accept connections half-wired.
func (reg *Registry) Init(c *Container) error {
	for _, m := range reg.modules {
		if err := m.RegisterServices(c); err != nil {
			return fmt.Errorf("error registering services for module %q: %w", m.BaseRoute(), err)
		}
	}

	return nil
}

// Public returns the modules served without authentication.
func (reg *Registry) Public() []Module {
	return reg.filter(false)
}

// Protected returns the modules guarded by the API-key middleware.
func (reg *Registry) Protected() []Module {
	return reg.filter(true)
}

func (reg *Registry) filter(protected bool) []Module {
	selected := make([]Module, 0, len(reg.modules))
	for _, m := range reg.modules {
		if m.Protected() == protected {
			selected = append(selected, m)
		}
	}
	return selected
}
