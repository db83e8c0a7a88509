package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/smoretta/books-api/internal/config"
	"github.com/smoretta/books-api/internal/logger"
	"github.com/smoretta/books-api/internal/modules"
)

type echoModule struct {
	base      string
	protected bool
}

func (m *echoModule) BaseRoute() string                       { return m.base }
func (m *echoModule) Protected() bool                         { return m.protected }
func (m *echoModule) RegisterServices(_ *modules.Container) error { return nil }
func (m *echoModule) RegisterRoutes(r chi.Router) {
	r.Get(m.base, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
}

func newTestRouter() http.Handler {
	h := NewHandler(config.App{APIKey: "SecretKey"}, logger.Nop())
	reg := modules.NewRegistry(
		&echoModule{base: "/books", protected: true},
		&echoModule{base: "/status"},
	)
	return h.Init(reg)
}

func TestInit_PublicModuleNeedsNoKey(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestInit_ProtectedModuleRequiresKey(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/books", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/books", nil)
	req.Header.Set("Authorization", "SecretKey")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestInit_TraceIDIsEchoed(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"), "a trace id is generated when the caller sends none")

	req = httptest.NewRequest(http.MethodGet, "/status", nil)
	req.Header.Set("X-Trace-ID", "trace-123")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "trace-123", rec.Header().Get("X-Trace-ID"))
}
