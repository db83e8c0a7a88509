package http

import (
	"crypto/subtle"
	"net/http"

	"github.com/smoretta/books-api/internal/logger"
)

// withAPIKeyAuth enforces the static shared-secret scheme: the Authorization
// header must equal the configured API key verbatim. The comparison is
// constant-time. Absence or mismatch yields 401.
func (h *Handler) withAPIKeyAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		header := r.Header.Get("Authorization")
		if header == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, "Invalid API Key", http.StatusUnauthorized)
			return
		}

		if subtle.ConstantTimeCompare([]byte(header), []byte(h.apiKey)) != 1 {
			log.Err(ErrWrongAPIKey).Send()
			http.Error(w, "Invalid API Key", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
