package books

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/smoretta/books-api/internal/logger"
	"github.com/smoretta/books-api/internal/validators"
	"github.com/smoretta/books-api/models"
)

// getBooks serves GET /books. A non-blank searchTerm query parameter turns
// the listing into a substring title search.
func (m *Module) getBooks(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var (
		result []models.Book
		err    error
	)

	if term := r.URL.Query().Get("searchTerm"); strings.TrimSpace(term) != "" {
		result, err = m.service.SearchByTitle(r.Context(), term)
	} else {
		result, err = m.service.GetAll(r.Context())
	}

	if err != nil {
		log.Err(err).Str("func", "*Module.getBooks").Msg("error listing books")
		http.Error(w, "error listing books", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// getBook serves GET /books/{isbn}.
func (m *Module) getBook(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	isbn := chi.URLParam(r, "isbn")

	book, err := m.service.GetByISBN(r.Context(), isbn)
	if err != nil {
		log.Err(err).Str("func", "*Module.getBook").Str("isbn", isbn).Msg("error fetching book")
		http.Error(w, "error fetching book", http.StatusInternalServerError)
		return
	}
	if book == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, book)
}

// createBook serves POST /books: validate, create, 201 with a Location
// header on success. A taken ISBN yields 400 with a validation-shaped
// conflict entry so clients handle every 400 body uniformly.
func (m *Module) createBook(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var book models.Book
	if err := json.NewDecoder(r.Body).Decode(&book); err != nil {
		log.Err(err).Str("func", "*Module.createBook").Msg("invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if violations := m.validator.Validate(book); len(violations) > 0 {
		writeJSON(w, http.StatusBadRequest, violations)
		return
	}

	created, err := m.service.Create(r.Context(), book)
	if err != nil {
		log.Err(err).Str("func", "*Module.createBook").Str("isbn", book.ISBN).Msg("error creating book")
		http.Error(w, "error creating book", http.StatusInternalServerError)
		return
	}
	if !created {
		writeJSON(w, http.StatusBadRequest, []models.ValidationError{{
			PropertyName: validators.PropertyISBN,
			ErrorMessage: "A book with this ISBN-13 already exists!",
		}})
		return
	}

	w.Header().Set("Location", m.BaseRoute()+"/"+book.ISBN)
	writeJSON(w, http.StatusCreated, book)
}

// updateBook serves PUT /books/{isbn}. The path ISBN is the identity and
// overwrites whatever the payload carries before validation runs.
func (m *Module) updateBook(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	isbn := chi.URLParam(r, "isbn")

	var book models.Book
	if err := json.NewDecoder(r.Body).Decode(&book); err != nil {
		log.Err(err).Str("func", "*Module.updateBook").Msg("invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	book.ISBN = isbn

	if violations := m.validator.Validate(book); len(violations) > 0 {
		writeJSON(w, http.StatusBadRequest, violations)
		return
	}

	updated, err := m.service.Update(r.Context(), book)
	if err != nil {
		log.Err(err).Str("func", "*Module.updateBook").Str("isbn", isbn).Msg("error updating book")
		http.Error(w, "error updating book", http.StatusInternalServerError)
		return
	}
	if !updated {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, book)
}

// deleteBook serves DELETE /books/{isbn}. Deletion is final; a missing
// record yields 404.
func (m *Module) deleteBook(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	isbn := chi.URLParam(r, "isbn")

	deleted, err := m.service.Delete(r.Context(), isbn)
	if err != nil {
		log.Err(err).Str("func", "*Module.deleteBook").Str("isbn", isbn).Msg("error deleting book")
		http.Error(w, "error deleting book", http.StatusInternalServerError)
		return
	}
	if !deleted {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
