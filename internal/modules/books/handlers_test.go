package books

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smoretta/books-api/internal/logger"
	"github.com/smoretta/books-api/internal/validators"
	"github.com/smoretta/books-api/models"
)

// ---- Stub: BookService ----

// stubBookService keeps books in a map, mirroring the service contract.
// A non-nil err makes every operation fail like a storage fault would.
type stubBookService struct {
	books map[string]models.Book
	err   error
}

func newStubBookService(seed ...models.Book) *stubBookService {
	s := &stubBookService{books: make(map[string]models.Book)}
	for _, b := range seed {
		s.books[b.ISBN] = b
	}
	return s
}

func (s *stubBookService) Create(_ context.Context, book models.Book) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	if _, exists := s.books[book.ISBN]; exists {
		return false, nil
	}
	s.books[book.ISBN] = book
	return true, nil
}

func (s *stubBookService) GetByISBN(_ context.Context, isbn string) (*models.Book, error) {
	if s.err != nil {
		return nil, s.err
	}
	book, exists := s.books[isbn]
	if !exists {
		return nil, nil
	}
	return &book, nil
}

func (s *stubBookService) GetAll(_ context.Context) ([]models.Book, error) {
	if s.err != nil {
		return nil, s.err
	}
	all := make([]models.Book, 0, len(s.books))
	for _, b := range s.books {
		all = append(all, b)
	}
	return all, nil
}

func (s *stubBookService) SearchByTitle(_ context.Context, term string) ([]models.Book, error) {
	if s.err != nil {
		return nil, s.err
	}
	found := make([]models.Book, 0, len(s.books))
	for _, b := range s.books {
		if strings.Contains(b.Title, term) {
			found = append(found, b)
		}
	}
	return found, nil
}

func (s *stubBookService) Update(_ context.Context, book models.Book) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	if _, exists := s.books[book.ISBN]; !exists {
		return false, nil
	}
	s.books[book.ISBN] = book
	return true, nil
}

func (s *stubBookService) Delete(_ context.Context, isbn string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	if _, exists := s.books[isbn]; !exists {
		return false, nil
	}
	delete(s.books, isbn)
	return true, nil
}

// ---- Helpers ----

func newTestModule(svc *stubBookService) (*Module, http.Handler) {
	m := &Module{
		service:   svc,
		validator: validators.NewBookValidator(),
		logger:    logger.Nop(),
	}
	router := chi.NewRouter()
	m.RegisterRoutes(router)
	return m, router
}

func apprentice() models.Book {
	return models.Book{
		ISBN:             "978-0553573398",
		Title:            "Assassin's Apprentice",
		Author:           "Hobb, Robin",
		ShortDescription: "First of the Farseer trilogy.",
		PageCount:        435,
		ReleaseDate:      models.NewDate(1996, time.March, 1),
	}
}

func royalAssassin() models.Book {
	return models.Book{
		ISBN:             "978-0553573413",
		Title:            "Royal Assassin",
		Author:           "Hobb, Robin",
		ShortDescription: "Second of the Farseer trilogy.",
		PageCount:        675,
		ReleaseDate:      models.NewDate(1997, time.March, 3),
	}
}

func marshal(t *testing.T, v any) *strings.Reader {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return strings.NewReader(string(raw))
}

func decodeErrors(t *testing.T, body []byte) []models.ValidationError {
	t.Helper()
	var violations []models.ValidationError
	require.NoError(t, json.Unmarshal(body, &violations))
	return violations
}

// ---- POST /books ----

func TestCreateBook_Created(t *testing.T) {
	_, router := newTestModule(newStubBookService())
	book := apprentice()

	req := httptest.NewRequest(http.MethodPost, "/books", marshal(t, book))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/books/978-0553573398", rec.Header().Get("Location"))

	var created models.Book
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, book, created)
}

func TestCreateBook_DuplicateIsbn(t *testing.T) {
	_, router := newTestModule(newStubBookService(apprentice()))

	req := httptest.NewRequest(http.MethodPost, "/books", marshal(t, apprentice()))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	violations := decodeErrors(t, rec.Body.Bytes())
	require.Len(t, violations, 1)
	assert.Equal(t, "Isbn", violations[0].PropertyName)
	assert.Equal(t, "A book with this ISBN-13 already exists!", violations[0].ErrorMessage)
}

func TestCreateBook_InvalidIsbn(t *testing.T) {
	_, router := newTestModule(newStubBookService())
	book := apprentice()
	book.ISBN = "INVALID"

	req := httptest.NewRequest(http.MethodPost, "/books", marshal(t, book))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	violations := decodeErrors(t, rec.Body.Bytes())
	require.Len(t, violations, 1)
	assert.Equal(t, "Isbn", violations[0].PropertyName)
	assert.Equal(t, "Value was not a valid ISBN-13!", violations[0].ErrorMessage)
}

func TestCreateBook_MalformedJSON(t *testing.T) {
	_, router := newTestModule(newStubBookService())

	req := httptest.NewRequest(http.MethodPost, "/books", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateBook_CaseInsensitiveFieldNames(t *testing.T) {
	svc := newStubBookService()
	_, router := newTestModule(svc)

	payload := `{"Isbn":"978-0553573398","Title":"Assassin's Apprentice","Author":"Hobb, Robin","PageCount":435,"ShortDescription":"...","ReleaseDate":"1996-03-01"}`
	req := httptest.NewRequest(http.MethodPost, "/books", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	stored := svc.books["978-0553573398"]
	assert.Equal(t, "Assassin's Apprentice", stored.Title)
	assert.Equal(t, 435, stored.PageCount)
}

func TestCreateBook_StorageFault(t *testing.T) {
	svc := newStubBookService()
	svc.err = errors.New("connection refused")
	_, router := newTestModule(svc)

	req := httptest.NewRequest(http.MethodPost, "/books", marshal(t, apprentice()))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ---- GET /books ----

func TestGetBooks_All(t *testing.T) {
	_, router := newTestModule(newStubBookService(apprentice(), royalAssassin()))

	req := httptest.NewRequest(http.MethodGet, "/books", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var listed []models.Book
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	assert.Len(t, listed, 2)
}

func TestGetBooks_EmptyStore(t *testing.T) {
	_, router := newTestModule(newStubBookService())

	req := httptest.NewRequest(http.MethodGet, "/books", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestGetBooks_SearchTerm(t *testing.T) {
	_, router := newTestModule(newStubBookService(apprentice(), royalAssassin()))

	req := httptest.NewRequest(http.MethodGet, "/books?searchTerm=oyal", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var listed []models.Book
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "Royal Assassin", listed[0].Title)
}

func TestGetBooks_BlankSearchTermListsAll(t *testing.T) {
	_, router := newTestModule(newStubBookService(apprentice(), royalAssassin()))

	req := httptest.NewRequest(http.MethodGet, "/books?searchTerm=%20%20", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var listed []models.Book
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	assert.Len(t, listed, 2)
}

// ---- GET /books/{isbn} ----

func TestGetBook_Found(t *testing.T) {
	_, router := newTestModule(newStubBookService(apprentice()))

	req := httptest.NewRequest(http.MethodGet, "/books/978-0553573398", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var found models.Book
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &found))
	assert.Equal(t, apprentice(), found)
}

func TestGetBook_NotFound(t *testing.T) {
	_, router := newTestModule(newStubBookService())

	req := httptest.NewRequest(http.MethodGet, "/books/978-0000000000", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ---- PUT /books/{isbn} ----

func TestUpdateBook_Updated(t *testing.T) {
	svc := newStubBookService(apprentice())
	_, router := newTestModule(svc)

	changed := apprentice()
	changed.PageCount = 480
	changed.ShortDescription = "Revised edition."

	req := httptest.NewRequest(http.MethodPut, "/books/978-0553573398", marshal(t, changed))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 480, svc.books["978-0553573398"].PageCount)
}

func TestUpdateBook_PathIsbnWins(t *testing.T) {
	svc := newStubBookService(apprentice())
	_, router := newTestModule(svc)

	payload := apprentice()
	payload.ISBN = "978-9999999999" // ignored: identity comes from the path

	req := httptest.NewRequest(http.MethodPut, "/books/978-0553573398", marshal(t, payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var updated models.Book
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "978-0553573398", updated.ISBN)

	_, renamed := svc.books["978-9999999999"]
	assert.False(t, renamed, "update must never change the identity")
}

func TestUpdateBook_NotFound(t *testing.T) {
	_, router := newTestModule(newStubBookService())

	req := httptest.NewRequest(http.MethodPut, "/books/978-0000000000", marshal(t, apprentice()))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateBook_EmptyTitle(t *testing.T) {
	svc := newStubBookService(apprentice())
	_, router := newTestModule(svc)

	invalid := apprentice()
	invalid.Title = ""

	req := httptest.NewRequest(http.MethodPut, "/books/978-0553573398", marshal(t, invalid))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	violations := decodeErrors(t, rec.Body.Bytes())
	require.Len(t, violations, 1)
	assert.Equal(t, "Title", violations[0].PropertyName)
	assert.Equal(t, "'Title' must not be empty.", violations[0].ErrorMessage)

	assert.Equal(t, "Assassin's Apprentice", svc.books["978-0553573398"].Title,
		"a rejected update must leave the stored record unchanged")
}

// ---- DELETE /books/{isbn} ----

func TestDeleteBook_Deleted(t *testing.T) {
	svc := newStubBookService(apprentice())
	_, router := newTestModule(svc)

	req := httptest.NewRequest(http.MethodDelete, "/books/978-0553573398", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	getReq := httptest.NewRequest(http.MethodGet, "/books/978-0553573398", nil)
	getRec := httptest.NewRecorder()
	router.ServeHTTP(getRec, getReq)
	assert.Equal(t, http.StatusNotFound, getRec.Code)
}

func TestDeleteBook_NotFound(t *testing.T) {
	_, router := newTestModule(newStubBookService())

	req := httptest.NewRequest(http.MethodDelete, "/books/978-0000000000", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
