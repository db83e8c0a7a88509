package service

import (
	"context"
	"errors"

	"github.com/smoretta/books-api/internal/logger"
	"github.com/smoretta/books-api/internal/store"
	"github.com/smoretta/books-api/models"
)

type bookService struct {
	bookRepository store.BookRepository

	logger *logger.Logger
}

// NewBookService constructs a [BookService] over the given repository.
func NewBookService(bookRepository store.BookRepository, logger *logger.Logger) BookService {
	return &bookService{
		bookRepository: bookRepository,
		logger:         logger,
	}
}

// Create inserts the book and returns false when a record with the same
// ISBN already exists. The store's primary key arbitrates concurrent
// identical creates, so the outcome is the same under any interleaving.
func (s *bookService) Create(ctx context.Context, book models.Book) (bool, error) {
	created, err := s.bookRepository.Save(ctx, book)
	if errors.Is(err, store.ErrBookAlreadyExists) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return created, nil
}

func (s *bookService) GetByISBN(ctx context.Context, isbn string) (*models.Book, error) {
	return s.bookRepository.GetByISBN(ctx, isbn)
}

func (s *bookService) GetAll(ctx context.Context) ([]models.Book, error) {
	return s.bookRepository.GetAll(ctx)
}

func (s *bookService) SearchByTitle(ctx context.Context, term string) ([]models.Book, error) {
	return s.bookRepository.SearchByTitle(ctx, term)
}

// Update overwrites every mutable field of the record addressed by
// book.ISBN. A false result means no such record exists; nothing was
// mutated.
func (s *bookService) Update(ctx context.Context, book models.Book) (bool, error) {
	return s.bookRepository.Update(ctx, book)
}

// Delete removes the record addressed by isbn. A false result means no such
// record existed; that is a logical outcome, not an error.
func (s *bookService) Delete(ctx context.Context, isbn string) (bool, error) {
	return s.bookRepository.Delete(ctx, isbn)
}
