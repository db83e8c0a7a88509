package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/smoretta/books-api/internal/logger"
	"github.com/smoretta/books-api/models"
)

// bookRepository is the relational implementation of [BookRepository]. It
// runs all statements against the "books" table through the embedded [*DB].
//
// Methods obtain a context-scoped logger via [logger.FromContext] so that
// database interactions are traced per request.
type bookRepository struct {
	*DB
	logger *logger.Logger
}

// NewBookRepository constructs a [BookRepository] backed by the provided
// database connection and logger.
func NewBookRepository(db *DB, logger *logger.Logger) BookRepository {
	logger.Debug().Msg("creating book repository")
	return &bookRepository{
		DB:     db,
		logger: logger,
	}
}

// Save inserts the book. The books primary key on isbn makes the uniqueness
// decision; a constraint violation is classified to [ErrBookAlreadyExists].
func (r *bookRepository) Save(ctx context.Context, book models.Book) (bool, error) {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, insertBook,
		book.ISBN, book.Title, book.Author, book.ShortDescription, book.PageCount, book.ReleaseDate)
	if err != nil {
		if classified := r.classify(err); errors.Is(classified, ErrBookAlreadyExists) {
			return false, classified
		}
		log.Err(err).Str("func", "*bookRepository.Save").Str("isbn", book.ISBN).Msg("failed to insert book")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return affected > 0, nil
}

// GetByISBN returns the book with the given ISBN, or (nil, nil) when no row
// matches.
func (r *bookRepository) GetByISBN(ctx context.Context, isbn string) (*models.Book, error) {
	log := logger.FromContext(ctx)

	var book models.Book
	row := r.DB.QueryRowContext(ctx, getBookByISBN, isbn)
	err := row.Scan(&book.ISBN, &book.Title, &book.Author, &book.ShortDescription, &book.PageCount, &book.ReleaseDate)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case err != nil:
		log.Err(err).Str("func", "*bookRepository.GetByISBN").Str("isbn", isbn).Msg("failed to query book")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return &book, nil
}

// GetAll returns every stored book.
func (r *bookRepository) GetAll(ctx context.Context) ([]models.Book, error) {
	query, args, err := buildGetAllBooksQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryBooks(ctx, query, args...)
}

// SearchByTitle returns books whose title contains term as a substring.
func (r *bookRepository) SearchByTitle(ctx context.Context, term string) ([]models.Book, error) {
	query, args, err := buildSearchByTitleQuery(term)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryBooks(ctx, query, args...)
}

// Update overwrites all mutable fields for the book's ISBN and reports
// whether a row was affected.
func (r *bookRepository) Update(ctx context.Context, book models.Book) (bool, error) {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, updateBook,
		book.ISBN, book.Title, book.Author, book.ShortDescription, book.PageCount, book.ReleaseDate)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.Update").Str("isbn", book.ISBN).Msg("failed to update book")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return affected > 0, nil
}

// Delete removes the book with the given ISBN and reports whether a row was
// affected.
func (r *bookRepository) Delete(ctx context.Context, isbn string) (bool, error) {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deleteBook, isbn)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.Delete").Str("isbn", isbn).Msg("failed to delete book")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return affected > 0, nil
}

func (r *bookRepository) queryBooks(ctx context.Context, query string, args ...any) ([]models.Book, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.queryBooks").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	books := make([]models.Book, 0, 16)
	for rows.Next() {
		var book models.Book
		if err := rows.Scan(&book.ISBN, &book.Title, &book.Author, &book.ShortDescription, &book.PageCount, &book.ReleaseDate); err != nil {
			log.Err(err).Str("func", "*bookRepository.queryBooks").Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		books = append(books, book)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return books, nil
}
