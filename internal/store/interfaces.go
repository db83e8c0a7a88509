package store

import (
	"context"

	"github.com/smoretta/books-api/models"
)

// BookRepository executes the book statements against the relational store.
//
// Mutating methods report whether any row was affected; GetByISBN returns a
// nil book when no record matches, never an error. All other failures are
// storage faults and propagate to the caller wrapped in this package's
// sentinel errors.
type BookRepository interface {
	// Save inserts the book. It returns ErrBookAlreadyExists when a record
	// with the same ISBN is already stored; the uniqueness decision is made
	// by the store's primary key, so concurrent identical creates cannot
	// both succeed.
	Save(ctx context.Context, book models.Book) (bool, error)

	// GetByISBN is an exact-match lookup; (nil, nil) signals absence.
	GetByISBN(ctx context.Context, isbn string) (*models.Book, error)

	// GetAll returns every stored book in store iteration order.
	GetAll(ctx context.Context) ([]models.Book, error)

	// SearchByTitle returns books whose title contains term as a substring.
	// Case sensitivity follows the store's default text comparison.
	SearchByTitle(ctx context.Context, term string) ([]models.Book, error)

	// Update overwrites all mutable fields of the book with the given ISBN
	// and reports whether a row was affected.
	Update(ctx context.Context, book models.Book) (bool, error)

	// Delete removes the book with the given ISBN and reports whether a row
	// was affected.
	Delete(ctx context.Context, isbn string) (bool, error)
}

// ErrorClassifier translates driver-specific errors into this package's
// sentinel errors. Each supported database driver provides its own
// implementation.
type ErrorClassifier interface {
	// Classify returns the matching sentinel error, or err unchanged when
	// the fault carries no recognized driver code.
	Classify(err error) error
}
