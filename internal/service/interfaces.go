package service

import (
	"context"

	"github.com/smoretta/books-api/models"
)

// BookService owns the CRUD and search operations of the book resource and
// the uniqueness/existence decisions layered on top of the storage gateway.
//
// The boolean results encode logical outcomes, not faults: Create reports
// false when the identity is already taken, Update and Delete report false
// when no record with the addressed ISBN exists. Storage failures propagate
// unchanged as errors; the service performs no retries.
type BookService interface {
	Create(ctx context.Context, book models.Book) (bool, error)
	GetByISBN(ctx context.Context, isbn string) (*models.Book, error)
	GetAll(ctx context.Context) ([]models.Book, error)
	SearchByTitle(ctx context.Context, term string) ([]models.Book, error)
	Update(ctx context.Context, book models.Book) (bool, error)
	Delete(ctx context.Context, isbn string) (bool, error)
}
