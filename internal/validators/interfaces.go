package validators

import "github.com/smoretta/books-api/models"

// BookValidator runs the pre-mutation field rules on a book. Every rule is
// evaluated; the result holds one entry per violated rule and is empty when
// the book is valid.
type BookValidator interface {
	Validate(book models.Book) []models.ValidationError
}
