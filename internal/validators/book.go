package validators

import (
	"regexp"

	"github.com/smoretta/books-api/models"
)

// Property names reported in validation errors. They match the public wire
// casing expected by API clients.
const (
	PropertyISBN  = "Isbn"
	PropertyTitle = "Title"
)

// Messages for the violated rules.
const (
	MsgInvalidISBN = "Value was not a valid ISBN-13!"
	MsgEmptyTitle  = "'Title' must not be empty."
)

// isbnPattern is the ISBN-13 shape accepted by this system: three digits, a
// hyphen, ten digits. Check-digit verification is deliberately out of scope.
var isbnPattern = regexp.MustCompile(`^\d{3}-\d{10}$`)

type bookValidator struct{}

// NewBookValidator constructs the field validator for books.
func NewBookValidator() BookValidator {
	return &bookValidator{}
}

// Validate checks the ISBN shape and the title. Emptiness of the title is an
// exact match on the empty string; no trimming is applied. The remaining
// fields (author, shortDescription, pageCount, releaseDate) are accepted
// as-is.
func (v *bookValidator) Validate(book models.Book) []models.ValidationError {
	violations := make([]models.ValidationError, 0, 2)

	if !isbnPattern.MatchString(book.ISBN) {
		violations = append(violations, models.ValidationError{
			PropertyName: PropertyISBN,
			ErrorMessage: MsgInvalidISBN,
		})
	}

	if book.Title == "" {
		violations = append(violations, models.ValidationError{
			PropertyName: PropertyTitle,
			ErrorMessage: MsgEmptyTitle,
		})
	}

	return violations
}
