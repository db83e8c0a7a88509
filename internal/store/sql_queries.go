package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	insertBook = `INSERT INTO books (isbn, title, author, short_description, page_count, release_date)
	VALUES ($1, $2, $3, $4, $5, $6);`

	getBookByISBN = `SELECT isbn, title, author, short_description, page_count, release_date
	FROM books
	WHERE isbn = $1;`

	updateBook = `UPDATE books
	SET title = $2, author = $3, short_description = $4, page_count = $5, release_date = $6
	WHERE isbn = $1;`

	deleteBook = `DELETE FROM books
	WHERE isbn = $1;`
)

// bookColumns is the canonical column order scanned into models.Book.
var bookColumns = []string{"isbn", "title", "author", "short_description", "page_count", "release_date"}

// psql builds SELECTs with $N placeholders. SQLite understands the same
// $-style parameters, so one builder serves both drivers.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildGetAllBooksQuery assembles the unfiltered listing query.
func buildGetAllBooksQuery() (string, []any, error) {
	return psql.Select(bookColumns...).From("books").ToSql()
}

// buildSearchByTitleQuery assembles the substring title search. The term is
// wrapped in wildcards so prefix, suffix, and interior matches all qualify.
func buildSearchByTitleQuery(term string) (string, []any, error) {
	return psql.Select(bookColumns...).
		From("books").
		Where(sq.Like{"title": "%" + term + "%"}).
		ToSql()
}
