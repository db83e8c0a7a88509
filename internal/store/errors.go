package store

import "errors"

// Sentinel errors surfaced by the storage gateway. Callers match them with
// errors.Is.
var (
	// ErrBookAlreadyExists reports a unique-violation on the books primary
	// key: a record with the same ISBN is already stored.
	ErrBookAlreadyExists = errors.New("a book with this ISBN already exists")

	// ErrBuildingSQLQuery reports a failure assembling a query before it was
	// sent to the database.
	ErrBuildingSQLQuery = errors.New("error building SQL query")

	// ErrExecutingQuery reports a driver-level failure executing a statement.
	ErrExecutingQuery = errors.New("error executing query")

	// ErrScanningRow reports a failure reading a single result row.
	ErrScanningRow = errors.New("error scanning row")

	// ErrScanningRows reports a failure while iterating a result set.
	ErrScanningRows = errors.New("error scanning rows")
)
