package store

import "errors"

// Domain errors reported by repositories. Upper layers match these with
// errors.Is to decide how a failure is presented to the caller.
var (
	// ErrUsernameTaken indicates that a user with the same username already exists.
	ErrUsernameTaken = errors.New("username already exists")
	// ErrEmailTaken indicates that a user with the same email already exists.
	ErrEmailTaken = errors.New("email already exists")
	// ErrNoUserWasFound indicates that no user matched the lookup criteria.
	ErrNoUserWasFound = errors.New("no user was found")
	// ErrNoteNotFound indicates that no note matched the given identifier.
	ErrNoteNotFound = errors.New("note not found")
	// ErrSessionNotFound indicates that no session matched the given token.
	ErrSessionNotFound = errors.New("session not found")
)

// Low-level database errors. These wrap driver failures so callers can log
// them without inspecting driver-specific types.
var (
	// ErrBuildingSQLQuery indicates a failure while assembling a SQL query.
	ErrBuildingSQLQuery = errors.New("error building sql query")
	// ErrExecutingQuery indicates a failure while executing a SQL query.
	ErrExecutingQuery = errors.New("error executing query")
	// ErrExecutingStatement indicates a failure while executing a SQL statement.
	ErrExecutingStatement = errors.New("error executing statement")
	// ErrScanningRow indicates a failure while scanning a single result row.
	ErrScanningRow = errors.New("error scanning row")
	// ErrScanningRows indicates a failure while iterating over result rows.
	ErrScanningRows = errors.New("error scanning rows")
)
