package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same login already exists.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when no user matches the given login.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrWrappedKeyNotFound is returned when the account has no wrapped key
	// yet, which means setup has not been completed.
	ErrWrappedKeyNotFound = errors.New("wrapped key was not found")

	// ErrRecordNotFound is returned when a read or delete targets a record
	// that does not exist for the owner.
	ErrRecordNotFound = errors.New("record was not found")

	// ErrVersionConflict is returned when an optimistic-locking check fails:
	// the expected version does not match the stored one, meaning another
	// writer changed the wrapped key since the caller read it.
	ErrVersionConflict = errors.New("version conflict occurred")

	// ErrCorruptedRow is returned when a stored value cannot be decoded back
	// into its model.
	ErrCorruptedRow = errors.New("stored row is corrupted")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRows is returned when scanning a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrBeginningTransaction is returned when a transaction cannot be started.
	ErrBeginningTransaction = errors.New("error beginning transaction")

	// ErrCommittingTransaction is returned when a transaction cannot be committed.
	ErrCommittingTransaction = errors.New("error committing transaction")
)
