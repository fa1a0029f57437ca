package session

import "errors"

var (
	// ErrLocked is returned when an operation needs the data key but the
	// store holds none.
	ErrLocked = errors.New("session is locked")

	// ErrInvalidKey is returned by Store for a key of the wrong size.
	ErrInvalidKey = errors.New("invalid data key")

	// ErrAlreadyUnlocked is returned by Store when a key is already held.
	// Clear the store first to replace it.
	ErrAlreadyUnlocked = errors.New("session is already unlocked")
)
