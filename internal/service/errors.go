package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrValidationNoOwnerID         = errors.New("no owner ID was given")
	ErrValidationNegativeVersion   = errors.New("expected version must not be negative")
	ErrValidationRotationNeedsBase = errors.New("rotation needs an existing wrapped key version")
)

// Client-side errors returned by the vault.
var (
	// ErrNotLoggedIn is returned when an operation needs the server session
	// before Login or Register succeeded.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrSetupRequired is returned when the account has no wrapped key yet.
	ErrSetupRequired = errors.New("vault is not set up")

	// ErrAlreadySetUp is returned by Setup when a wrapped key already exists.
	ErrAlreadySetUp = errors.New("vault is already set up")

	// ErrUnlockFailed is the single error for a failed unlock. A wrong
	// password and a corrupted wrapped key both produce it.
	ErrUnlockFailed = errors.New("unable to unlock vault")

	// ErrKeyChangedConcurrently is returned by ChangePassword when another
	// device replaced the wrapped key in the meantime.
	ErrKeyChangedConcurrently = errors.New("wrapped key was changed concurrently")
)
