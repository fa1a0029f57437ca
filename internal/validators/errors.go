package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrInvalidEnvelope is matched by every envelope field error below.
	ErrInvalidEnvelope = errors.New("invalid envelope")

	ErrInvalidData     = fmt.Errorf("%w: data must be a non-empty string", ErrInvalidEnvelope)
	ErrInvalidIV       = fmt.Errorf("%w: iv must be a non-empty string", ErrInvalidEnvelope)
	ErrInvalidSalt     = fmt.Errorf("%w: salt must be a non-empty string", ErrInvalidEnvelope)
	ErrInvalidTag      = fmt.Errorf("%w: tag must be a non-empty string", ErrInvalidEnvelope)
	ErrInvalidEncoding = fmt.Errorf("%w: fields must be standard base64", ErrInvalidEnvelope)
	ErrInvalidKDF      = fmt.Errorf("%w: kdf must be a positive integer", ErrInvalidEnvelope)

	ErrInvalidRecordID = errors.New("invalid record id")
	ErrEmptyFields     = errors.New("record has no fields")
	ErrInvalidLogin    = errors.New("invalid login")
	ErrInvalidAuthHash = errors.New("invalid auth hash")
)
