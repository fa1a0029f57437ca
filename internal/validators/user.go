package validators

import (
	"context"
	"fmt"
	"regexp"

	"github.com/MKhiriev/go-journal-vault/models"
	validation "github.com/jellydator/validation"
)

const (
	FieldLogin    = "login"
	FieldAuthHash = "auth_hash"
)

// authHashPattern is a hex encoded SHA-256 digest.
var authHashPattern = regexp.MustCompile(`^[0-9a-f]{64}$`)

// UserValidator checks registration and login requests.
type UserValidator struct{}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(value, fields...)
	case *models.User:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateUser(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateUser(user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLogin, FieldAuthHash}
	}

	for _, f := range fields {
		switch f {
		case FieldLogin:
			if err := validation.Validate(user.Login, validation.Required, validation.Length(3, 64)); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidLogin, err)
			}
		case FieldAuthHash:
			if err := validation.Validate(user.AuthHash, validation.Required, validation.Match(authHashPattern)); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidAuthHash, err)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
