package validators

import (
	"bytes"
	"context"
	"fmt"
	"regexp"

	"github.com/MKhiriev/go-journal-vault/models"
	validation "github.com/jellydator/validation"
)

const (
	FieldRecordID     = "id"
	FieldRecordFields = "fields"
)

var recordIDPattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// RecordValidator checks encrypted records before they are stored. Each
// non-null field must pass the [BlindValidator].
type RecordValidator struct {
	envelopes *BlindValidator
}

// NewRecordValidator returns a [Validator] for [models.EncryptedRecord].
func NewRecordValidator(envelopes *BlindValidator) Validator {
	return &RecordValidator{envelopes: envelopes}
}

func (v *RecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.EncryptedRecord:
		return v.validateRecord(ctx, value, fields...)
	case *models.EncryptedRecord:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateRecord(ctx, *value, fields...)
	case string:
		return validateRecordID(value)
	default:
		return ErrUnsupportedType
	}
}

func (v *RecordValidator) validateRecord(ctx context.Context, record models.EncryptedRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRecordID, FieldRecordFields}
	}

	for _, f := range fields {
		switch f {
		case FieldRecordID:
			if err := validateRecordID(record.ID); err != nil {
				return err
			}
		case FieldRecordFields:
			if len(record.Fields) == 0 {
				return ErrEmptyFields
			}
			for name, raw := range record.Fields {
				if name == "" {
					return fmt.Errorf("%w: empty field name", ErrInvalidEnvelope)
				}
				if isJSONNull(raw) {
					continue
				}
				if err := v.envelopes.Validate(ctx, []byte(raw)); err != nil {
					return fmt.Errorf("field %q: %w", name, err)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateRecordID(id string) error {
	err := validation.Validate(id,
		validation.Required,
		validation.Length(1, 128),
		validation.Match(recordIDPattern),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRecordID, err)
	}
	return nil
}

func isJSONNull(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
