package validators

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math"

	"github.com/MKhiriev/go-journal-vault/models"
	validation "github.com/jellydator/validation"
)

// Field names accepted by [BlindValidator.Validate].
const (
	FieldData = "data"
	FieldIV   = "iv"
	FieldSalt = "salt"
	FieldTag  = "tag"

	// FieldEncoding additionally requires the four fields to be standard
	// base64. It checks syntax only; decoded lengths are not inspected.
	FieldEncoding = "encoding"

	// FieldKDF requires a positive kdf version, as carried by wrapped keys.
	FieldKDF = "kdf"
)

var envelopeFields = []string{FieldData, FieldIV, FieldSalt, FieldTag}

// isString fails for anything that is not a Go string.
var isString = validation.By(func(value any) error {
	if _, ok := value.(string); !ok {
		return validation.NewError("validation_envelope_string", "must be a string")
	}
	return nil
})

// isBase64 fails for strings that are not standard padded base64.
var isBase64 = validation.By(func(value any) error {
	s, _ := value.(string)
	if _, err := base64.StdEncoding.Strict().DecodeString(s); err != nil {
		return validation.NewError("validation_envelope_base64", "must be standard base64")
	}
	return nil
})

// BlindValidator checks the shape of envelopes and wrapped keys. It holds no
// key and performs no decryption: an envelope that is well formed is
// accepted whether or not it would decrypt.
//
// Accepted candidates: [models.Envelope], *[models.Envelope],
// [models.WrappedKey], *[models.WrappedKey], map[string]any (as produced by
// encoding/json), and JSON text as string, []byte or [json.RawMessage].
type BlindValidator struct{}

// NewBlindValidator returns a [BlindValidator] as a [Validator].
func NewBlindValidator() *BlindValidator {
	return &BlindValidator{}
}

// ValidateEnvelope reports whether candidate has all four envelope fields
// present as non-empty strings.
func (v *BlindValidator) ValidateEnvelope(candidate any) bool {
	return v.Validate(context.Background(), candidate) == nil
}

// Validate implements [Validator]. Without fields it checks data, iv, salt
// and tag. Field names scope the check; see the Field constants.
func (v *BlindValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	values, err := candidateValues(obj)
	if err != nil {
		return err
	}

	if len(fields) == 0 {
		fields = envelopeFields
	}

	for _, f := range fields {
		switch f {
		case FieldData:
			err = checkField(values[FieldData], ErrInvalidData)
		case FieldIV:
			err = checkField(values[FieldIV], ErrInvalidIV)
		case FieldSalt:
			err = checkField(values[FieldSalt], ErrInvalidSalt)
		case FieldTag:
			err = checkField(values[FieldTag], ErrInvalidTag)
		case FieldEncoding:
			err = checkEncoding(values)
		case FieldKDF:
			err = checkKDF(values[FieldKDF])
		default:
			return ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func checkField(value any, sentinel error) error {
	if err := validation.Validate(value, isString, validation.Required); err != nil {
		return fmt.Errorf("%w: %v", sentinel, err)
	}
	return nil
}

func checkEncoding(values map[string]any) error {
	for _, name := range envelopeFields {
		if err := validation.Validate(values[name], isString, validation.Required, isBase64); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidEncoding, name, err)
		}
	}
	return nil
}

func checkKDF(value any) error {
	var version int64

	switch k := value.(type) {
	case models.KDFVersion:
		version = int64(k)
	case int:
		version = int64(k)
	case int64:
		version = k
	case float64:
		// encoding/json decodes numbers into float64
		if k != math.Trunc(k) || k > math.MaxInt32 {
			return ErrInvalidKDF
		}
		version = int64(k)
	case json.Number:
		n, err := k.Int64()
		if err != nil {
			return ErrInvalidKDF
		}
		version = n
	default:
		return ErrInvalidKDF
	}

	if err := validation.Validate(version, validation.Required, validation.Min(int64(1))); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidKDF, err)
	}
	return nil
}

// candidateValues flattens every accepted candidate into a field map. Values
// are kept as found so type mismatches are reported, not coerced.
func candidateValues(obj any) (map[string]any, error) {
	switch c := obj.(type) {
	case models.Envelope:
		return envelopeValues(c), nil
	case *models.Envelope:
		if c == nil {
			return nil, ErrInvalidEnvelope
		}
		return envelopeValues(*c), nil
	case models.WrappedKey:
		return wrappedKeyValues(c), nil
	case *models.WrappedKey:
		if c == nil {
			return nil, ErrInvalidEnvelope
		}
		return wrappedKeyValues(*c), nil
	case map[string]any:
		return c, nil
	case string:
		return jsonValues([]byte(c))
	case []byte:
		return jsonValues(c)
	case json.RawMessage:
		return jsonValues(c)
	default:
		return nil, ErrUnsupportedType
	}
}

func envelopeValues(e models.Envelope) map[string]any {
	return map[string]any{
		FieldData: e.Data,
		FieldIV:   e.IV,
		FieldSalt: e.Salt,
		FieldTag:  e.Tag,
	}
}

func wrappedKeyValues(w models.WrappedKey) map[string]any {
	values := envelopeValues(w.Envelope)
	values[FieldKDF] = w.KDF
	return values
}

func jsonValues(text []byte) (map[string]any, error) {
	var values map[string]any
	if err := json.Unmarshal(text, &values); err != nil || values == nil {
		return nil, ErrInvalidEnvelope
	}
	return values, nil
}
