// Package codec encrypts and decrypts the named text fields of a record in
// one call.
//
// Encryption is all-or-nothing. Decryption is best-effort: a field that
// cannot be opened is replaced by an [Undecryptable] marker and reported
// separately, and every other field is still returned.
package codec

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-journal-vault/internal/app"
	"github.com/MKhiriev/go-journal-vault/internal/crypto"
	"github.com/MKhiriev/go-journal-vault/models"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds the number of fields processed in parallel.
const DefaultConcurrency = 8

// ErrUnsupportedFieldValue is returned by EncryptFields when a named field
// holds something other than a string or nil.
var ErrUnsupportedFieldValue = errors.New("unsupported field value")

// Record is a flat set of named values.
type Record map[string]any

// Undecryptable replaces a field that could not be decrypted.
type Undecryptable struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// String is what a user sees in place of the field.
func (u Undecryptable) String() string {
	return app.MsgUndecryptable
}

// FieldFailure reports one field that failed to decrypt.
type FieldFailure struct {
	Field string
	Err   error
}

func (f FieldFailure) Error() string {
	return fmt.Sprintf("field %q: %v", f.Field, f.Err)
}

func (f FieldFailure) Unwrap() error {
	return f.Err
}

// BatchFieldCodec applies a [crypto.FieldCipher] to several fields of a
// record concurrently.
type BatchFieldCodec struct {
	cipher crypto.FieldCipher
	limit  int
}

// NewBatchFieldCodec returns a codec running at most limit fields at once.
// A non-positive limit selects [DefaultConcurrency].
func NewBatchFieldCodec(cipher crypto.FieldCipher, limit int) *BatchFieldCodec {
	if limit <= 0 {
		limit = DefaultConcurrency
	}
	return &BatchFieldCodec{cipher: cipher, limit: limit}
}

// EncryptFields returns a copy of record in which every named field holding
// a string is replaced by its [models.Envelope]. Named fields that are absent
// or nil pass through, as do fields that are not named.
//
// Any other value in a named field fails the whole call with
// [ErrUnsupportedFieldValue] before anything is encrypted. No partial record
// is ever returned.
func (c *BatchFieldCodec) EncryptFields(ctx context.Context, record Record, fields []string, key crypto.DataKey) (Record, error) {
	names := uniqueFields(fields)
	plaintexts := make(map[string]string, len(names))

	for _, name := range names {
		v, ok := record[name]
		if !ok || v == nil {
			continue
		}
		switch s := v.(type) {
		case string:
			plaintexts[name] = s
		case *string:
			if s != nil {
				plaintexts[name] = *s
			}
		default:
			return nil, fmt.Errorf("%w: field %q holds %T", ErrUnsupportedFieldValue, name, v)
		}
	}

	envelopes := make(map[string]models.Envelope, len(plaintexts))
	results := make([]models.Envelope, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.limit)

	for i, name := range names {
		plaintext, ok := plaintexts[name]
		if !ok {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			env, err := c.cipher.Encrypt(plaintext, key)
			if err != nil {
				return fmt.Errorf("encrypt field %q: %w", name, err)
			}
			results[i] = env
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, name := range names {
		if _, ok := plaintexts[name]; ok {
			envelopes[name] = results[i]
		}
	}

	out := make(Record, len(record))
	for k, v := range record {
		out[k] = v
	}
	for name, env := range envelopes {
		out[name] = env
	}

	return out, nil
}

// DecryptFields returns a copy of record in which every named field holding
// an envelope is replaced by its plaintext string. Named fields that are
// absent or nil pass through.
//
// A field that cannot be decrypted is replaced by [Undecryptable] and listed
// in the returned failures, in the order the fields were named. Envelopes
// are accepted as [models.Envelope], *[models.Envelope], a JSON-decoded
// map, or serialized JSON text.
func (c *BatchFieldCodec) DecryptFields(ctx context.Context, record Record, fields []string, key crypto.DataKey) (Record, []FieldFailure) {
	names := uniqueFields(fields)

	type result struct {
		present   bool
		plaintext string
		err       error
	}
	results := make([]result, len(names))

	var g errgroup.Group
	g.SetLimit(c.limit)

	for i, name := range names {
		v, ok := record[name]
		if !ok || v == nil {
			continue
		}
		if p, isPtr := v.(*models.Envelope); isPtr && p == nil {
			continue
		}

		results[i].present = true
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].err = err
				return nil
			}

			env, err := envelopeFromValue(v)
			if err != nil {
				results[i].err = err
				return nil
			}

			plaintext, err := c.cipher.Decrypt(env, key)
			if err != nil {
				results[i].err = err
				return nil
			}
			results[i].plaintext = plaintext
			return nil
		})
	}
	_ = g.Wait()

	out := make(Record, len(record))
	for k, v := range record {
		out[k] = v
	}

	var failures []FieldFailure
	for i, name := range names {
		r := results[i]
		if !r.present {
			continue
		}
		if r.err != nil {
			out[name] = Undecryptable{Field: name, Reason: reason(r.err)}
			failures = append(failures, FieldFailure{Field: name, Err: r.err})
			continue
		}
		out[name] = r.plaintext
	}

	return out, failures
}

// envelopeFromValue normalizes the accepted envelope representations.
func envelopeFromValue(v any) (models.Envelope, error) {
	switch e := v.(type) {
	case models.Envelope:
		return e, nil
	case *models.Envelope:
		return *e, nil
	case string:
		return parseEnvelopeText([]byte(e))
	case json.RawMessage:
		return parseEnvelopeText(e)
	case []byte:
		return parseEnvelopeText(e)
	case map[string]any:
		return envelopeFromMap(e)
	default:
		return models.Envelope{}, fmt.Errorf("%w: %T is not an envelope", crypto.ErrFormat, v)
	}
}

func parseEnvelopeText(text []byte) (models.Envelope, error) {
	env, err := models.UnmarshalEnvelope(string(text))
	if err != nil {
		return models.Envelope{}, fmt.Errorf("%w: %w", crypto.ErrFormat, err)
	}
	return env, nil
}

func envelopeFromMap(m map[string]any) (models.Envelope, error) {
	get := func(name string) (string, error) {
		s, ok := m[name].(string)
		if !ok || s == "" {
			return "", fmt.Errorf("%w: field %q is missing or not a string", crypto.ErrFormat, name)
		}
		return s, nil
	}

	var (
		env models.Envelope
		err error
	)
	if env.Data, err = get("data"); err != nil {
		return models.Envelope{}, err
	}
	if env.IV, err = get("iv"); err != nil {
		return models.Envelope{}, err
	}
	if env.Salt, err = get("salt"); err != nil {
		return models.Envelope{}, err
	}
	if env.Tag, err = get("tag"); err != nil {
		return models.Envelope{}, err
	}

	return env, nil
}

func reason(err error) string {
	switch {
	case errors.Is(err, crypto.ErrAuthenticationFailure):
		return "authentication failed"
	case errors.Is(err, crypto.ErrFormat):
		return "malformed envelope"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "cancelled"
	default:
		return "decryption failed"
	}
}

func uniqueFields(fields []string) []string {
	seen := make(map[string]struct{}, len(fields))
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out
}
