package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/MKhiriev/go-journal-vault/models"
)

const (
	// NonceSize is the GCM nonce length (96 bits).
	NonceSize = 12

	// SaltSize is the envelope salt length (256 bits).
	SaltSize = 32

	// TagSize is the GCM authentication tag length (128 bits).
	TagSize = 16
)

// newGCM builds AES-256-GCM over key.
func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKeySize
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCMWithNonceSize(block, NonceSize)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}

// randomBytes reads exactly n bytes from r.
func randomBytes(r io.Reader, n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEntropyFailure, err)
	}
	return b, nil
}

// sealedParts is the decoded binary form of an envelope.
type sealedParts struct {
	data []byte
	iv   []byte
	salt []byte
	tag  []byte
}

// split separates GCM output into ciphertext and tag.
func split(sealed []byte) (data, tag []byte) {
	n := len(sealed) - TagSize
	return sealed[:n], sealed[n:]
}

// joined returns ciphertext||tag as expected by [cipher.AEAD.Open].
func (p sealedParts) joined() []byte {
	out := make([]byte, 0, len(p.data)+len(p.tag))
	out = append(out, p.data...)
	return append(out, p.tag...)
}

func (p sealedParts) envelope() models.Envelope {
	enc := base64.StdEncoding
	return models.Envelope{
		Data: enc.EncodeToString(p.data),
		IV:   enc.EncodeToString(p.iv),
		Salt: enc.EncodeToString(p.salt),
		Tag:  enc.EncodeToString(p.tag),
	}
}

// decodeEnvelope decodes and length-checks all four fields.
func decodeEnvelope(env models.Envelope) (sealedParts, error) {
	var (
		p   sealedParts
		err error
	)

	if p.data, err = decodeField("data", env.Data, -1); err != nil {
		return sealedParts{}, err
	}
	if p.iv, err = decodeField("iv", env.IV, NonceSize); err != nil {
		return sealedParts{}, err
	}
	if p.salt, err = decodeField("salt", env.Salt, SaltSize); err != nil {
		return sealedParts{}, err
	}
	if p.tag, err = decodeField("tag", env.Tag, TagSize); err != nil {
		return sealedParts{}, err
	}

	return p, nil
}

// decodeField decodes one standard base64 field. A negative size accepts
// any non-empty length.
func decodeField(name, value string, size int) ([]byte, error) {
	if value == "" {
		return nil, fmt.Errorf("%w: field %q is empty", ErrFormat, name)
	}

	b, err := base64.StdEncoding.Strict().DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("%w: field %q is not base64", ErrFormat, name)
	}

	switch {
	case size < 0 && len(b) == 0:
		return nil, fmt.Errorf("%w: field %q is empty", ErrFormat, name)
	case size >= 0 && len(b) != size:
		return nil, fmt.Errorf("%w: field %q has length %d, want %d", ErrFormat, name, len(b), size)
	}

	return b, nil
}
