package crypto

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGCM(t *testing.T) {
	gcm, err := newGCM(bytes.Repeat([]byte{0x42}, KeySize))
	require.NoError(t, err)

	assert.Equal(t, NonceSize, gcm.NonceSize())
	assert.Equal(t, TagSize, gcm.Overhead())

	nonce := make([]byte, NonceSize)
	sealed := gcm.Seal(nil, nonce, []byte("entry"), nil)
	assert.Len(t, sealed, len("entry")+TagSize)

	opened, err := gcm.Open(nil, nonce, sealed, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte("entry"), opened)
}

func TestNewGCM_InvalidKeySize(t *testing.T) {
	for _, n := range []int{0, 16, 24, 31, 33} {
		_, err := newGCM(make([]byte, n))
		assert.ErrorIs(t, err, ErrInvalidKeySize, n)
	}
}
