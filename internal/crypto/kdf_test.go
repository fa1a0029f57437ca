package crypto

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-journal-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKDFRegistry_Parameters(t *testing.T) {
	for version, p := range kdfRegistry {
		assert.Greater(t, int(version), 0)
		assert.Equal(t, uint32(KeySize), p.keyLen)
		if p.algorithm == algPBKDF2SHA256 {
			assert.GreaterOrEqual(t, p.iterations, minPBKDF2Iterations)
		}
	}

	argon := kdfRegistry[models.KDFArgon2id]
	assert.Equal(t, uint32(1), argon.time)
	assert.Equal(t, uint32(64*1024), argon.memory)
	assert.Equal(t, uint8(4), argon.threads)
}

func TestKDF_Deterministic(t *testing.T) {
	salt := make([]byte, SaltSize)
	for version, p := range kdfRegistry {
		a := p.derive([]byte("pw"), salt)
		b := p.derive([]byte("pw"), salt)
		c := p.derive([]byte("pw2"), salt)

		assert.Equal(t, a, b, "version %d", version)
		assert.NotEqual(t, a, c, "version %d", version)
		assert.Len(t, a, KeySize)
	}
}

func TestKDF_DeriveContext(t *testing.T) {
	p := kdfRegistry[models.KDFPBKDF2SHA256]
	salt := make([]byte, SaltSize)

	key, err := p.deriveContext(context.Background(), "pw", salt)
	require.NoError(t, err)
	assert.Equal(t, p.derive([]byte("pw"), salt), key)
}

func TestLookupKDF(t *testing.T) {
	_, err := lookupKDF(models.KDFArgon2id)
	require.NoError(t, err)

	_, err = lookupKDF(0)
	assert.ErrorIs(t, err, ErrUnsupportedKDF)
}
