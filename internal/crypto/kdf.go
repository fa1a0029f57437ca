package crypto

import (
	"context"
	"crypto/sha256"
	"fmt"

	"github.com/MKhiriev/go-journal-vault/models"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"
)

// DefaultKDF is the version used for new wrapped keys.
const DefaultKDF = models.KDFArgon2id

// minPBKDF2Iterations is the lowest iteration count any registered PBKDF2
// version may use.
const minPBKDF2Iterations = 100_000

type kdfAlgorithm int

const (
	algPBKDF2SHA256 kdfAlgorithm = iota + 1
	algArgon2id
)

// kdfParams describes one registered derivation.
type kdfParams struct {
	algorithm kdfAlgorithm

	// PBKDF2.
	iterations int

	// Argon2id.
	time    uint32
	memory  uint32
	threads uint8

	keyLen uint32
}

// kdfRegistry maps every supported version to its parameters. Entries are
// never changed once released: a new parameter set gets a new version.
var kdfRegistry = map[models.KDFVersion]kdfParams{
	models.KDFPBKDF2SHA256: {
		algorithm:  algPBKDF2SHA256,
		iterations: 310_000,
		keyLen:     KeySize,
	},
	models.KDFArgon2id: {
		algorithm: algArgon2id,
		time:      1,
		memory:    64 * 1024, // 64 MiB
		threads:   4,
		keyLen:    KeySize,
	},
}

func init() {
	for version, p := range kdfRegistry {
		if p.algorithm == algPBKDF2SHA256 && p.iterations < minPBKDF2Iterations {
			panic(fmt.Sprintf("crypto: kdf version %d uses %d PBKDF2 iterations, minimum is %d", version, p.iterations, minPBKDF2Iterations))
		}
		if p.keyLen != KeySize {
			panic(fmt.Sprintf("crypto: kdf version %d derives %d bytes, want %d", version, p.keyLen, KeySize))
		}
	}
}

// lookupKDF returns the parameters of version or [ErrUnsupportedKDF].
func lookupKDF(version models.KDFVersion) (kdfParams, error) {
	p, ok := kdfRegistry[version]
	if !ok {
		return kdfParams{}, fmt.Errorf("%w: %d", ErrUnsupportedKDF, version)
	}
	return p, nil
}

// derive runs the KDF synchronously.
func (p kdfParams) derive(password, salt []byte) []byte {
	switch p.algorithm {
	case algPBKDF2SHA256:
		return pbkdf2.Key(password, salt, p.iterations, int(p.keyLen), sha256.New)
	default:
		return argon2.IDKey(password, salt, p.time, p.memory, p.threads, p.keyLen)
	}
}

// deriveContext runs the KDF on its own goroutine. If ctx is done first,
// ctx.Err() is returned immediately; the late result is wiped and dropped.
func (p kdfParams) deriveContext(ctx context.Context, password string, salt []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pw := []byte(password)
	result := make(chan []byte, 1)

	go func() {
		defer Zero(pw)
		result <- p.derive(pw, salt)
	}()

	select {
	case key := <-result:
		return key, nil
	case <-ctx.Done():
		go func() {
			Zero(<-result)
		}()
		return nil, ctx.Err()
	}
}
