package crypto

import (
	"crypto/rand"
	"io"
)

// keyGenerator is the private implementation of [KeyGenerator].
type keyGenerator struct {
	random io.Reader
}

// NewKeyGenerator returns a [KeyGenerator] reading from random.
// A nil reader selects [crypto/rand.Reader].
func NewKeyGenerator(random io.Reader) KeyGenerator {
	if random == nil {
		random = rand.Reader
	}
	return &keyGenerator{random: random}
}

// Generate implements [KeyGenerator]. Any read error or short read is
// reported as [ErrEntropyFailure].
func (g *keyGenerator) Generate() (DataKey, error) {
	b, err := randomBytes(g.random, KeySize)
	if err != nil {
		return nil, err
	}
	return DataKey(b), nil
}
