package crypto

// KeySize is the length in bytes of every symmetric key in the core.
const KeySize = 32

// DataKey is the account's 256-bit symmetric data key. It exists in plaintext
// only in client memory.
type DataKey []byte

// Valid reports whether k has the expected length.
func (k DataKey) Valid() bool {
	return len(k) == KeySize
}

// Clone returns an independent copy of k.
func (k DataKey) Clone() DataKey {
	if k == nil {
		return nil
	}
	c := make(DataKey, len(k))
	copy(c, k)
	return c
}

// Zero overwrites the key bytes in place.
func (k DataKey) Zero() {
	Zero(k)
}

// String never reveals key bytes.
func (k DataKey) String() string {
	return "DataKey(REDACTED)"
}

// GoString never reveals key bytes.
func (k DataKey) GoString() string {
	return k.String()
}

// Zero overwrites b with zeros.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
