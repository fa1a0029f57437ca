// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-journal-vault/internal/crypto"
)

// State is the lock state of a [KeyStore].
type State int

const (
	// Locked means no data key is available.
	Locked State = iota

	// Unlocked means a data key is held in the arena.
	Unlocked
)

// String implements [fmt.Stringer].
func (s State) String() string {
	if s == Unlocked {
		return "unlocked"
	}
	return "locked"
}

// KeyStore is the session-scoped owner of one handle in an [Arena]. It is
// safe for concurrent use: reads may run in parallel, Store and Clear are
// exclusive.
type KeyStore struct {
	arena     *Arena
	namespace string

	mu     sync.RWMutex
	handle Handle

	// lastUsed is the unix nano time of the last successful key access.
	lastUsed atomic.Int64
}

// NewKeyStore returns a locked store for namespace in arena.
func NewKeyStore(arena *Arena, namespace string) *KeyStore {
	return &KeyStore{arena: arena, namespace: namespace}
}

// Store places a copy of key in the arena under a fresh handle and returns
// it. It only moves a locked store to [Unlocked]: when a key is already held
// it returns [ErrAlreadyUnlocked] and keeps the current key. The caller
// keeps ownership of key and may wipe it afterwards.
func (s *KeyStore) Store(key crypto.DataKey) (Handle, error) {
	if !key.Valid() {
		return "", ErrInvalidKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.handle != "" {
		if s.arena.has(s.namespace, s.handle) {
			return "", ErrAlreadyUnlocked
		}
		s.handle = ""
	}

	h, err := s.arena.put(s.namespace, key)
	if err != nil {
		return "", err
	}
	s.handle = h
	s.touch()

	return h, nil
}

// Retrieve returns a copy of the key, or false when locked. The caller owns
// the copy and should wipe it when done.
func (s *KeyStore) Retrieve() (crypto.DataKey, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.handle == "" {
		return nil, false
	}

	key, ok := s.arena.copyKey(s.namespace, s.handle)
	if ok {
		s.touch()
	}
	return key, ok
}

// HasKey reports whether a key is held. It never reads key bytes.
func (s *KeyStore) HasKey() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.handle != "" && s.arena.has(s.namespace, s.handle)
}

// State returns [Unlocked] when a key is held and [Locked] otherwise.
func (s *KeyStore) State() State {
	if s.HasKey() {
		return Unlocked
	}
	return Locked
}

// Use runs fn with a lease on the key. fn must not retain the key after it
// returns. Returns [ErrLocked] if no key is held, otherwise fn's error.
func (s *KeyStore) Use(fn func(key crypto.DataKey) error) error {
	s.mu.RLock()
	h := s.handle
	var (
		e  *entry
		ok bool
	)
	if h != "" {
		e, ok = s.arena.acquire(s.namespace, h)
	}
	s.mu.RUnlock()

	if !ok {
		return ErrLocked
	}
	defer s.arena.release(e)

	s.touch()
	return fn(e.key)
}

// Clear removes this store's handle and every other handle of the same
// namespace, and moves the store to [Locked]. Running [KeyStore.Use] calls
// are not interrupted; their key is wiped when the last one returns.
func (s *KeyStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.handle != "" {
		s.arena.remove(s.namespace, s.handle)
		s.handle = ""
	}
	s.arena.sweep(s.namespace)
}

// Handle returns the current handle, empty when locked.
func (s *KeyStore) Handle() Handle {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.handle
}

// IdleFor reports how long the key has gone unused.
func (s *KeyStore) IdleFor(now time.Time) time.Duration {
	last := s.lastUsed.Load()
	if last == 0 {
		return 0
	}
	return now.Sub(time.Unix(0, last))
}

func (s *KeyStore) touch() {
	s.lastUsed.Store(time.Now().UnixNano())
}
