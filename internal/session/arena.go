package session

import (
	"fmt"
	"sync"

	"github.com/MKhiriev/go-journal-vault/internal/crypto"
	"github.com/google/uuid"
)

// Handle identifies one unlocked key in an [Arena]. It is a random UUIDv4
// and carries no account information.
type Handle string

// entry is one key held by the arena.
type entry struct {
	key crypto.DataKey

	// leases counts operations currently running with key.
	leases int

	// released is set once the handle has been removed from the arena while
	// leases were still running. The last lease wipes key.
	released bool
}

// Arena is the process-wide in-memory home of unwrapped keys. Keys are
// grouped by namespace, one per client profile. Nothing in the arena is ever
// written to disk.
type Arena struct {
	mu         sync.Mutex
	namespaces map[string]map[Handle]*entry
}

// NewArena returns an empty arena.
func NewArena() *Arena {
	return &Arena{namespaces: make(map[string]map[Handle]*entry)}
}

// put copies key into namespace under a new handle.
func (a *Arena) put(namespace string, key crypto.DataKey) (Handle, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate session handle: %w", err)
	}
	h := Handle(id.String())

	a.mu.Lock()
	defer a.mu.Unlock()

	ns, ok := a.namespaces[namespace]
	if !ok {
		ns = make(map[Handle]*entry)
		a.namespaces[namespace] = ns
	}
	ns[h] = &entry{key: key.Clone()}

	return h, nil
}

// has reports whether h is present without touching the key bytes.
func (a *Arena) has(namespace string, h Handle) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	_, ok := a.namespaces[namespace][h]
	return ok
}

// copyKey returns an independent copy of the key under h.
func (a *Arena) copyKey(namespace string, h Handle) (crypto.DataKey, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	e, ok := a.namespaces[namespace][h]
	if !ok {
		return nil, false
	}
	return e.key.Clone(), true
}

// acquire takes a lease on the key under h.
func (a *Arena) acquire(namespace string, h Handle) (*entry, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	e, ok := a.namespaces[namespace][h]
	if !ok {
		return nil, false
	}
	e.leases++
	return e, true
}

// release ends a lease. The key is wiped if the handle is already gone and
// this was the last lease.
func (a *Arena) release(e *entry) {
	a.mu.Lock()
	defer a.mu.Unlock()

	e.leases--
	if e.released && e.leases == 0 {
		e.key.Zero()
	}
}

// remove deletes h from namespace and wipes its key unless it is leased.
func (a *Arena) remove(namespace string, h Handle) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.removeLocked(namespace, h)
}

// sweep removes every handle left in namespace. Called when a session of
// that namespace locks, so handles orphaned by interrupted logins do not
// outlive it.
func (a *Arena) sweep(namespace string) int {
	a.mu.Lock()
	defer a.mu.Unlock()

	n := 0
	for h := range a.namespaces[namespace] {
		a.removeLocked(namespace, h)
		n++
	}
	delete(a.namespaces, namespace)

	return n
}

func (a *Arena) removeLocked(namespace string, h Handle) {
	ns := a.namespaces[namespace]
	e, ok := ns[h]
	if !ok {
		return
	}
	delete(ns, h)

	e.released = true
	if e.leases == 0 {
		e.key.Zero()
	}
}

// Len returns the number of handles held in namespace.
func (a *Arena) Len(namespace string) int {
	a.mu.Lock()
	defer a.mu.Unlock()

	return len(a.namespaces[namespace])
}
