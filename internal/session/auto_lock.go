package session

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-journal-vault/internal/logger"
)

// defaultIdleTimeout is used when AutoLock is given a non-positive timeout.
const defaultIdleTimeout = 15 * time.Minute

// AutoLock clears a [KeyStore] after it has gone unused for a configured
// idle timeout. It is idle until Start is called.
type AutoLock struct {
	store   *KeyStore
	timeout time.Duration
	logger  *logger.Logger
	now     func() time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewAutoLock returns an AutoLock for store.
func NewAutoLock(store *KeyStore, timeout time.Duration, log *logger.Logger) *AutoLock {
	if timeout <= 0 {
		timeout = defaultIdleTimeout
	}
	return &AutoLock{
		store:   store,
		timeout: timeout,
		logger:  log,
		now:     time.Now,
	}
}

// Start stops any previously running check loop and launches a new one. The
// loop exits when ctx is cancelled or Stop is called. Concurrent Start and
// Stop calls are serialized, so at most one loop runs at a time.
func (a *AutoLock) Start(ctx context.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.stopLocked()

	loopCtx, cancel := context.WithCancel(ctx)
	a.cancel = cancel
	a.wg.Add(1)

	go func() {
		defer a.wg.Done()
		t := time.NewTicker(a.checkInterval())
		defer t.Stop()

		for {
			select {
			case <-loopCtx.Done():
				return
			case <-t.C:
				a.check()
			}
		}
	}()
}

// Stop cancels the check loop and waits for it to exit. Safe to call when
// the loop is not running.
func (a *AutoLock) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.stopLocked()
}

// stopLocked must be called with a.mu held. The loop never takes a.mu, so
// waiting for it here cannot deadlock.
func (a *AutoLock) stopLocked() {
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
	a.wg.Wait()
}

// Touch records user activity that did not need the key.
func (a *AutoLock) Touch() {
	a.store.touch()
}

// check locks the store if it has been idle for at least the timeout.
func (a *AutoLock) check() bool {
	if !a.store.HasKey() {
		return false
	}

	idle := a.store.IdleFor(a.now())
	if idle < a.timeout {
		return false
	}

	a.store.Clear()
	a.logger.Info().
		Dur("idle", idle).
		Dur("timeout", a.timeout).
		Msg("session locked after inactivity")

	return true
}

// checkInterval polls a few times per timeout, at most once a second.
func (a *AutoLock) checkInterval() time.Duration {
	interval := a.timeout / 4
	if interval > time.Second {
		interval = time.Second
	}
	if interval <= 0 {
		interval = time.Millisecond
	}
	return interval
}
