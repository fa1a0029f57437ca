package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-journal-vault/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestAutoLock_CheckLocksIdleStore(t *testing.T) {
	s := NewKeyStore(NewArena(), "profile")
	_, err := s.Store(testKey(1))
	require.NoError(t, err)

	a := NewAutoLock(s, time.Minute, logger.Nop())

	a.now = func() time.Time { return time.Now().Add(30 * time.Second) }
	assert.False(t, a.check())
	assert.Equal(t, Unlocked, s.State())

	a.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	assert.True(t, a.check())
	assert.Equal(t, Locked, s.State())

	assert.False(t, a.check(), "already locked")
}

func TestAutoLock_TouchDefersLock(t *testing.T) {
	s := NewKeyStore(NewArena(), "profile")
	_, err := s.Store(testKey(1))
	require.NoError(t, err)

	a := NewAutoLock(s, time.Minute, logger.Nop())
	s.lastUsed.Store(time.Now().Add(-90 * time.Second).UnixNano())

	a.Touch()

	assert.False(t, a.check())
	assert.Equal(t, Unlocked, s.State())
}

func TestAutoLock_StartStop(t *testing.T) {
	s := NewKeyStore(NewArena(), "profile")
	_, err := s.Store(testKey(1))
	require.NoError(t, err)

	a := NewAutoLock(s, 20*time.Millisecond, logger.Nop())
	a.Start(context.Background())
	defer a.Stop()

	assert.Eventually(t, func() bool {
		return s.State() == Locked
	}, 2*time.Second, 5*time.Millisecond)
}

func TestAutoLock_StopWithoutStart(t *testing.T) {
	a := NewAutoLock(NewKeyStore(NewArena(), "profile"), 0, logger.Nop())
	a.Stop()
	assert.Equal(t, defaultIdleTimeout, a.timeout)
}

func TestAutoLock_ContextCancelStopsLoop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	a := NewAutoLock(NewKeyStore(NewArena(), "profile"), time.Hour, logger.Nop())

	a.Start(ctx)
	a.Start(ctx) // restarts without leaking the first loop
	cancel()
	a.Stop()
}

func TestAutoLock_ConcurrentStartLeavesOneLoop(t *testing.T) {
	// the parent never ends, so only Stop can end a loop
	ctx := context.Background()
	a := NewAutoLock(NewKeyStore(NewArena(), "profile"), time.Hour, logger.Nop())

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			a.Start(ctx)
		}()
		go func() {
			defer wg.Done()
			a.Stop()
		}()
	}
	wg.Wait()

	a.Stop()

	a.mu.Lock()
	assert.Nil(t, a.cancel)
	a.mu.Unlock()
	goleak.VerifyNone(t)
}

func TestAutoLock_CheckInterval(t *testing.T) {
	s := NewKeyStore(NewArena(), "profile")

	assert.Equal(t, time.Second, NewAutoLock(s, time.Hour, logger.Nop()).checkInterval())
	assert.Equal(t, 25*time.Millisecond, NewAutoLock(s, 100*time.Millisecond, logger.Nop()).checkInterval())
}
