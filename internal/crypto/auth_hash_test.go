package crypto

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthHasher_AuthHash(t *testing.T) {
	ctx := context.Background()
	h := NewAuthHasher()

	a, err := h.AuthHash(ctx, "Alice", "pw")
	require.NoError(t, err)
	b, err := h.AuthHash(ctx, "alice", "pw")
	require.NoError(t, err)
	c, err := h.AuthHash(ctx, "bob", "pw")
	require.NoError(t, err)
	d, err := h.AuthHash(ctx, "alice", "other")
	require.NoError(t, err)

	assert.Len(t, a, 64)
	assert.Equal(t, a, b, "login is case-insensitive")
	assert.NotEqual(t, a, c)
	assert.NotEqual(t, a, d)
}

func TestAuthHasher_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewAuthHasher().AuthHash(ctx, "alice", "pw")
	assert.ErrorIs(t, err, context.Canceled)
}
