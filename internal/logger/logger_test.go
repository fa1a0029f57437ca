package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("server")
	l.Logger = l.Output(&buf)

	l.Info().Msg("listening")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "server", entry["role"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String())
}

// The child carries the parent's fields; fields added to the child do not
// leak into the parent.
func TestGetChildLogger(t *testing.T) {
	var parentBuf, childBuf bytes.Buffer
	parent := &Logger{zerolog.New(&parentBuf).With().Str("role", "server").Logger()}

	child := parent.GetChildLogger()
	require.NotSame(t, parent, child)
	child.Logger = child.Output(&childBuf).With().Str("trace_id", "t-1").Logger()

	child.Info().Msg("child")
	parent.Info().Msg("parent")

	childEntry := decodeEntry(t, &childBuf)
	assert.Equal(t, "server", childEntry["role"])
	assert.Equal(t, "t-1", childEntry["trace_id"])
	assert.NotContains(t, decodeEntry(t, &parentBuf), "trace_id")
}

func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("ctx-key", "ctx-value").Logger()
	ctx := zl.WithContext(context.Background())

	l := FromContext(ctx)
	require.NotNil(t, l)

	l.Info().Msg("from context")

	assert.Equal(t, "ctx-value", decodeEntry(t, &buf)["ctx-key"])
}

func TestFromRequest_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("req-key", "req-value").Logger()
	ctx := zl.WithContext(context.Background())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(ctx)

	l := FromRequest(req)
	require.NotNil(t, l)

	l.Info().Msg("from request")

	assert.Equal(t, "req-value", decodeEntry(t, &buf)["req-key"])
}

func TestNewClientLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "client.log")

	l := NewClientLogger("client", path)
	l.Info().Msg("vault unlocked")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "vault unlocked")
	assert.Contains(t, string(data), `"role":"client"`)
}

func TestNewClientLogger_EmptyPathFallsBack(t *testing.T) {
	l := NewClientLogger("client", "")
	require.NotNil(t, l)
}

func TestEnvelopeSizes_OnlyLengths(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = zerolog.New(&buf)

	l.Info().Dict("envelope", EnvelopeSizes("c2VjcmV0", "aXY=", "c2FsdA==", "dGFn")).Msg("accepted")

	out := buf.String()
	assert.False(t, strings.Contains(out, "c2VjcmV0"), "envelope data must not be logged")

	env := decodeEntry(t, &buf)["envelope"].(map[string]any)
	assert.Equal(t, float64(8), env["data_len"])
	assert.Equal(t, float64(4), env["tag_len"])
}
