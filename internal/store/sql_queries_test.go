// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueries_PlaceholderFormatFollowsDialect(t *testing.T) {
	pg := sq.StatementBuilder.PlaceholderFormat(placeholderFormat(DialectPostgres))
	lite := sq.StatementBuilder.PlaceholderFormat(placeholderFormat(DialectSQLite))

	query, args, err := buildGetRecordQuery(pg, 42, "entry")
	require.NoError(t, err)
	assert.Equal(t, "SELECT record_id, owner_id, fields, version, updated_at FROM records WHERE owner_id = $1 AND record_id = $2", query)
	assert.Equal(t, []any{int64(42), "entry"}, args)

	query, _, err = buildGetRecordQuery(lite, 42, "entry")
	require.NoError(t, err)
	assert.Contains(t, query, "owner_id = ? AND record_id = ?")
	assert.NotContains(t, query, "$")
}

func TestBuildCompareAndSwapWrappedKeyQuery(t *testing.T) {
	b := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	now := time.Now()

	query, args, err := buildCompareAndSwapWrappedKeyQuery(b, 7, "text", 3, now)
	require.NoError(t, err)

	assert.Equal(t, "UPDATE wrapped_keys SET wrapped_key = $1, version = version + 1, updated_at = $2 WHERE owner_id = $3 AND version = $4", query)
	assert.Equal(t, []any{"text", now, int64(7), int64(3)}, args)
}

func TestBuildSaveRecordQuery_Upserts(t *testing.T) {
	b := sq.StatementBuilder.PlaceholderFormat(sq.Question)

	query, args, err := buildSaveRecordQuery(b, 1, "r", "{}", time.Now())
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "insert into records")
	assert.Contains(t, q, "on conflict (owner_id, record_id) do update")
	assert.Contains(t, q, "returning version")
	assert.Len(t, args, 5)
}

func TestBuildListRecordIDsQuery_Ordered(t *testing.T) {
	query, args, err := buildListRecordIDsQuery(sq.StatementBuilder.PlaceholderFormat(sq.Dollar), 5)
	require.NoError(t, err)

	assert.Equal(t, "SELECT record_id FROM records WHERE owner_id = $1 ORDER BY record_id", query)
	assert.Equal(t, []any{int64(5)}, args)
}
