// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	usersTable       = "users"
	wrappedKeysTable = "wrapped_keys"
	recordsTable     = "records"
)

var (
	userColumns       = []string{"user_id", "login", "auth_hash", "created_at"}
	wrappedKeyColumns = []string{"owner_id", "wrapped_key", "version", "updated_at"}
	recordColumns     = []string{"record_id", "owner_id", "fields", "version", "updated_at"}
)

func buildCreateUserQuery(b sq.StatementBuilderType, login, authHash string, createdAt time.Time) (string, []any, error) {
	return b.Insert(usersTable).
		Columns("login", "auth_hash", "created_at").
		Values(login, authHash, createdAt).
		Suffix("RETURNING user_id").
		ToSql()
}

func buildFindUserByLoginQuery(b sq.StatementBuilderType, login string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"login": login}).
		ToSql()
}

func buildUpdateAuthHashQuery(b sq.StatementBuilderType, userID int64, authHash string) (string, []any, error) {
	return b.Update(usersTable).
		Set("auth_hash", authHash).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildInsertWrappedKeyQuery(b sq.StatementBuilderType, ownerID int64, text string, updatedAt time.Time) (string, []any, error) {
	return b.Insert(wrappedKeysTable).
		Columns(wrappedKeyColumns...).
		Values(ownerID, text, 1, updatedAt).
		ToSql()
}

// buildCompareAndSwapWrappedKeyQuery updates the row only while its version
// still equals expectedVersion.
func buildCompareAndSwapWrappedKeyQuery(b sq.StatementBuilderType, ownerID int64, text string, expectedVersion int64, updatedAt time.Time) (string, []any, error) {
	return b.Update(wrappedKeysTable).
		Set("wrapped_key", text).
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"owner_id": ownerID, "version": expectedVersion}).
		ToSql()
}

// buildUpsertWrappedKeyQuery stores a row with the caller's version as is.
// Used by the client cache.
func buildUpsertWrappedKeyQuery(b sq.StatementBuilderType, ownerID int64, text string, version int64, updatedAt time.Time) (string, []any, error) {
	return b.Insert(wrappedKeysTable).
		Columns(wrappedKeyColumns...).
		Values(ownerID, text, version, updatedAt).
		Suffix("ON CONFLICT (owner_id) DO UPDATE SET wrapped_key = excluded.wrapped_key, version = excluded.version, updated_at = excluded.updated_at").
		ToSql()
}

func buildGetWrappedKeyQuery(b sq.StatementBuilderType, ownerID int64) (string, []any, error) {
	return b.Select(wrappedKeyColumns...).
		From(wrappedKeysTable).
		Where(sq.Eq{"owner_id": ownerID}).
		ToSql()
}

func buildSaveRecordQuery(b sq.StatementBuilderType, ownerID int64, recordID, fields string, updatedAt time.Time) (string, []any, error) {
	return b.Insert(recordsTable).
		Columns(recordColumns...).
		Values(recordID, ownerID, fields, 1, updatedAt).
		Suffix("ON CONFLICT (owner_id, record_id) DO UPDATE SET fields = excluded.fields, version = records.version + 1, updated_at = excluded.updated_at RETURNING version").
		ToSql()
}

func buildGetRecordQuery(b sq.StatementBuilderType, ownerID int64, recordID string) (string, []any, error) {
	return b.Select(recordColumns...).
		From(recordsTable).
		Where(sq.Eq{"owner_id": ownerID, "record_id": recordID}).
		ToSql()
}

func buildListRecordIDsQuery(b sq.StatementBuilderType, ownerID int64) (string, []any, error) {
	return b.Select("record_id").
		From(recordsTable).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("record_id").
		ToSql()
}

func buildDeleteRecordQuery(b sq.StatementBuilderType, ownerID int64, recordID string) (string, []any, error) {
	return b.Delete(recordsTable).
		Where(sq.Eq{"owner_id": ownerID, "record_id": recordID}).
		ToSql()
}
