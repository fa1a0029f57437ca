// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextKeyString(t *testing.T) {
	assert.Equal(t, "testKey", contextKey("testKey").String())
	assert.Equal(t, "ownerID", OwnerIDCtxKey.String())
}

func TestGetOwnerIDFromContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		wantID int64
		wantOK bool
	}{
		{
			name:   "present",
			ctx:    context.WithValue(context.Background(), OwnerIDCtxKey, int64(42)),
			wantID: 42,
			wantOK: true,
		},
		{
			name:   "zero value is still present",
			ctx:    context.WithValue(context.Background(), OwnerIDCtxKey, int64(0)),
			wantID: 0,
			wantOK: true,
		},
		{
			name: "missing",
			ctx:  context.Background(),
		},
		{
			name: "wrong type",
			ctx:  context.WithValue(context.Background(), OwnerIDCtxKey, "42"),
		},
		{
			name: "different key",
			ctx:  context.WithValue(context.Background(), contextKey("other"), int64(99)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := GetOwnerIDFromContext(tt.ctx)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}
