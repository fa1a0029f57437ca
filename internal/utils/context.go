// Package utils provides small helpers shared by the server and the client:
// typed context keys, HMAC hashing, JSON response writing, the resty client
// constructor, JWT issuing and parsing, and record id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys so that values stored by this
// package never collide with string keys of other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// OwnerIDCtxKey is the context key under which the authenticated account id
// (int64) is stored by the auth middleware.
//
//	ctx := context.WithValue(ctx, utils.OwnerIDCtxKey, int64(42))
var OwnerIDCtxKey = contextKey("ownerID")

// GetOwnerIDFromContext retrieves the account id stored under [OwnerIDCtxKey].
// ok is false when the value is missing or is not an int64.
func GetOwnerIDFromContext(ctx context.Context) (int64, bool) {
	ownerID, ok := ctx.Value(OwnerIDCtxKey).(int64)
	return ownerID, ok
}
