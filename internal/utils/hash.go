package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// HashString computes HMAC-SHA256 of data under hashKey and returns it
// hex-encoded. The server uses it to store client auth hashes so that a
// leaked users table cannot be replayed against the login endpoint.
//
//	stored := utils.HashString(user.AuthHash, cfg.App.PasswordHashKey)
func HashString(data string, hashKey string) string {
	return hex.EncodeToString(hashString([]byte(data), hashKey))
}

func hashString(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}

// EqualHashes compares two hex digests in constant time.
func EqualHashes(a, b string) bool {
	return hmac.Equal([]byte(a), []byte(b))
}
