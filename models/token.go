package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a signed JWT issued to an account.
//
// OwnerID is the parsed "sub" claim; every vault request is scoped to it.
type Token struct {
	*jwt.Token `json:"-"`
	jwt.RegisteredClaims

	// SignedString is the compact JWS form sent in the Authorization header.
	SignedString string `json:"-"`

	// OwnerID is the account identifier taken from the subject claim.
	OwnerID int64 `json:"-"`
}

// GetOwnerID parses the "sub" claim as a base-10 int64.
func (t *Token) GetOwnerID() (int64, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting owner id from token: %w", err)
	}

	ownerID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting owner id from token to int64: %w", err)
	}

	return ownerID, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
