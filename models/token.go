package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a verified JWT issued by the external identity provider.
//
// It embeds [jwt.RegisteredClaims] for standard claim access. OwnerID is the
// cached "sub" claim; it is the only identity attribute the vault relies on.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS representation the token was parsed from.
	SignedString string `json:"-"`

	OwnerID string `json:"-"`
}

// GetOwnerID extracts the owner identity from the token's "sub" claim.
//
// Returns an error if the subject claim is missing or empty.
func (t *Token) GetOwnerID() (string, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting OwnerID from token: %w", err)
	}
	if subject == "" {
		return "", fmt.Errorf("error extracting OwnerID from token: empty subject")
	}

	return subject, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
