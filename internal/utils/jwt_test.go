// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// signHS256 stands in for the identity provider that mints vault tokens.
func signHS256(t *testing.T, issuer, subject string, ttl time.Duration, key string) string {
	t.Helper()

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	})
	signed, err := token.SignedString([]byte(key))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return signed
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	signed := signHS256(t, "idp", "alice", time.Hour, "secret-key")

	parsed, err := ValidateAndParseJWTToken(signed, "secret-key", "idp")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if parsed.OwnerID != "alice" {
		t.Errorf("expected owner alice, got %q", parsed.OwnerID)
	}
	if parsed.SignedString != signed {
		t.Error("expected SignedString to carry the raw token")
	}
}

func TestValidateAndParseJWTToken_Rejects(t *testing.T) {
	valid := signHS256(t, "idp", "alice", time.Hour, "secret-key")
	expired := signHS256(t, "idp", "alice", -time.Minute, "secret-key")

	noSubject := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    "idp",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	noSubjectString, _ := noSubject.SignedString([]byte("secret-key"))

	noneAlg := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Issuer:    "idp",
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	noneString, _ := noneAlg.SignedString(jwt.UnsafeAllowNoneSignatureType)

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
	}{
		{"wrong key", valid, "other-key", "idp"},
		{"wrong issuer", valid, "secret-key", "someone-else"},
		{"expired", expired, "secret-key", "idp"},
		{"missing subject", noSubjectString, "secret-key", "idp"},
		{"alg none", noneString, "secret-key", "idp"},
		{"garbage", "not.a.jwt", "secret-key", "idp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi", false},
		{"bearer   abc", "abc", false},
		{"Basic dXNlcjpwYXNz", "", true},
		{"Bearer", "", true},
		{"", "", true},
		{"Bearer a b", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
