// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"testing"

	"golang.org/x/crypto/blake2b"
)

func TestDigest_MatchesBlake2b(t *testing.T) {
	data := []byte("auth-hash")
	want := blake2b.Sum256(data)

	got := Digest(data)
	if !bytes.Equal(got, want[:]) {
		t.Fatalf("unexpected digest\nwant: %x\ngot:  %x", want, got)
	}
	if !bytes.Equal(Digest(data), got) {
		t.Fatal("digest must be deterministic for the same input")
	}
}

func TestConstantTimeEqual(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"abc", "abc", true},
		{"abc", "abd", false},
		{"abc", "abcd", false},
		{"", "", true},
		{"", "x", false},
	}

	for _, tt := range tests {
		if got := ConstantTimeEqual(tt.a, tt.b); got != tt.want {
			t.Errorf("ConstantTimeEqual(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
