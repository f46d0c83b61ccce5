// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/subtle"
	"hash"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// digestPool reuses unkeyed BLAKE2b-256 hashers.
var digestPool = sync.Pool{
	New: func() any {
		h, err := blake2b.New256(nil)
		if err != nil {
			// only a key longer than 64 bytes makes New256 fail
			panic(err)
		}
		return h
	},
}

// Digest returns the BLAKE2b-256 digest of data.
func Digest(data []byte) []byte {
	h := digestPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	digestPool.Put(h)

	return sum
}

// ConstantTimeEqual compares a and b without leaking where they first differ
// or how long either one is: both are reduced to fixed-length digests and
// compared with [subtle.ConstantTimeCompare].
func ConstantTimeEqual(a, b string) bool {
	return subtle.ConstantTimeCompare(Digest([]byte(a)), Digest([]byte(b))) == 1
}
