// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Strength is the client-computed password strength bucket.
// The server stores it as given and never scores passwords itself.
type Strength string

const (
	StrengthVeryWeak   Strength = "VERYWEAK"
	StrengthWeak       Strength = "WEAK"
	StrengthFair       Strength = "FAIR"
	StrengthStrong     Strength = "STRONG"
	StrengthVeryStrong Strength = "VERYSTRONG"
)

var strengthLabels = map[Strength]string{
	StrengthVeryWeak:   "Very Weak",
	StrengthWeak:       "Weak",
	StrengthFair:       "Fair",
	StrengthStrong:     "Strong",
	StrengthVeryStrong: "Very Strong",
}

var strengthSeparators = strings.NewReplacer(" ", "", "_", "", "-", "")

// ResolveStrength maps free-form input such as "very weak", "VERY_WEAK" or
// "Very-Strong" onto a [Strength]. Unrecognized or blank input yields nil:
// an unknown strength is absent, never a default bucket.
func ResolveStrength(raw string) *Strength {
	key := Strength(strengthSeparators.Replace(strings.ToUpper(strings.TrimSpace(raw))))
	if _, ok := strengthLabels[key]; !ok {
		return nil
	}
	return &key
}

// Label returns the human-readable name of the bucket, e.g. "Very Strong".
func (s Strength) Label() string {
	return strengthLabels[s]
}

func (s Strength) String() string {
	return string(s)
}
