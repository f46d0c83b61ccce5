// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Category is the closed set of labels a credential entry can be filed under.
type Category string

const (
	CategoryLogin         Category = "LOGIN"
	CategoryGeneral       Category = "GENERAL"
	CategoryFinancial     Category = "FINANCIAL"
	CategoryBanking       Category = "BANKING"
	CategorySocial        Category = "SOCIAL"
	CategoryEmail         Category = "EMAIL"
	CategoryWork          Category = "WORK"
	CategoryEntertainment Category = "ENTERTAINMENT"
	CategoryShopping      Category = "SHOPPING"
	CategoryOther         Category = "OTHER"
)

var categories = map[Category]struct{}{
	CategoryLogin:         {},
	CategoryGeneral:       {},
	CategoryFinancial:     {},
	CategoryBanking:       {},
	CategorySocial:        {},
	CategoryEmail:         {},
	CategoryWork:          {},
	CategoryEntertainment: {},
	CategoryShopping:      {},
	CategoryOther:         {},
}

// ResolveCategory maps free-form input onto a [Category].
// Matching is case-insensitive and ignores surrounding whitespace.
// Blank or unrecognized input resolves to [CategoryOther]; it never fails.
func ResolveCategory(raw string) Category {
	if c := Category(strings.ToUpper(strings.TrimSpace(raw))); c.IsValid() {
		return c
	}
	return CategoryOther
}

// IsValid reports whether c is a member of the closed category set.
func (c Category) IsValid() bool {
	_, ok := categories[c]
	return ok
}

func (c Category) String() string {
	return string(c)
}
