// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"math"
	"strings"
)

// Listing defaults and limits.
const (
	DefaultPageSize   = 10
	MaxPageSize       = 100
	DefaultSortKey    = SortByTitle
	CategoryFilterAll = "all"
)

// SortKey is a whitelisted field a credential listing can be ordered by.
type SortKey string

const (
	SortByTitle           SortKey = "title"
	SortByURL             SortKey = "url"
	SortByUsernameOrEmail SortKey = "usernameOrEmail"
	SortByCategory        SortKey = "category"
	SortByStrength        SortKey = "strength"
	SortByCreatedAt       SortKey = "createdAt"
	SortByUpdatedAt       SortKey = "updatedAt"
)

var sortKeyAliases = map[string]SortKey{
	"title":           SortByTitle,
	"url":             SortByURL,
	"websiteurl":      SortByURL,
	"usernameoremail": SortByUsernameOrEmail,
	"username":        SortByUsernameOrEmail,
	"category":        SortByCategory,
	"strength":        SortByStrength,
	"createdat":       SortByCreatedAt,
	"updatedat":       SortByUpdatedAt,
}

// ResolveSortKey maps a caller-supplied sort field onto the whitelist.
// Blank input selects [DefaultSortKey]; unknown input reports false.
func ResolveSortKey(raw string) (SortKey, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultSortKey, true
	}
	key, ok := sortKeyAliases[strings.ToLower(raw)]
	return key, ok
}

// ListQuery describes one page of an owner's credential listing.
type ListQuery struct {
	Page      int
	Size      int
	SortBy    string
	Direction string
	Search    string
	Category  string
}

// Descending reports whether the caller asked for descending order.
// Anything other than "desc" (case-insensitive) sorts ascending.
func (q ListQuery) Descending() bool {
	return strings.EqualFold(strings.TrimSpace(q.Direction), "desc")
}

// CategoryFilter returns the lower-cased category to filter by, or "" when
// the listing spans every category.
func (q ListQuery) CategoryFilter() string {
	c := strings.ToLower(strings.TrimSpace(q.Category))
	if c == CategoryFilterAll {
		return ""
	}
	return c
}

// SearchTerm returns the trimmed, lower-cased search text.
func (q ListQuery) SearchTerm() string {
	return strings.ToLower(strings.TrimSpace(q.Search))
}

// Offset returns the number of rows preceding the requested page.
// Callers check [ListQuery.PageInRange] first.
func (q ListQuery) Offset() uint64 {
	return uint64(q.Page) * uint64(q.Size)
}

// PageInRange reports whether Page is non-negative and Page*Size fits in a
// signed 64-bit SQL OFFSET.
func (q ListQuery) PageInRange() bool {
	if q.Page < 0 {
		return false
	}
	if q.Size <= 0 {
		return true
	}
	return int64(q.Page) <= math.MaxInt64/int64(q.Size)
}

// Page is one slice of an ordered result set.
type Page[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

// NewPage assembles a page and derives the total page count.
func NewPage[T any](content []T, page, size int, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}

	totalPages := 0
	if size > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}

	return Page[T]{
		Content:       content,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
	}
}
