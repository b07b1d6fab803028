// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package textnorm normalizes symptom phrases and ontology labels so they
// can be compared case-insensitively.
package textnorm

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Key returns the comparison key for s: NFKC-normalized, whitespace
// collapsed, lower-cased. Returns "" for blank input.
func Key(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = norm.NFKC.String(s)
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(strings.Join(fields, " "))
}

// SplitList splits a comma separated list, trimming entries and dropping
// empty ones. Original spelling is preserved.
func SplitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
