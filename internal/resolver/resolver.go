// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package resolver maps free-text symptom phrases onto ontology terms.
package resolver

import (
	"fmt"

	"github.com/petar-djukic/phenodx/internal/textnorm"
	"github.com/petar-djukic/phenodx/pkg/types"
)

// TermLookup is the part of the ontology index the resolver needs.
type TermLookup interface {
	Resolve(text string) (types.TermCode, bool)
	NameOf(code types.TermCode) string
}

// Resolution is the outcome of resolving a list of phrases.
type Resolution struct {
	Terms    []types.TermCode          // Resolved terms in input order; duplicates kept
	Names    map[types.TermCode]string // Names of the resolved terms only
	Warnings []types.Warning           // One per unresolved phrase
}

// Empty reports whether no phrase resolved. Callers treat this as
// insufficient input, not as an error.
func (r Resolution) Empty() bool {
	return len(r.Terms) == 0
}

// Named returns the resolved terms paired with their names.
func (r Resolution) Named() []types.NamedTerm {
	out := make([]types.NamedTerm, 0, len(r.Terms))
	for _, t := range r.Terms {
		out = append(out, types.NamedTerm{Code: t, Name: r.Names[t]})
	}
	return out
}

// Split breaks raw comma-separated input into trimmed, non-empty phrases.
func Split(raw string) []string {
	return textnorm.SplitList(raw)
}

// Resolve looks every phrase up in idx. Unresolved phrases are collected as
// warnings and skipped.
func Resolve(phrases []string, idx TermLookup) Resolution {
	res := Resolution{Names: make(map[types.TermCode]string)}

	for _, phrase := range phrases {
		if textnorm.Key(phrase) == "" {
			continue
		}
		code, ok := idx.Resolve(phrase)
		if !ok {
			res.Warnings = append(res.Warnings, types.Warning{
				Kind:    types.WarnUnresolvedSymptom,
				Phrase:  phrase,
				Message: fmt.Sprintf("symptom %q not found in the ontology", phrase),
			})
			continue
		}
		res.Terms = append(res.Terms, code)
		res.Names[code] = idx.NameOf(code)
	}

	return res
}

// ResolveText splits raw and resolves the resulting phrases.
func ResolveText(raw string, idx TermLookup) Resolution {
	return Resolve(Split(raw), idx)
}
