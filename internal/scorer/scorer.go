// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package scorer ranks candidate diseases by raw phenotype overlap.
package scorer

import (
	"sort"

	"github.com/petar-djukic/phenodx/pkg/types"
)

// DiseaseLookup returns the diseases annotated with a term.
type DiseaseLookup interface {
	DiseasesFor(term types.TermCode) []types.DiseaseKey
}

// TermLookup returns the terms annotated to a disease.
type TermLookup interface {
	TermsFor(disease types.DiseaseKey) []types.TermCode
}

// Score counts, for every disease, one match per (term occurrence, disease
// association) pair and returns the diseases with a non-zero count sorted by
// count, highest first. Ties keep the order in which diseases were first seen.
// Repeated terms and duplicate associations both add to the count.
func Score(terms []types.TermCode, idx DiseaseLookup) []types.Candidate {
	counts := make(map[types.DiseaseKey]int)
	var order []types.DiseaseKey

	for _, term := range terms {
		for _, d := range idx.DiseasesFor(term) {
			if _, seen := counts[d]; !seen {
				order = append(order, d)
			}
			counts[d]++
		}
	}

	ranked := make([]types.Candidate, 0, len(order))
	for _, d := range order {
		ranked = append(ranked, types.Candidate{Disease: d, Matches: counts[d]})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Matches > ranked[j].Matches
	})

	return ranked
}

// Retain keeps the candidates whose match count is at least ratio times the
// number of confirmed terms. Order is preserved.
func Retain(ranked []types.Candidate, confirmed int, ratio float64) []types.Candidate {
	threshold := float64(confirmed) * ratio
	var kept []types.Candidate
	for _, c := range ranked {
		if float64(c.Matches) >= threshold {
			kept = append(kept, c)
		}
	}
	return kept
}

// Top returns at most the first k candidates.
func Top(ranked []types.Candidate, k int) []types.Candidate {
	if k < 0 || len(ranked) <= k {
		return ranked
	}
	return ranked[:k]
}

// Matched returns the confirmed terms disease is annotated with, in confirmed
// order, each at most once.
func Matched(disease types.DiseaseKey, confirmed []types.TermCode, idx TermLookup) []types.TermCode {
	known := make(map[types.TermCode]bool)
	for _, t := range idx.TermsFor(disease) {
		known[t] = true
	}

	var matched []types.TermCode
	for _, t := range confirmed {
		if known[t] {
			matched = append(matched, t)
			delete(known, t)
		}
	}
	return matched
}

// Confidence expresses matches as a percentage of the confirmed term count.
// Duplicate annotations can push it past 100.
func Confidence(matches, confirmed int) float64 {
	if confirmed == 0 {
		return 0
	}
	return float64(matches) / float64(confirmed) * 100
}
