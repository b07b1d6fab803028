// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package annotation indexes disease-phenotype associations in both
// directions and parses them from HPO annotation files.
package annotation

import "github.com/petar-djukic/phenodx/pkg/types"

// Record is a single disease-phenotype association.
type Record struct {
	Disease types.DiseaseKey
	Term    types.TermCode
}

// Index maps terms to diseases and diseases to terms. Duplicate associations
// are kept: they count twice when scoring and when ranking questions.
// It is read-only after construction.
type Index struct {
	byTerm    map[types.TermCode][]types.DiseaseKey
	byDisease map[types.DiseaseKey][]types.TermCode
}

// NewIndex builds an Index from records in source order.
func NewIndex(records []Record) *Index {
	idx := &Index{
		byTerm:    make(map[types.TermCode][]types.DiseaseKey),
		byDisease: make(map[types.DiseaseKey][]types.TermCode),
	}
	for _, r := range records {
		idx.byTerm[r.Term] = append(idx.byTerm[r.Term], r.Disease)
		idx.byDisease[r.Disease] = append(idx.byDisease[r.Disease], r.Term)
	}
	return idx
}

// DiseasesFor returns the diseases annotated with term, in source order.
func (idx *Index) DiseasesFor(term types.TermCode) []types.DiseaseKey {
	return idx.byTerm[term]
}

// TermsFor returns the terms annotated to disease, in source order.
func (idx *Index) TermsFor(disease types.DiseaseKey) []types.TermCode {
	return idx.byDisease[disease]
}

// DiseaseCount returns the number of distinct diseases.
func (idx *Index) DiseaseCount() int {
	return len(idx.byDisease)
}

// TermCount returns the number of distinct terms.
func (idx *Index) TermCount() int {
	return len(idx.byTerm)
}
