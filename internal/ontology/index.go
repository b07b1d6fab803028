// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ontology indexes phenotype ontology terms by label and synonym and
// loads them from obographs documents.
package ontology

import (
	"github.com/petar-djukic/phenodx/internal/textnorm"
	"github.com/petar-djukic/phenodx/pkg/types"
)

// Term is a raw ontology record. Label and Synonyms may be empty.
type Term struct {
	ID       types.TermCode
	Label    string
	Synonyms []string
}

// Index maps labels and synonyms to term codes and term codes to names.
// It is read-only after construction and safe for concurrent readers.
type Index struct {
	byText map[string]types.TermCode
	names  map[types.TermCode]string
	terms  int
}

// NewIndex builds an Index from terms in graph order.
//
// A phrase resolves to the first term in graph order whose label or one of
// whose synonyms matches it, so keys are inserted first-wins: the label of a
// term before its synonyms, earlier terms before later ones.
func NewIndex(terms []Term) *Index {
	idx := &Index{
		byText: make(map[string]types.TermCode, len(terms)),
		names:  make(map[types.TermCode]string, len(terms)),
		terms:  len(terms),
	}

	for _, t := range terms {
		if t.ID == "" {
			continue
		}
		if t.Label != "" {
			if _, ok := idx.names[t.ID]; !ok {
				idx.names[t.ID] = t.Label
			}
			idx.add(t.Label, t.ID)
		}
		for _, syn := range t.Synonyms {
			idx.add(syn, t.ID)
		}
	}

	return idx
}

func (idx *Index) add(text string, code types.TermCode) {
	key := textnorm.Key(text)
	if key == "" {
		return
	}
	if _, taken := idx.byText[key]; taken {
		return
	}
	idx.byText[key] = code
}

// Resolve returns the term whose label or synonym matches text,
// case-insensitively.
func (idx *Index) Resolve(text string) (types.TermCode, bool) {
	key := textnorm.Key(text)
	if key == "" {
		return "", false
	}
	code, ok := idx.byText[key]
	return code, ok
}

// NameOf returns the label of code, or the code itself when it has none.
func (idx *Index) NameOf(code types.TermCode) string {
	if name, ok := idx.names[code]; ok {
		return name
	}
	return string(code)
}

// Len returns the number of terms the index was built from.
func (idx *Index) Len() int {
	return idx.terms
}
