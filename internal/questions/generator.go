// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package questions picks the follow-up phenotype questions most likely to
// tell the remaining candidate diseases apart.
package questions

import (
	"fmt"

	"github.com/petar-djukic/phenodx/pkg/types"
)

const (
	// DefaultPool caps how many top candidates contribute terms.
	DefaultPool = 50

	promptFormat = "Do you experience %s?"
)

// TermLookup returns the terms annotated to a disease.
type TermLookup interface {
	TermsFor(disease types.DiseaseKey) []types.TermCode
}

// NameLookup returns the display name of a term, falling back to the code.
type NameLookup interface {
	NameOf(code types.TermCode) string
}

// Generator builds follow-up questions.
type Generator struct {
	Pool  int // Top candidates considered (default 50)
	Terms TermLookup
	Names NameLookup
}

// Generate returns up to max questions about the terms that occur most often
// among the top candidates and are not yet confirmed. Ties keep the order in
// which terms were first met while walking the candidates. An empty result
// means there is nothing left to ask.
func (g *Generator) Generate(candidates []types.Candidate, confirmed []types.TermCode, max int) []types.Question {
	if len(candidates) == 0 || max <= 0 {
		return nil
	}
	pool := g.Pool
	if pool <= 0 {
		pool = DefaultPool
	}
	if len(candidates) > pool {
		candidates = candidates[:pool]
	}

	freq := newCounter()
	for _, c := range candidates {
		for _, term := range g.Terms.TermsFor(c.Disease) {
			freq.add(term)
		}
	}
	for _, term := range confirmed {
		freq.remove(term)
	}

	selected := freq.mostCommon(max)
	if len(selected) == 0 {
		return nil
	}

	out := make([]types.Question, 0, len(selected))
	for _, term := range selected {
		out = append(out, types.Question{
			Term: term,
			Text: Prompt(g.name(term)),
		})
	}
	return out
}

func (g *Generator) name(term types.TermCode) string {
	if g.Names == nil {
		return string(term)
	}
	return g.Names.NameOf(term)
}

// Prompt formats the yes/no question for a term name.
func Prompt(name string) string {
	return fmt.Sprintf(promptFormat, name)
}
