// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package questions

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/phenodx/internal/annotation"
	"github.com/petar-djukic/phenodx/internal/ontology"
	"github.com/petar-djukic/phenodx/pkg/types"
)

var (
	epilepsy = types.DiseaseKey{ID: "OMIM:100", Name: "Epilepsy X"}
	ataxia   = types.DiseaseKey{ID: "OMIM:200", Name: "Ataxia Y"}
	dystonia = types.DiseaseKey{ID: "OMIM:300", Name: "Dystonia Z"}
)

func newGenerator(records []annotation.Record) *Generator {
	names := ontology.NewIndex([]ontology.Term{
		{ID: "HP_0001", Label: "Seizure"},
		{ID: "HP_0002", Label: "Ataxia"},
		{ID: "HP_0003", Label: "Tremor"},
		{ID: "HP_0004", Label: "Headache"},
	})
	return &Generator{Terms: annotation.NewIndex(records), Names: names}
}

func candidates(ds ...types.DiseaseKey) []types.Candidate {
	out := make([]types.Candidate, len(ds))
	for i, d := range ds {
		out[i] = types.Candidate{Disease: d, Matches: 1}
	}
	return out
}

func TestGenerate_MostFrequentFirst(t *testing.T) {
	g := newGenerator([]annotation.Record{
		{Disease: epilepsy, Term: "HP_0001"},
		{Disease: epilepsy, Term: "HP_0003"},
		{Disease: ataxia, Term: "HP_0002"},
		{Disease: ataxia, Term: "HP_0003"},
		{Disease: dystonia, Term: "HP_0003"},
		{Disease: dystonia, Term: "HP_0002"},
	})

	got := g.Generate(candidates(epilepsy, ataxia, dystonia), []types.TermCode{"HP_0001"}, 3)
	require.Len(t, got, 2)
	assert.Equal(t, types.Question{Term: "HP_0003", Text: "Do you experience Tremor?"}, got[0])
	assert.Equal(t, types.Question{Term: "HP_0002", Text: "Do you experience Ataxia?"}, got[1])
}

func TestGenerate_TiesFollowEncounterOrder(t *testing.T) {
	g := newGenerator([]annotation.Record{
		{Disease: ataxia, Term: "HP_0004"},
		{Disease: ataxia, Term: "HP_0002"},
		{Disease: epilepsy, Term: "HP_0003"},
	})

	got := g.Generate(candidates(ataxia, epilepsy), nil, 3)
	require.Len(t, got, 3)
	assert.Equal(t, types.TermCode("HP_0004"), got[0].Term)
	assert.Equal(t, types.TermCode("HP_0002"), got[1].Term)
	assert.Equal(t, types.TermCode("HP_0003"), got[2].Term)

	// Candidate order drives encounter order, not term codes.
	got = g.Generate(candidates(epilepsy, ataxia), nil, 1)
	require.Len(t, got, 1)
	assert.Equal(t, types.TermCode("HP_0003"), got[0].Term)
}

func TestGenerate_DuplicateAssociationsWeighMore(t *testing.T) {
	g := newGenerator([]annotation.Record{
		{Disease: epilepsy, Term: "HP_0001"},
		{Disease: epilepsy, Term: "HP_0002"},
		{Disease: epilepsy, Term: "HP_0002"},
	})

	got := g.Generate(candidates(epilepsy), nil, 1)
	require.Len(t, got, 1)
	assert.Equal(t, types.TermCode("HP_0002"), got[0].Term)
}

func TestGenerate_NeverAsksConfirmedTerms(t *testing.T) {
	g := newGenerator([]annotation.Record{
		{Disease: epilepsy, Term: "HP_0001"},
		{Disease: epilepsy, Term: "HP_0002"},
		{Disease: ataxia, Term: "HP_0002"},
		{Disease: ataxia, Term: "HP_0003"},
	})
	confirmed := []types.TermCode{"HP_0002", "HP_0003"}

	got := g.Generate(candidates(epilepsy, ataxia), confirmed, 10)
	for _, q := range got {
		assert.NotContains(t, confirmed, q.Term)
	}
	assert.Len(t, got, 1)
}

func TestGenerate_AllConfirmedConverges(t *testing.T) {
	g := newGenerator([]annotation.Record{
		{Disease: epilepsy, Term: "HP_0001"},
		{Disease: ataxia, Term: "HP_0002"},
	})

	got := g.Generate(candidates(epilepsy, ataxia), []types.TermCode{"HP_0002", "HP_0001"}, 3)
	assert.Empty(t, got)
}

func TestGenerate_NoCandidates(t *testing.T) {
	g := newGenerator(nil)
	assert.Empty(t, g.Generate(nil, nil, 3))
	assert.Empty(t, g.Generate(candidates(epilepsy), nil, 0))
}

func TestGenerate_UnnamedTermUsesCode(t *testing.T) {
	g := newGenerator([]annotation.Record{{Disease: epilepsy, Term: "HP_0999"}})

	got := g.Generate(candidates(epilepsy), nil, 1)
	require.Len(t, got, 1)
	assert.Equal(t, "Do you experience HP_0999?", got[0].Text)

	g.Names = nil
	got = g.Generate(candidates(epilepsy), nil, 1)
	assert.Equal(t, "Do you experience HP_0999?", got[0].Text)
}

func TestGenerate_PoolLimitsCandidates(t *testing.T) {
	var records []annotation.Record
	var cands []types.Candidate
	for i := 0; i < 60; i++ {
		d := types.DiseaseKey{ID: fmt.Sprintf("OMIM:%d", i), Name: "D"}
		cands = append(cands, types.Candidate{Disease: d, Matches: 1})
		term := types.TermCode("HP_COMMON")
		if i >= DefaultPool {
			term = "HP_TAIL"
		}
		records = append(records, annotation.Record{Disease: d, Term: term})
	}
	g := newGenerator(records)

	got := g.Generate(cands, nil, 5)
	require.Len(t, got, 1, "diseases past the pool contribute nothing")
	assert.Equal(t, types.TermCode("HP_COMMON"), got[0].Term)

	g.Pool = 60
	got = g.Generate(cands, nil, 5)
	assert.Len(t, got, 2)
}

func TestCounter(t *testing.T) {
	c := newCounter()
	for _, term := range []types.TermCode{"b", "a", "b", "c", "a", "d"} {
		c.add(term)
	}
	assert.Equal(t, 2, c.count("a"))
	assert.Equal(t, []types.TermCode{"b", "a", "c", "d"}, c.mostCommon(-1))

	c.remove("a")
	c.remove("zzz")
	assert.Equal(t, []types.TermCode{"b", "c"}, c.mostCommon(2))
	assert.Zero(t, c.count("a"))
}
