// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package annotation

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/phenodx/pkg/types"
)

func rows(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

func TestParse_SkipsCommentsAndShortRows(t *testing.T) {
	input := rows(
		"#description: HPO annotations",
		"#date: 2026-01-01",
		"OMIM:100\tEpilepsy X\t\tHP:0001\tPMID:1\tPCS",
		"OMIM:200\tTruncated\tHP:0002",
		"",
		"OMIM:300\tAtaxia Y\t\tHP:0002\tPMID:2\tIEA",
	)

	records, stats, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, Record{
		Disease: types.DiseaseKey{ID: "OMIM:100", Name: "Epilepsy X"},
		Term:    "HP_0001",
	}, records[0])
	assert.Equal(t, types.TermCode("HP_0002"), records[1].Term)

	assert.Equal(t, Stats{Lines: 6, Records: 2, Comments: 2, Short: 2}, stats)
}

func TestParse_Empty(t *testing.T) {
	records, stats, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Zero(t, stats.Lines)
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "phenotype.hpoa")
	require.NoError(t, os.WriteFile(path, []byte(rows(
		"#comment",
		"ORPHA:1\tRare thing\t\tHP:0000118\tPMID:3\tTAS",
	)), 0o644))

	records, stats, err := ParseFile(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "ORPHA:1", records[0].Disease.ID)
	assert.Equal(t, 1, stats.Comments)

	_, _, err = ParseFile(filepath.Join(dir, "missing.hpoa"))
	assert.Error(t, err)
}
