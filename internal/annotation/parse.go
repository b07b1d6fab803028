// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package annotation

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/petar-djukic/phenodx/pkg/types"
)

const (
	commentMarker = "#"
	minFields     = 5
	maxLineBytes  = 1 << 20

	colDiseaseID   = 0
	colDiseaseName = 1
	colTerm        = 3
)

// Stats counts what Parse did with each input line.
type Stats struct {
	Lines    int // Lines read
	Records  int // Lines turned into records
	Comments int // Lines skipped as comments
	Short    int // Lines skipped for having fewer than 5 fields
}

// ParseFile reads an HPO annotation file (phenotype.hpoa).
func ParseFile(path string) ([]Record, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("opening annotations: %w", err)
	}
	defer f.Close()

	records, stats, err := Parse(f)
	if err != nil {
		return nil, stats, fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}
	return records, stats, nil
}

// Parse reads tab-delimited annotation rows. Comment lines and lines with
// fewer than five fields are skipped and counted, never reported as errors.
// Columns used: 0 disease id, 1 disease name, 3 term code.
func Parse(r io.Reader) ([]Record, Stats, error) {
	var (
		records []Record
		stats   Stats
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		line := scanner.Text()
		stats.Lines++

		if strings.HasPrefix(line, commentMarker) {
			stats.Comments++
			continue
		}
		fields := strings.Split(strings.TrimSpace(line), "\t")
		if len(fields) < minFields {
			stats.Short++
			continue
		}

		records = append(records, Record{
			Disease: types.DiseaseKey{
				ID:   fields[colDiseaseID],
				Name: fields[colDiseaseName],
			},
			Term: types.NormalizeTermCode(fields[colTerm]),
		})
		stats.Records++
	}
	if err := scanner.Err(); err != nil {
		return records, stats, fmt.Errorf("scanning annotations: %w", err)
	}

	return records, stats, nil
}
