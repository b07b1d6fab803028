// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package types defines the value types shared across phenodx packages.
package types

import (
	"fmt"
	"strings"
)

const oboPrefix = "http://purl.obolibrary.org/obo/"

// TermCode identifies a phenotype concept, normalized to the HP_0000000 form.
type TermCode string

// NormalizeTermCode maps the spellings used by the ontology and annotation
// files (HP:0001250, http://purl.obolibrary.org/obo/HP_0001250) onto a single
// TermCode.
func NormalizeTermCode(raw string) TermCode {
	id := strings.TrimSpace(raw)
	id = strings.TrimPrefix(id, oboPrefix)
	return TermCode(strings.ReplaceAll(id, ":", "_"))
}

// DiseaseKey identifies a disease. Two keys are equal iff both fields match.
type DiseaseKey struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

func (d DiseaseKey) String() string {
	return fmt.Sprintf("%s: %s", d.ID, d.Name)
}

// Candidate is a disease with its raw phenotype overlap count.
type Candidate struct {
	Disease DiseaseKey `json:"disease" yaml:"disease"`
	Matches int        `json:"matches" yaml:"matches"`
}

// Question is a follow-up yes/no question about a single phenotype term.
type Question struct {
	Term TermCode `json:"term" yaml:"term"`
	Text string   `json:"text" yaml:"text"`
}

// NamedTerm pairs a TermCode with its human-readable name.
type NamedTerm struct {
	Code TermCode `json:"code" yaml:"code"`
	Name string   `json:"name" yaml:"name"`
}
