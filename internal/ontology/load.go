// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package ontology

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/petar-djukic/phenodx/pkg/types"
)

// ErrNoGraphs is returned when a document contains no graph to read terms from.
var ErrNoGraphs = errors.New("ontology document has no graphs")

// Document is the subset of the obographs JSON layout (hp.json) that the
// index needs. YAML fixtures use the same keys.
type Document struct {
	Graphs []Graph `json:"graphs" yaml:"graphs"`
}

// Graph holds the nodes of one ontology graph.
type Graph struct {
	ID    string `json:"id" yaml:"id"`
	Nodes []Node `json:"nodes" yaml:"nodes"`
}

// Node is an obographs node.
type Node struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"lbl,omitempty" yaml:"lbl,omitempty"`
	Meta  *Meta  `json:"meta,omitempty" yaml:"meta,omitempty"`
}

// Meta carries node annotations; only synonyms are used.
type Meta struct {
	Synonyms []Synonym `json:"synonyms,omitempty" yaml:"synonyms,omitempty"`
}

// Synonym is a single synonym value.
type Synonym struct {
	Pred  string `json:"pred,omitempty" yaml:"pred,omitempty"`
	Value string `json:"val" yaml:"val"`
}

// Format selects the document encoding.
type Format int

const (
	FormatJSON Format = iota // obographs JSON
	FormatYAML               // YAML fixture with the obographs keys
)

// FormatFor picks the document format from a file extension.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// LoadFile reads an ontology document from path and returns its terms in
// graph order.
func LoadFile(path string) ([]Term, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening ontology: %w", err)
	}
	defer f.Close()

	terms, err := Decode(f, FormatFor(path))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}
	return terms, nil
}

// Decode reads a document from r. Only the first graph is used.
func Decode(r io.Reader, format Format) ([]Term, error) {
	var doc Document
	switch format {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decoding yaml: %w", err)
		}
	default:
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("decoding json: %w", err)
		}
	}
	if len(doc.Graphs) == 0 {
		return nil, ErrNoGraphs
	}
	return doc.Graphs[0].Terms(), nil
}

// Terms converts the graph nodes into index records, normalizing ids.
// Nodes without an id are dropped.
func (g Graph) Terms() []Term {
	terms := make([]Term, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		if n.ID == "" {
			continue
		}
		t := Term{
			ID:    types.NormalizeTermCode(n.ID),
			Label: n.Label,
		}
		if n.Meta != nil {
			for _, s := range n.Meta.Synonyms {
				if s.Value != "" {
					t.Synonyms = append(t.Synonyms, s.Value)
				}
			}
		}
		terms = append(terms, t)
	}
	return terms
}
