// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package diagnosis is the public interface of phenodx, a phenotype-driven
// differential diagnosis engine over the Human Phenotype Ontology.
package diagnosis

import (
	"context"
	"errors"
	"log/slog"

	"github.com/petar-djukic/phenodx/pkg/types"
)

// Error types for the diagnosis API.
var (
	ErrInvalidConfig  = errors.New("invalid config")
	ErrOntologyLoad   = errors.New("failed to load ontology")
	ErrAnnotationLoad = errors.New("failed to load annotations")
)

// Config configures an Engine.
type Config struct {
	OntologyPath      string       // obographs JSON or YAML file (required)
	AnnotationPath    string       // HPOA annotation file (required)
	MaxRounds         int          // Question rounds per session (default 5)
	QuestionsPerRound int          // Questions per round (default 3)
	StopAt            int          // Stop asking at this many candidates (default 3)
	RetainRatio       float64      // Fraction of confirmed terms a survivor must match (default 0.7)
	QuestionPool      int          // Top candidates that contribute question terms (default 50)
	FallbackSize      int          // Candidates kept when nothing survives a rescope (default 50)
	ReportSize        int          // Diagnoses in the final report (default 5)
	Logger            *slog.Logger // nil uses slog.Default()
}

// Prompter obtains answers from the patient.
type Prompter interface {
	AskOpen(ctx context.Context, text string) (string, error)
	AskYesNo(ctx context.Context, text string) (bool, error)
}

// Resolution maps a symptom list onto ontology terms.
type Resolution struct {
	Resolved []types.NamedTerm `json:"resolved" yaml:"resolved"`
	Warnings []types.Warning   `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// Engine runs diagnoses against loaded ontology and annotation data. The
// loaded data is read-only, so one Engine may serve concurrent sessions.
type Engine interface {
	// Diagnose runs an interactive session. When symptoms is blank the
	// prompter is asked for them first.
	Diagnose(ctx context.Context, p Prompter, symptoms string) (*types.Report, error)

	// Rank scores a comma-separated symptom list once, without questions.
	Rank(symptoms string) *types.Report

	// Resolve maps a comma-separated symptom list onto ontology terms.
	Resolve(symptoms string) Resolution
}
