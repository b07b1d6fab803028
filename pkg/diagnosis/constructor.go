// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package diagnosis

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/petar-djukic/phenodx/internal/annotation"
	"github.com/petar-djukic/phenodx/internal/ontology"
	"github.com/petar-djukic/phenodx/internal/resolver"
	"github.com/petar-djukic/phenodx/internal/scorer"
	"github.com/petar-djukic/phenodx/internal/session"
	"github.com/petar-djukic/phenodx/pkg/types"
)

const (
	defaultMaxRounds         = 5
	defaultQuestionsPerRound = 3
	defaultStopAt            = 3
	defaultRetainRatio       = 0.7
	defaultQuestionPool      = 50
	defaultFallbackSize      = 50
	defaultReportSize        = 5
	previewSize              = 10
)

// New validates the config, loads both data files, and returns a ready Engine.
func New(cfg Config) (Engine, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	applyDefaults(&cfg)
	log := cfg.Logger

	terms, err := ontology.LoadFile(cfg.OntologyPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOntologyLoad, err)
	}
	onto := ontology.NewIndex(terms)
	log.Info("ontology loaded",
		slog.String("path", cfg.OntologyPath),
		slog.Int("terms", onto.Len()),
	)

	records, stats, err := annotation.ParseFile(cfg.AnnotationPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAnnotationLoad, err)
	}
	ann := annotation.NewIndex(records)
	log.Info("annotations loaded",
		slog.String("path", cfg.AnnotationPath),
		slog.Int("records", stats.Records),
		slog.Int("comments", stats.Comments),
		slog.Int("short_rows", stats.Short),
		slog.Int("diseases", ann.DiseaseCount()),
		slog.Int("terms", ann.TermCount()),
	)

	return &engine{cfg: cfg, onto: onto, ann: ann}, nil
}

// engine adapts the internal packages to the public Engine interface.
type engine struct {
	cfg  Config
	onto *ontology.Index
	ann  *annotation.Index
}

func (e *engine) Diagnose(ctx context.Context, p Prompter, symptoms string) (*types.Report, error) {
	runner := session.NewRunner(session.Deps{
		Ontology:    e.onto,
		Annotations: e.ann,
		Prompter:    p,
		Logger:      e.cfg.Logger,
		Limits: session.Limits{
			MaxRounds:         e.cfg.MaxRounds,
			QuestionsPerRound: e.cfg.QuestionsPerRound,
			StopAt:            e.cfg.StopAt,
			RetainRatio:       e.cfg.RetainRatio,
			QuestionPool:      e.cfg.QuestionPool,
			FallbackSize:      e.cfg.FallbackSize,
			ReportSize:        e.cfg.ReportSize,
			PreviewSize:       previewSize,
		},
	})
	return runner.Run(ctx, symptoms)
}

func (e *engine) Rank(symptoms string) *types.Report {
	res := resolver.ResolveText(symptoms, e.onto)
	r := &types.Report{
		SessionID: uuid.NewString(),
		Warnings:  res.Warnings,
		Resolved:  res.Named(),
	}
	if res.Empty() {
		r.Outcome = types.OutcomeInsufficientInput
		return r
	}

	confirmed := unique(res.Terms)
	r.Confirmed = e.named(confirmed)

	ranked := scorer.Score(res.Terms, e.ann)
	if len(ranked) == 0 {
		r.Outcome = types.OutcomeNoMatch
		return r
	}

	r.Outcome = types.OutcomeDiagnosed
	r.Initial = scorer.Top(ranked, previewSize)
	r.Total = len(ranked)
	for i, c := range scorer.Top(ranked, e.cfg.ReportSize) {
		r.Diagnoses = append(r.Diagnoses, types.Diagnosis{
			Rank:       i + 1,
			Candidate:  c,
			Confidence: scorer.Confidence(c.Matches, len(confirmed)),
		})
	}
	r.Matched = e.named(scorer.Matched(ranked[0].Disease, confirmed, e.ann))
	return r
}

func (e *engine) Resolve(symptoms string) Resolution {
	res := resolver.ResolveText(symptoms, e.onto)
	return Resolution{Resolved: res.Named(), Warnings: res.Warnings}
}

func (e *engine) named(terms []types.TermCode) []types.NamedTerm {
	out := make([]types.NamedTerm, 0, len(terms))
	for _, t := range terms {
		out = append(out, types.NamedTerm{Code: t, Name: e.onto.NameOf(t)})
	}
	return out
}

func unique(terms []types.TermCode) []types.TermCode {
	seen := make(map[types.TermCode]bool, len(terms))
	var out []types.TermCode
	for _, t := range terms {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}

// validateConfig checks that required fields are present and limits are sane.
func validateConfig(cfg Config) error {
	if cfg.OntologyPath == "" {
		return fmt.Errorf("OntologyPath is required")
	}
	if cfg.AnnotationPath == "" {
		return fmt.Errorf("AnnotationPath is required")
	}
	for _, path := range []string{cfg.OntologyPath, cfg.AnnotationPath} {
		if info, err := os.Stat(path); err != nil || info.IsDir() {
			return fmt.Errorf("%q does not exist or is a directory", path)
		}
	}
	if cfg.MaxRounds < 0 || cfg.QuestionsPerRound < 0 || cfg.StopAt < 0 ||
		cfg.QuestionPool < 0 || cfg.FallbackSize < 0 || cfg.ReportSize < 0 {
		return fmt.Errorf("limits must not be negative")
	}
	if cfg.RetainRatio < 0 || cfg.RetainRatio > 1 {
		return fmt.Errorf("RetainRatio %v is outside [0, 1]", cfg.RetainRatio)
	}
	return nil
}

// applyDefaults fills in zero-value fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.MaxRounds == 0 {
		cfg.MaxRounds = defaultMaxRounds
	}
	if cfg.QuestionsPerRound == 0 {
		cfg.QuestionsPerRound = defaultQuestionsPerRound
	}
	if cfg.StopAt == 0 {
		cfg.StopAt = defaultStopAt
	}
	if cfg.RetainRatio == 0 {
		cfg.RetainRatio = defaultRetainRatio
	}
	if cfg.QuestionPool == 0 {
		cfg.QuestionPool = defaultQuestionPool
	}
	if cfg.FallbackSize == 0 {
		cfg.FallbackSize = defaultFallbackSize
	}
	if cfg.ReportSize == 0 {
		cfg.ReportSize = defaultReportSize
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
}
