// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package session runs one interactive diagnosis: it resolves the patient's
// symptoms, scores candidate diseases, and narrows them with rounds of
// follow-up questions until the list is small, nothing is left to ask, or the
// round cap is reached.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/petar-djukic/phenodx/internal/annotation"
	"github.com/petar-djukic/phenodx/internal/ontology"
	"github.com/petar-djukic/phenodx/internal/resolver"
	"github.com/petar-djukic/phenodx/internal/scorer"
	"github.com/petar-djukic/phenodx/pkg/types"
)

// SymptomPrompt is the open question asked once at the start of a session.
const SymptomPrompt = "Enter your initial symptoms separated by commas"

const (
	defaultMaxRounds         = 5
	defaultQuestionsPerRound = 3
	defaultStopAt            = 3
	defaultRetainRatio       = 0.7
	defaultQuestionPool      = 50
	defaultFallbackSize      = 50
	defaultReportSize        = 5
	defaultPreviewSize       = 10
)

// Prompter obtains answers from the patient. Both calls block until the
// patient answers; there is no timeout.
type Prompter interface {
	AskOpen(ctx context.Context, text string) (string, error)
	AskYesNo(ctx context.Context, text string) (bool, error)
}

// Limits tunes the narrowing loop. Zero values take the defaults.
type Limits struct {
	MaxRounds         int     // Question rounds before giving up (default 5)
	QuestionsPerRound int     // Questions asked per round (default 3)
	StopAt            int     // Stop asking once this few candidates remain (default 3)
	RetainRatio       float64 // Fraction of confirmed terms a candidate must match (default 0.7)
	QuestionPool      int     // Top candidates that contribute question terms (default 50)
	FallbackSize      int     // Candidates kept when the retain filter empties the list (default 50)
	ReportSize        int     // Diagnoses in the final report (default 5)
	PreviewSize       int     // Candidates recorded per intermediate result (default 10)
}

func (l Limits) withDefaults() Limits {
	if l.MaxRounds <= 0 {
		l.MaxRounds = defaultMaxRounds
	}
	if l.QuestionsPerRound <= 0 {
		l.QuestionsPerRound = defaultQuestionsPerRound
	}
	if l.StopAt <= 0 {
		l.StopAt = defaultStopAt
	}
	if l.RetainRatio <= 0 {
		l.RetainRatio = defaultRetainRatio
	}
	if l.QuestionPool <= 0 {
		l.QuestionPool = defaultQuestionPool
	}
	if l.FallbackSize <= 0 {
		l.FallbackSize = defaultFallbackSize
	}
	if l.ReportSize <= 0 {
		l.ReportSize = defaultReportSize
	}
	if l.PreviewSize <= 0 {
		l.PreviewSize = defaultPreviewSize
	}
	return l
}

// Deps holds injected dependencies for the runner.
type Deps struct {
	Ontology    *ontology.Index
	Annotations *annotation.Index
	Prompter    Prompter
	Logger      *slog.Logger // nil uses slog.Default()
	Limits      Limits
	NewID       func() string // Session id source; nil uses uuid.NewString
}

// Runner runs diagnosis sessions against a fixed pair of indices. Each call
// to Run is an independent session.
type Runner struct {
	deps Deps
}

// NewRunner creates a Runner with the given dependencies.
func NewRunner(deps Deps) *Runner {
	deps.Limits = deps.Limits.withDefaults()
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.NewID == nil {
		deps.NewID = uuid.NewString
	}
	return &Runner{deps: deps}
}

// session is the mutable state of one run.
type session struct {
	state      State
	confirmed  []types.TermCode
	seen       map[types.TermCode]bool
	denied     []types.TermCode
	candidates []types.Candidate
	report     *types.Report
	log        *slog.Logger
}

func (s *session) transition(to State) {
	if !canTransition(s.state, to) {
		s.log.Warn("unexpected state transition",
			slog.String("from", s.state.String()),
			slog.String("to", to.String()),
		)
	}
	s.log.Debug("state", slog.String("from", s.state.String()), slog.String("to", to.String()))
	s.state = to
}

// confirm appends term unless it is already confirmed.
func (s *session) confirm(term types.TermCode) bool {
	if s.seen[term] {
		return false
	}
	s.seen[term] = true
	s.confirmed = append(s.confirmed, term)
	return true
}

// deny records a term the patient answered "no" to.
func (s *session) deny(term types.TermCode) {
	s.denied = append(s.denied, term)
}

// answered returns every term already settled, confirmed or denied.
func (s *session) answered() []types.TermCode {
	out := make([]types.TermCode, 0, len(s.confirmed)+len(s.denied))
	out = append(out, s.confirmed...)
	return append(out, s.denied...)
}

// Run executes one session. When symptoms is blank the patient is asked for
// them with the open prompt. Insufficient input and no matching disease are
// reported through Report.Outcome; errors are returned only for prompter
// failures and context cancellation, together with the partial report.
func (r *Runner) Run(ctx context.Context, symptoms string) (*types.Report, error) {
	id := r.deps.NewID()
	s := &session{
		state:  StateInit,
		seen:   make(map[types.TermCode]bool),
		report: &types.Report{SessionID: id},
		log:    r.deps.Logger.With(slog.String("session_id", id)),
	}

	if err := ctx.Err(); err != nil {
		return s.report, err
	}

	// Step 1: Collect and resolve symptoms.
	if strings.TrimSpace(symptoms) == "" {
		raw, err := r.deps.Prompter.AskOpen(ctx, SymptomPrompt)
		if err != nil {
			return s.report, fmt.Errorf("reading symptoms: %w", err)
		}
		symptoms = raw
	}

	res := resolver.ResolveText(symptoms, r.deps.Ontology)
	s.report.Warnings = res.Warnings
	s.report.Resolved = res.Named()
	for _, w := range res.Warnings {
		s.log.Info("unresolved symptom", slog.String("phrase", w.Phrase))
	}

	if res.Empty() {
		s.transition(StateAborted)
		s.report.Outcome = types.OutcomeInsufficientInput
		s.log.Info("no valid symptoms", slog.Int("warnings", len(res.Warnings)))
		return s.report, nil
	}
	s.transition(StateResolved)

	for _, t := range res.Terms {
		s.confirm(t)
	}

	// Step 2: Initial scoring.
	ranked := scorer.Score(res.Terms, r.deps.Annotations)
	s.report.Confirmed = r.named(s.confirmed)
	if len(ranked) == 0 {
		s.transition(StateNoMatch)
		s.report.Outcome = types.OutcomeNoMatch
		s.log.Info("no candidate diseases", slog.Int("terms", len(res.Terms)))
		return s.report, nil
	}
	s.candidates = ranked
	s.report.Initial = scorer.Top(ranked, r.deps.Limits.PreviewSize)
	s.report.Total = len(ranked)
	s.transition(StateScored)
	s.log.Info("initial candidates",
		slog.Int("terms", len(res.Terms)),
		slog.Int("candidates", len(ranked)),
	)

	// Step 3: Narrow with follow-up questions.
	stop, err := r.narrow(ctx, s)
	if err != nil {
		s.report.Confirmed = r.named(s.confirmed)
		return s.report, err
	}

	// Step 4: Final ranking.
	r.finish(s, stop)
	return s.report, nil
}

// finish fills in the final diagnoses and the matched symptoms of the top one.
func (r *Runner) finish(s *session, stop types.StopReason) {
	s.transition(StateFinal)
	s.report.Outcome = types.OutcomeDiagnosed
	s.report.StopReason = stop
	s.report.Confirmed = r.named(s.confirmed)

	n := len(s.confirmed)
	for i, c := range scorer.Top(s.candidates, r.deps.Limits.ReportSize) {
		s.report.Diagnoses = append(s.report.Diagnoses, types.Diagnosis{
			Rank:       i + 1,
			Candidate:  c,
			Confidence: scorer.Confidence(c.Matches, n),
		})
	}

	if len(s.report.Diagnoses) > 0 {
		top := s.report.Diagnoses[0].Candidate.Disease
		s.report.Matched = r.named(scorer.Matched(top, s.confirmed, r.deps.Annotations))
	}

	s.log.Info("diagnosis complete",
		slog.String("stop_reason", string(stop)),
		slog.Int("rounds", len(s.report.Rounds)),
		slog.Int("confirmed", n),
		slog.Int("candidates", len(s.candidates)),
	)
}

func (r *Runner) named(terms []types.TermCode) []types.NamedTerm {
	out := make([]types.NamedTerm, 0, len(terms))
	for _, t := range terms {
		out = append(out, types.NamedTerm{Code: t, Name: r.deps.Ontology.NameOf(t)})
	}
	return out
}
