// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/petar-djukic/phenodx/internal/questions"
	"github.com/petar-djukic/phenodx/internal/scorer"
	"github.com/petar-djukic/phenodx/pkg/types"
)

// narrow runs question rounds until the candidate list is small enough,
// nothing is left to ask, or MaxRounds rounds have been asked. A round in
// which nothing is confirmed leaves the candidates unchanged but still counts.
// Terms answered "no" are not asked again.
func (r *Runner) narrow(ctx context.Context, s *session) (types.StopReason, error) {
	lim := r.deps.Limits
	gen := &questions.Generator{
		Pool:  lim.QuestionPool,
		Terms: r.deps.Annotations,
		Names: r.deps.Ontology,
	}

	for round := 1; round <= lim.MaxRounds; round++ {
		if err := ctx.Err(); err != nil {
			return types.StopNone, fmt.Errorf("context canceled after %d rounds: %w", round-1, err)
		}

		if len(s.candidates) <= lim.StopAt {
			return types.StopFewCandidates, nil
		}

		qs := gen.Generate(s.candidates, s.answered(), lim.QuestionsPerRound)
		if len(qs) == 0 {
			s.log.Debug("no differentiating questions left", slog.Int("round", round))
			return types.StopConverged, nil
		}
		s.transition(StateQuestioning)

		rd := types.Round{Number: round}
		for _, q := range qs {
			yes, err := r.deps.Prompter.AskYesNo(ctx, q.Text)
			if err != nil {
				return types.StopNone, fmt.Errorf("round %d: asking about %s: %w", round, q.Term, err)
			}
			if !yes {
				s.deny(q.Term)
			}
			rd.Answers = append(rd.Answers, types.Answer{
				Question:  q,
				Name:      r.deps.Ontology.NameOf(q.Term),
				Confirmed: yes && s.confirm(q.Term),
			})
		}

		if len(rd.NewlyConfirmed()) > 0 {
			r.rescope(s, &rd)
		}
		rd.Candidates = scorer.Top(s.candidates, lim.PreviewSize)
		rd.Total = len(s.candidates)
		rd.ConfirmedTotal = len(s.confirmed)
		s.report.Rounds = append(s.report.Rounds, rd)
		s.transition(StateNarrowed)

		s.log.Debug("round complete",
			slog.Int("round", round),
			slog.Int("confirmed", len(rd.NewlyConfirmed())),
			slog.Int("candidates", rd.Total),
			slog.Bool("fallback", rd.Fallback),
		)
	}

	return types.StopRoundCap, nil
}

// rescope rescores against every confirmed term and keeps the candidates
// matching at least RetainRatio of them. When none qualify the top
// FallbackSize of the unfiltered list are kept instead.
func (r *Runner) rescope(s *session, rd *types.Round) {
	lim := r.deps.Limits
	all := scorer.Score(s.confirmed, r.deps.Annotations)
	kept := scorer.Retain(all, len(s.confirmed), lim.RetainRatio)

	rd.Rescoped = true
	if len(kept) > 0 {
		s.candidates = kept
		return
	}

	rd.Fallback = true
	s.candidates = scorer.Top(all, lim.FallbackSize)
	s.log.Info("no candidate matches enough confirmed symptoms, keeping partial matches",
		slog.Int("round", rd.Number),
		slog.Int("partial", len(s.candidates)),
	)
}
