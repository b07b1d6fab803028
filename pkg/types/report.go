// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

// WarningKind classifies a non-fatal problem collected during a session.
type WarningKind string

const (
	// WarnUnresolvedSymptom marks a phrase with no label or synonym match.
	WarnUnresolvedSymptom WarningKind = "unresolved_symptom"
)

// Warning is a collected, non-fatal problem.
type Warning struct {
	Kind    WarningKind `json:"kind" yaml:"kind"`
	Phrase  string      `json:"phrase" yaml:"phrase"`
	Message string      `json:"message" yaml:"message"`
}

// Outcome is the terminal result of a diagnosis session.
type Outcome string

const (
	OutcomeDiagnosed         Outcome = "diagnosed"          // Final state reached with candidates
	OutcomeInsufficientInput Outcome = "insufficient_input" // No phrase resolved to a term
	OutcomeNoMatch           Outcome = "no_match"           // Resolved terms matched no disease
)

// StopReason records why the narrowing loop ended.
type StopReason string

const (
	StopNone          StopReason = ""               // Loop never ran
	StopRoundCap      StopReason = "round_cap"      // Configured number of rounds used up
	StopFewCandidates StopReason = "few_candidates" // Candidate list small enough
	StopConverged     StopReason = "converged"      // No undetermined terms left to ask about
)

// Answer is a single follow-up question with the patient's reply.
type Answer struct {
	Question  Question `json:"question" yaml:"question"`
	Name      string   `json:"name" yaml:"name"`
	Confirmed bool     `json:"confirmed" yaml:"confirmed"`
}

// Round logs one question/answer round of the narrowing loop.
type Round struct {
	Number         int         `json:"number" yaml:"number"`
	Answers        []Answer    `json:"answers" yaml:"answers"`
	Rescoped       bool        `json:"rescoped" yaml:"rescoped"`
	Fallback       bool        `json:"fallback" yaml:"fallback"`
	Candidates     []Candidate `json:"candidates" yaml:"candidates"`
	Total          int         `json:"total" yaml:"total"`
	ConfirmedTotal int         `json:"confirmed_total" yaml:"confirmed_total"` // Confirmed terms after the round
}

// NewlyConfirmed returns the terms confirmed during the round.
func (r Round) NewlyConfirmed() []TermCode {
	var out []TermCode
	for _, a := range r.Answers {
		if a.Confirmed {
			out = append(out, a.Question.Term)
		}
	}
	return out
}

// Diagnosis is a ranked entry of the final report.
type Diagnosis struct {
	Rank       int       `json:"rank" yaml:"rank"`
	Candidate  Candidate `json:"candidate" yaml:"candidate"`
	Confidence float64   `json:"confidence" yaml:"confidence"` // Matches / |confirmed| * 100
}

// Report is the structured result of a diagnosis session. The presentation
// layer renders it; the engine never formats output itself.
type Report struct {
	SessionID  string      `json:"session_id" yaml:"session_id"`
	Outcome    Outcome     `json:"outcome" yaml:"outcome"`
	Warnings   []Warning   `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Resolved   []NamedTerm `json:"resolved" yaml:"resolved"`
	Initial    []Candidate `json:"initial,omitempty" yaml:"initial,omitempty"`
	Total      int         `json:"total" yaml:"total"` // Size of the initial candidate list
	Rounds     []Round     `json:"rounds,omitempty" yaml:"rounds,omitempty"`
	StopReason StopReason  `json:"stop_reason,omitempty" yaml:"stop_reason,omitempty"`
	Confirmed  []NamedTerm `json:"confirmed" yaml:"confirmed"`
	Diagnoses  []Diagnosis `json:"diagnoses,omitempty" yaml:"diagnoses,omitempty"`
	Matched    []NamedTerm `json:"matched,omitempty" yaml:"matched,omitempty"` // Matched symptoms of the top diagnosis
}
