// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package session

// State is a step of the diagnosis state machine.
type State int

const (
	StateInit        State = iota // Waiting for the initial symptoms
	StateResolved                 // Symptoms mapped to terms
	StateScored                   // Initial candidate list computed
	StateQuestioning              // Asking a round of follow-up questions
	StateNarrowed                 // Round finished, candidates possibly rescoped
	StateFinal                    // Final ranking produced
	StateAborted                  // No symptom resolved
	StateNoMatch                  // Resolved symptoms matched no disease
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateResolved:
		return "resolved"
	case StateScored:
		return "scored"
	case StateQuestioning:
		return "questioning"
	case StateNarrowed:
		return "narrowed"
	case StateFinal:
		return "final"
	case StateAborted:
		return "aborted"
	case StateNoMatch:
		return "no_match"
	default:
		return "unknown"
	}
}

// Terminal reports whether no transition leaves s.
func (s State) Terminal() bool {
	return s == StateFinal || s == StateAborted || s == StateNoMatch
}

var transitions = map[State][]State{
	StateInit:        {StateResolved, StateAborted},
	StateResolved:    {StateScored, StateNoMatch},
	StateScored:      {StateQuestioning, StateFinal},
	StateQuestioning: {StateNarrowed},
	StateNarrowed:    {StateQuestioning, StateFinal},
}

// canTransition reports whether the machine may move from one state to another.
func canTransition(from, to State) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
