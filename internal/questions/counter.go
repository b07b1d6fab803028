// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package questions

import (
	"sort"

	"github.com/petar-djukic/phenodx/pkg/types"
)

// counter is a frequency table that remembers first-insertion order so
// mostCommon breaks ties deterministically.
type counter struct {
	order  []types.TermCode
	counts map[types.TermCode]int
}

func newCounter() *counter {
	return &counter{counts: make(map[types.TermCode]int)}
}

func (c *counter) add(term types.TermCode) {
	if _, ok := c.counts[term]; !ok {
		c.order = append(c.order, term)
	}
	c.counts[term]++
}

func (c *counter) remove(term types.TermCode) {
	if _, ok := c.counts[term]; !ok {
		return
	}
	delete(c.counts, term)
	for i, t := range c.order {
		if t == term {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

func (c *counter) count(term types.TermCode) int {
	return c.counts[term]
}

// mostCommon returns up to n terms by descending count, ties in insertion order.
func (c *counter) mostCommon(n int) []types.TermCode {
	terms := make([]types.TermCode, len(c.order))
	copy(terms, c.order)
	sort.SliceStable(terms, func(i, j int) bool {
		return c.counts[terms[i]] > c.counts[terms[j]]
	})
	if n >= 0 && len(terms) > n {
		terms = terms[:n]
	}
	return terms
}
