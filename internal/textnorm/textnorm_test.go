// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "Seizure", "seizure"},
		{"trims", "  Seizure\t", "seizure"},
		{"collapses inner whitespace", "Short   stature", "short stature"},
		{"fullwidth letters", "ＳＥＩＺＵＲＥ", "seizure"},
		{"blank", "   ", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Key(tt.in))
		})
	}
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"Seizure", "short stature"}, SplitList(" Seizure, ,short stature ,"))
	assert.Empty(t, SplitList(""))
	assert.Empty(t, SplitList(" , ,"))
}
