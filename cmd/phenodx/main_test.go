// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testOntology = `{"graphs": [{"nodes": [
  {"id": "http://purl.obolibrary.org/obo/HP_0001250", "lbl": "Seizure"},
  {"id": "http://purl.obolibrary.org/obo/HP_0001251", "lbl": "Ataxia"}
]}]}`

const testAnnotations = "OMIM:100\tEpilepsy X\t\tHP:0001250\tPMID:1\n" +
	"OMIM:100\tEpilepsy X\t\tHP:0001251\tPMID:1\n" +
	"OMIM:200\tAtaxia Y\t\tHP:0001251\tPMID:2\n"

// execute runs the root command against fixture data files.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	onto := filepath.Join(dir, "hp.json")
	ann := filepath.Join(dir, "phenotype.hpoa")
	require.NoError(t, os.WriteFile(onto, []byte(testOntology), 0o644))
	require.NoError(t, os.WriteFile(ann, []byte(testAnnotations), 0o644))

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--ontology", onto, "--annotations", ann, "--log-level", "error"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "phenodx "+version+"\n", out)
}

func TestResolveCmd(t *testing.T) {
	out, err := execute(t, "resolve", "seizure", "sneezing")
	require.NoError(t, err)
	assert.Contains(t, out, "HP_0001250\tSeizure")
	assert.Contains(t, out, `Warning: symptom "sneezing" not found in the ontology`)
}

func TestRankCmd_JSON(t *testing.T) {
	out, err := execute(t, "--format", "json", "rank", "seizure, ataxia")
	require.NoError(t, err)

	var got struct {
		Outcome   string `json:"outcome"`
		Diagnoses []struct {
			Confidence float64 `json:"confidence"`
		} `json:"diagnoses"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "diagnosed", got.Outcome)
	require.Len(t, got.Diagnoses, 2)
	assert.InDelta(t, 100.0, got.Diagnoses[0].Confidence, 0.001)
}

func TestRankCmd_Text(t *testing.T) {
	out, err := execute(t, "rank", "ataxia")
	require.NoError(t, err)
	assert.Contains(t, out, "Found 2 potential diseases")
	assert.Contains(t, out, "OMIM:100: Epilepsy X")
}

func TestCommands_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad format", []string{"--format", "xml", "rank", "seizure"}},
		{"bad log level", []string{"--log-level", "loud", "version"}},
		{"missing data file", []string{"--ontology", "/nonexistent/hp.json", "rank", "seizure"}},
		{"rank needs symptoms", []string{"rank"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			assert.Error(t, err)
		})
	}
}
