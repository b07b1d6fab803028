// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package report renders a diagnosis report as styled text, JSON, or YAML.
package report

import (
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/petar-djukic/phenodx/internal/scorer"
	"github.com/petar-djukic/phenodx/pkg/types"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Format selects the output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat maps a flag value onto a Format. The empty string means text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (want text, json, or yaml)", s)
	}
}

// Render writes r to w in the given format.
func Render(w io.Writer, r *types.Report, format Format) error {
	if format == FormatText || format == "" {
		return renderText(w, r)
	}
	return Encode(w, r, format)
}

// Encode writes v to w as indented JSON or YAML.
func Encode(w io.Writer, v any, format Format) error {
	switch format {
	case FormatJSON:
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling %T: %w", v, err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding %T: %w", v, err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("format %q cannot encode values", format)
	}
}

func renderText(w io.Writer, r *types.Report) error {
	tmpl, err := template.New("report.tmpl").
		Funcs(funcs(lipgloss.NewRenderer(w))).
		ParseFS(templateFS, "templates/report.tmpl")
	if err != nil {
		return fmt.Errorf("parsing report template: %w", err)
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, r); err != nil {
		return fmt.Errorf("executing report template: %w", err)
	}
	buf.WriteString("\n")

	_, err = io.WriteString(w, buf.String())
	return err
}

// funcs returns the template helpers. Styles come from the renderer so color
// is dropped when w is not a terminal.
func funcs(re *lipgloss.Renderer) template.FuncMap {
	title := re.NewStyle().Bold(true).Underline(true)
	good := re.NewStyle().Foreground(lipgloss.Color("2"))
	bad := re.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	warn := re.NewStyle().Foreground(lipgloss.Color("3"))

	return template.FuncMap{
		"title": func(s string) string { return title.Render(s) },
		"good":  func(s string) string { return good.Render(s) },
		"bad":   func(s string) string { return bad.Render(s) },
		"warn":  func(s string) string { return warn.Render(s) },
		"add":   func(a, b int) int { return a + b },
		"more": func(total, shown int) int {
			if total > shown {
				return total - shown
			}
			return 0
		},
		"percent": func(matches, confirmed int) string {
			return fmt.Sprintf("%.1f%%", scorer.Confidence(matches, confirmed))
		},
		"confidence": func(c float64) string { return fmt.Sprintf("%.1f%%", c) },
		"answer": func(yes bool) string {
			if yes {
				return "yes"
			}
			return "no"
		},
		"terms":   terms,
		"stopped": stopped,
	}
}

func terms(named []types.NamedTerm) string {
	parts := make([]string, 0, len(named))
	for _, t := range named {
		parts = append(parts, fmt.Sprintf("%s (%s)", t.Code, t.Name))
	}
	return strings.Join(parts, ", ")
}

func stopped(reason types.StopReason) string {
	switch reason {
	case types.StopConverged:
		return "No more differentiating questions available."
	case types.StopRoundCap:
		return "Reached the question round limit."
	default:
		return ""
	}
}
