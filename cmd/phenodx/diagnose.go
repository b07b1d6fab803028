// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/petar-djukic/phenodx/internal/prompt"
	"github.com/petar-djukic/phenodx/internal/report"
	"github.com/petar-djukic/phenodx/pkg/diagnosis"
)

// newDiagnoseCmd creates the "diagnose" command.
func newDiagnoseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diagnose [symptom, symptom...]",
		Short: "Run an interactive diagnosis session",
		Long: "Diagnose ranks diseases for the given symptoms and asks yes/no follow-up " +
			"questions to narrow the list. Without arguments the symptoms are read first.",
		RunE: runDiagnose,
	}
}

func runDiagnose(cmd *cobra.Command, args []string) error {
	format, err := report.ParseFormat(viper.GetString("format"))
	if err != nil {
		return err
	}
	engine, err := newEngine()
	if err != nil {
		return err
	}

	// Keep stdout clean for machine-readable output.
	var promptOut io.Writer = cmd.OutOrStdout()
	if format != report.FormatText {
		promptOut = cmd.ErrOrStderr()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	result, err := engine.Diagnose(ctx, prompt.New(os.Stdin, promptOut), symptomArgs(args))
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		if result != nil {
			report.Render(cmd.OutOrStdout(), result, format)
		}
		return err
	}

	return report.Render(cmd.OutOrStdout(), result, format)
}

// newRankCmd creates the "rank" command.
func newRankCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rank symptom[, symptom...]",
		Short: "Rank diseases for a symptom list without follow-up questions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := report.ParseFormat(viper.GetString("format"))
			if err != nil {
				return err
			}
			engine, err := newEngine()
			if err != nil {
				return err
			}
			return report.Render(cmd.OutOrStdout(), engine.Rank(symptomArgs(args)), format)
		},
	}
}

// newResolveCmd creates the "resolve" command.
func newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve symptom[, symptom...]",
		Short: "Show the ontology terms a symptom list maps to",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := report.ParseFormat(viper.GetString("format"))
			if err != nil {
				return err
			}
			engine, err := newEngine()
			if err != nil {
				return err
			}
			res := engine.Resolve(symptomArgs(args))
			if format != report.FormatText {
				return report.Encode(cmd.OutOrStdout(), res, format)
			}
			printResolution(cmd.OutOrStdout(), res)
			return nil
		},
	}
}

// newEngine builds an engine from the bound flags, env vars, and config file.
func newEngine() (diagnosis.Engine, error) {
	cfg := diagnosis.Config{
		OntologyPath:      viper.GetString("ontology"),
		AnnotationPath:    viper.GetString("annotations"),
		MaxRounds:         viper.GetInt("max-rounds"),
		QuestionsPerRound: viper.GetInt("questions-per-round"),
		StopAt:            viper.GetInt("stop-at"),
		RetainRatio:       viper.GetFloat64("retain-ratio"),
		QuestionPool:      viper.GetInt("question-pool"),
		FallbackSize:      viper.GetInt("fallback-size"),
		ReportSize:        viper.GetInt("report-size"),
	}

	engine, err := diagnosis.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("initialization failed: %w", err)
	}
	return engine, nil
}

// symptomArgs joins positional arguments into one comma-separated list, so
// both `rank seizure ataxia` and `rank "seizure, ataxia"` work.
func symptomArgs(args []string) string {
	return strings.Join(args, ",")
}

// printResolution writes one line per resolved term, then any warnings.
func printResolution(w io.Writer, res diagnosis.Resolution) {
	for _, t := range res.Resolved {
		fmt.Fprintf(w, "%s\t%s\n", t.Code, t.Name)
	}
	for _, warn := range res.Warnings {
		fmt.Fprintf(w, "Warning: %s\n", warn.Message)
	}
}
