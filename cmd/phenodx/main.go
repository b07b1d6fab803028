// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Command phenodx ranks rare diseases from patient symptoms using the Human
// Phenotype Ontology and narrows the list with follow-up questions.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "phenodx",
		Short: "Phenotype-driven differential diagnosis",
		Long: "phenodx maps symptoms onto Human Phenotype Ontology terms, ranks diseases by " +
			"annotated phenotype overlap, and asks follow-up questions to narrow the list.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(viper.GetString("log-level"))
		},
	}

	// Global flags.
	flags := rootCmd.PersistentFlags()
	flags.String("ontology", "hp.json", "HPO ontology file (obographs JSON or YAML)")
	flags.String("annotations", "phenotype.hpoa", "HPO disease annotation file")
	flags.Int("max-rounds", 5, "Maximum follow-up question rounds")
	flags.Int("questions-per-round", 3, "Questions asked per round")
	flags.Int("stop-at", 3, "Stop asking once this many candidates remain")
	flags.Float64("retain-ratio", 0.7, "Fraction of confirmed symptoms a candidate must match")
	flags.Int("question-pool", 50, "Top candidates that contribute question terms")
	flags.Int("fallback-size", 50, "Partial matches kept when no candidate meets the ratio")
	flags.Int("report-size", 5, "Diagnoses in the final report")
	flags.String("format", "text", "Output format: text, json, or yaml")
	flags.String("log-level", "info", "Log level: debug, info, warn, or error")

	// Bind flags to viper.
	for _, name := range []string{
		"ontology", "annotations", "max-rounds", "questions-per-round", "stop-at",
		"retain-ratio", "question-pool", "fallback-size", "report-size", "format", "log-level",
	} {
		viper.BindPFlag(name, flags.Lookup(name))
	}

	// Env vars: PHENODX_ONTOLOGY, PHENODX_MAX_ROUNDS, etc.
	viper.SetEnvPrefix("PHENODX")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Config file.
	viper.SetConfigName(".phenodx")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.ReadInConfig() // Ignore error; config file is optional.

	rootCmd.AddCommand(newDiagnoseCmd())
	rootCmd.AddCommand(newRankCmd())
	rootCmd.AddCommand(newResolveCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// setupLogging installs a text handler on stderr as the default logger.
func setupLogging(level string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
	return nil
}

// newVersionCmd creates the "version" command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print phenodx version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "phenodx %s\n", version)
		},
	}
}
