// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package prompt asks the patient questions on a terminal or over plain
// line-oriented streams.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
)

// Prompter asks open and yes/no questions.
type Prompter interface {
	AskOpen(ctx context.Context, text string) (string, error)
	AskYesNo(ctx context.Context, text string) (bool, error)
}

// New returns a Form prompter when in is a terminal and a Line prompter
// otherwise.
func New(in *os.File, out io.Writer) Prompter {
	fd := in.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return &Form{In: in, Out: out}
	}
	return NewLine(in, out)
}

// Line reads one answer per line. Any answer starting with "y" or "Y" is yes;
// everything else, including an empty line, is no.
type Line struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLine creates a Line prompter.
func NewLine(in io.Reader, out io.Writer) *Line {
	return &Line{in: bufio.NewReader(in), out: out}
}

// AskOpen prints text and returns the next line with surrounding spaces
// removed.
func (l *Line) AskOpen(ctx context.Context, text string) (string, error) {
	fmt.Fprintf(l.out, "%s: ", text)
	return l.read(ctx)
}

// AskYesNo prints text with a (y/n) hint and reports whether the answer is yes.
func (l *Line) AskYesNo(ctx context.Context, text string) (bool, error) {
	fmt.Fprintf(l.out, "%s (y/n): ", text)
	answer, err := l.read(ctx)
	if err != nil {
		return false, err
	}
	return strings.HasPrefix(strings.ToLower(answer), "y"), nil
}

func (l *Line) read(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	line, err := l.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// Form asks questions with interactive terminal fields.
type Form struct {
	In  io.Reader
	Out io.Writer
}

// AskOpen shows a single-line input field.
func (f *Form) AskOpen(ctx context.Context, text string) (string, error) {
	var value string
	field := huh.NewInput().
		Title(text).
		Placeholder("seizure, ataxia, headache").
		Value(&value)
	if err := f.run(ctx, field); err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

// AskYesNo shows a yes/no confirmation.
func (f *Form) AskYesNo(ctx context.Context, text string) (bool, error) {
	var yes bool
	field := huh.NewConfirm().
		Title(text).
		Affirmative("Yes").
		Negative("No").
		Value(&yes)
	if err := f.run(ctx, field); err != nil {
		return false, err
	}
	return yes, nil
}

func (f *Form) run(ctx context.Context, field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field))
	if f.In != nil {
		form = form.WithInput(f.In)
	}
	if f.Out != nil {
		form = form.WithOutput(f.Out)
	}
	if err := form.RunWithContext(ctx); err != nil {
		return fmt.Errorf("running prompt: %w", err)
	}
	return nil
}
