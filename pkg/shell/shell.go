// Package shell runs a phototable assembly from a terminal: it asks for the
// folders, prints a progress counter and finishes with the summary.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gardar/phototable/pkg/phototable"
)

// ErrNoInput is returned when the input ends before a usable answer was read.
var ErrNoInput = errors.New("no input")

// Shell is a line-oriented prompt session.
type Shell struct {
	In            io.Reader
	Out           io.Writer
	Config        phototable.Config
	DefaultSource string // Offered when the source answer is blank
	DefaultOutput string // Offered when the output answer is blank
	Attempts      int    // Source prompts before giving up (0 = 3)

	lines *bufio.Scanner
}

// New returns a shell reading from in and writing to out.
func New(in io.Reader, out io.Writer, cfg phototable.Config) *Shell {
	return &Shell{
		In:            in,
		Out:           out,
		Config:        cfg,
		DefaultSource: "images",
		DefaultOutput: ".",
	}
}

// Run prompts for the folders and assembles the documents. The summary is
// printed before returning; a fatal error is printed and returned.
func (s *Shell) Run(ctx context.Context) (*phototable.Summary, error) {
	s.lines = bufio.NewScanner(s.In)

	source, err := s.askSource()
	if err != nil {
		fmt.Fprintf(s.Out, "Error: %v\n", err)
		return nil, err
	}
	output, err := s.ask("Output folder", s.DefaultOutput)
	if err != nil {
		fmt.Fprintf(s.Out, "Error: %v\n", err)
		return nil, err
	}
	if strings.TrimSpace(output) == "" {
		fmt.Fprintf(s.Out, "Error: %v\n", phototable.ErrNoOutput)
		return nil, phototable.ErrNoOutput
	}

	summary, err := phototable.Assemble(ctx, source, output, s.Config, NewProgress(s.Out))
	if err != nil {
		fmt.Fprintf(s.Out, "Error: %v\n", err)
		return nil, err
	}
	PrintSummary(s.Out, summary)
	return summary, nil
}

// askSource repeats the source prompt until an existing folder is named.
func (s *Shell) askSource() (string, error) {
	attempts := s.Attempts
	if attempts <= 0 {
		attempts = 3
	}

	var lastErr error
	for range attempts {
		source, err := s.ask("Source folder", s.DefaultSource)
		if err != nil {
			return "", err
		}
		if lastErr = phototable.CheckSource(source); lastErr == nil {
			return source, nil
		}
		fmt.Fprintf(s.Out, "%v\n", lastErr)
	}
	return "", lastErr
}

// ask prints a prompt with its default and reads one answer.
// A blank answer selects the default.
func (s *Shell) ask(label, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(s.Out, "%s [%s]: ", label, def)
	} else {
		fmt.Fprintf(s.Out, "%s: ", label)
	}

	if !s.lines.Scan() {
		fmt.Fprintln(s.Out)
		if err := s.lines.Err(); err != nil {
			return "", fmt.Errorf("failed to read %s: %w", strings.ToLower(label), err)
		}
		return "", fmt.Errorf("%w for %s", ErrNoInput, strings.ToLower(label))
	}

	answer := strings.TrimSpace(s.lines.Text())
	if answer == "" {
		return def, nil
	}
	return answer, nil
}
