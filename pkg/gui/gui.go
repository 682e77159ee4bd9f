// Package gui is the desktop front end of the phototable assembler.
//
// The window itself needs cgo and a display, so it is only compiled with the
// "fyne" build tag. Without the tag Run reports ErrUnavailable.
package gui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gardar/phototable/pkg/phototable"
)

// ErrUnavailable is returned by Run in builds without the desktop window.
var ErrUnavailable = errors.New("desktop window not available in this build (rebuild with -tags fyne)")

// Options configure the window.
type Options struct {
	Config phototable.Config
	Source string // Initial source folder
	Output string // Initial output folder
}

// job is one assembly started from the window.
type job struct {
	cfg      phototable.Config
	source   string
	output   string
	started  func(total int)
	progress func(done, total int)
}

// run assembles the documents, forwarding progress to the callbacks.
func (j job) run(ctx context.Context) (*phototable.Summary, error) {
	obs := phototable.ObserverFuncs{
		OnStarted: func(total int) {
			if j.started != nil {
				j.started(total)
			}
		},
		OnProcessed: func(done, total int, _ phototable.Result) {
			if j.progress != nil {
				j.progress(done, total)
			}
		},
	}
	return phototable.Assemble(ctx, strings.TrimSpace(j.source), strings.TrimSpace(j.output), j.cfg, obs)
}

// summaryText is the body of the completion dialog.
func summaryText(summary *phototable.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", summary)
	fmt.Fprintf(&b, "Created:\n%s\n%s", summary.PhototablePath, summary.IndexPath)
	if summary.PDFPath != "" {
		fmt.Fprintf(&b, "\n%s", summary.PDFPath)
	}
	if n := len(summary.Skipped); n > 0 {
		fmt.Fprintf(&b, "\n\nSkipped %d file(s):", n)
		for _, skip := range summary.Skipped {
			fmt.Fprintf(&b, "\n%s", skip.Name)
		}
	}
	return b.String()
}
