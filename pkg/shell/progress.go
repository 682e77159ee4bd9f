package shell

import (
	"fmt"
	"io"

	"github.com/gardar/phototable/pkg/phototable"
)

// Progress prints a counter line for every processed candidate.
type Progress struct {
	out io.Writer
}

// NewProgress returns a progress printer writing to out.
func NewProgress(out io.Writer) *Progress {
	return &Progress{out: out}
}

// Started implements phototable.Observer.
func (p *Progress) Started(total int) {
	fmt.Fprintf(p.out, "Found %d image(s)\n", total)
	fmt.Fprintf(p.out, "[0/%d]\n", total)
}

// Processed implements phototable.Observer.
func (p *Progress) Processed(done, total int, result phototable.Result) {
	if result.Skipped() {
		fmt.Fprintf(p.out, "[%d/%d] %s skipped: %v\n", done, total, result.Entry.Name, result.Err)
		return
	}
	fmt.Fprintf(p.out, "[%d/%d] %s -> page %d\n", done, total, result.Entry.Name, result.Page)
}

// PrintSummary writes the outcome of a finished run.
func PrintSummary(out io.Writer, summary *phototable.Summary) {
	fmt.Fprintln(out, summary.String())
	if len(summary.Skipped) > 0 {
		fmt.Fprintf(out, "Skipped %d file(s):\n", len(summary.Skipped))
		for _, skip := range summary.Skipped {
			fmt.Fprintf(out, "  %s: %s\n", skip.Name, skip.Reason)
		}
	}
	fmt.Fprintf(out, "Created %s and %s\n", summary.PhototablePath, summary.IndexPath)
	if summary.PDFPath != "" {
		fmt.Fprintf(out, "Created %s\n", summary.PDFPath)
	}
}
