package phototable

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrNoSource is returned when no source folder was given.
	ErrNoSource = errors.New("source folder not specified")
	// ErrNoOutput is returned when no output folder was given.
	ErrNoOutput = errors.New("output folder not specified")
	// ErrSourceMissing is returned when the source folder does not exist.
	ErrSourceMissing = errors.New("source folder does not exist")
	// ErrSourceNotDir is returned when the source path is not a folder.
	ErrSourceNotDir = errors.New("source path is not a folder")
	// ErrOutputUnavailable is returned when the output folder cannot be
	// created or written.
	ErrOutputUnavailable = errors.New("output folder is not writable")
)

// Entry is one candidate image file.
type Entry struct {
	Path        string  // Source file path
	Name        string  // File name as recorded in the index
	Valid       bool    // Image decoded successfully
	PixelWidth  int     // Source width in pixels
	PixelHeight int     // Source height in pixels
	Width       float64 // Display width in inches
	Height      float64 // Display height in inches
}

// Page is one image page of the phototable.
type Page struct {
	Number  int    // 1-based page number in processed order
	Caption string // Visible caption; empty on the first page
	Entry   Entry  // Image shown on the page
}

// IndexRow is one line of the index table.
type IndexRow struct {
	FileName string
	Page     int
}

// Skip records a candidate that was not placed in the phototable.
type Skip struct {
	Name   string // File name
	Reason string // Human-readable cause
}

// Result is the outcome of processing one candidate.
type Result struct {
	Entry Entry
	Page  int   // Page number assigned, 0 when skipped
	Err   error // Why the candidate was skipped, nil on success
}

// Skipped reports whether the candidate was left out.
func (r Result) Skipped() bool {
	return r.Err != nil
}

// Summary describes a finished run.
type Summary struct {
	Total          int        // Candidate files found
	Succeeded      int        // Images placed in the phototable
	Skipped        []Skip     // Candidates left out, in processing order
	Pages          []Page     // Phototable pages in order
	Index          []IndexRow // Index rows in order
	PhototablePath string     // Written phototable document
	IndexPath      string     // Written index document
	PDFPath        string     // Written PDF rendition ("" when disabled)
}

// String reports the processed count, e.g. "2/3 processed".
func (s *Summary) String() string {
	return fmt.Sprintf("%d/%d processed", s.Succeeded, s.Total)
}

// captionFor returns the visible caption of a page. The first page is the
// cover and carries no numeral; every other caption is its page number.
// The caption goes below the picture rather than above it, so the number
// labels the image on its own page.
func captionFor(number int) string {
	if number == 1 {
		return ""
	}
	return strconv.Itoa(number)
}
