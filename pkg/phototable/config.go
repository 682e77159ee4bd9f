package phototable

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Config holds user options for assembling a phototable.
type Config struct {
	PhototableName string       // Output file name of the phototable document
	IndexName      string       // Output file name of the index document
	PDF            bool         // Also render the phototable as PDF
	PDFName        string       // Output file name of the PDF rendition
	Labels         Labels       // Fixed texts written into the documents
	Font           FontConfig   // Default document font
	MaxWidth       float64      // Bounding box width in inches
	MaxHeight      float64      // Bounding box height in inches
	MaxPixels      int          // Downsample images whose longest side exceeds this (0 = never)
	JPEGQuality    int          // Quality of re-encoded JPEGs
	Logger         *slog.Logger // Logger for progress and skips (nil = slog.Default())
}

// Labels are the fixed texts written into the documents.
type Labels struct {
	Title      string // Centered title at the top of the phototable
	IndexTitle string // Paragraph above the index table
	FileColumn string // Index header for the file name column
	PageColumn string // Index header for the page number column
}

// FontConfig contains the default document font.
type FontConfig struct {
	Name string  // Font family (e.g., "Arial")
	Size float64 // Size in points
}

// DefaultFont matches the font the phototable template has always used.
var DefaultFont = FontConfig{
	Name: "Arial",
	Size: 14,
}

// DefaultLabels are the Russian texts used in the documents.
var DefaultLabels = Labels{
	Title:      "Фототаблица",
	IndexTitle: "Оглавление изображений",
	FileColumn: "Имя файла",
	PageColumn: "Страница фототаблицы",
}

// DefaultConfig returns a config with sensible defaults.
// The bounding box leaves room for the title and caption on an A4 page.
func DefaultConfig() Config {
	return Config{
		PhototableName: "Фототаблица.docx",
		IndexName:      "Оглавление.docx",
		PDF:            false,
		PDFName:        "Фототаблица.pdf",
		Labels:         DefaultLabels,
		Font:           DefaultFont,
		MaxWidth:       6.0,
		MaxHeight:      8.5,
		MaxPixels:      0,
		JPEGQuality:    90,
		Logger:         nil,
	}
}

// Validate checks that the config can produce documents.
func (c Config) Validate() error {
	var errs []error
	if c.MaxWidth <= 0 || c.MaxHeight <= 0 {
		errs = append(errs, fmt.Errorf("bounding box must be positive, got %gx%g", c.MaxWidth, c.MaxHeight))
	}
	if c.MaxPixels < 0 {
		errs = append(errs, fmt.Errorf("max pixels must not be negative, got %d", c.MaxPixels))
	}
	if c.JPEGQuality < 0 || c.JPEGQuality > 100 {
		errs = append(errs, fmt.Errorf("jpeg quality must be within 0..100, got %d", c.JPEGQuality))
	}
	if c.Font.Size <= 0 {
		errs = append(errs, fmt.Errorf("font size must be positive, got %g", c.Font.Size))
	}
	type fileName struct{ kind, name string }
	names := []fileName{
		{"phototable", c.PhototableName},
		{"index", c.IndexName},
	}
	if c.PDF {
		names = append(names, fileName{"pdf", c.PDFName})
	}
	seen := make(map[string]string, len(names))
	for _, n := range names {
		switch {
		case strings.TrimSpace(n.name) == "":
			errs = append(errs, fmt.Errorf("%s file name is empty", n.kind))
		case strings.ContainsAny(n.name, `/\`):
			errs = append(errs, fmt.Errorf("%s file name %q must not contain a path separator", n.kind, n.name))
		case seen[n.name] != "":
			errs = append(errs, fmt.Errorf("%s and %s file names are both %q", seen[n.name], n.kind, n.name))
		default:
			seen[n.name] = n.kind
		}
	}
	return errors.Join(errs...)
}

// logger returns the configured logger, defaulting to slog.Default().
func (c Config) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}
