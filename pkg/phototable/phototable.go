// Package phototable assembles a folder of images into a phototable document
// and its companion index.
//
// A phototable holds one image per page, scaled to fit a fixed bounding box,
// with the page number as a caption below it. The first page is the cover and
// shows no numeral. The index document lists every placed file with the page
// it landed on.
//
// Images that fail to decode or embed are skipped and reported; they consume
// no page number and get no index row. Problems with the source or output
// folders, and failures writing the documents, abort the run.
//
// Main Functions:
//
// - Assemble: Runs a complete assembly from a source folder to an output folder
// - CheckSource: Validates a source folder before a run
// - DefaultConfig: Returns the default document settings
package phototable

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fumiama/go-docx"
	"golang.org/x/text/unicode/norm"

	"github.com/gardar/phototable/pkg/imaging"
)

// Assemble builds the phototable and index documents from the images in
// sourceDir and writes them to outputDir, creating it if needed.
// The observer may be nil.
func Assemble(ctx context.Context, sourceDir, outputDir string, cfg Config, obs Observer) (*Summary, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if err := CheckSource(sourceDir); err != nil {
		return nil, err
	}
	if err := prepareOutput(outputDir); err != nil {
		return nil, err
	}
	if obs == nil {
		obs = ObserverFuncs{}
	}

	candidates, err := imaging.ListCandidates(sourceDir)
	if err != nil {
		return nil, err
	}

	log := cfg.logger()
	log.Info("Assembling phototable", "source", sourceDir, "output", outputDir, "candidates", len(candidates))

	a, err := newAssembler(cfg)
	if err != nil {
		return nil, err
	}
	a.summary.Total = len(candidates)

	obs.Started(len(candidates))
	for i, name := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("assembly interrupted after %d of %d images: %w", i, len(candidates), err)
		}
		result := a.add(filepath.Join(sourceDir, name), name)
		obs.Processed(i+1, len(candidates), result)
	}

	if err := a.save(outputDir); err != nil {
		return nil, err
	}

	log.Info("Phototable created",
		"processed", a.summary.Succeeded,
		"total", a.summary.Total,
		"phototable", a.summary.PhototablePath,
		"index", a.summary.IndexPath)
	return a.summary, nil
}

// CheckSource verifies that dir names an existing folder.
func CheckSource(dir string) error {
	if strings.TrimSpace(dir) == "" {
		return ErrNoSource
	}
	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrSourceMissing, dir)
	}
	if err != nil {
		return fmt.Errorf("failed to access source folder %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrSourceNotDir, dir)
	}
	return nil
}

// prepareOutput creates dir if needed and checks that files can be created
// in it, so an unusable output folder fails the run before any image work.
func prepareOutput(dir string) error {
	if strings.TrimSpace(dir) == "" {
		return ErrNoOutput
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %w", ErrOutputUnavailable, err)
	}
	f, err := os.CreateTemp(dir, ".phototable-*")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOutputUnavailable, err)
	}
	f.Close()
	os.Remove(f.Name())
	return nil
}

// assembler owns the documents of a single run.
type assembler struct {
	cfg        Config
	log        *slog.Logger
	phototable *docx.Docx
	pdf        *pdfRendition
	summary    *Summary
}

func newAssembler(cfg Config) (*assembler, error) {
	phototable := newDocument()
	if cfg.Labels.Title != "" {
		addText(phototable, cfg.Labels.Title, "center", cfg.Font)
	}

	a := &assembler{
		cfg:        cfg,
		log:        cfg.logger(),
		phototable: phototable,
		summary:    &Summary{},
	}

	if cfg.PDF {
		pdf, err := newPDFRendition(cfg)
		if err != nil {
			return nil, err
		}
		a.pdf = pdf
	}
	return a, nil
}

// add processes one candidate file.
func (a *assembler) add(path, name string) Result {
	entry := Entry{Path: path, Name: norm.NFC.String(name)}

	img, err := imaging.Load(path)
	if err != nil {
		return a.skip(entry, fmt.Errorf("invalid image: %w", err))
	}
	entry.Valid = true
	entry.PixelWidth, entry.PixelHeight = img.Width, img.Height

	size, err := imaging.Fit(img.Width, img.Height, a.cfg.MaxWidth, a.cfg.MaxHeight)
	if err != nil {
		return a.skip(entry, err)
	}
	entry.Width, entry.Height = size.Width, size.Height

	number, err := a.insert(img, entry)
	if err != nil {
		return a.skip(entry, fmt.Errorf("failed to insert image: %w", err))
	}

	a.log.Info("Image added", "file", entry.Name, "page", number)
	return Result{Entry: entry, Page: number}
}

// insert places the image on the next page. A failed image leaves no trace
// in the phototable, and any temporary file made while normalizing is
// removed before returning.
func (a *assembler) insert(img *imaging.Image, entry Entry) (int, error) {
	normalized, err := imaging.Normalize(img, imaging.NormalizeOptions{
		MaxPixels:   a.cfg.MaxPixels,
		JPEGQuality: a.cfg.JPEGQuality,
	})
	if err != nil {
		return 0, err
	}
	defer func() {
		if err := normalized.Cleanup(); err != nil {
			a.log.Warn("Failed to remove temporary image", "file", entry.Name, "error", err)
		}
	}()

	data, err := normalized.Bytes()
	if err != nil {
		return 0, err
	}

	var pdfImage string
	if a.pdf != nil {
		if pdfImage, err = a.pdf.register(normalized, data); err != nil {
			return 0, err
		}
	}

	number := len(a.summary.Pages) + 1
	page := Page{Number: number, Caption: captionFor(number), Entry: entry}
	if err := addImagePage(a.phototable, data, page, a.cfg.Font); err != nil {
		return 0, err
	}
	if a.pdf != nil {
		a.pdf.addPage(pdfImage, page)
	}

	a.summary.Pages = append(a.summary.Pages, page)
	a.summary.Index = append(a.summary.Index, IndexRow{FileName: entry.Name, Page: number})
	a.summary.Succeeded++
	return number, nil
}

// skip records a candidate that will not appear in either document.
func (a *assembler) skip(entry Entry, err error) Result {
	a.log.Warn("Skipping image", "file", entry.Name, "error", err)
	a.summary.Skipped = append(a.summary.Skipped, Skip{Name: entry.Name, Reason: err.Error()})
	return Result{Entry: entry, Err: err}
}

// output is a rendered file waiting to be written.
type output struct {
	path string
	data []byte
}

// save renders every document before writing any of them.
func (a *assembler) save(outputDir string) error {
	phototable, err := render(a.phototable)
	if err != nil {
		return fmt.Errorf("failed to serialize phototable: %w", err)
	}
	index, err := render(buildIndex(a.cfg, a.summary.Index))
	if err != nil {
		return fmt.Errorf("failed to serialize index: %w", err)
	}

	outputs := []output{
		{filepath.Join(outputDir, a.cfg.PhototableName), phototable},
		{filepath.Join(outputDir, a.cfg.IndexName), index},
	}
	if a.pdf != nil {
		pdf, err := a.pdf.bytes()
		if err != nil {
			return err
		}
		outputs = append(outputs, output{filepath.Join(outputDir, a.cfg.PDFName), pdf})
	}

	for _, o := range outputs {
		if err := os.WriteFile(o.path, o.data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", o.path, err)
		}
	}

	a.summary.PhototablePath = outputs[0].path
	a.summary.IndexPath = outputs[1].path
	if a.pdf != nil {
		a.summary.PDFPath = outputs[2].path
	}
	return nil
}
