package phototable

import (
	"bytes"
	"fmt"
	"strings"

	"codeberg.org/go-pdf/fpdf"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gardar/phototable/pkg/imaging"
)

// pdfFontFamily is a UTF-8 font covering the Cyrillic labels.
const pdfFontFamily = "GoRegular"

// Page margins in inches, the same as the docx section.
const (
	pdfMarginLeft  = 1701.0 / 1440
	pdfMarginTop   = 1134.0 / 1440
	pdfMarginRight = 850.0 / 1440
)

// pdfRendition builds a PDF copy of the phototable page by page.
type pdfRendition struct {
	pdf        *fpdf.Fpdf
	cfg        Config
	images     int
	lineHeight float64
}

func newPDFRendition(cfg Config) (*pdfRendition, error) {
	pdf := fpdf.New("P", "in", "A4", "")
	pdf.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginRight)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(cfg.Labels.Title, true)
	pdf.SetCreator("phototable", true)
	pdf.AddUTF8FontFromBytes(pdfFontFamily, "", goregular.TTF)
	pdf.SetFont(pdfFontFamily, "", cfg.Font.Size)
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("failed to set up PDF: %w", err)
	}

	return &pdfRendition{
		pdf:        pdf,
		cfg:        cfg,
		lineHeight: cfg.Font.Size / 72 * 1.4,
	}, nil
}

// register loads image bytes into the PDF and returns the image name.
// fpdf rejects some files the decoders accept (interlaced PNGs, for one);
// those are retried as a JPEG encoding of the decoded pixels.
func (r *pdfRendition) register(img *imaging.Normalized, data []byte) (string, error) {
	name := fmt.Sprintf("img%d", r.images+1)
	opts := fpdf.ImageOptions{ReadDpi: false, ImageType: strings.ToUpper(img.Format)}

	r.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	if err := r.pdf.Error(); err != nil {
		r.pdf.ClearError()

		var buf bytes.Buffer
		if encErr := imaging.EncodeJPEG(&buf, img.Pixels, r.cfg.JPEGQuality); encErr != nil {
			return "", fmt.Errorf("pdf rejected image (%v) and re-encoding failed: %w", err, encErr)
		}
		opts.ImageType = "JPEG"
		r.pdf.RegisterImageOptionsReader(name, opts, &buf)
		if err := r.pdf.Error(); err != nil {
			r.pdf.ClearError()
			return "", fmt.Errorf("pdf rejected image: %w", err)
		}
	}

	r.images++
	return name, nil
}

// addPage places a registered image centered on a new page with its caption
// below. The first page also carries the title.
func (r *pdfRendition) addPage(name string, page Page) {
	r.pdf.AddPage()
	if page.Number == 1 && r.cfg.Labels.Title != "" {
		r.pdf.CellFormat(0, r.lineHeight, r.cfg.Labels.Title, "", 1, "C", false, 0, "")
	}

	pageWidth, _ := r.pdf.GetPageSize()
	left, _, right, _ := r.pdf.GetMargins()
	x := left + (pageWidth-left-right-page.Entry.Width)/2
	y := r.pdf.GetY()

	r.pdf.ImageOptions(name, x, y, page.Entry.Width, page.Entry.Height, false, fpdf.ImageOptions{}, 0, "")
	r.pdf.SetY(y + page.Entry.Height)
	r.pdf.CellFormat(0, r.lineHeight, page.Caption, "", 1, "C", false, 0, "")
}

// bytes finishes the document.
func (r *pdfRendition) bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := r.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return buf.Bytes(), nil
}
