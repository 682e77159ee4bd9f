package phototable

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/fumiama/go-docx"
)

// A4 page geometry shared by both documents, in twips.
const (
	pageWidth    = 11906
	pageHeight   = 16838
	marginTop    = 1134
	marginBottom = 1134
	marginLeft   = 1701
	marginRight  = 850
	textWidth    = pageWidth - marginLeft - marginRight
)

const emuPerInch = 914400

// errNoDrawing is returned when the picture run lacks its inline drawing.
var errNoDrawing = errors.New("picture run has no inline drawing")

// newDocument returns an empty document on the library's default template.
func newDocument() *docx.Docx {
	return docx.New().WithDefaultTheme()
}

// addText appends a paragraph holding text in the configured font.
// An empty text yields an empty paragraph.
func addText(doc *docx.Docx, text, align string, font FontConfig) *docx.Paragraph {
	p := doc.AddParagraph()
	if align != "" {
		p.Justification(align)
	}
	if text != "" {
		styleRun(p.AddText(text), font)
	}
	return p
}

// styleRun applies font to r.
func styleRun(r *docx.Run, font FontConfig) {
	halfPoints := strconv.Itoa(int(math.Round(font.Size * 2)))
	r.Font(font.Name, font.Name, font.Name, "").Size(halfPoints).SizeCs(halfPoints)
}

// inchesToEMU converts a display length to English Metric Units.
func inchesToEMU(in float64) int64 {
	return int64(math.Round(in * emuPerInch))
}

// addImagePage appends one phototable page: a page break unless it is the
// first page, the centered picture, and the caption below it. The body is
// restored when the picture cannot be embedded.
func addImagePage(doc *docx.Docx, data []byte, page Page, font FontConfig) error {
	cx, cy := inchesToEMU(page.Entry.Width), inchesToEMU(page.Entry.Height)
	if cx <= 0 || cy <= 0 {
		return fmt.Errorf("display size %gx%g in is too small to embed", page.Entry.Width, page.Entry.Height)
	}

	body := &doc.Document.Body
	mark := len(body.Items)

	if page.Number > 1 {
		doc.AddParagraph().AddPageBreaks()
	}
	run, err := doc.AddParagraph().Justification("center").AddInlineDrawing(data)
	if err != nil {
		body.Items = body.Items[:mark]
		return fmt.Errorf("failed to embed picture: %w", err)
	}
	drawing, ok := run.Children[0].(*docx.Drawing)
	if !ok || drawing.Inline == nil {
		body.Items = body.Items[:mark]
		return errNoDrawing
	}
	drawing.Inline.Size(cx, cy)
	if drawing.Inline.DocPr != nil {
		drawing.Inline.DocPr.Name = page.Entry.Name
	}

	addText(doc, page.Caption, "center", font)
	return nil
}

// buildIndex renders the index document: the title paragraph and a two
// column table with a header row and one row per placed image.
func buildIndex(cfg Config, rows []IndexRow) *docx.Docx {
	doc := newDocument()
	if cfg.Labels.IndexTitle != "" {
		addText(doc, cfg.Labels.IndexTitle, "start", cfg.Font)
	}

	heights := make([]int64, len(rows)+1)
	fileWidth := int64(textWidth * 3 / 5)
	table := doc.AddTableTwips(heights, []int64{fileWidth, textWidth - fileWidth}, 0, nil)

	cells := func(i int, values ...string) {
		for j, value := range values {
			styleRun(table.TableRows[i].TableCells[j].AddParagraph().AddText(value), cfg.Font)
		}
	}
	cells(0, cfg.Labels.FileColumn, cfg.Labels.PageColumn)
	for i, row := range rows {
		cells(i+1, row.FileName, strconv.Itoa(row.Page))
	}
	return doc
}

// render appends the A4 section properties and serializes doc.
func render(doc *docx.Docx) ([]byte, error) {
	doc.Document.Body.Items = append(doc.Document.Body.Items, &docx.SectPr{
		PgSz: &docx.PgSz{W: pageWidth, H: pageHeight},
		PgMar: &docx.PgMar{
			Top:    marginTop,
			Left:   marginLeft,
			Bottom: marginBottom,
			Right:  marginRight,
			Header: 708,
			Footer: 708,
		},
	})

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
