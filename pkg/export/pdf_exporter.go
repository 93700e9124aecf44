package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

const utf8Family = "dashboard"

// PDFExporter renders datasets into a basic tabular PDF.
type PDFExporter struct {
	fontPath string
}

// NewPDFExporter constructs a PDF exporter. fontPath points to a UTF-8 TrueType font
// (needed for Hangul); empty falls back to the Arial core font.
func NewPDFExporter(fontPath string) *PDFExporter {
	return &PDFExporter{fontPath: fontPath}
}

// Render creates an A4 document with an optional title and a bordered table.
func (e *PDFExporter) Render(data Dataset, title string) ([]byte, error) {
	if len(data.Headers) == 0 {
		return nil, fmt.Errorf("pdf requires at least one header")
	}
	pdf := gofpdf.New("P", "mm", "A4", "")
	family := "Arial"
	if e.fontPath != "" {
		pdf.AddUTF8Font(utf8Family, "", e.fontPath)
		pdf.AddUTF8Font(utf8Family, "B", e.fontPath)
		if err := pdf.Error(); err != nil {
			return nil, fmt.Errorf("load pdf font %s: %w", e.fontPath, err)
		}
		family = utf8Family
	}
	pdf.SetMargins(10, 15, 10)
	pdf.AddPage()

	if title != "" {
		pdf.SetFont(family, "B", 14)
		pdf.CellFormat(0, 10, title, "", 1, "C", false, 0, "")
		pdf.Ln(5)
	}

	pdf.SetFont(family, "B", 10)
	colWidth := 190.0 / float64(len(data.Headers))
	for _, header := range data.Headers {
		pdf.CellFormat(colWidth, 8, header, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont(family, "", 9)
	for _, row := range data.Rows {
		for _, header := range data.Headers {
			pdf.CellFormat(colWidth, 7, row[header], "1", 0, "", false, 0, "")
		}
		pdf.Ln(-1)
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
