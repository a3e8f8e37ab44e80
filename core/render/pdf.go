// Package render: PDF renderer.
// Lays out each normalized field as a titled block using gofpdf. Field HTML
// is first turned into Markdown so headings and lists keep their shape.
package render

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/mixnorm/core"
	"github.com/jung-kurt/gofpdf"
)

var (
	boldRegex   = regexp.MustCompile(`\*\*([^*]+)\*\*|__([^_]+)__`)
	italicRegex = regexp.MustCompile(`(?:^|\s)[*_]([^*_]+)[*_](?:\s|$)`)
	codeRegex   = regexp.MustCompile("`([^`]+)`")
	mdLinkRegex = regexp.MustCompile(`\[([^\]]*)\]\([^)]+\)`)
	escapeRegex = regexp.MustCompile(`\\([\\*_\-+.#\[\]()!>` + "`" + `])`)
)

// PDFRenderer renders normalized fields as a PDF document.
type PDFRenderer struct {
	// Title is printed on the first page when set.
	Title string
}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render converts every field into a section of the PDF, in key order.
func (r *PDFRenderer) Render(outputs map[string]core.NormalizedContent) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	if r.Title != "" {
		pdf.SetFont("Helvetica", "B", 18)
		pdf.MultiCell(0, 8, tr(r.Title), "", "L", false)
		pdf.Ln(4)
	}

	for _, key := range sortedKeys(outputs) {
		field := outputs[key]

		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetTextColor(100, 100, 100)
		pdf.MultiCell(0, 5, tr(fmt.Sprintf("%s · %d words", key, field.WordCount)), "", "L", false)
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)

		md, err := toMarkdown(field.HTML)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", key, err)
		}
		writeMarkdown(pdf, tr, md)
		pdf.Ln(6)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

// writeMarkdown lays out Markdown line by line: headings, bullets and
// paragraphs. Ordered items keep their number and print as paragraphs.
func writeMarkdown(pdf *gofpdf.Fpdf, tr func(string) string, md string) {
	for _, line := range strings.Split(md, "\n") {
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
			pdf.Ln(3)
		case strings.HasPrefix(trimmed, "#"):
			level := len(trimmed) - len(strings.TrimLeft(trimmed, "#"))
			writeHeading(pdf, tr(cleanInline(strings.TrimLeft(trimmed, "# "))), level)
		case strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* "):
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, tr("• "+cleanInline(trimmed[2:])), "", "L", false)
		default:
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, tr(cleanInline(trimmed)), "", "L", false)
		}
	}
}

// writeHeading sets the font size based on heading level and writes text.
func writeHeading(pdf *gofpdf.Fpdf, text string, level int) {
	sizes := map[int]float64{1: 18, 2: 15, 3: 13, 4: 12, 5: 11, 6: 10}
	size, ok := sizes[level]
	if !ok {
		size = 10
	}
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", size)
	pdf.MultiCell(0, size*0.6, text, "", "L", false)
	pdf.Ln(2)
}

// cleanInline strips inline Markdown formatting and escapes.
func cleanInline(text string) string {
	text = mdLinkRegex.ReplaceAllString(text, "$1")
	text = boldRegex.ReplaceAllString(text, "$1$2")
	text = italicRegex.ReplaceAllString(text, " $1 ")
	text = codeRegex.ReplaceAllString(text, "$1")
	text = escapeRegex.ReplaceAllString(text, "$1")
	return strings.TrimSpace(text)
}
