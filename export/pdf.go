package export

import (
	"bytes"
	"fmt"
	"html"
	"regexp"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"main/model"
)

var (
	markupTags = regexp.MustCompile(`<[^>]*>`)
	lineBreaks = regexp.MustCompile(`(?i)<br\s*/?>|</p>|</div>|</li>`)
)

// BuildPDF renders a note as an A4 PDF: title, date and category line, tag
// list and the content with its markup stripped. Byte-level fidelity with
// the browser export is not a goal; the layout mirrors it.
func BuildPDF(note model.Note) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.SetTextColor(44, 62, 80)
	pdf.MultiCell(0, 10, note.Title, "", "L", false)

	pdf.SetDrawColor(26, 115, 232)
	pdf.SetLineWidth(0.6)
	pdf.Line(20, pdf.GetY()+2, 190, pdf.GetY()+2)
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 11)
	pdf.SetTextColor(127, 140, 141)
	meta := fmt.Sprintf("Date: %s  |  Category: %s", note.Date, capitalizeFirst(note.Category))
	pdf.MultiCell(0, 6, meta, "", "L", false)

	if len(note.Tags) > 0 {
		pdf.MultiCell(0, 6, "Tags: "+strings.Join(note.Tags, ", "), "", "L", false)
	}
	pdf.Ln(6)

	pdf.SetFont("Arial", "", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.MultiCell(0, 6, StripMarkup(note.Content), "", "L", false)

	pdf.Ln(10)
	pdf.SetFont("Arial", "I", 9)
	pdf.SetTextColor(127, 140, 141)
	footer := "Generated from Recent Notes on " + time.Now().Format(model.DisplayDateFormat)
	pdf.MultiCell(0, 5, footer, "", "C", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// StripMarkup flattens stored rich-text markup to plain text, turning block
// closers and <br> into newlines.
func StripMarkup(content string) string {
	text := lineBreaks.ReplaceAllString(content, "\n")
	text = markupTags.ReplaceAllString(text, "")
	return strings.TrimSpace(html.UnescapeString(text))
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
