package defense

import (
	"bytes"

	"github.com/phpdave11/gofpdf"
)

// Render builds the defense document as PDF bytes. Content is appended
// strictly top to bottom in plan order; page breaks are handled by gofpdf's
// auto page break and are invisible to callers.
func Render(data RenderData) ([]byte, error) {
	plan, err := buildPlan(data)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Legal Defense Document", false)
	// Pin the embedded creation date to the caller-supplied timestamp so the
	// same inputs always produce the same bytes.
	pdf.SetCreationDate(data.GeneratedAt)
	pdf.SetMargins(14, 14, 14)
	pdf.SetAutoPageBreak(true, 16)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, sec := range plan {
		paintSection(pdf, tr, sec)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func paintSection(pdf *gofpdf.Fpdf, tr func(string) string, sec section) {
	if sec.title != "" {
		pdf.SetTextColor(20, 20, 20)
		pdf.SetFont("Helvetica", "B", 14)
		pdf.CellFormat(0, 8, tr(sec.title), "", 1, "L", false, 0, "")

		left, _, right, _ := pdf.GetMargins()
		pageW, _ := pdf.GetPageSize()
		pdf.SetDrawColor(120, 120, 120)
		pdf.Line(left, pdf.GetY(), pageW-right, pdf.GetY())
		pdf.Ln(3)
	}

	for _, b := range sec.blocks {
		paintBlock(pdf, tr, b)
	}
	pdf.Ln(5)
}

func paintBlock(pdf *gofpdf.Fpdf, tr func(string) string, b block) {
	switch b.kind {
	case blockTitle:
		pdf.SetTextColor(20, 20, 20)
		pdf.SetFont("Helvetica", "B", 20)
		pdf.CellFormat(0, 12, tr(b.text), "", 1, "C", false, 0, "")
		pdf.Ln(2)

	case blockCentered:
		pdf.SetTextColor(20, 20, 20)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, tr(b.text), "", "C", false)

	case blockCenteredBold:
		pdf.SetTextColor(20, 20, 20)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.MultiCell(0, 6, tr(b.text), "", "C", false)

	case blockDisclaimer:
		pdf.SetTextColor(80, 80, 80)
		pdf.SetFont("Helvetica", "I", 9)
		pdf.Ln(2)
		pdf.MultiCell(0, 5, tr(b.text), "", "C", false)

	case blockField:
		pdf.SetTextColor(30, 30, 30)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(pdf.GetStringWidth(tr(b.label))+1, 5, tr(b.label), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, " "+tr(b.text), "", "L", false)
		pdf.Ln(1)

	case blockSubheading:
		pdf.SetTextColor(20, 20, 20)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Ln(1)
		pdf.CellFormat(0, 7, tr(b.text), "", 1, "L", false, 0, "")
		pdf.Ln(1)

	case blockArgTitle:
		pdf.SetTextColor(30, 30, 30)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.MultiCell(0, 6, tr(b.text), "", "L", false)

	case blockParagraph:
		pdf.SetTextColor(30, 30, 30)
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, tr(b.text), "", "L", false)
		pdf.Ln(1)

	case blockItalicLabel:
		pdf.SetTextColor(30, 30, 30)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.CellFormat(0, 5, tr(b.text), "", 1, "L", false, 0, "")

	case blockBoldLabel:
		pdf.SetTextColor(30, 30, 30)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(0, 5, tr(b.text), "", 1, "L", false, 0, "")

	case blockBullets:
		pdf.SetTextColor(30, 30, 30)
		pdf.SetFont("Helvetica", "", 10)
		for _, item := range b.items {
			pdf.CellFormat(5, 5, tr("•"), "", 0, "L", false, 0, "")
			pdf.MultiCell(0, 5, tr(item), "", "L", false)
		}
		pdf.Ln(1)
	}
}
