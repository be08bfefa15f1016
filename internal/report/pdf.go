// Package report holds the shared PDF building blocks used by the invoice
// and the monthly report exports.
package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
)

const farmName = "AgroFarm Dairy & Livestock"

// NewDocument returns an A4 portrait page with the standard header already
// drawn.
func NewDocument(title string) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 8, farmName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, title, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	return pdf
}

// Table draws a bordered table with a shaded header row. widths are in mm and
// must match the column count of header and every row.
func Table(pdf *fpdf.Fpdf, widths []float64, header []string, rows [][]string) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range header {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		for i, cell := range row {
			align := "L"
			if i > 0 {
				align = "R"
			}
			pdf.CellFormat(widths[i], 6, cell, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}
}

// KeyValue draws a "Label: value" line in the body font.
func KeyValue(pdf *fpdf.Fpdf, label, value string) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(40, 6, label, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, value, "", 1, "L", false, 0, "")
}

// Footer stamps the generation time at the bottom of the current page.
func Footer(pdf *fpdf.Fpdf, generatedAt time.Time) {
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(0, 5,
		fmt.Sprintf("Generated at %s", generatedAt.UTC().Format("2006-01-02 15:04 UTC")),
		"", 1, "R", false, 0, "")
}

// Bytes renders the document to a byte slice.
func Bytes(pdf *fpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func Money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
