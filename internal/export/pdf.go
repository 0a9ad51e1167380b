// Package export renders the aggregated shopping list into downloadable
// documents.
package export

import (
	"bytes"
	"fmt"
	"time"

	"foodgram/internal/models"

	"github.com/go-pdf/fpdf"
)

// ShoppingListPDF renders the aggregated items as an A4 PDF. An empty list
// still produces a valid document with a placeholder line.
func ShoppingListPDF(items []models.ShoppingListItem) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Shopping list", true)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Shopping list", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(0, 6, time.Now().Format("2006-01-02"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 12)
	if len(items) == 0 {
		pdf.CellFormat(0, 8, "The shopping cart is empty.", "", 1, "L", false, 0, "")
	}
	for i, item := range items {
		line := fmt.Sprintf("%d. %s (%s): %d", i+1, item.Name, item.MeasurementUnit, item.Total)
		pdf.CellFormat(0, 8, line, "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
