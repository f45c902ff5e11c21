package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/helpdesk-inc/helpdesk/internal/domain/ticket"
	vo "github.com/helpdesk-inc/helpdesk/internal/domain/ticket/valueobjects"
)

// PDFRenderer renders the ticket report as a landscape A4 table.
type PDFRenderer struct{}

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

func (r *PDFRenderer) ContentType() string {
	return "application/pdf"
}

func (r *PDFRenderer) FileName() string {
	return fmt.Sprintf("ticket-report-%d.pdf", time.Now().UnixMilli())
}

func (r *PDFRenderer) Render(rows []ticket.TicketWithOwner, statusFilter string) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	title := "Ticket Report"
	if statusFilter != "" && statusFilter != "all" {
		title = fmt.Sprintf("Ticket Report (%s)", vo.TicketStatus(statusFilter).Label())
	}

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, title, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated %s", time.Now().Format("2 Jan 2006 15:04")), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	widths := []float64{12, 50, 70, 24, 22, 32, 22, 28, 17}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(68, 114, 196)
	pdf.SetTextColor(255, 255, 255)
	for i, col := range reportColumns {
		pdf.CellFormat(widths[i], 8, col, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(0, 0, 0)
	for i, row := range rows {
		fill := i%2 == 1
		pdf.SetFillColor(236, 240, 247)

		values := []string{
			fmt.Sprintf("%d", row.ID),
			truncate(row.Title, 44),
			truncate(row.Description, 64),
			derefOr(row.Category, "-"),
			vo.TicketStatus(row.Status).Label(),
			truncate(row.OwnerName, 26),
			derefOr(row.OwnerDivision, "-"),
			truncate(row.OwnerEmail, 24),
			row.CreatedAt.Format("02-01-2006"),
		}

		for j, v := range values {
			pdf.CellFormat(widths[j], 7, v, "1", 0, "L", fill, 0, "")
		}
		pdf.Ln(-1)
	}

	if len(rows) == 0 {
		pdf.CellFormat(0, 8, "No tickets match the selected filter.", "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize PDF: %w", err)
	}

	return buf.Bytes(), nil
}

// truncate shortens s to max characters. It counts runes so a multi-byte
// character is never split mid-sequence.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
