package report

import (
	"bytes"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/helpdesk-inc/helpdesk/internal/domain/ticket"
)

func sampleRows() []ticket.TicketWithOwner {
	division := "IT"
	category := "hardware"
	return []ticket.TicketWithOwner{
		{
			ID:          1,
			Title:       "Printer broken",
			Description: "The office printer jams on every job",
			Category:    &category,
			Status:      "in_progress",
			CreatedAt:   time.Date(2025, 5, 10, 9, 30, 0, 0, time.UTC),
			OwnerName:   "Alice",
			OwnerEmail:  "alice@example.com",
		},
		{
			ID:            2,
			Title:         "VPN down",
			Description:   "Cannot connect since this morning",
			Status:        "new",
			CreatedAt:     time.Date(2025, 5, 11, 8, 0, 0, 0, time.UTC),
			OwnerName:     "Bob",
			OwnerEmail:    "bob@example.com",
			OwnerDivision: &division,
		},
	}
}

func TestExcelRenderer(t *testing.T) {
	r := NewExcelRenderer()

	content, err := r.Render(sampleRows(), "all")
	require.NoError(t, err)
	require.NotEmpty(t, content)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	cell, err := f.GetCellValue("Tickets", "A1")
	require.NoError(t, err)
	assert.Equal(t, "ID", cell)

	title, err := f.GetCellValue("Tickets", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Printer broken", title)

	status, err := f.GetCellValue("Tickets", "E2")
	require.NoError(t, err)
	assert.Equal(t, "In Progress", status)

	missingCategory, err := f.GetCellValue("Tickets", "D3")
	require.NoError(t, err)
	assert.Equal(t, "-", missingCategory)

	assert.True(t, strings.HasPrefix(r.FileName(), "ticket-report-"))
	assert.True(t, strings.HasSuffix(r.FileName(), ".xlsx"))
	assert.Contains(t, r.ContentType(), "spreadsheetml")
}

func TestPDFRenderer(t *testing.T) {
	r := NewPDFRenderer()

	t.Run("renders rows", func(t *testing.T) {
		content, err := r.Render(sampleRows(), "in_progress")
		require.NoError(t, err)
		require.NotEmpty(t, content)
		assert.True(t, bytes.HasPrefix(content, []byte("%PDF")))
	})

	t.Run("renders empty report", func(t *testing.T) {
		content, err := r.Render(nil, "all")
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(content, []byte("%PDF")))
	})

	assert.True(t, strings.HasPrefix(r.FileName(), "ticket-report-"))
	assert.True(t, strings.HasSuffix(r.FileName(), ".pdf"))
	assert.Equal(t, "application/pdf", r.ContentType())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exactly10!", truncate("exactly10!", 10))
	assert.Equal(t, "this is...", truncate("this is a long string", 10))

	// Multi-byte input must be cut on rune boundaries, never mid-sequence.
	assert.Equal(t, "принтер...", truncate("принтер не печатает", 10))
	assert.True(t, utf8.ValidString(truncate("报修工单描述超出了长度限制", 10)))
	assert.Equal(t, "报修工单描述超出了长度限制", truncate("报修工单描述超出了长度限制", 14))
}
