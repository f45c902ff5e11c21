package usecases

import (
	"context"

	"github.com/helpdesk-inc/helpdesk/internal/domain/ticket"
	vo "github.com/helpdesk-inc/helpdesk/internal/domain/ticket/valueobjects"
	"github.com/helpdesk-inc/helpdesk/internal/shared/errors"
	"github.com/helpdesk-inc/helpdesk/internal/shared/logger"
)

type ReportFormat string

const (
	FormatExcel ReportFormat = "excel"
	FormatPDF   ReportFormat = "pdf"
)

// Renderer turns queried ticket rows into a downloadable document. Rows must
// be rendered in query order, one per ticket.
type Renderer interface {
	Render(rows []ticket.TicketWithOwner, statusFilter string) ([]byte, error)
	ContentType() string
	FileName() string
}

type ExportTicketsCommand struct {
	Status string
	Format ReportFormat
}

type ExportTicketsResult struct {
	Content     []byte
	ContentType string
	FileName    string
}

type ExportTicketsUseCase struct {
	ticketRepo    ticket.TicketRepository
	excelRenderer Renderer
	pdfRenderer   Renderer
	logger        logger.Interface
}

func NewExportTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	excelRenderer Renderer,
	pdfRenderer Renderer,
	logger logger.Interface,
) *ExportTicketsUseCase {
	return &ExportTicketsUseCase{
		ticketRepo:    ticketRepo,
		excelRenderer: excelRenderer,
		pdfRenderer:   pdfRenderer,
		logger:        logger,
	}
}

func (uc *ExportTicketsUseCase) Execute(ctx context.Context, cmd ExportTicketsCommand) (*ExportTicketsResult, error) {
	var renderer Renderer
	switch cmd.Format {
	case FormatExcel:
		renderer = uc.excelRenderer
	case FormatPDF:
		renderer = uc.pdfRenderer
	default:
		return nil, errors.NewValidationError("unsupported report format")
	}

	filter := ticket.TicketFilter{}
	if cmd.Status != "" && cmd.Status != "all" {
		status := vo.TicketStatus(cmd.Status)
		if !status.IsValid() {
			return nil, errors.NewValidationError("invalid status filter: " + cmd.Status)
		}
		filter.Status = &status
	}

	rows, err := uc.ticketRepo.ListWithOwner(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to load tickets for report", "error", err)
		return nil, err
	}

	content, err := renderer.Render(rows, cmd.Status)
	if err != nil {
		uc.logger.Errorw("failed to render report", "format", cmd.Format, "error", err)
		return nil, errors.NewInternalError("failed to generate report")
	}

	uc.logger.Infow("report generated", "format", cmd.Format, "rows", len(rows), "bytes", len(content))

	return &ExportTicketsResult{
		Content:     content,
		ContentType: renderer.ContentType(),
		FileName:    renderer.FileName(),
	}, nil
}
