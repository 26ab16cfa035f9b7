package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/dafibh/hillside/hillside-backend/internal/domain"
	"github.com/dafibh/hillside/hillside-backend/internal/service"
	"github.com/labstack/echo/v4"
)

// ReportHandler serves downloadable reports
type ReportHandler struct {
	ledgerService *service.LedgerService
	reportService *service.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(ledgerService *service.LedgerService, reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{
		ledgerService: ledgerService,
		reportService: reportService,
	}
}

// GetTransactionsPDF godoc
// @Summary Transactions PDF
// @Description Renders the loaded transactions matching the filters as a PDF table
// @Tags reports
// @Produce application/pdf
// @Param month query string false "Month number (01-12) or all"
// @Param category query string false "Category code or ALL"
// @Param q query string false "Search text"
// @Success 200 {file} binary
// @Failure 400 {object} ProblemDetails
// @Router /reports/transactions.pdf [get]
func (h *ReportHandler) GetTransactionsPDF(c echo.Context) error {
	query, err := parseTransactionQuery(c)
	if err != nil {
		return handleServiceError(c, err, "Failed to filter transactions")
	}

	report, err := h.reportService.TransactionsPDF(h.ledgerService.Filter(query))
	if err != nil {
		return handleServiceError(c, err, "Failed to render report")
	}
	return sendReport(c, report)
}

// GetMonthlyPDF godoc
// @Summary Monthly report PDF
// @Description Income statement and transactions of one month. Without year every year's month is included.
// @Tags reports
// @Produce application/pdf
// @Param month path string true "Month number (01-12)"
// @Param year query int false "Year"
// @Success 200 {file} binary
// @Failure 400 {object} ProblemDetails
// @Router /reports/monthly/{month} [get]
func (h *ReportHandler) GetMonthlyPDF(c echo.Context) error {
	report, err := h.renderMonthly(c)
	if err != nil {
		return handleServiceError(c, err, "Failed to render report")
	}
	return sendReport(c, report)
}

// ArchiveMonthlyPDF godoc
// @Summary Archive a monthly report
// @Description Uploads the monthly PDF to object storage and returns a temporary link
// @Tags reports
// @Produce json
// @Param month path string true "Month number (01-12)"
// @Param year query int false "Year"
// @Success 201 {object} service.ArchivedReport
// @Failure 400 {object} ProblemDetails
// @Failure 503 {object} ProblemDetails
// @Router /reports/monthly/{month}/archive [post]
func (h *ReportHandler) ArchiveMonthlyPDF(c echo.Context) error {
	if !h.reportService.ArchiveEnabled() {
		return handleServiceError(c, domain.ErrReportStorageNotConfigured, "")
	}

	report, err := h.renderMonthly(c)
	if err != nil {
		return handleServiceError(c, err, "Failed to render report")
	}

	archived, err := h.reportService.Archive(c.Request().Context(), report)
	if err != nil {
		return handleServiceError(c, err, "Failed to archive report")
	}
	return c.JSON(http.StatusCreated, archived)
}

func (h *ReportHandler) renderMonthly(c echo.Context) (*service.Report, error) {
	month, err := service.ParseMonth(c.Param("month"))
	if err != nil || month == 0 {
		return nil, domain.ErrInvalidMonth
	}

	year := 0
	if y := c.QueryParam("year"); y != "" {
		year, err = strconv.Atoi(y)
		if err != nil || year < 1 || year > 9999 {
			return nil, fmt.Errorf("%w: year must be a valid year", domain.ErrInvalidInput)
		}
	}

	return h.reportService.MonthlyPDF(h.ledgerService.Snapshot().Transactions, month, year)
}

func sendReport(c echo.Context, report *service.Report) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", report.Filename))
	return c.Blob(http.StatusOK, report.ContentType, report.Data)
}
