package handler

import (
	"net/http"
	"strconv"

	"github.com/dafibh/hillside/hillside-backend/internal/domain"
	"github.com/dafibh/hillside/hillside-backend/internal/service"
	"github.com/labstack/echo/v4"
)

// DashboardHandler handles dashboard-related HTTP requests
type DashboardHandler struct {
	ledgerService *service.LedgerService
	reportService *service.ReportService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(ledgerService *service.LedgerService, reportService *service.ReportService) *DashboardHandler {
	return &DashboardHandler{
		ledgerService: ledgerService,
		reportService: reportService,
	}
}

// CategoryAmountResponse is one slice of the expense breakdown
type CategoryAmountResponse struct {
	Category string `json:"category"`
	Label    string `json:"label"`
	Amount   string `json:"amount"`
	Percent  string `json:"percent"`
}

// DashboardResponse represents the dashboard API response
type DashboardResponse struct {
	Summary          SummaryResponse          `json:"summary"`
	Monthly          []MonthTotalResponse     `json:"monthly"`
	ExpenseBreakdown []CategoryAmountResponse `json:"expenseBreakdown"`
	TotalExpenses    string                   `json:"totalExpenses"`
	Recent           []TransactionResponse    `json:"recent"`
	TransactionCount int                      `json:"transactionCount"`
}

// GetDashboard godoc
// @Summary Dashboard overview
// @Description Summary, monthly totals, expense breakdown and the ten most recent transactions matching month and q
// @Tags dashboard
// @Produce json
// @Param month query string false "Month number (01-12) or all"
// @Param q query string false "Search text"
// @Success 200 {object} DashboardResponse
// @Failure 400 {object} ProblemDetails
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	month, err := service.ParseMonth(c.QueryParam("month"))
	if err != nil {
		return handleServiceError(c, err, "Failed to build dashboard")
	}

	dashboard := h.ledgerService.Dashboard(domain.TransactionQuery{Month: month, Text: c.QueryParam("q")})

	breakdown := make([]CategoryAmountResponse, len(dashboard.ExpenseBreakdown))
	for i, b := range dashboard.ExpenseBreakdown {
		percent := "0.0"
		if dashboard.TotalExpenses.IsPositive() {
			percent = b.Amount.Mul(hundred).Div(dashboard.TotalExpenses).StringFixed(1)
		}
		breakdown[i] = CategoryAmountResponse{
			Category: string(b.Category),
			Label:    b.Category.Label(),
			Amount:   formatAmount(b.Amount),
			Percent:  percent,
		}
	}

	return c.JSON(http.StatusOK, DashboardResponse{
		Summary:          toSummaryResponse(dashboard.Summary),
		Monthly:          toMonthlyResponse(dashboard.Monthly),
		ExpenseBreakdown: breakdown,
		TotalExpenses:    formatAmount(dashboard.TotalExpenses),
		Recent:           toTransactionResponses(dashboard.Recent),
		TransactionCount: dashboard.TransactionCount,
	})
}

// GetExpenseChart godoc
// @Summary Monthly expense chart
// @Tags dashboard
// @Produce png
// @Param width query int false "Image width in pixels"
// @Success 200 {file} binary
// @Failure 400 {object} ProblemDetails
// @Router /dashboard/chart.png [get]
func (h *DashboardHandler) GetExpenseChart(c echo.Context) error {
	width := 0
	if w := c.QueryParam("width"); w != "" {
		parsed, err := strconv.Atoi(w)
		if err != nil {
			return NewValidationError(c, "Invalid width", []ValidationError{
				{Field: "width", Message: "Must be a valid integer"},
			})
		}
		width = parsed
	}

	chart, err := h.reportService.ExpenseChartPNG(h.ledgerService.Snapshot().Monthly, width)
	if err != nil {
		return handleServiceError(c, err, "Failed to render chart")
	}

	c.Response().Header().Set("Cache-Control", "no-store")
	return c.Blob(http.StatusOK, chart.ContentType, chart.Data)
}
