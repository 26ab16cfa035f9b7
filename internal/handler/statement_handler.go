package handler

import (
	"net/http"

	"github.com/dafibh/hillside/hillside-backend/internal/domain"
	"github.com/dafibh/hillside/hillside-backend/internal/service"
	"github.com/labstack/echo/v4"
)

// StatementHandler renders the financial statements of the loaded ledger
type StatementHandler struct {
	ledgerService *service.LedgerService
}

// NewStatementHandler creates a new StatementHandler
func NewStatementHandler(ledgerService *service.LedgerService) *StatementHandler {
	return &StatementHandler{ledgerService: ledgerService}
}

// StatementLineResponse is one labelled amount
type StatementLineResponse struct {
	Label     string `json:"label"`
	Amount    string `json:"amount"`
	Formatted string `json:"formatted"`
	Sign      string `json:"sign,omitempty"`
	Percent   bool   `json:"percent,omitempty"`
}

// StatementSectionResponse is a titled group of lines
type StatementSectionResponse struct {
	Heading string                  `json:"heading"`
	Lines   []StatementLineResponse `json:"lines"`
	Total   *StatementLineResponse  `json:"total,omitempty"`
}

// StatementResponse represents a statement in API responses
type StatementResponse struct {
	Title    string                     `json:"title"`
	Sections []StatementSectionResponse `json:"sections"`
}

// BalanceSheetResponse adds the reconciliation figures to the statement
type BalanceSheetResponse struct {
	StatementResponse
	TotalAssets               string `json:"totalAssets"`
	TotalLiabilitiesAndEquity string `json:"totalLiabilitiesAndEquity"`
	Balanced                  bool   `json:"balanced"`
	Difference                string `json:"difference"`
}

// CashFlowResponse adds the net change and the section sum to the statement
type CashFlowResponse struct {
	StatementResponse
	NetChange     string `json:"netChange"`
	SectionsTotal string `json:"sectionsTotal"`
}

// GetIncomeStatement godoc
// @Summary Income statement
// @Tags statements
// @Produce json
// @Success 200 {object} StatementResponse
// @Router /statements/income [get]
func (h *StatementHandler) GetIncomeStatement(c echo.Context) error {
	summary := h.ledgerService.Snapshot().Summary
	return c.JSON(http.StatusOK, toStatementResponse(service.BuildIncomeStatement(summary)))
}

// GetBalanceSheet godoc
// @Summary Balance sheet
// @Description Assets and liabilities plus equity are not forced to agree; balanced and difference report the gap.
// @Tags statements
// @Produce json
// @Success 200 {object} BalanceSheetResponse
// @Router /statements/balance-sheet [get]
func (h *StatementHandler) GetBalanceSheet(c echo.Context) error {
	summary := h.ledgerService.Snapshot().Summary
	sheet := service.BuildBalanceSheet(summary, h.ledgerService.Capital())
	return c.JSON(http.StatusOK, BalanceSheetResponse{
		StatementResponse:         toStatementResponse(sheet.Statement),
		TotalAssets:               formatAmount(sheet.TotalAssets),
		TotalLiabilitiesAndEquity: formatAmount(sheet.TotalLiabilitiesAndEquity),
		Balanced:                  sheet.Balanced,
		Difference:                formatAmount(sheet.Difference),
	})
}

// GetCashFlow godoc
// @Summary Cash flow statement
// @Tags statements
// @Produce json
// @Success 200 {object} CashFlowResponse
// @Router /statements/cash-flow [get]
func (h *StatementHandler) GetCashFlow(c echo.Context) error {
	summary := h.ledgerService.Snapshot().Summary
	flow := service.BuildCashFlow(summary)
	return c.JSON(http.StatusOK, CashFlowResponse{
		StatementResponse: toStatementResponse(flow.Statement),
		NetChange:         formatAmount(flow.NetChange),
		SectionsTotal:     formatAmount(flow.SectionsTotal),
	})
}

// GetCashOverview godoc
// @Summary Cash in and out overview
// @Tags statements
// @Produce json
// @Success 200 {object} StatementResponse
// @Router /statements/cash-overview [get]
func (h *StatementHandler) GetCashOverview(c echo.Context) error {
	summary := h.ledgerService.Snapshot().Summary
	return c.JSON(http.StatusOK, toStatementResponse(service.BuildCashOverview(summary)))
}

func toStatementResponse(s domain.Statement) StatementResponse {
	sections := make([]StatementSectionResponse, len(s.Sections))
	for i, section := range s.Sections {
		lines := make([]StatementLineResponse, len(section.Lines))
		for j, l := range section.Lines {
			lines[j] = toStatementLineResponse(l)
		}
		sections[i] = StatementSectionResponse{Heading: section.Heading, Lines: lines}
		if section.Total != nil {
			total := toStatementLineResponse(*section.Total)
			sections[i].Total = &total
		}
	}
	return StatementResponse{Title: s.Title, Sections: sections}
}

func toStatementLineResponse(l domain.StatementLine) StatementLineResponse {
	formatted := domain.FormatRupiah(l.Amount)
	if l.Percent {
		formatted = l.Amount.StringFixed(1) + "%"
	}
	switch {
	case l.Sign == domain.SignNegative:
		formatted = "-" + formatted
	case l.Sign == domain.SignPositive:
		formatted = "+" + formatted
	case !l.Percent && l.Amount.IsNegative():
		formatted = domain.FormatSignedRupiah(l.Amount)
	}
	return StatementLineResponse{
		Label:     l.Label,
		Amount:    formatAmount(l.Amount),
		Formatted: formatted,
		Sign:      string(l.Sign),
		Percent:   l.Percent,
	}
}
