package handler

import (
	"net/http"
	"strconv"

	"github.com/dafibh/hillside/hillside-backend/internal/service"
	"github.com/labstack/echo/v4"
)

// LedgerHandler exposes the loaded ledger, the current notice and store status
type LedgerHandler struct {
	ledgerService      *service.LedgerService
	transactionService *service.TransactionService
	notices            *service.NoticeBoard
}

// NewLedgerHandler creates a new LedgerHandler
func NewLedgerHandler(ledgerService *service.LedgerService, transactionService *service.TransactionService, notices *service.NoticeBoard) *LedgerHandler {
	return &LedgerHandler{
		ledgerService:      ledgerService,
		transactionService: transactionService,
		notices:            notices,
	}
}

// GetLedger godoc
// @Summary Get the loaded ledger
// @Description Returns the in-memory transaction list with its summary. Pass reload=true to reload from the store first.
// @Tags ledger
// @Produce json
// @Param reload query bool false "Reload from the store"
// @Success 200 {object} LedgerResponse
// @Failure 503 {object} ProblemDetails
// @Router /ledger [get]
func (h *LedgerHandler) GetLedger(c echo.Context) error {
	if reload, _ := strconv.ParseBool(c.QueryParam("reload")); reload {
		if err := h.ledgerService.Load(c.Request().Context()); err != nil {
			return handleServiceError(c, err, "Failed to load transactions")
		}
	}

	snapshot := h.ledgerService.Snapshot()
	response := LedgerResponse{
		Transactions: toTransactionResponses(snapshot.Transactions),
		Summary:      toSummaryResponse(snapshot.Summary),
		Monthly:      toMonthlyResponse(snapshot.Monthly),
	}
	if loadedAt := h.ledgerService.LoadedAt(); !loadedAt.IsZero() {
		s := formatTimestamp(loadedAt)
		response.LoadedAt = &s
	}

	return c.JSON(http.StatusOK, response)
}

// GetNotice godoc
// @Summary Get the current notice
// @Tags ledger
// @Produce json
// @Success 200 {object} domain.Notice
// @Success 204
// @Router /notice [get]
func (h *LedgerHandler) GetNotice(c echo.Context) error {
	notice, ok := h.notices.Current()
	if !ok {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, notice)
}

// DismissNotice godoc
// @Summary Dismiss a notice
// @Tags ledger
// @Param id path int true "Notice ID"
// @Success 204
// @Failure 404 {object} ProblemDetails
// @Router /notice/{id} [delete]
func (h *LedgerHandler) DismissNotice(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return NewValidationError(c, "Invalid notice ID", []ValidationError{
			{Field: "id", Message: "Must be a positive integer"},
		})
	}
	if !h.notices.Dismiss(id) {
		return NewNotFoundError(c, "Notice not found")
	}
	return c.NoContent(http.StatusNoContent)
}

// GetStatus godoc
// @Summary Store connectivity
// @Description Pings the store and counts transactions
// @Tags ledger
// @Produce json
// @Success 200 {object} service.StoreStatus
// @Failure 503 {object} service.StoreStatus
// @Router /status [get]
func (h *LedgerHandler) GetStatus(c echo.Context) error {
	status := h.transactionService.Status(c.Request().Context())
	if !status.Connected {
		return c.JSON(http.StatusServiceUnavailable, status)
	}
	return c.JSON(http.StatusOK, status)
}
