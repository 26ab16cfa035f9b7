package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dafibh/hillside/hillside-backend/internal/domain"
	"github.com/dafibh/hillside/hillside-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	ledgerService      *service.LedgerService
	transactionService *service.TransactionService
	importService      *service.ImportService
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(ledgerService *service.LedgerService, transactionService *service.TransactionService, importService *service.ImportService) *TransactionHandler {
	return &TransactionHandler{
		ledgerService:      ledgerService,
		transactionService: transactionService,
		importService:      importService,
	}
}

// CreateTransactionRequest represents the create transaction request body
type CreateTransactionRequest struct {
	Date        *string `json:"date,omitempty"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Amount      string  `json:"amount"`
	Account     string  `json:"account,omitempty"`
}

// UpdateTransactionRequest represents the partial update request body
type UpdateTransactionRequest struct {
	Date        *string `json:"date,omitempty"`
	Category    *string `json:"category,omitempty"`
	Description *string `json:"description,omitempty"`
	Amount      *string `json:"amount,omitempty"`
	Account     *string `json:"account,omitempty"`
}

// BulkDeleteRequest represents the bulk delete request body
type BulkDeleteRequest struct {
	Target  string `json:"target"`
	Confirm bool   `json:"confirm"`
}

// ImportRowRequest is one row of an import
type ImportRowRequest struct {
	Date        string `json:"date"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Account     string `json:"account,omitempty"`
}

// ImportRequest represents the import request body
type ImportRequest struct {
	Rows []ImportRowRequest `json:"rows"`
}

// ImportRowResponse is the outcome of one imported row
type ImportRowResponse struct {
	Row         int                  `json:"row"`
	Success     bool                 `json:"success"`
	Transaction *TransactionResponse `json:"transaction,omitempty"`
	Error       string               `json:"error,omitempty"`
}

// ImportResponse tallies an import
type ImportResponse struct {
	Total     int                 `json:"total"`
	Succeeded int                 `json:"succeeded"`
	Failed    int                 `json:"failed"`
	Results   []ImportRowResponse `json:"results"`
}

// ListTransactions godoc
// @Summary List loaded transactions
// @Description Filter the loaded ledger by month, category and free text without querying the store
// @Tags transactions
// @Produce json
// @Param month query string false "Month number (01-12) or all"
// @Param category query string false "Category code or ALL"
// @Param q query string false "Search text over description and category"
// @Success 200 {array} TransactionResponse
// @Failure 400 {object} ProblemDetails
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	query, err := parseTransactionQuery(c)
	if err != nil {
		return handleServiceError(c, err, "Failed to filter transactions")
	}
	return c.JSON(http.StatusOK, toTransactionResponses(h.ledgerService.Filter(query)))
}

// SearchTransactions godoc
// @Summary Search transactions in the store
// @Tags transactions
// @Produce json
// @Param q query string false "Search text"
// @Success 200 {array} TransactionResponse
// @Failure 503 {object} ProblemDetails
// @Router /transactions/search [get]
func (h *TransactionHandler) SearchTransactions(c echo.Context) error {
	transactions, err := h.transactionService.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return handleServiceError(c, err, "Failed to search transactions")
	}
	return c.JSON(http.StatusOK, toTransactionResponses(transactions))
}

// ListByCategory godoc
// @Summary List stored transactions of one category
// @Tags transactions
// @Produce json
// @Param category path string true "Category code"
// @Success 200 {array} TransactionResponse
// @Failure 400 {object} ProblemDetails
// @Router /transactions/categories/{category} [get]
func (h *TransactionHandler) ListByCategory(c echo.Context) error {
	transactions, err := h.transactionService.ListByCategory(c.Request().Context(), c.Param("category"))
	if err != nil {
		return handleServiceError(c, err, "Failed to list transactions")
	}
	return c.JSON(http.StatusOK, toTransactionResponses(transactions))
}

// ListByMonth godoc
// @Summary List stored transactions of one month
// @Tags transactions
// @Produce json
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Success 200 {array} TransactionResponse
// @Failure 400 {object} ProblemDetails
// @Router /transactions/months/{year}/{month} [get]
func (h *TransactionHandler) ListByMonth(c echo.Context) error {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		return NewValidationError(c, "Invalid year", []ValidationError{
			{Field: "year", Message: "Must be a valid year"},
		})
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		return handleServiceError(c, domain.ErrInvalidMonth, "")
	}

	transactions, err := h.transactionService.ListByMonth(c.Request().Context(), year, month)
	if err != nil {
		return handleServiceError(c, err, "Failed to list transactions")
	}
	return c.JSON(http.StatusOK, toTransactionResponses(transactions))
}

// GetTransaction godoc
// @Summary Get a transaction
// @Tags transactions
// @Produce json
// @Param id path int true "Transaction ID"
// @Success 200 {object} TransactionResponse
// @Failure 404 {object} ProblemDetails
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return invalidIDError(c)
	}

	transaction, err := h.transactionService.GetByID(c.Request().Context(), id)
	if err != nil {
		return handleServiceError(c, err, "Failed to get transaction")
	}
	return c.JSON(http.StatusOK, toTransactionResponse(transaction))
}

// CreateTransaction godoc
// @Summary Create a transaction
// @Description Record a transaction. EARN amounts are income, every other category is expense.
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body CreateTransactionRequest true "Transaction creation request"
// @Success 201 {object} TransactionResponse
// @Failure 400 {object} ProblemDetails
// @Failure 503 {object} ProblemDetails
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(req.Amount))
	if err != nil {
		return NewValidationError(c, "Invalid amount", []ValidationError{
			{Field: "amount", Message: "Must be a valid decimal number"},
		})
	}

	date, err := parseOptionalDate(req.Date)
	if err != nil {
		return NewValidationError(c, "Invalid date", []ValidationError{
			{Field: "date", Message: "Must be in YYYY-MM-DD format"},
		})
	}

	transaction, err := h.ledgerService.Add(c.Request().Context(), service.AddTransactionInput{
		Date:        date,
		Category:    req.Category,
		Description: req.Description,
		Amount:      amount,
		Account:     req.Account,
	})
	if err != nil {
		return handleServiceError(c, err, "Failed to add transaction")
	}

	return c.JSON(http.StatusCreated, toTransactionResponse(transaction))
}

// UpdateTransaction godoc
// @Summary Update a transaction
// @Description Partially update a transaction. Changing amount or category re-splits income and expense.
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path int true "Transaction ID"
// @Param request body UpdateTransactionRequest true "Fields to change"
// @Success 200 {object} TransactionResponse
// @Failure 400 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /transactions/{id} [patch]
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return invalidIDError(c)
	}

	var req UpdateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	input := service.UpdateTransactionInput{
		Category:    req.Category,
		Description: req.Description,
		Account:     req.Account,
	}
	if req.Amount != nil {
		amount, err := decimal.NewFromString(strings.TrimSpace(*req.Amount))
		if err != nil {
			return NewValidationError(c, "Invalid amount", []ValidationError{
				{Field: "amount", Message: "Must be a valid decimal number"},
			})
		}
		input.Amount = &amount
	}
	if input.Date, err = parseOptionalDate(req.Date); err != nil {
		return NewValidationError(c, "Invalid date", []ValidationError{
			{Field: "date", Message: "Must be in YYYY-MM-DD format"},
		})
	}

	transaction, err := h.ledgerService.Update(c.Request().Context(), id, input)
	if err != nil {
		return handleServiceError(c, err, "Failed to update transaction")
	}

	return c.JSON(http.StatusOK, toTransactionResponse(transaction))
}

// DeleteTransaction godoc
// @Summary Delete a transaction
// @Tags transactions
// @Param id path int true "Transaction ID"
// @Success 204
// @Failure 404 {object} ProblemDetails
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return invalidIDError(c)
	}

	if err := h.ledgerService.Delete(c.Request().Context(), id); err != nil {
		return handleServiceError(c, err, "Failed to delete transaction")
	}

	return c.NoContent(http.StatusNoContent)
}

// BulkDelete godoc
// @Summary Delete every transaction of a category, or all of them
// @Description Requires confirm=true. Target is a category code or ALL.
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body BulkDeleteRequest true "Bulk delete request"
// @Success 200 {object} service.BulkDeleteResult
// @Failure 400 {object} ProblemDetails
// @Failure 428 {object} ProblemDetails
// @Router /transactions/bulk-delete [post]
func (h *TransactionHandler) BulkDelete(c echo.Context) error {
	var req BulkDeleteRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	target, err := domain.ParseBulkDeleteTarget(req.Target)
	if err != nil {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "target", Message: "Target must be a category code or ALL"},
		})
	}

	result, err := h.ledgerService.BulkDelete(c.Request().Context(), target, req.Confirm)
	if err != nil {
		return handleServiceError(c, err, "Failed to delete transactions")
	}

	return c.JSON(http.StatusOK, result)
}

// ImportTransactions godoc
// @Summary Import many transactions
// @Description Rows are stored independently. Category accepts PENDAPATAN, OPERASIONAL, VARIABEL, MODAL and KEUANGAN; unknown names become OPEX.
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body ImportRequest true "Rows to import"
// @Success 200 {object} ImportResponse
// @Failure 400 {object} ProblemDetails
// @Router /transactions/import [post]
func (h *TransactionHandler) ImportTransactions(c echo.Context) error {
	var req ImportRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	rows := make([]service.ImportRow, len(req.Rows))
	var fieldErrs []ValidationError
	for i, r := range req.Rows {
		amount, err := decimal.NewFromString(strings.TrimSpace(r.Amount))
		if err != nil {
			fieldErrs = append(fieldErrs, ValidationError{
				Field:   "rows[" + strconv.Itoa(i) + "].amount",
				Message: "Must be a valid decimal number",
			})
			continue
		}
		rows[i] = service.ImportRow{
			Date:        r.Date,
			Category:    r.Category,
			Description: r.Description,
			Amount:      amount,
			Account:     r.Account,
		}
	}
	if len(fieldErrs) > 0 {
		return NewValidationError(c, "Validation failed", fieldErrs)
	}

	result, err := h.importService.BulkCreate(c.Request().Context(), rows)
	if err != nil {
		return handleServiceError(c, err, "Failed to import transactions")
	}

	response := ImportResponse{
		Total:     result.Total,
		Succeeded: result.Succeeded,
		Failed:    result.Failed,
		Results:   make([]ImportRowResponse, len(result.Results)),
	}
	for i, r := range result.Results {
		row := ImportRowResponse{Row: r.Row, Success: r.Success, Error: r.Error}
		if r.Transaction != nil {
			tx := toTransactionResponse(r.Transaction)
			row.Transaction = &tx
		}
		response.Results[i] = row
	}

	return c.JSON(http.StatusOK, response)
}

func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, domain.ErrInvalidInput
	}
	return id, nil
}

func invalidIDError(c echo.Context) error {
	return NewValidationError(c, "Invalid transaction ID", []ValidationError{
		{Field: "id", Message: "Must be a positive integer"},
	})
}

func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	parsed, err := time.Parse(domain.DateLayout, strings.TrimSpace(*s))
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// parseTransactionQuery reads the month, category and q filters
func parseTransactionQuery(c echo.Context) (domain.TransactionQuery, error) {
	month, err := service.ParseMonth(c.QueryParam("month"))
	if err != nil {
		return domain.TransactionQuery{}, err
	}
	query := domain.TransactionQuery{Month: month, Text: c.QueryParam("q")}

	if category := strings.TrimSpace(c.QueryParam("category")); category != "" && !strings.EqualFold(category, domain.BulkDeleteAll) {
		parsed, err := domain.ParseCategory(category)
		if err != nil {
			return domain.TransactionQuery{}, err
		}
		query.Category = parsed
	}
	return query, nil
}
