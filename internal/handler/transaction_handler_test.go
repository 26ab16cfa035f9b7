package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/dafibh/hillside/hillside-backend/internal/domain"
	"github.com/dafibh/hillside/hillside-backend/internal/testutil"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTransactionHandler(app *testApp) *TransactionHandler {
	return NewTransactionHandler(app.ledger, app.txService, app.importer)
}

func jsonContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCreateTransaction_Success(t *testing.T) {
	e := echo.New()
	app := newTestApp(t)
	handler := newTransactionHandler(app)

	c, rec := jsonContext(e, http.MethodPost, "/api/v1/transactions",
		`{"date": "2025-04-02", "category": "EARN", "description": "  Website build ", "amount": "7500000"}`)

	err := handler.CreateTransaction(c)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var response TransactionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if response.Description != "Website build" {
		t.Errorf("Expected trimmed description, got %q", response.Description)
	}
	if response.Income != "7500000.00" {
		t.Errorf("Expected income '7500000.00', got %s", response.Income)
	}
	if response.Expense != "0.00" {
		t.Errorf("Expected expense '0.00', got %s", response.Expense)
	}
	if response.Account != domain.CategoryEarn.DefaultAccount() {
		t.Errorf("Expected default account %q, got %q", domain.CategoryEarn.DefaultAccount(), response.Account)
	}
	if response.Date != "2025-04-02" {
		t.Errorf("Expected date '2025-04-02', got %s", response.Date)
	}

	assert.Len(t, app.ledger.Snapshot().Transactions, 1, "ledger reloads after a write")
}

func TestCreateTransaction_ExpenseCategory(t *testing.T) {
	e := echo.New()
	app := newTestApp(t)
	handler := newTransactionHandler(app)

	c, rec := jsonContext(e, http.MethodPost, "/api/v1/transactions",
		`{"category": "opex", "description": "Electricity", "amount": "450000.50", "account": "Petty cash"}`)

	require.NoError(t, handler.CreateTransaction(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var response TransactionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "OPEX", response.Category)
	assert.Equal(t, "0.00", response.Income)
	assert.Equal(t, "450000.50", response.Expense)
	assert.Equal(t, "Petty cash", response.Account)
}

func TestCreateTransaction_ValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"missing description", `{"category": "EARN", "description": "   ", "amount": "10"}`, "description"},
		{"unknown category", `{"category": "SALES", "description": "x", "amount": "10"}`, "category"},
		{"zero amount", `{"category": "EARN", "description": "x", "amount": "0"}`, "amount"},
		{"negative amount", `{"category": "OPEX", "description": "x", "amount": "-5"}`, "amount"},
		{"malformed amount", `{"category": "OPEX", "description": "x", "amount": "ten"}`, "amount"},
		{"sub-cent amount", `{"category": "EARN", "description": "x", "amount": "0.001"}`, "amount"},
		{"amount above column range", `{"category": "EARN", "description": "x", "amount": "100000000000000"}`, "amount"},
		{"malformed date", `{"date": "02/04/2025", "category": "OPEX", "description": "x", "amount": "10"}`, "date"},
		{"description too long", `{"category": "OPEX", "description": "` + strings.Repeat("a", domain.MaxDescriptionLength+1) + `", "amount": "10"}`, "description"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			app := newTestApp(t)
			handler := newTransactionHandler(app)

			c, rec := jsonContext(e, http.MethodPost, "/api/v1/transactions", tt.body)
			require.NoError(t, handler.CreateTransaction(c))

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("Expected status 400, got %d", rec.Code)
			}
			problem := decodeProblem(t, rec)
			require.Len(t, problem.Errors, 1)
			assert.Equal(t, tt.field, problem.Errors[0].Field)
			assert.Equal(t, 0, app.repo.CallCount("Create"), "invalid input never reaches the store")
		})
	}
}

func TestCreateTransaction_StoreUnavailable(t *testing.T) {
	e := echo.New()
	app := newTestApp(t)
	handler := newTransactionHandler(app)
	app.repo.Err = fmt.Errorf("%w: dial tcp: connection refused", domain.ErrStoreUnavailable)

	c, rec := jsonContext(e, http.MethodPost, "/api/v1/transactions",
		`{"category": "EARN", "description": "Sale", "amount": "10"}`)
	require.NoError(t, handler.CreateTransaction(c))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	notice, ok := app.notices.Current()
	require.True(t, ok)
	assert.Equal(t, domain.NoticeError, notice.Level)
}

func TestListTransactions_Filters(t *testing.T) {
	e := echo.New()
	app := newTestApp(t)
	app.seed(t, sampleTransactions()...)
	handler := newTransactionHandler(app)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"all", "", []string{"Logo design", "Office rent", "Printing", "Laptop", "Bank fee"}},
		{"month", "?month=02", []string{"Printing", "Laptop"}},
		{"month all keyword", "?month=all", []string{"Logo design", "Office rent", "Printing", "Laptop", "Bank fee"}},
		{"category", "?category=OPEX", []string{"Office rent"}},
		{"category ALL", "?category=ALL&month=01", []string{"Logo design", "Office rent"}},
		{"text over description", "?q=RENT", []string{"Office rent"}},
		{"text over category", "?q=capex", []string{"Laptop"}},
		{"combined", "?month=01&q=logo", []string{"Logo design"}},
		{"no match", "?month=12", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions"+tt.query, nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			require.NoError(t, handler.ListTransactions(c))
			require.Equal(t, http.StatusOK, rec.Code)

			var response []TransactionResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			got := make([]string, len(response))
			for i, r := range response {
				got[i] = r.Description
			}
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Equal(t, 1, app.repo.CallCount("ListAll"), "filtering uses the loaded ledger")
}

func TestListTransactions_InvalidMonth(t *testing.T) {
	for _, month := range []string{"13", "3x", "1."} {
		t.Run(month, func(t *testing.T) {
			e := echo.New()
			app := newTestApp(t)
			handler := newTransactionHandler(app)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions?month="+url.QueryEscape(month), nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			require.NoError(t, handler.ListTransactions(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			problem := decodeProblem(t, rec)
			require.Len(t, problem.Errors, 1)
			assert.Equal(t, "month", problem.Errors[0].Field)
		})
	}
}

func TestSearchTransactions_QueriesStore(t *testing.T) {
	e := echo.New()
	app := newTestApp(t)
	for _, tx := range sampleTransactions() {
		app.repo.AddTransaction(tx)
	}
	handler := newTransactionHandler(app)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions/search?q=print", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.SearchTransactions(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var response []TransactionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.Len(t, response, 1)
	assert.Equal(t, "Printing", response[0].Description)
	assert.Equal(t, 1, app.repo.CallCount("Search"))
}

func TestListByCategory(t *testing.T) {
	e := echo.New()
	app := newTestApp(t)
	for _, tx := range sampleTransactions() {
		app.repo.AddTransaction(tx)
	}
	handler := newTransactionHandler(app)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/v1/transactions/categories/:category")
	c.SetParamNames("category")
	c.SetParamValues("capex")

	require.NoError(t, handler.ListByCategory(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var response []TransactionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.Len(t, response, 1)
	assert.Equal(t, "Laptop", response[0].Description)
}

func TestListByCategory_Invalid(t *testing.T) {
	e := echo.New()
	app := newTestApp(t)
	handler := newTransactionHandler(app)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("category")
	c.SetParamValues("SALES")

	require.NoError(t, handler.ListByCategory(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListByMonth(t *testing.T) {
	e := echo.New()
	app := newTestApp(t)
	for _, tx := range sampleTransactions() {
		app.repo.AddTransaction(tx)
	}
	handler := newTransactionHandler(app)

	tests := []struct {
		name       string
		year       string
		month      string
		wantStatus int
		wantCount  int
	}{
		{"january", "2025", "1", http.StatusOK, 2},
		{"padded month", "2025", "02", http.StatusOK, 2},
		{"other year", "2024", "1", http.StatusOK, 0},
		{"month out of range", "2025", "13", http.StatusBadRequest, 0},
		{"non numeric year", "twenty", "1", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetParamNames("year", "month")
			c.SetParamValues(tt.year, tt.month)

			require.NoError(t, handler.ListByMonth(c))
			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}
			var response []TransactionResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.Len(t, response, tt.wantCount)
		})
	}
}

func TestGetTransaction(t *testing.T) {
	e := echo.New()
	app := newTestApp(t)
	tx := app.repo.AddTransaction(testutil.NewTransaction("2025-01-05", domain.CategoryEarn, "Logo design", 5000000, 0))
	handler := newTransactionHandler(app)

	tests := []struct {
		name       string
		id         string
		wantStatus int
	}{
		{"found", fmt.Sprint(tx.ID), http.StatusOK},
		{"missing", "999", http.StatusNotFound},
		{"not a number", "abc", http.StatusBadRequest},
		{"zero", "0", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetParamNames("id")
			c.SetParamValues(tt.id)

			require.NoError(t, handler.GetTransaction(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestUpdateTransaction_ResplitsAmount(t *testing.T) {
	e := echo.New()
	app := newTestApp(t)
	app.seed(t, testutil.NewTransaction("2025-01-05", domain.CategoryOpex, "Refund", 0, 200000))
	handler := newTransactionHandler(app)

	c, rec := jsonContext(e, http.MethodPatch, "/", `{"category": "EARN"}`)
	c.SetParamNames("id")
	c.SetParamValues("1")

	require.NoError(t, handler.UpdateTransaction(c))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var response TransactionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "EARN", response.Category)
	assert.Equal(t, "200000.00", response.Income)
	assert.Equal(t, "0.00", response.Expense)

	notice, ok := app.notices.Current()
	require.True(t, ok)
	assert.Equal(t, "Transaction updated!", notice.Message)
}

func TestUpdateTransaction_Errors(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		body       string
		wantStatus int
	}{
		{"empty update", "1", `{}`, http.StatusBadRequest},
		{"missing transaction", "42", `{"description": "x"}`, http.StatusNotFound},
		{"invalid id", "x", `{"description": "x"}`, http.StatusBadRequest},
		{"invalid amount", "1", `{"amount": "-1"}`, http.StatusBadRequest},
		{"malformed amount", "1", `{"amount": "lots"}`, http.StatusBadRequest},
		{"blank description", "1", `{"description": " "}`, http.StatusBadRequest},
		{"invalid date", "1", `{"date": "2025-13-01"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			app := newTestApp(t)
			app.seed(t, testutil.NewTransaction("2025-01-05", domain.CategoryOpex, "Rent", 0, 200000))
			handler := newTransactionHandler(app)

			c, rec := jsonContext(e, http.MethodPatch, "/", tt.body)
			c.SetParamNames("id")
			c.SetParamValues(tt.id)

			require.NoError(t, handler.UpdateTransaction(c))
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
		})
	}
}

func TestDeleteTransaction(t *testing.T) {
	e := echo.New()
	app := newTestApp(t)
	app.seed(t, sampleTransactions()...)
	handler := newTransactionHandler(app)

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("2")

	require.NoError(t, handler.DeleteTransaction(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Len(t, app.ledger.Snapshot().Transactions, 4)

	// Deleting again reports the missing row
	req = httptest.NewRequest(http.MethodDelete, "/", nil)
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("2")

	require.NoError(t, handler.DeleteTransaction(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBulkDelete(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantStatus  int
		wantDeleted int64
		wantLeft    int
	}{
		{"category", `{"target": "OPEX", "confirm": true}`, http.StatusOK, 1, 4},
		{"all", `{"target": "ALL", "confirm": true}`, http.StatusOK, 5, 0},
		{"lower case all", `{"target": "all", "confirm": true}`, http.StatusOK, 5, 0},
		{"unconfirmed", `{"target": "ALL"}`, http.StatusPreconditionRequired, 0, 5},
		{"unknown target", `{"target": "SALES", "confirm": true}`, http.StatusBadRequest, 0, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			app := newTestApp(t)
			app.seed(t, sampleTransactions()...)
			handler := newTransactionHandler(app)

			c, rec := jsonContext(e, http.MethodPost, "/api/v1/transactions/bulk-delete", tt.body)
			require.NoError(t, handler.BulkDelete(c))
			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())

			if tt.wantStatus == http.StatusOK {
				var response struct {
					Target  string `json:"target"`
					Deleted int64  `json:"deleted"`
				}
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
				assert.Equal(t, tt.wantDeleted, response.Deleted)
			}
			assert.Len(t, app.repo.Transactions, tt.wantLeft)
		})
	}
}

func TestImportTransactions(t *testing.T) {
	e := echo.New()
	app := newTestApp(t)
	handler := newTransactionHandler(app)

	body := `{"rows": [
		{"date": "2025-01-05", "category": "PENDAPATAN", "description": "Sale", "amount": "1000000"},
		{"date": "2025-01-06", "category": "OPERASIONAL", "description": "Rent", "amount": "250000"},
		{"date": "2025-01-07", "category": "Lainnya", "description": "Misc", "amount": "5000"},
		{"date": "bad-date", "category": "MODAL", "description": "Desk", "amount": "900000"}
	]}`
	c, rec := jsonContext(e, http.MethodPost, "/api/v1/transactions/import", body)

	require.NoError(t, handler.ImportTransactions(c))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var response ImportResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, 4, response.Total)
	assert.Equal(t, 3, response.Succeeded)
	assert.Equal(t, 1, response.Failed)
	require.Len(t, response.Results, 4)

	assert.Equal(t, "EARN", response.Results[0].Transaction.Category)
	assert.Equal(t, "1000000.00", response.Results[0].Transaction.Income)
	assert.Equal(t, "OPEX", response.Results[2].Transaction.Category, "unknown categories fall back to OPEX")
	assert.False(t, response.Results[3].Success)
	assert.NotEmpty(t, response.Results[3].Error)

	assert.Len(t, app.ledger.Snapshot().Transactions, 3)
}

func TestImportTransactions_MalformedAmount(t *testing.T) {
	e := echo.New()
	app := newTestApp(t)
	handler := newTransactionHandler(app)

	body := `{"rows": [{"date": "2025-01-05", "category": "EARN", "description": "Sale", "amount": "1.000.000"}]}`
	c, rec := jsonContext(e, http.MethodPost, "/api/v1/transactions/import", body)

	require.NoError(t, handler.ImportTransactions(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	problem := decodeProblem(t, rec)
	require.Len(t, problem.Errors, 1)
	assert.Equal(t, "rows[0].amount", problem.Errors[0].Field)
	assert.Equal(t, 0, app.repo.CallCount("Create"))
}

func TestImportTransactions_Empty(t *testing.T) {
	e := echo.New()
	app := newTestApp(t)
	handler := newTransactionHandler(app)

	c, rec := jsonContext(e, http.MethodPost, "/api/v1/transactions/import", `{"rows": []}`)
	require.NoError(t, handler.ImportTransactions(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
