package handler

import (
	"time"

	"github.com/dafibh/hillside/hillside-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// TransactionResponse represents a transaction in API responses
type TransactionResponse struct {
	ID          int64  `json:"id"`
	Date        string `json:"date"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Income      string `json:"income"`
	Expense     string `json:"expense"`
	Account     string `json:"account"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// SummaryResponse represents the category buckets and derived figures
type SummaryResponse struct {
	Earn               string `json:"earn"`
	Opex               string `json:"opex"`
	Var                string `json:"var"`
	Capex              string `json:"capex"`
	Fin                string `json:"fin"`
	Income             string `json:"income"`
	Expense            string `json:"expense"`
	Net                string `json:"net"`
	Gross              string `json:"gross"`
	Cash               string `json:"cash"`
	Margin             string `json:"margin"`
	Uncategorized      string `json:"uncategorized"`
	UncategorizedCount int    `json:"uncategorizedCount"`
}

// MonthTotalResponse is one month of the monthly chart
type MonthTotalResponse struct {
	Month   int    `json:"month"`
	Name    string `json:"name"`
	Income  string `json:"income"`
	Expense string `json:"expense"`
}

// LedgerResponse is the loaded transaction list with its summary
type LedgerResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Summary      SummaryResponse       `json:"summary"`
	Monthly      []MonthTotalResponse  `json:"monthly"`
	LoadedAt     *string               `json:"loadedAt,omitempty"`
}

var hundred = decimal.NewFromInt(100)

func formatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func formatTimestamp(t time.Time) string {
	return t.Format(time.RFC3339)
}

func toTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		Date:        t.Date.Format(domain.DateLayout),
		Category:    string(t.Category),
		Description: t.Description,
		Income:      formatAmount(t.Income),
		Expense:     formatAmount(t.Expense),
		Account:     t.Account,
		CreatedAt:   formatTimestamp(t.CreatedAt),
		UpdatedAt:   formatTimestamp(t.UpdatedAt),
	}
}

func toTransactionResponses(transactions []*domain.Transaction) []TransactionResponse {
	response := make([]TransactionResponse, len(transactions))
	for i, t := range transactions {
		response[i] = toTransactionResponse(t)
	}
	return response
}

func toSummaryResponse(s domain.FinancialSummary) SummaryResponse {
	return SummaryResponse{
		Earn:               formatAmount(s.Earn),
		Opex:               formatAmount(s.Opex),
		Var:                formatAmount(s.Var),
		Capex:              formatAmount(s.Capex),
		Fin:                formatAmount(s.Fin),
		Income:             formatAmount(s.Income),
		Expense:            formatAmount(s.Expense),
		Net:                formatAmount(s.Net),
		Gross:              formatAmount(s.Gross),
		Cash:               formatAmount(s.Cash),
		Margin:             formatAmount(s.Margin),
		Uncategorized:      formatAmount(s.Uncategorized),
		UncategorizedCount: s.UncategorizedCount,
	}
}

func toMonthlyResponse(monthly domain.MonthlyTotals) []MonthTotalResponse {
	response := make([]MonthTotalResponse, len(monthly))
	for i, m := range monthly {
		response[i] = MonthTotalResponse{
			Month:   i + 1,
			Name:    domain.MonthName(i + 1),
			Income:  formatAmount(m.Income),
			Expense: formatAmount(m.Expense),
		}
	}
	return response
}
