package domain

import "github.com/shopspring/decimal"

// RecentTransactionLimit caps the dashboard's recent list.
const RecentTransactionLimit = 10

// CategoryAmount is one slice of the expense breakdown.
type CategoryAmount struct {
	Category Category        `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// Dashboard is the overview panel: ledger-wide figures plus the most recent
// transactions matching the month and search filters.
type Dashboard struct {
	Summary          FinancialSummary `json:"summary"`
	Monthly          MonthlyTotals    `json:"monthly"`
	ExpenseBreakdown []CategoryAmount `json:"expenseBreakdown"`
	TotalExpenses    decimal.Decimal  `json:"totalExpenses"`
	Recent           []*Transaction   `json:"recent"`
	TransactionCount int              `json:"transactionCount"`
}

// LedgerSnapshot is a point-in-time copy of the ledger state.
type LedgerSnapshot struct {
	Transactions []*Transaction   `json:"transactions"`
	Summary      FinancialSummary `json:"summary"`
	Monthly      MonthlyTotals    `json:"monthly"`
}
