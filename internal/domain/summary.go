package domain

import "github.com/shopspring/decimal"

// Capital is the paid-in capital, also carried as the book value of property.
var Capital = decimal.NewFromInt(350_000_000)

// FinancialSummary holds the per-category buckets and derived figures of a
// transaction list.
type FinancialSummary struct {
	Earn    decimal.Decimal `json:"earn"`
	Opex    decimal.Decimal `json:"opex"`
	Var     decimal.Decimal `json:"var"`
	Capex   decimal.Decimal `json:"capex"`
	Fin     decimal.Decimal `json:"fin"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
	Gross   decimal.Decimal `json:"gross"`
	Cash    decimal.Decimal `json:"cash"`
	Margin  decimal.Decimal `json:"margin"`

	// Amounts whose category matched no bucket. They are still part of
	// Income and Expense.
	Uncategorized      decimal.Decimal `json:"uncategorized"`
	UncategorizedCount int             `json:"uncategorizedCount"`
}

// Bucket returns the bucket total for a category.
func (s *FinancialSummary) Bucket(c Category) decimal.Decimal {
	switch c {
	case CategoryEarn:
		return s.Earn
	case CategoryOpex:
		return s.Opex
	case CategoryVar:
		return s.Var
	case CategoryCapex:
		return s.Capex
	case CategoryFin:
		return s.Fin
	}
	return decimal.Zero
}

// TotalExpenses is the sum of the four expense buckets.
func (s *FinancialSummary) TotalExpenses() decimal.Decimal {
	return s.Opex.Add(s.Var).Add(s.Capex).Add(s.Fin)
}

type MonthTotal struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// MonthlyTotals is indexed by month of year, January first. Years collapse.
type MonthlyTotals [12]MonthTotal

// CategoryTotals credits EARN to income and every other category to expense.
type CategoryTotals struct {
	Earn    decimal.Decimal `json:"earn"`
	Opex    decimal.Decimal `json:"opex"`
	Var     decimal.Decimal `json:"var"`
	Capex   decimal.Decimal `json:"capex"`
	Fin     decimal.Decimal `json:"fin"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// GrossProfit is revenue less variable costs.
func (c *CategoryTotals) GrossProfit() decimal.Decimal {
	return c.Earn.Sub(c.Var)
}

// NetProfit is gross profit less operating expenses.
func (c *CategoryTotals) NetProfit() decimal.Decimal {
	return c.GrossProfit().Sub(c.Opex)
}
