package service

import (
	"github.com/dafibh/hillside/hillside-backend/internal/domain"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Summarize folds a transaction list into category buckets and grand totals.
// Income and expense always reach the grand totals; the bucket amount (income
// when positive, expense otherwise) only reaches a bucket when the category
// is one of the five known values.
func Summarize(transactions []*domain.Transaction) domain.FinancialSummary {
	var s domain.FinancialSummary

	for _, tx := range transactions {
		s.Income = s.Income.Add(tx.Income)
		s.Expense = s.Expense.Add(tx.Expense)

		amount := tx.Amount()
		category, err := domain.ParseCategory(string(tx.Category))
		if err != nil {
			s.Uncategorized = s.Uncategorized.Add(amount)
			s.UncategorizedCount++
			log.Warn().
				Int64("transaction_id", tx.ID).
				Str("category", string(tx.Category)).
				Str("amount", amount.String()).
				Msg("Transaction has unknown category, excluded from category totals")
			continue
		}

		switch category {
		case domain.CategoryEarn:
			s.Earn = s.Earn.Add(amount)
		case domain.CategoryOpex:
			s.Opex = s.Opex.Add(amount)
		case domain.CategoryVar:
			s.Var = s.Var.Add(amount)
		case domain.CategoryCapex:
			s.Capex = s.Capex.Add(amount)
		case domain.CategoryFin:
			s.Fin = s.Fin.Add(amount)
		}
	}

	s.Net = s.Earn.Sub(s.Opex).Sub(s.Var)
	s.Gross = s.Earn.Sub(s.Var)
	s.Cash = s.Income.Sub(s.Expense)
	if s.Earn.IsPositive() {
		s.Margin = s.Gross.Mul(hundred).Div(s.Earn)
	}

	return s
}

// MonthlyTotals buckets income and expense by month of year. Years collapse
// into the same twelve buckets.
func MonthlyTotals(transactions []*domain.Transaction) domain.MonthlyTotals {
	var months domain.MonthlyTotals
	for i := range months {
		months[i] = domain.MonthTotal{Income: decimal.Zero, Expense: decimal.Zero}
	}

	for _, tx := range transactions {
		if tx.Date.IsZero() {
			continue
		}
		m := &months[tx.Date.Month()-1]
		m.Income = m.Income.Add(tx.Income)
		m.Expense = m.Expense.Add(tx.Expense)
	}

	return months
}

// CategoryTotals applies the monthly report rule: EARN credits income, every
// other known category credits expense. Unknown categories are skipped.
func CategoryTotals(transactions []*domain.Transaction) domain.CategoryTotals {
	var c domain.CategoryTotals

	for _, tx := range transactions {
		category, err := domain.ParseCategory(string(tx.Category))
		if err != nil {
			continue
		}

		if category.IsIncome() {
			c.Earn = c.Earn.Add(tx.Income)
			c.Income = c.Income.Add(tx.Income)
			continue
		}

		c.Expense = c.Expense.Add(tx.Expense)
		switch category {
		case domain.CategoryOpex:
			c.Opex = c.Opex.Add(tx.Expense)
		case domain.CategoryVar:
			c.Var = c.Var.Add(tx.Expense)
		case domain.CategoryCapex:
			c.Capex = c.Capex.Add(tx.Expense)
		case domain.CategoryFin:
			c.Fin = c.Fin.Add(tx.Expense)
		}
	}

	return c
}
