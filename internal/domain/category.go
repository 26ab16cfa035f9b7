package domain

import (
	"strings"
)

// Category classifies a transaction for the statements.
type Category string

const (
	CategoryEarn  Category = "EARN"
	CategoryOpex  Category = "OPEX"
	CategoryVar   Category = "VAR"
	CategoryCapex Category = "CAPEX"
	CategoryFin   Category = "FIN"
)

// Categories lists every valid category in display order.
var Categories = []Category{
	CategoryEarn,
	CategoryOpex,
	CategoryVar,
	CategoryCapex,
	CategoryFin,
}

// ExpenseCategories are the categories shown in the dashboard expense breakdown.
var ExpenseCategories = []Category{
	CategoryOpex,
	CategoryVar,
	CategoryCapex,
	CategoryFin,
}

// ParseCategory accepts a category code in any letter case.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToUpper(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}

func (c Category) Valid() bool {
	switch c {
	case CategoryEarn, CategoryOpex, CategoryVar, CategoryCapex, CategoryFin:
		return true
	}
	return false
}

// IsIncome reports whether amounts in this category are recorded as income.
func (c Category) IsIncome() bool {
	return c == CategoryEarn
}

// DefaultAccount is the account used when an entry does not name one.
func (c Category) DefaultAccount() string {
	if c == CategoryFin {
		return "Cash"
	}
	return "BCA"
}

func (c Category) Label() string {
	switch c {
	case CategoryEarn:
		return "Revenue"
	case CategoryOpex:
		return "Operating Expenses"
	case CategoryVar:
		return "Variable Costs"
	case CategoryCapex:
		return "Capital Expenditure"
	case CategoryFin:
		return "Financing"
	}
	return string(c)
}

var categoryAliases = map[string]Category{
	"PENDAPATAN":  CategoryEarn,
	"EARN":        CategoryEarn,
	"OPERASIONAL": CategoryOpex,
	"OPEX":        CategoryOpex,
	"VARIABEL":    CategoryVar,
	"VAR":         CategoryVar,
	"MODAL":       CategoryCapex,
	"CAPEX":       CategoryCapex,
	"KEUANGAN":    CategoryFin,
	"FIN":         CategoryFin,
}

// CategoryFromAlias maps spreadsheet category names (English or Indonesian)
// to a category. Unknown names fall back to OPEX.
func CategoryFromAlias(s string) Category {
	if c, ok := categoryAliases[strings.ToUpper(strings.TrimSpace(s))]; ok {
		return c
	}
	return CategoryOpex
}

// BulkDeleteAll targets every transaction in a bulk delete.
const BulkDeleteAll = "ALL"

// BulkDeleteTarget is either a single category or every transaction.
type BulkDeleteTarget struct {
	All      bool
	Category Category
}

func ParseBulkDeleteTarget(s string) (BulkDeleteTarget, error) {
	if strings.EqualFold(strings.TrimSpace(s), BulkDeleteAll) {
		return BulkDeleteTarget{All: true}, nil
	}
	c, err := ParseCategory(s)
	if err != nil {
		return BulkDeleteTarget{}, err
	}
	return BulkDeleteTarget{Category: c}, nil
}

func (t BulkDeleteTarget) String() string {
	if t.All {
		return BulkDeleteAll
	}
	return string(t.Category)
}
