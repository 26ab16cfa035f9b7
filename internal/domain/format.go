package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var idPrinter = message.NewPrinter(language.Indonesian)

var indonesianMonths = [12]string{
	"Jan", "Feb", "Mar", "Apr", "Mei", "Jun",
	"Jul", "Agu", "Sep", "Okt", "Nov", "Des",
}

// FormatRupiah renders the absolute value of an amount with Indonesian digit
// grouping, e.g. "Rp 1.500.000" or "Rp 2.500,5".
func FormatRupiah(amount decimal.Decimal) string {
	return "Rp " + formatIndonesian(amount.Abs())
}

// FormatSignedRupiah is FormatRupiah with a leading minus for negative amounts.
func FormatSignedRupiah(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return "-" + FormatRupiah(amount)
	}
	return FormatRupiah(amount)
}

func formatIndonesian(v decimal.Decimal) string {
	v = v.Round(2)
	whole := v.Truncate(0)
	out := idPrinter.Sprintf("%d", whole.IntPart())
	frac := v.Sub(whole)
	if frac.IsZero() {
		return out
	}
	digits := strings.TrimPrefix(frac.StringFixed(2), "0.")
	digits = strings.TrimRight(digits, "0")
	if digits == "" {
		return out
	}
	return out + "," + digits
}

// FormatShort abbreviates amounts for chart axes: millions as "jt", anything
// smaller as thousands ("rb").
func FormatShort(amount decimal.Decimal) string {
	million := decimal.NewFromInt(1_000_000)
	if amount.GreaterThanOrEqual(million) {
		return amount.Div(million).StringFixed(1) + "jt"
	}
	return amount.Div(decimal.NewFromInt(1000)).StringFixed(0) + "rb"
}

// FormatDate renders a calendar date as "02 Jan 2006" using Indonesian month
// abbreviations.
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%02d %s %d", t.Day(), indonesianMonths[t.Month()-1], t.Year())
}

// MonthName returns the English month name used in report titles.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return time.Month(month).String()
}
