package util

import (
	"fmt"
	"time"
)

// MonthRange returns the textual bounds YYYY-MM-01 and YYYY-MM-31 of a month.
// Dates compared as text against these bounds need no special case for short
// months.
func MonthRange(year, month int) (start, end string) {
	return fmt.Sprintf("%04d-%02d-01", year, month), fmt.Sprintf("%04d-%02d-31", year, month)
}

// InMonthRange reports whether date falls inside MonthRange(year, month)
func InMonthRange(date time.Time, year, month int) bool {
	start, end := MonthRange(year, month)
	d := date.Format("2006-01-02")
	return d >= start && d <= end
}
