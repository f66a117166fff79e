package id

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// New returns a fresh identifier for a category or transaction.
// The dashes are dropped so ids stay short in CSV exports and CLI args.
func New() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// FormatMonthKey returns a month key like "2025-01".
func FormatMonthKey(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// MonthKey returns the month key of t using t's own location, not UTC.
func MonthKey(t time.Time) string {
	return FormatMonthKey(t.Year(), int(t.Month()))
}
