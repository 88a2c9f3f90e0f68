// Package testutil provides small helpers shared by unit and integration
// tests.
package testutil

import (
	"testing"
	"time"

	"github.com/MikeAdelek/Google-Flight-Clone/internal/domain"
)

// MustParseDate parses a YYYY-MM-DD date and fails the test otherwise.
func MustParseDate(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse(domain.DateLayout, dateStr)
	if err != nil {
		t.Fatalf("failed to parse date %s: %v", dateStr, err)
	}
	return parsed
}

// FutureDate returns today plus the given number of days, formatted as a
// travel date. Keeps integration fixtures valid without hardcoded dates.
func FutureDate(days int) string {
	return time.Now().AddDate(0, 0, days).Format(domain.DateLayout)
}

// Ptr returns a pointer to the given value. Useful for pointer fields in
// payload fixtures.
func Ptr[T any](v T) *T {
	return &v
}
