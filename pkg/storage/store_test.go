package storage

import (
	"testing"
	"time"
)

func TestResetDue(t *testing.T) {
	now := time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC)

	cases := []struct {
		name      string
		resetDate time.Time
		want      bool
	}{
		{"yesterday", time.Date(2025, 6, 14, 23, 59, 0, 0, time.UTC), true},
		{"today earlier hour", time.Date(2025, 6, 15, 0, 1, 0, 0, time.UTC), false},
		{"today later hour", time.Date(2025, 6, 15, 22, 0, 0, 0, time.UTC), false},
		{"last month", time.Date(2025, 5, 31, 12, 0, 0, 0, time.UTC), true},
		{"last year", time.Date(2024, 12, 31, 12, 0, 0, 0, time.UTC), true},
		{"tomorrow", time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := resetDue(tc.resetDate, now); got != tc.want {
				t.Fatalf("resetDue(%v, %v) = %v, want %v", tc.resetDate, now, got, tc.want)
			}
		})
	}
}
