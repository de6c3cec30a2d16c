package digest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// frozen clock for window tests
var earnNow = time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

func TestUpcomingEarnings_WindowBoundaries(t *testing.T) {
	tests := []struct {
		name string
		date string
		want string
	}{
		{"today is 0d and included", "2026-08-30", "T (0d)"},
		{"today with time portion", "2026-08-30T23:59:00Z", "T (0d)"},
		{"14 days out included", "2026-09-13", "T (14d)"},
		{"15 days out excluded", "2026-09-14", "—"},
		{"past date excluded", "2026-08-29", "—"},
		{"no timezone assumed UTC", "2026-09-01T09:30:00", "T (2d)"},
		{"zulu suffix", "2026-09-01T09:30:00Z", "T (2d)"},
		{"explicit offset", "2026-09-01T09:30:00+00:00", "T (2d)"},
		{"unparseable skipped", "soon", "—"},
		{"missing date skipped", "", "—"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := Row{"Ticker": "T"}
			if tt.date != "" {
				row["EarningsDate"] = tt.date
			}
			assert.Equal(t, tt.want, UpcomingEarnings([]Row{row}, earnNow, 14))
		})
	}
}

func TestUpcomingEarnings_SortsLexicographically(t *testing.T) {
	rows := []Row{
		{"Ticker": "ZZZ", "EarningsDate": "2026-08-31"},
		{"Ticker": "AAA", "EarningsDate": "2026-09-10"},
		{"Ticker": "MMM", "EarningsDate": "2026-08-30"},
	}

	// Alphabetical by formatted string, not soonest-first.
	got := UpcomingEarnings(rows, earnNow, 14)
	assert.Equal(t, "AAA (11d), MMM (0d), ZZZ (1d)", got)
}

func TestUpcomingEarnings_DateAliases(t *testing.T) {
	rows := []Row{
		{"Ticker": "A", "NextEarnings": "2026-09-01"},
		{"Ticker": "B", "Next ER (ISO)": "2026-09-01"},
		{"Ticker": "C", "NextERISO": "2026-09-01"},
	}

	got := UpcomingEarnings(rows, earnNow, 14)
	assert.Equal(t, "A (2d), B (2d), C (2d)", got)
}

func TestUpcomingEarnings_SkipsRowsWithoutTicker(t *testing.T) {
	rows := []Row{
		{"EarningsDate": "2026-09-01"},
	}
	assert.Equal(t, "—", UpcomingEarnings(rows, earnNow, 14))
}

func TestParseISO(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
		ok    bool
	}{
		{"zulu", "2026-08-30T12:30:00Z", time.Date(2026, 8, 30, 12, 30, 0, 0, time.UTC), true},
		{"offset", "2026-08-30T12:30:00+02:00", time.Date(2026, 8, 30, 12, 30, 0, 0, time.FixedZone("", 2*3600)), true},
		{"naive assumed utc", "2026-08-30T12:30:00", time.Date(2026, 8, 30, 12, 30, 0, 0, time.UTC), true},
		{"date only", "2026-08-30", time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), true},
		{"minutes precision", "2026-08-30T12:30", time.Date(2026, 8, 30, 12, 30, 0, 0, time.UTC), true},
		{"fractional seconds", "2026-08-30T12:30:00.500Z", time.Date(2026, 8, 30, 12, 30, 0, 500000000, time.UTC), true},
		{"space separator", "2026-08-30 12:30:00", time.Date(2026, 8, 30, 12, 30, 0, 0, time.UTC), true},
		{"empty", "", time.Time{}, false},
		{"garbage", "next tuesday", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseISO(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, got.Equal(tt.want), "got %v want %v", got, tt.want)
			}
		})
	}
}
