package digest

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// UpcomingEarnings lists tickers reporting within the closed day window
// [0, windowDays], formatted "TICK (Nd)" and joined by comma. The day
// count compares date portions only: an earnings date of today is 0d and
// included. Rows with missing or unparseable dates are skipped silently.
//
// Entries sort lexicographically by the formatted string — alphabetical
// grouping, not soonest-first. Downstream consumers grep this exact
// format, so the ordering stays as-is.
func UpcomingEarnings(rows []Row, now time.Time, windowDays int) string {
	today := dateOnly(now.UTC())

	var items []string
	for _, r := range rows {
		t := r.First(aliasTicker...)
		if t == "" {
			continue
		}

		raw := r.First(aliasEarningsDate...)
		if raw == "" {
			continue
		}
		d, ok := ParseISO(raw)
		if !ok {
			continue
		}

		days := int(dateOnly(d).Sub(today).Hours() / 24)
		if days >= 0 && days <= windowDays {
			items = append(items, fmt.Sprintf("%s (%dd)", t, days))
		}
	}

	if len(items) == 0 {
		return "—"
	}
	sort.Strings(items)
	return strings.Join(items, ", ")
}
