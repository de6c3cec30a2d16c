package digest

import (
	"fmt"
	"math"
	"time"
)

// Staleness reports the age of the snapshot manifest relative to now.
// A nil manifest names the URL that was attempted; a manifest without a
// readable timestamp degrades to a message, never an error. Elapsed time
// is whole minutes, floored, and anything past the threshold gets the
// STALE marker.
func Staleness(manifest map[string]any, manifestURL string, now time.Time, fields []string, staleMinutes int) string {
	if manifest == nil {
		return "Manifest missing at " + manifestURL
	}

	iso := Row(manifest).First(fields...)
	if iso == "" {
		return "Manifest timestamp missing"
	}

	ts, ok := ParseISO(iso)
	if !ok {
		return "Manifest timestamp unreadable: " + iso
	}

	mins := int(math.Floor(now.UTC().Sub(ts).Minutes()))
	s := fmt.Sprintf("Snapshot %s — %d minutes ago", iso, mins)
	if mins > staleMinutes {
		s += " (STALE!)"
	}
	return s
}
