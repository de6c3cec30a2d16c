package digest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var staleNow = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

var defaultFields = []string{"snapshot_iso", "timestamp"}

func TestStaleness_ManifestMissing(t *testing.T) {
	got := Staleness(nil, "https://cdn.example/manifest.json", staleNow, defaultFields, 120)
	assert.Equal(t, "Manifest missing at https://cdn.example/manifest.json", got)
}

func TestStaleness_TimestampMissing(t *testing.T) {
	got := Staleness(map[string]any{"other": "x"}, "u", staleNow, defaultFields, 120)
	assert.Equal(t, "Manifest timestamp missing", got)
}

func TestStaleness_TimestampUnreadable(t *testing.T) {
	got := Staleness(map[string]any{"snapshot_iso": "not-a-time"}, "u", staleNow, defaultFields, 120)
	assert.Equal(t, "Manifest timestamp unreadable: not-a-time", got)
}

func TestStaleness_Thresholds(t *testing.T) {
	// 90 minutes before "now"
	manifest := map[string]any{"snapshot_iso": "2026-08-30T10:30:00Z"}

	tests := []struct {
		name         string
		staleMinutes int
		want         string
	}{
		{"under default threshold", 120, "Snapshot 2026-08-30T10:30:00Z — 90 minutes ago"},
		{"over tight threshold", 60, "Snapshot 2026-08-30T10:30:00Z — 90 minutes ago (STALE!)"},
		{"legacy 90 threshold not exceeded at exactly 90", 90, "Snapshot 2026-08-30T10:30:00Z — 90 minutes ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Staleness(manifest, "u", staleNow, defaultFields, tt.staleMinutes))
		})
	}
}

func TestStaleness_FlooredMinutes(t *testing.T) {
	manifest := map[string]any{"snapshot_iso": "2026-08-30T11:58:30Z"}

	// 90 seconds elapsed floors to 1 minute.
	got := Staleness(manifest, "u", staleNow, defaultFields, 120)
	assert.Equal(t, "Snapshot 2026-08-30T11:58:30Z — 1 minutes ago", got)
}

func TestStaleness_NaiveTimestampAssumedUTC(t *testing.T) {
	manifest := map[string]any{"snapshot_iso": "2026-08-30T11:00:00"}

	got := Staleness(manifest, "u", staleNow, defaultFields, 120)
	assert.Equal(t, "Snapshot 2026-08-30T11:00:00 — 60 minutes ago", got)
}

func TestStaleness_FieldOrderConfigurable(t *testing.T) {
	manifest := map[string]any{
		"snapshot_iso": "2026-08-30T10:00:00Z",
		"timestamp":    "2026-08-30T11:00:00Z",
	}

	got := Staleness(manifest, "u", staleNow, defaultFields, 240)
	assert.Equal(t, "Snapshot 2026-08-30T10:00:00Z — 120 minutes ago", got)

	// Legacy variant read "timestamp" first.
	got = Staleness(manifest, "u", staleNow, []string{"timestamp", "snapshot_iso"}, 240)
	assert.Equal(t, "Snapshot 2026-08-30T11:00:00Z — 60 minutes ago", got)
}
