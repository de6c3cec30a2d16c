package digest

import (
	"fmt"
	"strings"
	"time"
)

// Table names published under each snapshot path.
const (
	TableEntryWatchlist  = "EntryWatchlist"
	TableOversoldTracker = "OversoldTracker"
	TableExitMonitor     = "ExitMonitor"
	TableRiskMonitor     = "RiskMonitor"
	TableEarningsMonitor = "EarningsMonitor"
	TableCurrentHoldings = "CurrentHoldings"
	TableSectorExposure  = "SectorExposure"
	TableMasterStockList = "MasterStockList"
	TableBacktestQueue   = "BacktestQueue"
	TableBacktestResults = "BacktestResults"
	TablePortfolioEquity = "PortfolioEquity"
)

// Tables lists every snapshot table fetched per run. The digest reads
// five of them; the rest are fetched best-effort so an outage on any
// single table still surfaces in the logs.
func Tables() []string {
	return []string{
		TableCurrentHoldings,
		TableExitMonitor,
		TableRiskMonitor,
		TableSectorExposure,
		TableEarningsMonitor,
		TableEntryWatchlist,
		TableOversoldTracker,
		TableMasterStockList,
		TableBacktestQueue,
		TableBacktestResults,
		TablePortfolioEquity,
	}
}

const headerTimeLayout = "2006-01-02 15:04"

// Options parameterize the behavioral deltas that differed between
// historical digest variants.
type Options struct {
	StaleMinutes       int
	ManifestFields     []string
	EarningsWindowDays int
	MaxBuyCandidates   int
}

// DefaultOptions returns the current production behavior
func DefaultOptions() Options {
	return Options{
		StaleMinutes:       120,
		ManifestFields:     []string{"snapshot_iso", "timestamp"},
		EarningsWindowDays: 14,
		MaxBuyCandidates:   8,
	}
}

// Builder assembles the five-section digest text from raw table payloads.
type Builder struct {
	opts        Options
	manifestURL string
}

// NewBuilder creates a digest builder. manifestURL is only used for the
// staleness message when the manifest itself could not be fetched.
func NewBuilder(opts Options, manifestURL string) *Builder {
	return &Builder{opts: opts, manifestURL: manifestURL}
}

// Build produces the full digest document. Pure composition: identical
// inputs and clock produce byte-identical text. Section headers are
// literal and grepped by downstream consumers; none may be omitted even
// when empty.
func (b *Builder) Build(now time.Time, tables map[string]map[string]any, manifest map[string]any) string {
	entry := ParseRows(tables[TableEntryWatchlist])
	over := ParseRows(tables[TableOversoldTracker])
	exits := ParseRows(tables[TableExitMonitor])
	risk := ParseRows(tables[TableRiskMonitor])
	earn := ParseRows(tables[TableEarningsMonitor])

	nowUTC := now.UTC()

	var sb strings.Builder
	fmt.Fprintf(&sb, "Watchlist Digest — %sZ\n\n", nowUTC.Format(headerTimeLayout))
	fmt.Fprintf(&sb, "1) Buy Candidates\n%s\n\n",
		strings.Join(BuyCandidates(entry, b.opts.MaxBuyCandidates), "\n"))
	fmt.Fprintf(&sb, "2) Oversold but Not Ready\n%s\n\n",
		strings.Join(OversoldNotReady(over), "\n"))
	fmt.Fprintf(&sb, "3) Exits\n%s\n\n",
		strings.Join(Exits(exits), "\n"))
	fmt.Fprintf(&sb, "4) Risk & Quotas\n   %s\n\n",
		RiskQuota(risk))
	fmt.Fprintf(&sb, "5) Upcoming Earnings (next %d days)\n   %s\n\n",
		b.opts.EarningsWindowDays, UpcomingEarnings(earn, nowUTC, b.opts.EarningsWindowDays))
	fmt.Fprintf(&sb, "Staleness\n   %s\n",
		Staleness(manifest, b.manifestURL, nowUTC, b.opts.ManifestFields, b.opts.StaleMinutes))

	return sb.String()
}
