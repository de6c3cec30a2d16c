package digest

import (
	"fmt"
	"sort"
	"strings"
)

// unscoredSentinel ranks score-less rows below any real bounce score.
// Assumes real scores stay far above it; revisit if scores can go
// deeply negative.
const unscoredSentinel = -1e9

type buyCandidate struct {
	score  float64
	ticker string
	reason string
	zone   string
}

// BuyCandidates ranks entry-watchlist rows by bounce score, descending,
// and formats the top selections one line per candidate. Rows without a
// resolvable ticker are dropped; rows without a parseable score still
// rank, after every scored row. The sort is stable so sentinel-scored
// rows keep their source order.
func BuyCandidates(rows []Row, max int) []string {
	scored := make([]buyCandidate, 0, len(rows))
	for _, r := range rows {
		t := r.First(aliasTicker...)
		if t == "" {
			continue
		}

		score, ok := r.Float(aliasScore...)
		if !ok {
			score = unscoredSentinel
		}

		scored = append(scored, buyCandidate{
			score:  score,
			ticker: t,
			reason: strings.Join(reasonTags(r), ", "),
			zone:   r.First(aliasZone...),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})
	if max > 0 && len(scored) > max {
		scored = scored[:max]
	}

	out := make([]string, 0, len(scored))
	for _, c := range scored {
		line := fmt.Sprintf("   %s (%s)", c.ticker, c.reason)
		if c.zone != "" {
			line += " — " + c.zone
		}
		out = append(out, line)
	}

	if len(out) == 0 {
		return []string{placeholderLine}
	}
	return out
}

// reasonTags derives the order-significant tag list for one candidate.
// Tags are appended in a fixed sequence; a row matching nothing is
// tagged "watch".
func reasonTags(r Row) []string {
	var reasons []string

	if strings.HasPrefix(strings.ToLower(r.First("Recommendation")), "buy") {
		reasons = append(reasons, "Buy")
	}
	if rsi, ok := r.Float("RSI"); ok && rsi < 45 {
		reasons = append(reasons, "RSI<45")
	}
	if pb, ok := r.Float("%B"); ok && pb <= 0.05 {
		reasons = append(reasons, "%B≤0.05")
	}
	switch strings.ToLower(r.First("MACDHook")) {
	case "true", "yes", "hook", "cross", "hook/cross":
		reasons = append(reasons, "MACD hook")
	}
	if r.Truthy("EarningsSafe") {
		reasons = append(reasons, "ER≥35d")
	}

	if len(reasons) == 0 {
		return []string{"watch"}
	}
	return reasons
}
