package digest

import (
	"fmt"
	"strings"
)

// placeholderLine renders an empty list section.
const placeholderLine = "   —"

// riskFallback is emitted when the risk table carries no usable state.
const riskFallback = "Bootstrap row; system trigger"

// OversoldNotReady lists tickers that hit oversold screens but are still
// missing confirmation signals, in source order, uncapped. The next-check
// clause only appears alongside a missing-signals clause; a row with
// neither reduces to the bare ticker.
func OversoldNotReady(rows []Row) []string {
	var out []string
	for _, r := range rows {
		t := r.First(aliasTicker...)
		if t == "" {
			continue
		}

		missing := r.First(aliasMissing...)
		if missing == "" {
			out = append(out, "   "+t)
			continue
		}

		line := fmt.Sprintf("   %s — missing %s", t, missing)
		if next := r.First(aliasNextCheck...); next != "" {
			line += "; next " + next
		}
		out = append(out, line)
	}

	if len(out) == 0 {
		return []string{placeholderLine}
	}
	return out
}

// Exits lists exit-monitor tickers in source order, with the trigger
// reason appended when one resolves.
func Exits(rows []Row) []string {
	var out []string
	for _, r := range rows {
		t := r.First(aliasTicker...)
		if t == "" {
			continue
		}

		line := "   " + t
		if why := r.First(aliasExitWhy...); why != "" {
			line += " — " + why
		}
		out = append(out, line)
	}

	if len(out) == 0 {
		return []string{placeholderLine}
	}
	return out
}

// RiskQuota summarizes the first row of the risk table, which carries the
// single current-state record. Present flags join in fixed order.
func RiskQuota(rows []Row) string {
	if len(rows) == 0 {
		return riskFallback
	}
	r0 := rows[0]

	var flags []string
	if ks := r0.First(aliasKillSwitch...); ks != "" {
		flags = append(flags, "KillSwitch: "+ks)
	}
	if dd := r0.First(aliasDrawdown...); dd != "" {
		flags = append(flags, "DD: "+dd)
	}
	if q := r0.First(aliasQuotas...); q != "" {
		flags = append(flags, "Quotas: "+q)
	}

	if len(flags) == 0 {
		return riskFallback
	}
	return strings.Join(flags, ", ")
}
