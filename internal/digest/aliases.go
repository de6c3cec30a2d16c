package digest

// Field alias groups. Each semantic field maps to the column-name
// synonyms that have appeared across snapshot generations; resolution
// takes the first present non-blank value in this fixed order.
var (
	aliasTicker    = []string{"Ticker", "Symbol"}
	aliasScore     = []string{"BounceScore"}
	aliasZone      = []string{"EntryZone", "Entry Zone", "SuggestedEntry"}
	aliasMissing   = []string{"MissingSignals", "Missing", "Need"}
	aliasNextCheck = []string{"NextCheckAt", "Next Check", "NextCheckAt (ISO8601)"}
	aliasExitWhy   = []string{"Reason", "Trigger", "Status"}

	aliasKillSwitch = []string{"KillSwitch", "KillSwitchState"}
	aliasDrawdown   = []string{"Drawdown", "DD_Pct", "DD"}
	aliasQuotas     = []string{"SectorOverweights", "QuotaFlags", "Sector Quotas"}

	aliasEarningsDate = []string{
		"EarningsDate",
		"NextEarnings",
		"EarningsDateISO",
		"Next ER (ISO)",
		"Next ER (Est.)",
		"NextERISO",
	}
)
