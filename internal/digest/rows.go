package digest

import (
	"fmt"
	"strconv"
	"strings"
)

// Row is one record of a tabular snapshot. Column sets drift across
// snapshot generations and even across rows of the same table, so a Row
// is a loose string-keyed map rather than a struct.
type Row map[string]any

// ParseRows extracts the row sequence from a raw decoded table payload.
// Expected shape is {"rows": [{...}, ...]}. An absent payload, a missing
// "rows" key, or non-object entries all degrade to no rows, never an
// error. Source order is preserved: it is the tie-break for ranking.
func ParseRows(obj map[string]any) []Row {
	if obj == nil {
		return nil
	}

	raw, ok := obj["rows"].([]any)
	if !ok {
		return nil
	}

	rows := make([]Row, 0, len(raw))
	for _, r := range raw {
		if m, ok := r.(map[string]any); ok {
			rows = append(rows, Row(m))
		}
	}
	return rows
}

// First resolves a semantic field against an ordered list of column-name
// synonyms and returns the string form of the first one present with a
// non-blank value. The empty string means absent, never an error.
// Synonym order is fixed by the caller and never data-dependent.
func (r Row) First(keys ...string) string {
	for _, k := range keys {
		v, ok := r[k]
		if !ok || v == nil {
			continue
		}
		s := stringify(v)
		if strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}

// Float resolves a field via First and parses it as a number.
// Absent or unparseable values report ok=false; numeric parse failure is
// treated as value-absent throughout the digest, never as an error.
func (r Row) Float(keys ...string) (float64, bool) {
	s := strings.TrimSpace(r.First(keys...))
	if s == "" {
		return 0, false
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Truthy reports whether a flag-like field holds one of the accepted
// truthy tokens. A JSON boolean true counts, as do the string forms
// upstream sheets have used over time.
func (r Row) Truthy(key string) bool {
	v, ok := r[key]
	if !ok || v == nil {
		return false
	}

	if b, ok := v.(bool); ok {
		return b
	}

	switch strings.ToLower(strings.TrimSpace(stringify(v))) {
	case "true", "yes", "ok":
		return true
	}
	return false
}

// stringify renders a decoded JSON scalar the way it appeared in the
// source document: numbers without a forced exponent or trailing zeros.
func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		if t {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%v", t)
	}
}
