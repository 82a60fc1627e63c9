// Package dates infers a document date from free-form Spanish date phrases.
// It runs an ordered pattern cascade: long-form phrases with spelled-out days
// and "dos mil ..." years (common in OCR output of notarial documents), then
// plain numeric dates, then day-and-month phrases with no year. The first
// pattern that matches anywhere in the text decides the outcome; if its
// captured fields do not resolve to a valid calendar date, extraction reports
// no date rather than trying later patterns.
package dates

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// eraBase is the fixed year base: "dos mil veinte" resolves to 2000+20, and a
// phrase with no year token at all defaults to the base itself. The default
// is a deliberate policy, not an error.
const eraBase = 2000

const (
	// the second word of a "treinta y uno" style compound must be a unit
	// word: an open \p{L}+ there swallows a following conjunction
	// ("veinte y el vendedor") and poisons an otherwise valid capture
	unitExpr  = `(?:uno|dos|tres|cuatro|cinco|seis|siete|ocho|nueve)`
	dayExpr   = `(\d{1,2}|\p{L}+(?:\s+y\s+` + unitExpr + `)?)`
	monthExpr = `(\p{L}+)`
	// strict alternation for the year-less pattern, so that ordinary
	// "X de Y" phrases cannot shadow real dates
	strictMonthExpr = `(enero|febrero|marzo|abril|mayo|junio|julio|agosto|septiembre|setiembre|octubre|noviembre|diciembre)`
)

// The cascade, in priority order.
var patterns = []*regexp.Regexp{
	// "primero de marzo del dos mil veinte", "15 de enero del dos mil"
	regexp.MustCompile(`(?i)\b` + dayExpr + `\s+de\s+` + monthExpr + `\s+del?\s+(?:a(?:ñ|n)o\s+)?(?:dos\s+)?mil(?:\s+(\p{L}+(?:\s+y\s+` + unitExpr + `)?))?\b`),
	// "15 de enero de 2020", "3 enero 2020"
	regexp.MustCompile(`(?i)\b` + dayExpr + `\s+(?:de\s+)?` + monthExpr + `\s+(?:del?\s+)?(?:a(?:ñ|n)o\s+)?(\d{4})\b`),
	// "15 de enero" with no year token: defaults to the era base
	regexp.MustCompile(`(?i)\b` + dayExpr + `\s+de\s+` + strictMonthExpr + `\b`),
}

// Extract scans text for a Spanish date phrase and resolves it to a calendar
// date. The second return is false when no phrase matched or the matched
// phrase did not resolve; neither case is an error.
func Extract(text string) (time.Time, bool) {
	for i, re := range patterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		d, ok := resolve(m)
		if !ok {
			slog.Warn("date phrase did not resolve", "pattern", i, "match", strings.TrimSpace(m[0]))
			return time.Time{}, false
		}
		return d, true
	}
	slog.Debug("no date phrase found in text")
	return time.Time{}, false
}

// resolve turns captured (day, month, year?) tokens into a valid date.
func resolve(m []string) (time.Time, bool) {
	day, ok := resolveDay(m[1])
	if !ok {
		return time.Time{}, false
	}
	month, ok := resolveMonth(m[2])
	if !ok {
		return time.Time{}, false
	}
	yearTok := ""
	if len(m) > 3 {
		yearTok = m[3]
	}
	year, ok := resolveYear(yearTok)
	if !ok {
		return time.Time{}, false
	}

	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow (31 abril -> 1 mayo); reject it
	if d.Day() != day || d.Month() != month {
		return time.Time{}, false
	}
	return d, true
}

func resolveDay(tok string) (int, bool) {
	if n, err := strconv.Atoi(tok); err == nil {
		if n < 1 || n > 31 {
			return 0, false
		}
		return n, true
	}
	n, ok := spelledNumber(tok)
	if !ok || n < 1 || n > 31 {
		return 0, false
	}
	return n, true
}

func resolveMonth(tok string) (time.Month, bool) {
	m, ok := monthNames[fold(tok)]
	return m, ok
}

// resolveYear handles three year forms: a plain 4-digit number, a
// "mil [tens-word]" construct resolved against the era base, and an absent
// token, which falls back to the era base.
func resolveYear(tok string) (int, bool) {
	tok = strings.TrimSpace(tok)
	if tok == "" {
		return eraBase, true
	}
	if n, err := strconv.Atoi(tok); err == nil {
		return n, true
	}
	n, ok := spelledNumber(tok)
	if !ok {
		return 0, false
	}
	return eraBase + n, true
}

// spelledNumber resolves a word or a "X y Z" compound via the number table.
func spelledNumber(tok string) (int, bool) {
	fields := strings.Fields(fold(tok))
	switch len(fields) {
	case 1:
		n, ok := numberWords[fields[0]]
		return n, ok
	case 3:
		if fields[1] != "y" {
			return 0, false
		}
		a, okA := numberWords[fields[0]]
		b, okB := numberWords[fields[2]]
		if !okA || !okB {
			return 0, false
		}
		return a + b, true
	default:
		return 0, false
	}
}

func fold(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case 'á':
			return 'a'
		case 'é':
			return 'e'
		case 'í':
			return 'i'
		case 'ó':
			return 'o'
		case 'ú', 'ü':
			return 'u'
		}
		return r
	}, strings.ToLower(s))
}
