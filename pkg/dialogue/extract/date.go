package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// datePhrases are checked in priority order; the first literal found wins.
var datePhrases = []string{"tomorrow", "next week", "next month", "today", "tonight"}

var monthNames = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

var (
	monthDayRes  = buildMonthDayPatterns()
	daysFromNow  = regexp.MustCompile(`(?i)(\d+)\s*days?\s*from\s*now`)
	isoDateShape = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

func buildMonthDayPatterns() map[string]*regexp.Regexp {
	res := make(map[string]*regexp.Regexp, len(monthNames))
	for _, m := range monthNames {
		res[m] = regexp.MustCompile(`(?i)` + m + `\s*(\d{1,2})?`)
	}
	return res
}

// DatePhrase finds the literal date phrase in the text without resolving
// it to a calendar date, so callers can echo the user's own wording back
// before resolution. Falls back to a month name with an optional day.
func DatePhrase(text string) (string, bool) {
	lower := strings.ToLower(text)

	for _, phrase := range datePhrases {
		if strings.Contains(lower, phrase) {
			return phrase, true
		}
	}

	for _, month := range monthNames {
		if !strings.Contains(lower, month) {
			continue
		}
		if match := monthDayRes[month].FindString(text); match != "" {
			return strings.TrimSpace(match), true
		}
	}

	return "", false
}

// ResolveDate turns a literal phrase into a concrete ISO date relative to
// now. Unrecognized phrases resolve to today.
func ResolveDate(phrase string, now time.Time) string {
	switch strings.ToLower(strings.TrimSpace(phrase)) {
	case "tomorrow":
		return isoDate(now.AddDate(0, 0, 1))
	case "today", "tonight":
		return isoDate(now)
	case "next week":
		return isoDate(now.AddDate(0, 0, 7))
	case "next month":
		return isoDate(now.AddDate(0, 1, 0))
	}

	if match := daysFromNow.FindStringSubmatch(phrase); match != nil {
		days, err := strconv.Atoi(match[1])
		if err == nil {
			return isoDate(now.AddDate(0, 0, days))
		}
	}

	return isoDate(now)
}

// IsISODate reports whether s is already a resolved YYYY-MM-DD date.
func IsISODate(s string) bool {
	return isoDateShape.MatchString(s)
}

func isoDate(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), t.Month(), t.Day())
}
