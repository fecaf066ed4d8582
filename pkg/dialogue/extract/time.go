package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DefaultTime is used when no time can be extracted from an utterance.
const DefaultTime = "09:00"

// timePatterns are tried in order; the first match wins.
// minuteIdx 0 means the pattern carries no minute component.
var timePatterns = []struct {
	re          *regexp.Regexp
	minuteIdx   int
	meridiemIdx int
}{
	{regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})\s*(am|pm)?`), 2, 3},   // 3:30pm, 15:00
	{regexp.MustCompile(`(?i)(\d{1,2})\s+(\d{2})\s*(am|pm)?`), 2, 3}, // 3 30 pm
	{regexp.MustCompile(`(?i)(\d{1,2})\.(\d{2})\s*(am|pm)?`), 2, 3},  // 3.30pm
	{regexp.MustCompile(`(?i)(\d{1,2})\s*(am|pm)`), 0, 2},            // 3pm, 3 pm
}

// Time pulls a clock time out of free text and returns it in 24-hour
// "HH:MM" form. Hours without a meridiem are taken as already being
// 24-hour values.
func Time(text string) (string, bool) {
	for _, pattern := range timePatterns {
		match := pattern.re.FindStringSubmatch(text)
		if match == nil {
			continue
		}

		hour, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		minute := 0
		if pattern.minuteIdx > 0 && match[pattern.minuteIdx] != "" {
			minute, _ = strconv.Atoi(match[pattern.minuteIdx])
		}
		meridiem := strings.ToLower(match[pattern.meridiemIdx])

		if meridiem == "pm" && hour < 12 {
			hour += 12
		}
		if meridiem == "am" && hour == 12 {
			hour = 0
		}

		return fmt.Sprintf("%02d:%02d", hour, minute), true
	}
	return "", false
}
