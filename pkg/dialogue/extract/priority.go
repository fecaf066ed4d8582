package extract

import "strings"

// Priority level values shared with the persistence layer.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// priorityBands are evaluated in order; the first band with a keyword hit
// wins. "not urgent" is listed in the low band but any text containing
// "urgent" already hits the high band, which keeps the legacy tie-break.
var priorityBands = []struct {
	level    string
	keywords []string
}{
	{PriorityHigh, []string{"high", "urgent", "critical"}},
	{PriorityLow, []string{"low", "not urgent"}},
	{PriorityMedium, []string{"medium", "normal"}},
}

// PriorityLevel maps keywords in the text onto a priority level.
func PriorityLevel(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, band := range priorityBands {
		for _, kw := range band.keywords {
			if strings.Contains(lower, kw) {
				return band.level, true
			}
		}
	}
	return "", false
}
