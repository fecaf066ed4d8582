package intent

import (
	"strings"
	"time"

	"lifemind-be/pkg/dialogue/extract"
)

// Intent is the detected action family for an utterance.
type Intent string

const (
	General  Intent = "general"
	Reminder Intent = "reminder"
	Priority Intent = "priority"
	Task     Intent = "task"
	Meeting  Intent = "meeting"
)

// Field names reported as missing when extraction cannot supply them.
const (
	FieldTime     = "time"
	FieldDate     = "date"
	FieldPriority = "priority"
)

// Slots is the extracted field set for an utterance. Text, Date and Time
// are always populated: defaults (today, 09:00) are applied before any
// intent-specific extraction runs. MissingFields on the Classification
// marks which of those values were defaulted rather than user-supplied.
type Slots struct {
	Text     string `json:"text"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Priority string `json:"priority,omitempty"`
}

// Classification is the full result of one classifier pass.
type Classification struct {
	Intent        Intent
	Slots         Slots
	MissingFields []string
}

// rules are evaluated in a fixed order and the LAST matching family wins.
// An utterance with both reminder and meeting keywords therefore
// classifies as meeting; the tie-break is deliberate and reproducible.
var rules = []struct {
	intent   Intent
	keywords []string
}{
	{Reminder, []string{"remind", "reminder", "schedule", "set"}},
	{Priority, []string{"priority", "important", "urgent", "critical"}},
	{Task, []string{"task", "todo", "do", "complete"}},
	{Meeting, []string{"meeting", "appointment", "call", "conference"}},
}

// Classify inspects the utterance keywords to pick an intent and runs the
// relevant extractors. It never fails: unmatched patterns degrade to
// defaults or to the general intent.
func Classify(utterance string, now time.Time) Classification {
	lower := strings.ToLower(utterance)

	c := Classification{
		Intent: General,
		Slots: Slots{
			Text: extract.ConciseText(utterance),
			Date: defaultDate(utterance, now),
			Time: defaultClock(utterance),
		},
	}

	for _, rule := range rules {
		if containsAny(lower, rule.keywords) {
			c.Intent = rule.intent
		}
	}

	switch c.Intent {
	case Reminder, Meeting:
		if t, ok := extract.Time(utterance); ok {
			c.Slots.Time = t
		} else {
			c.MissingFields = append(c.MissingFields, FieldTime)
		}
		if d, ok := extract.DatePhrase(utterance); ok {
			c.Slots.Date = d
		} else {
			c.MissingFields = append(c.MissingFields, FieldDate)
		}
	case Priority:
		if p, ok := extract.PriorityLevel(utterance); ok {
			c.Slots.Priority = p
		} else {
			c.MissingFields = append(c.MissingFields, FieldPriority)
		}
	}

	return c
}

// defaultDate resolves any date phrase in the utterance, falling back to
// today so the slot is never empty.
func defaultDate(utterance string, now time.Time) string {
	if phrase, ok := extract.DatePhrase(utterance); ok {
		return extract.ResolveDate(phrase, now)
	}
	return extract.ResolveDate("", now)
}

func defaultClock(utterance string) string {
	if t, ok := extract.Time(utterance); ok {
		return t
	}
	return extract.DefaultTime
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
