package extract

import (
	"regexp"
	"strings"
)

// leadingCommand strips the spoken command prefix ("remind me to ...",
// "add a priority to ...") so only the action itself remains.
var leadingCommand = regexp.MustCompile(`(?i)^(` +
	`set (the )?(a )?(reminder|alarm)( to| for)?` +
	`|set (the )?(a )?reminder( to)?` +
	`|set (the )?(a )?alarm( for)?` +
	`|remind(er)?( me)?( to)?` +
	`|send (a )?reminder( to)?` +
	`|schedule (a )?reminder( to)?` +
	`|create (a )?reminder( to)?` +
	`|add (a )?reminder( to)?` +
	`|set (a )?priority( to)?` +
	`|add (a )?priority( to)?` +
	`|create (a )?priority( to)?` +
	`|please ` +
	`|remind me to ` +
	`|remind to ` +
	`)`)

// trailingTemporal removes time, date and recurrence phrases anywhere in
// the remaining text ("tomorrow", "at 3pm", "every day", "on monday").
var trailingTemporal = regexp.MustCompile(`(?i)(` +
	` in the morning| in the evening| in the afternoon` +
	`| every day| daily| weekly| monthly` +
	`| tomorrow| today| next week| this week| tonight` +
	`|\s*\d{1,2}(:\d{2})?(am|pm)?` +
	`| on [^.,]+| at [^.,]+` +
	`)`)

var trailingPunct = regexp.MustCompile(`[.,!?]+$`)

// ConciseText reduces a full utterance to the bare action description.
// If stripping would leave nothing, the original text is preserved.
func ConciseText(text string) string {
	cleaned := leadingCommand.ReplaceAllString(text, "")
	cleaned = trailingTemporal.ReplaceAllString(cleaned, "")
	cleaned = trailingPunct.ReplaceAllString(cleaned, "")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return text
	}
	return cleaned
}
