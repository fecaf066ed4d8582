package sentiment

import "strings"

// Sentiment classifies a short confirmation reply.
type Sentiment string

const (
	Affirmative Sentiment = "affirmative"
	Negative    Sentiment = "negative"
	Neutral     Sentiment = "neutral"
)

var affirmativeResponses = []string{
	"yes", "yeah", "yup", "yep", "sure", "okay", "ok", "please do", "go ahead",
	"add it", "set it", "create it", "do it", "absolutely", "definitely",
	"that's right", "correct", "right", "true", "indeed", "certainly",
}

var negativeResponses = []string{
	"no", "nope", "nah", "not", "don't", "do not", "cancel", "stop",
	"never mind", "forget it", "ignore", "skip", "pass",
}

// Classify decides whether a reply approves or rejects a pending action.
// The affirmative list is checked first, so a reply matching both wins as
// affirmative. Anything else is Neutral and is treated by the engine as a
// fresh request, never as an error.
func Classify(utterance string) Sentiment {
	lower := strings.ToLower(strings.TrimSpace(utterance))

	if matchesAny(lower, affirmativeResponses) {
		return Affirmative
	}
	if matchesAny(lower, negativeResponses) {
		return Negative
	}
	return Neutral
}

func matchesAny(lower string, responses []string) bool {
	for _, r := range responses {
		if strings.Contains(lower, r) || lower == r {
			return true
		}
	}
	return false
}
