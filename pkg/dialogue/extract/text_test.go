package extract

import "testing"

func TestConciseText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"remind me to", "remind me to call mom tomorrow at 3pm", "call mom"},
		{"set a reminder to", "set a reminder to water plants", "water plants"},
		{"please prefix", "please buy groceries", "buy groceries"},
		{"add priority to", "add priority to finish report", "finish report"},
		{"trailing recurrence", "take medicine every day", "take medicine"},
		{"trailing on phrase", "submit the form on monday", "submit the form"},
		{"trailing punctuation", "walk the dog!", "walk the dog"},
		{"already clean", "call mom", "call mom"},
		{"trailing time phrase", "tomorrow at 5pm", "tomorrow"},
		{"stripping everything preserves original", "3pm", "3pm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ConciseText(tt.text); got != tt.want {
				t.Errorf("ConciseText(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

// Normalizing already-normalized text must return it unchanged.
func TestConciseTextIdempotent(t *testing.T) {
	inputs := []string{
		"call mom",
		"water plants",
		"finish the quarterly report",
		"buy groceries",
	}
	for _, in := range inputs {
		once := ConciseText(in)
		twice := ConciseText(once)
		if once != twice {
			t.Errorf("ConciseText not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}
