package sentiment

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		utterance string
		want      Sentiment
	}{
		{"yes", Affirmative},
		{"Yes please", Affirmative},
		{"yeah go ahead", Affirmative},
		{"  OK  ", Affirmative},
		{"absolutely", Affirmative},
		{"that's right", Affirmative},
		{"no", Negative},
		{"nope", Negative},
		{"cancel that", Negative},
		{"never mind", Negative},
		{"forget it", Negative},
		{"meh", Neutral},
		{"what about thursday", Neutral},
		{"", Neutral},
	}

	for _, tt := range tests {
		t.Run(tt.utterance, func(t *testing.T) {
			if got := Classify(tt.utterance); got != tt.want {
				t.Errorf("Classify(%q) = %s, want %s", tt.utterance, got, tt.want)
			}
		})
	}
}

// A reply matching both word lists is affirmative because that list is
// checked first.
func TestClassifyAffirmativeWinsOverlap(t *testing.T) {
	if got := Classify("yes, don't wait"); got != Affirmative {
		t.Errorf("Classify overlap = %s, want %s", got, Affirmative)
	}
}
