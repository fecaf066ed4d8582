package extract

import "testing"

func TestPriorityLevel(t *testing.T) {
	tests := []struct {
		text  string
		want  string
		found bool
	}{
		{"this is urgent", PriorityHigh, true},
		{"critical bug in prod", PriorityHigh, true},
		{"high priority task", PriorityHigh, true},
		{"low priority cleanup", PriorityLow, true},
		{"medium importance", PriorityMedium, true},
		{"just a normal chore", PriorityMedium, true},
		{"finish the report", "", false},
		// "not urgent" hits the high band first via "urgent"; the band
		// order is the legacy tie-break and is locked in here.
		{"not urgent at all", PriorityHigh, true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := PriorityLevel(tt.text)
			if ok != tt.found {
				t.Fatalf("PriorityLevel(%q) found = %v, want %v", tt.text, ok, tt.found)
			}
			if got != tt.want {
				t.Errorf("PriorityLevel(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
