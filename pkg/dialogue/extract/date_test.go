package extract

import (
	"testing"
	"time"
)

func TestDatePhrase(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  string
		found bool
	}{
		{"tomorrow", "remind me to call mom tomorrow", "tomorrow", true},
		{"next week", "schedule it for next week", "next week", true},
		{"next month", "pay rent next month", "next month", true},
		{"today", "do it today", "today", true},
		{"tonight", "dinner tonight", "tonight", true},
		{"tomorrow beats today", "today or tomorrow", "tomorrow", true},
		{"month with day", "meeting on January 15", "January 15", true},
		{"month without day", "sometime in december", "december", true},
		{"nothing", "water the plants", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DatePhrase(tt.text)
			if ok != tt.found {
				t.Fatalf("DatePhrase(%q) found = %v, want %v", tt.text, ok, tt.found)
			}
			if got != tt.want {
				t.Errorf("DatePhrase(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestResolveDate(t *testing.T) {
	now := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		phrase string
		want   string
	}{
		{"tomorrow", "2025-03-15"},
		{"today", "2025-03-14"},
		{"tonight", "2025-03-14"},
		{"next week", "2025-03-21"},
		{"next month", "2025-04-14"},
		{"3 days from now", "2025-03-17"},
		{"10 days from now", "2025-03-24"},
		{"january 15", "2025-03-14"}, // unrecognized resolves to today
		{"", "2025-03-14"},
	}

	for _, tt := range tests {
		t.Run(tt.phrase, func(t *testing.T) {
			if got := ResolveDate(tt.phrase, now); got != tt.want {
				t.Errorf("ResolveDate(%q) = %q, want %q", tt.phrase, got, tt.want)
			}
		})
	}
}

func TestIsISODate(t *testing.T) {
	if !IsISODate("2025-03-14") {
		t.Error("expected 2025-03-14 to be recognized as ISO")
	}
	for _, s := range []string{"tomorrow", "next week", "March 15", ""} {
		if IsISODate(s) {
			t.Errorf("expected %q not to be recognized as ISO", s)
		}
	}
}
