package extract

import (
	"fmt"
	"testing"
)

func TestTime(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  string
		found bool
	}{
		{"colon with meridiem", "call mom at 3:30pm", "15:30", true},
		{"colon 24 hour", "set it for 15:00", "15:00", true},
		{"bare hour pm", "remind me at 3pm", "15:00", true},
		{"bare hour with space", "meeting at 7 pm", "19:00", true},
		{"space separated", "wake me 6 45 am", "06:45", true},
		{"dot separated", "dinner at 7.15pm", "19:15", true},
		{"midnight", "at 12am", "00:00", true},
		{"noon", "lunch at 12pm", "12:00", true},
		{"no time", "water the plants", "", false},
		{"words only", "sometime soon please", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Time(tt.text)
			if ok != tt.found {
				t.Fatalf("Time(%q) found = %v, want %v", tt.text, ok, tt.found)
			}
			if got != tt.want {
				t.Errorf("Time(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

// Every supported (hour, minute, meridiem) combination must survive a
// render-then-extract round trip back to its 24-hour form.
func TestTimeRoundTrip(t *testing.T) {
	for hour := 1; hour <= 12; hour++ {
		for _, minute := range []int{0, 5, 15, 30, 45, 59} {
			for _, meridiem := range []string{"am", "pm"} {
				phrase := fmt.Sprintf("at %d:%02d%s", hour, minute, meridiem)

				want24 := hour
				if meridiem == "pm" && hour < 12 {
					want24 += 12
				}
				if meridiem == "am" && hour == 12 {
					want24 = 0
				}
				want := fmt.Sprintf("%02d:%02d", want24, minute)

				got, ok := Time(phrase)
				if !ok {
					t.Fatalf("Time(%q) found no time", phrase)
				}
				if got != want {
					t.Errorf("Time(%q) = %q, want %q", phrase, got, want)
				}
			}
		}
	}
}
