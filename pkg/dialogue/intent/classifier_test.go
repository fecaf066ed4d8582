package intent

import (
	"reflect"
	"testing"
	"time"
)

var testNow = time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

func TestClassifyIntentFamilies(t *testing.T) {
	tests := []struct {
		name      string
		utterance string
		want      Intent
	}{
		{"reminder", "remind me to buy groceries tomorrow at 3pm", Reminder},
		{"priority", "add priority to finish report urgent", Priority},
		{"task", "add a todo for the garden", Task},
		{"meeting", "book an appointment with the dentist", Meeting},
		{"general", "hello there", General},
		// Last match wins: the meeting family check runs after the
		// reminder family, so an utterance with keywords from both
		// classifies as meeting.
		{"reminder plus call keyword", "remind me to call mom tomorrow at 3pm", Meeting},
		{"set plus conference", "set up a conference", Meeting},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Classify(tt.utterance, testNow)
			if c.Intent != tt.want {
				t.Errorf("Classify(%q).Intent = %s, want %s", tt.utterance, c.Intent, tt.want)
			}
		})
	}
}

func TestClassifySlotsAlwaysPopulated(t *testing.T) {
	for _, utterance := range []string{"hello", "remind me to water plants", "do the thing"} {
		c := Classify(utterance, testNow)
		if c.Slots.Text == "" {
			t.Errorf("Classify(%q) produced empty text slot", utterance)
		}
		if c.Slots.Date == "" {
			t.Errorf("Classify(%q) produced empty date slot", utterance)
		}
		if c.Slots.Time == "" {
			t.Errorf("Classify(%q) produced empty time slot", utterance)
		}
	}
}

func TestClassifyReminderMissingFields(t *testing.T) {
	c := Classify("set a reminder to water plants", testNow)

	if c.Intent != Reminder {
		t.Fatalf("Intent = %s, want %s", c.Intent, Reminder)
	}
	if want := []string{FieldTime, FieldDate}; !reflect.DeepEqual(c.MissingFields, want) {
		t.Errorf("MissingFields = %v, want %v", c.MissingFields, want)
	}
	// The two-tier contract: missing fields are still defaulted in data.
	if c.Slots.Date != "2025-03-14" {
		t.Errorf("Date = %q, want defaulted today", c.Slots.Date)
	}
	if c.Slots.Time != "09:00" {
		t.Errorf("Time = %q, want default 09:00", c.Slots.Time)
	}
	if c.Slots.Text != "water plants" {
		t.Errorf("Text = %q, want %q", c.Slots.Text, "water plants")
	}
}

func TestClassifyReminderComplete(t *testing.T) {
	c := Classify("set a reminder to water plants tomorrow at 5pm", testNow)

	if c.Intent != Reminder {
		t.Fatalf("Intent = %s, want %s", c.Intent, Reminder)
	}
	if len(c.MissingFields) != 0 {
		t.Errorf("MissingFields = %v, want empty", c.MissingFields)
	}
	if c.Slots.Time != "17:00" {
		t.Errorf("Time = %q, want 17:00", c.Slots.Time)
	}
	// Date keeps the literal phrase at this layer so it can be echoed
	// back to the user before resolution.
	if c.Slots.Date != "tomorrow" {
		t.Errorf("Date = %q, want literal phrase", c.Slots.Date)
	}
}

func TestClassifyPriority(t *testing.T) {
	c := Classify("add priority to finish report urgent", testNow)

	if c.Intent != Priority {
		t.Fatalf("Intent = %s, want %s", c.Intent, Priority)
	}
	if c.Slots.Priority != "high" {
		t.Errorf("Priority = %q, want high", c.Slots.Priority)
	}
	if len(c.MissingFields) != 0 {
		t.Errorf("MissingFields = %v, want empty", c.MissingFields)
	}
}

func TestClassifyPriorityMissingLevel(t *testing.T) {
	c := Classify("add priority to clean the desk", testNow)

	if c.Intent != Priority {
		t.Fatalf("Intent = %s, want %s", c.Intent, Priority)
	}
	if want := []string{FieldPriority}; !reflect.DeepEqual(c.MissingFields, want) {
		t.Errorf("MissingFields = %v, want %v", c.MissingFields, want)
	}
}

func TestClassifyTaskAndGeneralNeverMissing(t *testing.T) {
	for _, utterance := range []string{"add a todo for the garden", "hello there"} {
		c := Classify(utterance, testNow)
		if len(c.MissingFields) != 0 {
			t.Errorf("Classify(%q).MissingFields = %v, want empty", utterance, c.MissingFields)
		}
	}
}
