package service

import (
	"testing"
	"time"

	"lifemind-be/internal/entity"
)

func TestDueInWindow(t *testing.T) {
	// Window: 2025-03-14 09:59 -> 10:00
	from := time.Date(2025, 3, 14, 9, 59, 0, 0, time.UTC)
	to := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		date      string
		clock     string
		recurring entity.Recurrence
		want      bool
	}{
		{"fires at window end", "2025-03-14", "10:00", entity.RecurrenceNone, true},
		{"already fired before window", "2025-03-14", "09:59", entity.RecurrenceNone, false},
		{"later today", "2025-03-14", "10:01", entity.RecurrenceNone, false},
		{"wrong day", "2025-03-15", "10:00", entity.RecurrenceNone, false},
		{"daily from past anchor", "2025-03-01", "10:00", entity.RecurrenceDaily, true},
		{"daily anchored in future", "2025-03-20", "10:00", entity.RecurrenceDaily, false},
		{"weekly same weekday", "2025-03-07", "10:00", entity.RecurrenceWeekly, true}, // both Fridays
		{"weekly different weekday", "2025-03-06", "10:00", entity.RecurrenceWeekly, false},
		{"monthly same day", "2025-02-14", "10:00", entity.RecurrenceMonthly, true},
		{"monthly different day", "2025-02-13", "10:00", entity.RecurrenceMonthly, false},
		{"yearly anniversary", "2024-03-14", "10:00", entity.RecurrenceYearly, true},
		{"unparseable time", "2025-03-14", "10am", entity.RecurrenceNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &entity.Reminder{
				Date:      tt.date,
				Time:      tt.clock,
				Recurring: tt.recurring,
			}
			if got := dueInWindow(r, from, to); got != tt.want {
				t.Errorf("dueInWindow(%s %s %s) = %v, want %v", tt.date, tt.clock, tt.recurring, got, tt.want)
			}
		})
	}
}
