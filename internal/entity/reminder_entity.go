package entity

import (
	"time"

	"github.com/google/uuid"
)

type Recurrence string

const (
	RecurrenceNone    Recurrence = "none"
	RecurrenceDaily   Recurrence = "daily"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
	RecurrenceYearly  Recurrence = "yearly"
)

// Reminder carries Date as an ISO date string and Time as HH:MM, the same
// shape the dialogue engine emits.
type Reminder struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	Text        string
	Date        string
	Time        string
	Recurring   Recurrence
	Completed   bool
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	DeletedAt   *time.Time
	IsDeleted   bool
}
