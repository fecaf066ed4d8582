package dto

import "github.com/google/uuid"

// ReminderDueMessage travels over the in-process queue from the due
// scanner to the delivery consumer.
type ReminderDueMessage struct {
	ReminderId uuid.UUID `json:"reminder_id"`
}
