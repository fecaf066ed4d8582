package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateReminderRequest struct {
	Text      string `json:"text" validate:"required"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Time      string `json:"time" validate:"required"`
	Recurring string `json:"recurring" validate:"omitempty,oneof=none daily weekly monthly yearly"`
}

type UpdateReminderRequest struct {
	Id        uuid.UUID
	Text      *string `json:"text"`
	Date      *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time      *string `json:"time"`
	Recurring *string `json:"recurring" validate:"omitempty,oneof=none daily weekly monthly yearly"`
}

type ReminderResponse struct {
	Id          uuid.UUID  `json:"id"`
	Text        string     `json:"text"`
	Date        string     `json:"date"`
	Time        string     `json:"time"`
	Recurring   string     `json:"recurring"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
