package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateMeetingRequest struct {
	Text string `json:"text" validate:"required"`
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
	Time string `json:"time" validate:"required"`
}

type MeetingResponse struct {
	Id        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}
