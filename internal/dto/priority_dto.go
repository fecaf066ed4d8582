package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreatePriorityRequest struct {
	Text     string `json:"text" validate:"required"`
	Priority string `json:"priority" validate:"required,oneof=high medium low"`
}

type UpdatePriorityRequest struct {
	Id       uuid.UUID
	Text     *string `json:"text"`
	Priority *string `json:"priority" validate:"omitempty,oneof=high medium low"`
}

type PriorityResponse struct {
	Id          uuid.UUID  `json:"id"`
	Text        string     `json:"text"`
	Priority    string     `json:"priority"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
