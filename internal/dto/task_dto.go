package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTaskRequest struct {
	Text string `json:"text" validate:"required"`
}

type TaskResponse struct {
	Id          uuid.UUID  `json:"id"`
	Text        string     `json:"text"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
