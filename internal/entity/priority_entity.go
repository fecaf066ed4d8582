package entity

import (
	"time"

	"github.com/google/uuid"
)

type PriorityLevel string

const (
	PriorityLevelHigh   PriorityLevel = "high"
	PriorityLevelMedium PriorityLevel = "medium"
	PriorityLevelLow    PriorityLevel = "low"
)

type Priority struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	Text        string
	Priority    PriorityLevel
	Completed   bool
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	DeletedAt   *time.Time
	IsDeleted   bool
}
