package entity

import (
	"time"

	"github.com/google/uuid"
)

type Meeting struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Text      string
	Date      string
	Time      string
	Completed bool
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
	IsDeleted bool
}
