package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Reminder struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      uuid.UUID `gorm:"type:uuid;not null;index"`
	Text        string    `gorm:"type:text;not null"`
	Date        string    `gorm:"type:varchar(10);not null;index"` // ISO date
	Time        string    `gorm:"type:varchar(5);not null"`        // HH:MM
	Recurring   string    `gorm:"type:varchar(20);not null;default:'none'"`
	Completed   bool      `gorm:"default:false"`
	CompletedAt *time.Time
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (Reminder) TableName() string {
	return "reminders"
}
