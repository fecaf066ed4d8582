package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Priority struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      uuid.UUID `gorm:"type:uuid;not null;index"`
	Text        string    `gorm:"type:text;not null"`
	Priority    string    `gorm:"type:varchar(10);not null;default:'medium'"`
	Completed   bool      `gorm:"default:false"`
	CompletedAt *time.Time
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (Priority) TableName() string {
	return "priorities"
}
