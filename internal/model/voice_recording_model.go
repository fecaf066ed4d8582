package model

import (
	"time"

	"github.com/google/uuid"
)

type VoiceRecording struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId        uuid.UUID `gorm:"type:uuid;not null;index"`
	AudioUrl      string    `gorm:"type:text;not null"`
	Transcription *string   `gorm:"type:text"`
	Processed     bool      `gorm:"default:false"`
	ReminderText  *string   `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

func (VoiceRecording) TableName() string {
	return "voice_recordings"
}
