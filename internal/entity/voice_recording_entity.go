package entity

import (
	"time"

	"github.com/google/uuid"
)

type VoiceRecording struct {
	Id            uuid.UUID
	UserId        uuid.UUID
	AudioUrl      string
	Transcription *string
	Processed     bool
	ReminderText  *string
	CreatedAt     time.Time
}
