package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ConversationTurn struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID      `gorm:"type:uuid;not null;index:idx_conversation_user_session,priority:1"`
	SessionId string         `gorm:"type:varchar(64);not null;index:idx_conversation_user_session,priority:2"`
	UserText  string         `gorm:"type:text;not null"`
	ReplyText string         `gorm:"type:text;not null"`
	Context   datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
}

func (ConversationTurn) TableName() string {
	return "conversation_turns"
}
