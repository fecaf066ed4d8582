package entity

import (
	"time"

	"github.com/google/uuid"
)

// ConversationTurn is one user/assistant exchange plus the dialogue context
// snapshot after the turn, kept for history and debugging.
type ConversationTurn struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	SessionId string
	UserText  string
	ReplyText string
	Context   []byte // serialized dialogue.Context
	CreatedAt time.Time
}
