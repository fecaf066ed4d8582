package dto

import (
	"time"

	"lifemind-be/pkg/dialogue"
	"lifemind-be/pkg/dialogue/intent"

	"github.com/google/uuid"
)

type ChatRequest struct {
	SessionId string `json:"session_id" validate:"required"`
	Message   string `json:"message" validate:"required"`
}

// EmittedAction mirrors what the dialogue engine hands over once the user
// confirms: the action type and the fully resolved slots.
type EmittedAction struct {
	Type string       `json:"type"`
	Data intent.Slots `json:"data"`
	Id   uuid.UUID    `json:"id"` // id of the persisted record
}

type ChatResponse struct {
	Reply   string           `json:"reply"`
	Context dialogue.Context `json:"context"`
	Action  *EmittedAction   `json:"action,omitempty"`
}

type ConversationTurnResponse struct {
	Id        uuid.UUID `json:"id"`
	SessionId string    `json:"session_id"`
	UserText  string    `json:"user_text"`
	ReplyText string    `json:"reply_text"`
	CreatedAt time.Time `json:"created_at"`
}
