package mapper

import (
	"lifemind-be/internal/entity"
	"lifemind-be/internal/model"

	"gorm.io/datatypes"
)

type ConversationMapper struct{}

func NewConversationMapper() *ConversationMapper {
	return &ConversationMapper{}
}

func (m *ConversationMapper) ToEntity(c *model.ConversationTurn) *entity.ConversationTurn {
	if c == nil {
		return nil
	}
	return &entity.ConversationTurn{
		Id:        c.Id,
		UserId:    c.UserId,
		SessionId: c.SessionId,
		UserText:  c.UserText,
		ReplyText: c.ReplyText,
		Context:   []byte(c.Context),
		CreatedAt: c.CreatedAt,
	}
}

func (m *ConversationMapper) ToModel(c *entity.ConversationTurn) *model.ConversationTurn {
	if c == nil {
		return nil
	}
	return &model.ConversationTurn{
		Id:        c.Id,
		UserId:    c.UserId,
		SessionId: c.SessionId,
		UserText:  c.UserText,
		ReplyText: c.ReplyText,
		Context:   datatypes.JSON(c.Context),
		CreatedAt: c.CreatedAt,
	}
}

func (m *ConversationMapper) ToEntities(turns []*model.ConversationTurn) []*entity.ConversationTurn {
	entities := make([]*entity.ConversationTurn, len(turns))
	for i, c := range turns {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
