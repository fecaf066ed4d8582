package contract

import (
	"context"

	"lifemind-be/internal/entity"
	"lifemind-be/internal/repository/specification"
)

type ConversationRepository interface {
	Create(ctx context.Context, turn *entity.ConversationTurn) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ConversationTurn, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
