package contract

import (
	"context"

	"lifemind-be/internal/entity"
	"lifemind-be/internal/repository/specification"

	"github.com/google/uuid"
)

type PriorityRepository interface {
	Create(ctx context.Context, priority *entity.Priority) error
	Update(ctx context.Context, priority *entity.Priority) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Priority, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Priority, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
