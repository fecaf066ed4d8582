package contract

import (
	"context"

	"lifemind-be/internal/entity"
	"lifemind-be/internal/repository/specification"

	"github.com/google/uuid"
)

type MeetingRepository interface {
	Create(ctx context.Context, meeting *entity.Meeting) error
	Update(ctx context.Context, meeting *entity.Meeting) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Meeting, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Meeting, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
