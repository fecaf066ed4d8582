package contract

import (
	"context"

	"lifemind-be/internal/entity"
	"lifemind-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ReminderRepository interface {
	Create(ctx context.Context, reminder *entity.Reminder) error
	Update(ctx context.Context, reminder *entity.Reminder) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Reminder, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Reminder, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
