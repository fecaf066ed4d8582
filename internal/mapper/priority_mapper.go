package mapper

import (
	"time"

	"lifemind-be/internal/entity"
	"lifemind-be/internal/model"

	"gorm.io/gorm"
)

type PriorityMapper struct{}

func NewPriorityMapper() *PriorityMapper {
	return &PriorityMapper{}
}

func (m *PriorityMapper) ToEntity(p *model.Priority) *entity.Priority {
	if p == nil {
		return nil
	}

	var deletedAt *time.Time
	if p.DeletedAt.Valid {
		t := p.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		updatedAt = &t
	}

	return &entity.Priority{
		Id:          p.Id,
		UserId:      p.UserId,
		Text:        p.Text,
		Priority:    entity.PriorityLevel(p.Priority),
		Completed:   p.Completed,
		CompletedAt: p.CompletedAt,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   updatedAt,
		DeletedAt:   deletedAt,
		IsDeleted:   p.DeletedAt.Valid,
	}
}

func (m *PriorityMapper) ToModel(p *entity.Priority) *model.Priority {
	if p == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if p.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *p.DeletedAt, Valid: true}
	} else if p.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if p.UpdatedAt != nil {
		updatedAt = *p.UpdatedAt
	}

	return &model.Priority{
		Id:          p.Id,
		UserId:      p.UserId,
		Text:        p.Text,
		Priority:    string(p.Priority),
		Completed:   p.Completed,
		CompletedAt: p.CompletedAt,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   updatedAt,
		DeletedAt:   deletedAt,
	}
}

func (m *PriorityMapper) ToEntities(priorities []*model.Priority) []*entity.Priority {
	entities := make([]*entity.Priority, len(priorities))
	for i, p := range priorities {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
