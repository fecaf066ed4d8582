package mapper

import (
	"time"

	"lifemind-be/internal/entity"
	"lifemind-be/internal/model"

	"gorm.io/gorm"
)

type ReminderMapper struct{}

func NewReminderMapper() *ReminderMapper {
	return &ReminderMapper{}
}

func (m *ReminderMapper) ToEntity(r *model.Reminder) *entity.Reminder {
	if r == nil {
		return nil
	}

	var deletedAt *time.Time
	if r.DeletedAt.Valid {
		t := r.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !r.UpdatedAt.IsZero() {
		t := r.UpdatedAt
		updatedAt = &t
	}

	return &entity.Reminder{
		Id:          r.Id,
		UserId:      r.UserId,
		Text:        r.Text,
		Date:        r.Date,
		Time:        r.Time,
		Recurring:   entity.Recurrence(r.Recurring),
		Completed:   r.Completed,
		CompletedAt: r.CompletedAt,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   updatedAt,
		DeletedAt:   deletedAt,
		IsDeleted:   r.DeletedAt.Valid,
	}
}

func (m *ReminderMapper) ToModel(r *entity.Reminder) *model.Reminder {
	if r == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if r.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *r.DeletedAt, Valid: true}
	} else if r.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if r.UpdatedAt != nil {
		updatedAt = *r.UpdatedAt
	}

	return &model.Reminder{
		Id:          r.Id,
		UserId:      r.UserId,
		Text:        r.Text,
		Date:        r.Date,
		Time:        r.Time,
		Recurring:   string(r.Recurring),
		Completed:   r.Completed,
		CompletedAt: r.CompletedAt,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   updatedAt,
		DeletedAt:   deletedAt,
	}
}

func (m *ReminderMapper) ToEntities(reminders []*model.Reminder) []*entity.Reminder {
	entities := make([]*entity.Reminder, len(reminders))
	for i, r := range reminders {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
