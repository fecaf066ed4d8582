package mapper

import (
	"time"

	"lifemind-be/internal/entity"
	"lifemind-be/internal/model"

	"gorm.io/gorm"
)

type MeetingMapper struct{}

func NewMeetingMapper() *MeetingMapper {
	return &MeetingMapper{}
}

func (m *MeetingMapper) ToEntity(mt *model.Meeting) *entity.Meeting {
	if mt == nil {
		return nil
	}

	var deletedAt *time.Time
	if mt.DeletedAt.Valid {
		t := mt.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !mt.UpdatedAt.IsZero() {
		t := mt.UpdatedAt
		updatedAt = &t
	}

	return &entity.Meeting{
		Id:        mt.Id,
		UserId:    mt.UserId,
		Text:      mt.Text,
		Date:      mt.Date,
		Time:      mt.Time,
		Completed: mt.Completed,
		CreatedAt: mt.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
		IsDeleted: mt.DeletedAt.Valid,
	}
}

func (m *MeetingMapper) ToModel(mt *entity.Meeting) *model.Meeting {
	if mt == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if mt.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *mt.DeletedAt, Valid: true}
	} else if mt.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if mt.UpdatedAt != nil {
		updatedAt = *mt.UpdatedAt
	}

	return &model.Meeting{
		Id:        mt.Id,
		UserId:    mt.UserId,
		Text:      mt.Text,
		Date:      mt.Date,
		Time:      mt.Time,
		Completed: mt.Completed,
		CreatedAt: mt.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
	}
}

func (m *MeetingMapper) ToEntities(meetings []*model.Meeting) []*entity.Meeting {
	entities := make([]*entity.Meeting, len(meetings))
	for i, mt := range meetings {
		entities[i] = m.ToEntity(mt)
	}
	return entities
}
