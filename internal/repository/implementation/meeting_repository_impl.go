package implementation

import (
	"context"
	"errors"

	"lifemind-be/internal/entity"
	"lifemind-be/internal/mapper"
	"lifemind-be/internal/model"
	"lifemind-be/internal/repository/contract"
	"lifemind-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MeetingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MeetingMapper
}

func NewMeetingRepository(db *gorm.DB) contract.MeetingRepository {
	return &MeetingRepositoryImpl{
		db:     db,
		mapper: mapper.NewMeetingMapper(),
	}
}

func (r *MeetingRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *MeetingRepositoryImpl) Create(ctx context.Context, meeting *entity.Meeting) error {
	m := r.mapper.ToModel(meeting)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*meeting = *r.mapper.ToEntity(m)
	return nil
}

func (r *MeetingRepositoryImpl) Update(ctx context.Context, meeting *entity.Meeting) error {
	m := r.mapper.ToModel(meeting)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*meeting = *r.mapper.ToEntity(m)
	return nil
}

func (r *MeetingRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Meeting{}, id).Error
}

func (r *MeetingRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Meeting, error) {
	var m model.Meeting
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *MeetingRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Meeting, error) {
	var models []*model.Meeting
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *MeetingRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Meeting{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
