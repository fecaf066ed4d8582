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

type PriorityRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PriorityMapper
}

func NewPriorityRepository(db *gorm.DB) contract.PriorityRepository {
	return &PriorityRepositoryImpl{
		db:     db,
		mapper: mapper.NewPriorityMapper(),
	}
}

func (r *PriorityRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PriorityRepositoryImpl) Create(ctx context.Context, priority *entity.Priority) error {
	m := r.mapper.ToModel(priority)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*priority = *r.mapper.ToEntity(m)
	return nil
}

func (r *PriorityRepositoryImpl) Update(ctx context.Context, priority *entity.Priority) error {
	m := r.mapper.ToModel(priority)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*priority = *r.mapper.ToEntity(m)
	return nil
}

func (r *PriorityRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Priority{}, id).Error
}

func (r *PriorityRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Priority, error) {
	var m model.Priority
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *PriorityRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Priority, error) {
	var models []*model.Priority
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *PriorityRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Priority{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
