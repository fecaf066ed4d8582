package implementation

import (
	"context"

	"lifemind-be/internal/entity"
	"lifemind-be/internal/mapper"
	"lifemind-be/internal/model"
	"lifemind-be/internal/repository/contract"
	"lifemind-be/internal/repository/specification"

	"gorm.io/gorm"
)

type VoiceRecordingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.VoiceRecordingMapper
}

func NewVoiceRecordingRepository(db *gorm.DB) contract.VoiceRecordingRepository {
	return &VoiceRecordingRepositoryImpl{
		db:     db,
		mapper: mapper.NewVoiceRecordingMapper(),
	}
}

func (r *VoiceRecordingRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *VoiceRecordingRepositoryImpl) Create(ctx context.Context, recording *entity.VoiceRecording) error {
	m := r.mapper.ToModel(recording)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*recording = *r.mapper.ToEntity(m)
	return nil
}

func (r *VoiceRecordingRepositoryImpl) Update(ctx context.Context, recording *entity.VoiceRecording) error {
	m := r.mapper.ToModel(recording)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*recording = *r.mapper.ToEntity(m)
	return nil
}

func (r *VoiceRecordingRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.VoiceRecording, error) {
	var models []*model.VoiceRecording
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
