package mapper

import (
	"lifemind-be/internal/entity"
	"lifemind-be/internal/model"
)

type VoiceRecordingMapper struct{}

func NewVoiceRecordingMapper() *VoiceRecordingMapper {
	return &VoiceRecordingMapper{}
}

func (m *VoiceRecordingMapper) ToEntity(r *model.VoiceRecording) *entity.VoiceRecording {
	if r == nil {
		return nil
	}
	return &entity.VoiceRecording{
		Id:            r.Id,
		UserId:        r.UserId,
		AudioUrl:      r.AudioUrl,
		Transcription: r.Transcription,
		Processed:     r.Processed,
		ReminderText:  r.ReminderText,
		CreatedAt:     r.CreatedAt,
	}
}

func (m *VoiceRecordingMapper) ToModel(r *entity.VoiceRecording) *model.VoiceRecording {
	if r == nil {
		return nil
	}
	return &model.VoiceRecording{
		Id:            r.Id,
		UserId:        r.UserId,
		AudioUrl:      r.AudioUrl,
		Transcription: r.Transcription,
		Processed:     r.Processed,
		ReminderText:  r.ReminderText,
		CreatedAt:     r.CreatedAt,
	}
}

func (m *VoiceRecordingMapper) ToEntities(recs []*model.VoiceRecording) []*entity.VoiceRecording {
	entities := make([]*entity.VoiceRecording, len(recs))
	for i, r := range recs {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
