package contract

import (
	"context"

	"lifemind-be/internal/entity"
	"lifemind-be/internal/repository/specification"
)

type VoiceRecordingRepository interface {
	Create(ctx context.Context, recording *entity.VoiceRecording) error
	Update(ctx context.Context, recording *entity.VoiceRecording) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.VoiceRecording, error)
}
