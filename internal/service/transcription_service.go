package service

import (
	"context"
	"time"

	"lifemind-be/internal/dto"
	"lifemind-be/internal/entity"
	"lifemind-be/internal/pkg/logger"
	"lifemind-be/internal/repository/unitofwork"
	"lifemind-be/pkg/stt"

	"github.com/google/uuid"
)

type ITranscriptionService interface {
	Transcribe(ctx context.Context, userId uuid.UUID, audio []byte, contentType, filename string) (*dto.TranscribeResponse, error)
}

type transcriptionService struct {
	provider   stt.Provider
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewTranscriptionService(provider stt.Provider, uowFactory unitofwork.RepositoryFactory, log logger.ILogger) ITranscriptionService {
	return &transcriptionService{
		provider:   provider,
		uowFactory: uowFactory,
		logger:     log,
	}
}

// Transcribe sends the audio to the configured provider and records the
// attempt. Provider failures do not propagate: the dialogue layer expects
// a plain utterance string, so a failed transcription comes back as an
// empty one.
func (s *transcriptionService) Transcribe(ctx context.Context, userId uuid.UUID, audio []byte, contentType, filename string) (*dto.TranscribeResponse, error) {
	recording := &entity.VoiceRecording{
		Id:        uuid.New(),
		UserId:    userId,
		AudioUrl:  filename,
		CreatedAt: time.Now(),
	}

	result, err := s.provider.Transcribe(ctx, audio, contentType)
	if err != nil {
		s.logger.Error("TranscriptionService", "Transcription failed", map[string]interface{}{
			"recording_id": recording.Id,
			"error":        err.Error(),
		})
		s.saveRecording(ctx, recording)
		return &dto.TranscribeResponse{Text: ""}, nil
	}

	recording.Transcription = &result.Text
	recording.Processed = true
	s.saveRecording(ctx, recording)

	return &dto.TranscribeResponse{
		Text:       result.Text,
		Confidence: result.Confidence,
		Provider:   result.Provider,
	}, nil
}

func (s *transcriptionService) saveRecording(ctx context.Context, recording *entity.VoiceRecording) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		s.logger.Warn("TranscriptionService", "Failed to open transaction for recording", map[string]interface{}{"error": err.Error()})
		return
	}
	defer uow.Rollback()

	if err := uow.VoiceRecordingRepository().Create(ctx, recording); err != nil {
		s.logger.Warn("TranscriptionService", "Failed to save voice recording", map[string]interface{}{"error": err.Error()})
		return
	}

	if err := uow.Commit(); err != nil {
		s.logger.Warn("TranscriptionService", "Failed to commit voice recording", map[string]interface{}{"error": err.Error()})
	}
}
