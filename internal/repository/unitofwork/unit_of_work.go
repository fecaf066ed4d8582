package unitofwork

import (
	"context"

	"lifemind-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ReminderRepository() contract.ReminderRepository
	PriorityRepository() contract.PriorityRepository
	TaskRepository() contract.TaskRepository
	MeetingRepository() contract.MeetingRepository
	ConversationRepository() contract.ConversationRepository
	VoiceRecordingRepository() contract.VoiceRecordingRepository
}
