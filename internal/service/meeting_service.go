package service

import (
	"context"
	"errors"
	"time"

	"lifemind-be/internal/dto"
	"lifemind-be/internal/entity"
	"lifemind-be/internal/repository/specification"
	"lifemind-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IMeetingService interface {
	CreateMeeting(ctx context.Context, userId uuid.UUID, req *dto.CreateMeetingRequest) (*dto.MeetingResponse, error)
	GetMeetings(ctx context.Context, userId uuid.UUID) ([]dto.MeetingResponse, error)
	GetUpcomingMeetings(ctx context.Context, userId uuid.UUID) ([]dto.MeetingResponse, error)
	DeleteMeeting(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type meetingService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewMeetingService(uowFactory unitofwork.RepositoryFactory) IMeetingService {
	return &meetingService{uowFactory: uowFactory}
}

func (s *meetingService) CreateMeeting(ctx context.Context, userId uuid.UUID, req *dto.CreateMeetingRequest) (*dto.MeetingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	meeting := &entity.Meeting{
		Id:        uuid.New(),
		UserId:    userId,
		Text:      req.Text,
		Date:      req.Date,
		Time:      req.Time,
		CreatedAt: time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.MeetingRepository().Create(ctx, meeting); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return toMeetingResponse(meeting), nil
}

func (s *meetingService) GetMeetings(ctx context.Context, userId uuid.UUID) ([]dto.MeetingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	meetings, err := uow.MeetingRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.NotDeleted{},
		specification.OrderBy{Field: "date"},
		specification.OrderBy{Field: "time"},
	)
	if err != nil {
		return nil, err
	}

	return toMeetingResponses(meetings), nil
}

func (s *meetingService) GetUpcomingMeetings(ctx context.Context, userId uuid.UUID) ([]dto.MeetingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	today := time.Now().Format("2006-01-02")
	meetings, err := uow.MeetingRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.NotDeleted{},
		specification.DateOnOrAfter{Date: today},
		specification.OrderBy{Field: "date"},
		specification.OrderBy{Field: "time"},
	)
	if err != nil {
		return nil, err
	}

	return toMeetingResponses(meetings), nil
}

func (s *meetingService) DeleteMeeting(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	meeting, err := uow.MeetingRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
		specification.NotDeleted{},
	)
	if err != nil {
		return err
	}
	if meeting == nil {
		return errors.New("meeting not found")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.MeetingRepository().Delete(ctx, id); err != nil {
		return err
	}

	return uow.Commit()
}

func toMeetingResponse(m *entity.Meeting) *dto.MeetingResponse {
	return &dto.MeetingResponse{
		Id:        m.Id,
		Text:      m.Text,
		Date:      m.Date,
		Time:      m.Time,
		Completed: m.Completed,
		CreatedAt: m.CreatedAt,
	}
}

func toMeetingResponses(meetings []*entity.Meeting) []dto.MeetingResponse {
	out := make([]dto.MeetingResponse, 0, len(meetings))
	for _, m := range meetings {
		out = append(out, *toMeetingResponse(m))
	}
	return out
}
