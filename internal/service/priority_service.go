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

type IPriorityService interface {
	CreatePriority(ctx context.Context, userId uuid.UUID, req *dto.CreatePriorityRequest) (*dto.PriorityResponse, error)
	GetPriorities(ctx context.Context, userId uuid.UUID) ([]dto.PriorityResponse, error)
	UpdatePriority(ctx context.Context, userId uuid.UUID, req *dto.UpdatePriorityRequest) (*dto.PriorityResponse, error)
	TogglePriority(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.PriorityResponse, error)
	DeletePriority(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type priorityService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewPriorityService(uowFactory unitofwork.RepositoryFactory) IPriorityService {
	return &priorityService{uowFactory: uowFactory}
}

func (s *priorityService) CreatePriority(ctx context.Context, userId uuid.UUID, req *dto.CreatePriorityRequest) (*dto.PriorityResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	priority := &entity.Priority{
		Id:        uuid.New(),
		UserId:    userId,
		Text:      req.Text,
		Priority:  entity.PriorityLevel(req.Priority),
		CreatedAt: time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.PriorityRepository().Create(ctx, priority); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return toPriorityResponse(priority), nil
}

func (s *priorityService) GetPriorities(ctx context.Context, userId uuid.UUID) ([]dto.PriorityResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	priorities, err := uow.PriorityRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.NotDeleted{},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.PriorityResponse, 0, len(priorities))
	for _, p := range priorities {
		out = append(out, *toPriorityResponse(p))
	}
	return out, nil
}

func (s *priorityService) UpdatePriority(ctx context.Context, userId uuid.UUID, req *dto.UpdatePriorityRequest) (*dto.PriorityResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	priority, err := uow.PriorityRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.UserOwnedBy{UserID: userId},
		specification.NotDeleted{},
	)
	if err != nil {
		return nil, err
	}
	if priority == nil {
		return nil, errors.New("priority not found")
	}

	if req.Text != nil {
		priority.Text = *req.Text
	}
	if req.Priority != nil {
		priority.Priority = entity.PriorityLevel(*req.Priority)
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.PriorityRepository().Update(ctx, priority); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return toPriorityResponse(priority), nil
}

func (s *priorityService) TogglePriority(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.PriorityResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	priority, err := uow.PriorityRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
		specification.NotDeleted{},
	)
	if err != nil {
		return nil, err
	}
	if priority == nil {
		return nil, errors.New("priority not found")
	}

	priority.Completed = !priority.Completed
	if priority.Completed {
		now := time.Now()
		priority.CompletedAt = &now
	} else {
		priority.CompletedAt = nil
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.PriorityRepository().Update(ctx, priority); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return toPriorityResponse(priority), nil
}

func (s *priorityService) DeletePriority(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	priority, err := uow.PriorityRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
		specification.NotDeleted{},
	)
	if err != nil {
		return err
	}
	if priority == nil {
		return errors.New("priority not found")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.PriorityRepository().Delete(ctx, id); err != nil {
		return err
	}

	return uow.Commit()
}

func toPriorityResponse(p *entity.Priority) *dto.PriorityResponse {
	return &dto.PriorityResponse{
		Id:          p.Id,
		Text:        p.Text,
		Priority:    string(p.Priority),
		Completed:   p.Completed,
		CompletedAt: p.CompletedAt,
		CreatedAt:   p.CreatedAt,
	}
}
