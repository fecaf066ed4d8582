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

type ITaskService interface {
	CreateTask(ctx context.Context, userId uuid.UUID, req *dto.CreateTaskRequest) (*dto.TaskResponse, error)
	GetTasks(ctx context.Context, userId uuid.UUID) ([]dto.TaskResponse, error)
	ToggleTask(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.TaskResponse, error)
	DeleteTask(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type taskService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewTaskService(uowFactory unitofwork.RepositoryFactory) ITaskService {
	return &taskService{uowFactory: uowFactory}
}

func (s *taskService) CreateTask(ctx context.Context, userId uuid.UUID, req *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	task := &entity.Task{
		Id:        uuid.New(),
		UserId:    userId,
		Text:      req.Text,
		CreatedAt: time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.TaskRepository().Create(ctx, task); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return toTaskResponse(task), nil
}

func (s *taskService) GetTasks(ctx context.Context, userId uuid.UUID) ([]dto.TaskResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tasks, err := uow.TaskRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.NotDeleted{},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, *toTaskResponse(t))
	}
	return out, nil
}

func (s *taskService) ToggleTask(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.TaskResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	task, err := uow.TaskRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
		specification.NotDeleted{},
	)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, errors.New("task not found")
	}

	task.Completed = !task.Completed
	if task.Completed {
		now := time.Now()
		task.CompletedAt = &now
	} else {
		task.CompletedAt = nil
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.TaskRepository().Update(ctx, task); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return toTaskResponse(task), nil
}

func (s *taskService) DeleteTask(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	task, err := uow.TaskRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
		specification.NotDeleted{},
	)
	if err != nil {
		return err
	}
	if task == nil {
		return errors.New("task not found")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.TaskRepository().Delete(ctx, id); err != nil {
		return err
	}

	return uow.Commit()
}

func toTaskResponse(t *entity.Task) *dto.TaskResponse {
	return &dto.TaskResponse{
		Id:          t.Id,
		Text:        t.Text,
		Completed:   t.Completed,
		CompletedAt: t.CompletedAt,
		CreatedAt:   t.CreatedAt,
	}
}
