package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lifemind-be/internal/dto"
	"lifemind-be/internal/entity"
	"lifemind-be/internal/pkg/logger"
	"lifemind-be/internal/repository/specification"
	"lifemind-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IReminderService interface {
	CreateReminder(ctx context.Context, userId uuid.UUID, req *dto.CreateReminderRequest) (*dto.ReminderResponse, error)
	GetReminders(ctx context.Context, userId uuid.UUID) ([]dto.ReminderResponse, error)
	GetUpcomingReminders(ctx context.Context, userId uuid.UUID) ([]dto.ReminderResponse, error)
	UpdateReminder(ctx context.Context, userId uuid.UUID, req *dto.UpdateReminderRequest) (*dto.ReminderResponse, error)
	ToggleReminder(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ReminderResponse, error)
	DeleteReminder(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	StartDueScanner(ctx context.Context)
}

type reminderService struct {
	uowFactory   unitofwork.RepositoryFactory
	publisher    IPublisherService
	logger       logger.ILogger
	scanInterval time.Duration
}

func NewReminderService(uowFactory unitofwork.RepositoryFactory, publisher IPublisherService, log logger.ILogger) IReminderService {
	return &reminderService{
		uowFactory:   uowFactory,
		publisher:    publisher,
		logger:       log,
		scanInterval: time.Minute,
	}
}

func (s *reminderService) CreateReminder(ctx context.Context, userId uuid.UUID, req *dto.CreateReminderRequest) (*dto.ReminderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	recurring := entity.RecurrenceNone
	if req.Recurring != "" {
		recurring = entity.Recurrence(req.Recurring)
	}

	reminder := &entity.Reminder{
		Id:        uuid.New(),
		UserId:    userId,
		Text:      req.Text,
		Date:      req.Date,
		Time:      req.Time,
		Recurring: recurring,
		CreatedAt: time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ReminderRepository().Create(ctx, reminder); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return toReminderResponse(reminder), nil
}

func (s *reminderService) GetReminders(ctx context.Context, userId uuid.UUID) ([]dto.ReminderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	reminders, err := uow.ReminderRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.NotDeleted{},
		specification.OrderBy{Field: "date"},
		specification.OrderBy{Field: "time"},
	)
	if err != nil {
		return nil, err
	}

	return toReminderResponses(reminders), nil
}

func (s *reminderService) GetUpcomingReminders(ctx context.Context, userId uuid.UUID) ([]dto.ReminderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	today := time.Now().Format("2006-01-02")
	reminders, err := uow.ReminderRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.NotDeleted{},
		specification.ByCompleted{Completed: false},
		specification.DateOnOrAfter{Date: today},
		specification.OrderBy{Field: "date"},
		specification.OrderBy{Field: "time"},
	)
	if err != nil {
		return nil, err
	}

	return toReminderResponses(reminders), nil
}

func (s *reminderService) UpdateReminder(ctx context.Context, userId uuid.UUID, req *dto.UpdateReminderRequest) (*dto.ReminderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	reminder, err := uow.ReminderRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.UserOwnedBy{UserID: userId},
		specification.NotDeleted{},
	)
	if err != nil {
		return nil, err
	}
	if reminder == nil {
		return nil, errors.New("reminder not found")
	}

	if req.Text != nil {
		reminder.Text = *req.Text
	}
	if req.Date != nil {
		reminder.Date = *req.Date
	}
	if req.Time != nil {
		reminder.Time = *req.Time
	}
	if req.Recurring != nil {
		reminder.Recurring = entity.Recurrence(*req.Recurring)
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ReminderRepository().Update(ctx, reminder); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return toReminderResponse(reminder), nil
}

func (s *reminderService) ToggleReminder(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ReminderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	reminder, err := uow.ReminderRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
		specification.NotDeleted{},
	)
	if err != nil {
		return nil, err
	}
	if reminder == nil {
		return nil, errors.New("reminder not found")
	}

	reminder.Completed = !reminder.Completed
	if reminder.Completed {
		now := time.Now()
		reminder.CompletedAt = &now
	} else {
		reminder.CompletedAt = nil
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ReminderRepository().Update(ctx, reminder); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return toReminderResponse(reminder), nil
}

func (s *reminderService) DeleteReminder(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	reminder, err := uow.ReminderRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
		specification.NotDeleted{},
	)
	if err != nil {
		return err
	}
	if reminder == nil {
		return errors.New("reminder not found")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.ReminderRepository().Delete(ctx, id); err != nil {
		return err
	}

	return uow.Commit()
}

// StartDueScanner polls for reminders whose date/time just passed and hands
// them to the queue for delivery. Each reminder is published at most once
// per tick window, so restarts may re-deliver at the boundary but steady
// state does not.
func (s *reminderService) StartDueScanner(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(s.scanInterval)
		defer ticker.Stop()

		last := time.Now()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				s.scanDue(ctx, last, now)
				last = now
			}
		}
	}()
}

func (s *reminderService) scanDue(ctx context.Context, from, to time.Time) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	reminders, err := uow.ReminderRepository().FindAll(ctx,
		specification.ByCompleted{Completed: false},
		specification.NotDeleted{},
	)
	if err != nil {
		s.logger.Error("ReminderService", "Due scan failed", map[string]interface{}{"error": err.Error()})
		return
	}

	for _, r := range reminders {
		if !dueInWindow(r, from, to) {
			continue
		}
		if err := s.publisher.PublishReminderDue(&dto.ReminderDueMessage{ReminderId: r.Id}); err != nil {
			s.logger.Error("ReminderService", fmt.Sprintf("Failed to queue due reminder %s", r.Id), map[string]interface{}{"error": err.Error()})
			continue
		}
		s.logger.Info("ReminderService", fmt.Sprintf("Reminder %s is due, queued for delivery", r.Id), nil)
	}
}

// dueInWindow reports whether the reminder fires inside (from, to].
// Recurring reminders are anchored on their stored date: a daily reminder
// fires every day from its anchor on, weekly on the same weekday, monthly
// on the same day of month, yearly on the same month and day.
func dueInWindow(r *entity.Reminder, from, to time.Time) bool {
	clock, err := time.Parse("15:04", r.Time)
	if err != nil {
		return false
	}
	anchor, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return false
	}

	day := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, to.Location())
	if !occursOn(r.Recurring, anchor, day) {
		return false
	}

	fireAt := day.Add(time.Duration(clock.Hour())*time.Hour + time.Duration(clock.Minute())*time.Minute)
	return fireAt.After(from) && !fireAt.After(to)
}

func occursOn(recurring entity.Recurrence, anchor, day time.Time) bool {
	if day.Before(anchor) {
		return false
	}
	switch recurring {
	case entity.RecurrenceDaily:
		return true
	case entity.RecurrenceWeekly:
		return day.Weekday() == anchor.Weekday()
	case entity.RecurrenceMonthly:
		return day.Day() == anchor.Day()
	case entity.RecurrenceYearly:
		return day.Month() == anchor.Month() && day.Day() == anchor.Day()
	default:
		return day.Equal(anchor)
	}
}

func toReminderResponse(r *entity.Reminder) *dto.ReminderResponse {
	return &dto.ReminderResponse{
		Id:          r.Id,
		Text:        r.Text,
		Date:        r.Date,
		Time:        r.Time,
		Recurring:   string(r.Recurring),
		Completed:   r.Completed,
		CompletedAt: r.CompletedAt,
		CreatedAt:   r.CreatedAt,
	}
}

func toReminderResponses(reminders []*entity.Reminder) []dto.ReminderResponse {
	out := make([]dto.ReminderResponse, 0, len(reminders))
	for _, r := range reminders {
		out = append(out, *toReminderResponse(r))
	}
	return out
}
