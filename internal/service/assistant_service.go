package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"lifemind-be/internal/dto"
	"lifemind-be/internal/entity"
	"lifemind-be/internal/pkg/logger"
	"lifemind-be/internal/repository/memory"
	"lifemind-be/internal/repository/specification"
	"lifemind-be/internal/repository/unitofwork"
	"lifemind-be/pkg/dialogue"
	"lifemind-be/pkg/dialogue/intent"
	"lifemind-be/pkg/events"
	pktNats "lifemind-be/pkg/nats"

	"github.com/google/uuid"
)

type IAssistantService interface {
	Chat(ctx context.Context, userId uuid.UUID, req *dto.ChatRequest) (*dto.ChatResponse, error)
	GetHistory(ctx context.Context, userId uuid.UUID, sessionId string) ([]dto.ConversationTurnResponse, error)
}

// assistantService runs the dialogue engine per turn and acts on whatever
// the engine emits: the engine itself is pure, so everything stateful
// (session context, persistence, events) lives here.
type assistantService struct {
	engine         *dialogue.Engine
	contexts       *memory.ContextRepository
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewAssistantService(
	engine *dialogue.Engine,
	contexts *memory.ContextRepository,
	uowFactory unitofwork.RepositoryFactory,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IAssistantService {
	return &assistantService{
		engine:         engine,
		contexts:       contexts,
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func (s *assistantService) Chat(ctx context.Context, userId uuid.UUID, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	// Sessions are scoped per user so two users sharing a session id
	// never see each other's pending actions.
	key := userId.String() + ":" + req.SessionId

	convCtx, _ := s.contexts.Get(key)
	res := s.engine.Respond(req.Message, convCtx)
	s.contexts.Save(key, res.Next)

	var action *dto.EmittedAction
	if res.Ready != nil {
		persisted, err := s.persistAction(ctx, userId, res.Ready)
		if err != nil {
			s.logger.Error("AssistantService", "Failed to persist confirmed action", map[string]interface{}{
				"user_id": userId,
				"type":    res.Ready.Type,
				"error":   err.Error(),
			})
			return nil, err
		}
		action = persisted

		s.publishActionCreated(ctx, userId, action)
	}

	if err := s.saveTurn(ctx, userId, req, res); err != nil {
		// History is best-effort: the reply already happened.
		s.logger.Warn("AssistantService", "Failed to save conversation turn", map[string]interface{}{
			"session_id": req.SessionId,
			"error":      err.Error(),
		})
	}

	return &dto.ChatResponse{
		Reply:   res.Reply,
		Context: res.Next,
		Action:  action,
	}, nil
}

func (s *assistantService) persistAction(ctx context.Context, userId uuid.UUID, ready *dialogue.ReadyAction) (*dto.EmittedAction, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	id := uuid.New()
	now := time.Now()

	switch ready.Type {
	case intent.Reminder:
		err := uow.ReminderRepository().Create(ctx, &entity.Reminder{
			Id:        id,
			UserId:    userId,
			Text:      ready.Slots.Text,
			Date:      ready.Slots.Date,
			Time:      ready.Slots.Time,
			Recurring: entity.RecurrenceNone,
			CreatedAt: now,
		})
		if err != nil {
			return nil, err
		}

	case intent.Priority:
		level := entity.PriorityLevel(ready.Slots.Priority)
		if level == "" {
			level = entity.PriorityLevelMedium
		}
		err := uow.PriorityRepository().Create(ctx, &entity.Priority{
			Id:        id,
			UserId:    userId,
			Text:      ready.Slots.Text,
			Priority:  level,
			CreatedAt: now,
		})
		if err != nil {
			return nil, err
		}

	case intent.Task:
		err := uow.TaskRepository().Create(ctx, &entity.Task{
			Id:        id,
			UserId:    userId,
			Text:      ready.Slots.Text,
			CreatedAt: now,
		})
		if err != nil {
			return nil, err
		}

	case intent.Meeting:
		err := uow.MeetingRepository().Create(ctx, &entity.Meeting{
			Id:        id,
			UserId:    userId,
			Text:      ready.Slots.Text,
			Date:      ready.Slots.Date,
			Time:      ready.Slots.Time,
			CreatedAt: now,
		})
		if err != nil {
			return nil, err
		}

	default:
		return nil, fmt.Errorf("unknown action type: %s", ready.Type)
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.EmittedAction{
		Type: string(ready.Type),
		Data: ready.Slots,
		Id:   id,
	}, nil
}

func (s *assistantService) publishActionCreated(ctx context.Context, userId uuid.UUID, action *dto.EmittedAction) {
	if s.eventPublisher == nil {
		return
	}

	event := events.BaseEvent{
		Type: strings.ToUpper(action.Type) + "_CREATED",
		Data: map[string]interface{}{
			"user_id":   userId.String(),
			"entity_id": action.Id.String(),
			"text":      action.Data.Text,
			"date":      action.Data.Date,
			"time":      action.Data.Time,
		},
		OccurredAt: time.Now(),
	}
	if err := s.eventPublisher.Publish(ctx, event); err != nil {
		s.logger.Warn("AssistantService", fmt.Sprintf("Failed to publish %s event", event.Type), map[string]interface{}{"error": err.Error()})
	}
}

func (s *assistantService) saveTurn(ctx context.Context, userId uuid.UUID, req *dto.ChatRequest, res dialogue.Result) error {
	snapshot, err := json.Marshal(res.Next)
	if err != nil {
		return err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	err = uow.ConversationRepository().Create(ctx, &entity.ConversationTurn{
		Id:        uuid.New(),
		UserId:    userId,
		SessionId: req.SessionId,
		UserText:  req.Message,
		ReplyText: res.Reply,
		Context:   snapshot,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return err
	}

	return uow.Commit()
}

func (s *assistantService) GetHistory(ctx context.Context, userId uuid.UUID, sessionId string) ([]dto.ConversationTurnResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	turns, err := uow.ConversationRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.BySessionId{SessionId: sessionId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ConversationTurnResponse, 0, len(turns))
	for _, t := range turns {
		out = append(out, dto.ConversationTurnResponse{
			Id:        t.Id,
			SessionId: t.SessionId,
			UserText:  t.UserText,
			ReplyText: t.ReplyText,
			CreatedAt: t.CreatedAt,
		})
	}
	return out, nil
}
