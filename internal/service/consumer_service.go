package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"lifemind-be/internal/dto"
	"lifemind-be/internal/pkg/mailer"
	"lifemind-be/internal/repository/specification"
	"lifemind-be/internal/repository/unitofwork"
	"lifemind-be/pkg/events"
	pktNats "lifemind-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the due-reminder queue: each message becomes an
// email to the reminder's owner plus a REMINDER_DUE event on the bus so
// the notification worker can push it in real time.
type consumerService struct {
	pubSub         *gochannel.GoChannel
	topicName      string
	uowFactory     unitofwork.RepositoryFactory
	emailService   mailer.IEmailService
	eventPublisher *pktNats.Publisher
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	eventPublisher *pktNats.Publisher,
) IConsumerService {
	return &consumerService{
		pubSub:         pubSub,
		topicName:      topicName,
		uowFactory:     uowFactory,
		emailService:   emailService,
		eventPublisher: eventPublisher,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.ReminderDueMessage
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Delivering due reminder %s", payload.ReminderId)

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	reminder, err := uow.ReminderRepository().FindOne(ctx, specification.ByID{ID: payload.ReminderId})
	if err != nil {
		log.Printf("[ERROR] Failed to get reminder %s: %v", payload.ReminderId, err)
		msg.Nack() // Nack for retriable errors
		return
	}
	if reminder == nil || reminder.Completed {
		// Deleted or completed since the scan. Nothing to deliver.
		msg.Ack()
		return
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: reminder.UserId})
	if err != nil {
		log.Printf("[ERROR] Failed to get user %s: %v", reminder.UserId, err)
		msg.Nack()
		return
	}
	if user == nil {
		log.Printf("[ERROR] User not found for reminder %s", reminder.Id)
		msg.Ack()
		return
	}

	if err := cs.emailService.SendDueReminder(user.Email, reminder.Text, reminder.Date, reminder.Time); err != nil {
		log.Printf("[ERROR] Failed to email reminder %s to %s: %v", reminder.Id, user.Email, err)
		msg.Nack()
		return
	}

	if cs.eventPublisher != nil {
		event := events.BaseEvent{
			Type: "REMINDER_DUE",
			Data: map[string]interface{}{
				"user_id":   user.Id.String(),
				"entity_id": reminder.Id.String(),
				"text":      reminder.Text,
				"date":      reminder.Date,
				"time":      reminder.Time,
			},
			OccurredAt: time.Now(),
		}
		if err := cs.eventPublisher.Publish(ctx, event); err != nil {
			// The email went out; real-time push is best-effort.
			log.Printf("[WARN] Failed to publish REMINDER_DUE for %s: %v", reminder.Id, err)
		}
	}

	log.Printf("[SUCCESS] Due reminder %s delivered to %s", reminder.Id, user.Email)
	msg.Ack()
}
