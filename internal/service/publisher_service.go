package service

import (
	"encoding/json"

	"lifemind-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IPublisherService interface {
	PublishReminderDue(msg *dto.ReminderDueMessage) error
}

type publisherService struct {
	pubSub    *gochannel.GoChannel
	topicName string
}

func NewPublisherService(pubSub *gochannel.GoChannel, topicName string) IPublisherService {
	return &publisherService{
		pubSub:    pubSub,
		topicName: topicName,
	}
}

func (ps *publisherService) PublishReminderDue(msg *dto.ReminderDueMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return ps.pubSub.Publish(ps.topicName, message.NewMessage(watermill.NewUUID(), payload))
}
