package bootstrap

import (
	"context"
	"log"

	"lifemind-be/internal/config"
	"lifemind-be/internal/controller"
	"lifemind-be/internal/handler"
	"lifemind-be/internal/pkg/logger"
	"lifemind-be/internal/pkg/mailer"
	"lifemind-be/internal/repository/implementation"
	"lifemind-be/internal/repository/memory"
	"lifemind-be/internal/repository/unitofwork"
	"lifemind-be/internal/service"
	"lifemind-be/internal/websocket"
	"lifemind-be/pkg/dialogue"
	"lifemind-be/pkg/stt/factory"

	pktNats "lifemind-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController          controller.IAuthController
	AssistantController     controller.IAssistantController
	ReminderController      controller.IReminderController
	PriorityController      controller.IPriorityController
	TaskController          controller.ITaskController
	MeetingController       controller.IMeetingController
	TranscriptionController controller.ITranscriptionController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
	ReminderService service.IReminderService

	// WebSockets & Notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Dialogue & STT
	engine := dialogue.NewEngine()
	contextRepo := memory.NewContextRepository()

	sttProvider, err := factory.NewSttProvider(
		cfg.Stt.Provider,
		cfg.Stt.DeepgramKey,
		cfg.Stt.AssemblyAIKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize STT Provider: %v", err)
	}
	log.Printf("[INFO] Using STT Provider: %s", cfg.Stt.Provider)

	// 4. Services
	publisherService := service.NewPublisherService(pubSub, cfg.Dialogue.ReminderDueTopic)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Dialogue.ReminderDueTopic,
		uowFactory,
		emailService,
		natsPub,
	)

	authService := service.NewAuthService(uowFactory, natsPub)
	assistantService := service.NewAssistantService(engine, contextRepo, uowFactory, natsPub, sysLogger)
	reminderService := service.NewReminderService(uowFactory, publisherService, sysLogger)
	priorityService := service.NewPriorityService(uowFactory)
	taskService := service.NewTaskService(uowFactory)
	meetingService := service.NewMeetingService(uowFactory)
	transcriptionService := service.NewTranscriptionService(sttProvider, uowFactory, sysLogger)

	// 4.5 Notification System
	notifRepo := implementation.NewNotificationRepository(db)
	notifService := service.NewNotificationService(notifRepo, natsSub, wsHub, wsLogger) // Hub implements NotificationDelivery

	// Start Service (Worker)
	if natsSub != nil {
		go notifService.Start()
	}

	notifHandler := handler.NewNotificationHandler(notifService, natsPub, wsHub, wsLogger)

	// 5. Controllers
	return &Container{
		NotificationHandler: notifHandler,
		WebSocketHub:        wsHub,

		AuthController:          controller.NewAuthController(authService),
		AssistantController:     controller.NewAssistantController(assistantService),
		ReminderController:      controller.NewReminderController(reminderService),
		PriorityController:      controller.NewPriorityController(priorityService),
		TaskController:          controller.NewTaskController(taskService),
		MeetingController:       controller.NewMeetingController(meetingService),
		TranscriptionController: controller.NewTranscriptionController(transcriptionService),

		ConsumerService: consumerService,
		ReminderService: reminderService,
	}
}
