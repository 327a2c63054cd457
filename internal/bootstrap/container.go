package bootstrap

import (
	"context"
	"log"
	"time"

	"learning-assistant-be/internal/config"
	"learning-assistant-be/internal/controller"
	"learning-assistant-be/internal/pkg/logger"
	"learning-assistant-be/internal/pkg/mailer"
	"learning-assistant-be/internal/repository/memory"
	"learning-assistant-be/internal/repository/redisstore"
	"learning-assistant-be/internal/repository/unitofwork"
	"learning-assistant-be/internal/service"
	"learning-assistant-be/pkg/confluence"
	"learning-assistant-be/pkg/embedding"
	"learning-assistant-be/pkg/llm/factory"
	"learning-assistant-be/pkg/search"
	"learning-assistant-be/pkg/search/azure"

	pktNats "learning-assistant-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AssistantController controller.IAssistantController
	ProfileController   controller.IProfileController
	ContentController   controller.IContentController

	// Background Services (Exposed for main.go to run)
	ConsumerService  service.IConsumerService
	IngestionService service.IIngestionService

	// Cross-service eventing
	NatsPublisher  *pktNats.Publisher
	NatsSubscriber *pktNats.Subscriber
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

	// 3. AI Providers
	var embeddingProvider embedding.Provider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Ai.GeminiAPIKey)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Infrastructure
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

	// Session stores: live flows in memory, snapshots in Redis
	sessionRepo := memory.NewInterviewSessionRepository()
	stateRepo := redisstore.NewFlowStateRepository(rdb, 24*time.Hour)

	// Content source + search index
	confluenceClient := confluence.NewClient(
		cfg.Confluence.BaseURL,
		cfg.Confluence.Username,
		cfg.Confluence.APIToken,
	)
	indexer := azure.NewClient(cfg.Search.Endpoint, cfg.Search.APIKey)
	indexPublisher := search.NewPublisher(indexer, cfg.Search.IndexName)

	// 5. Services
	embedPublisher := service.NewPublisherService(pubSub, cfg.App.EmbedTopic)
	profilePublisher := service.NewPublisherService(pubSub, cfg.App.ProfileTopic)

	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.EmbedTopic,
		cfg.App.ProfileTopic,
		uowFactory,
		embeddingProvider,
		emailService,
	)

	interviewService := service.NewInterviewService(
		sessionRepo,
		stateRepo,
		uowFactory,
		profilePublisher,
		natsPub,
		sysLogger,
	)

	assistantService := service.NewAssistantService(
		interviewService,
		uowFactory,
		embeddingProvider,
		llmProvider,
		sysLogger,
	)

	profileService := service.NewProfileService(uowFactory)

	ingestionService := service.NewIngestionService(
		confluenceClient,
		cfg.Confluence.SpaceKey,
		cfg.Confluence.PageSize,
		uowFactory,
		indexPublisher,
		embedPublisher,
		natsPub,
		sysLogger,
	)

	// 6. Controllers
	return &Container{
		AssistantController: controller.NewAssistantController(assistantService),
		ProfileController:   controller.NewProfileController(profileService),
		ContentController:   controller.NewContentController(ingestionService),

		ConsumerService:  consumerService,
		IngestionService: ingestionService,

		NatsPublisher:  natsPub,
		NatsSubscriber: natsSub,
	}
}
