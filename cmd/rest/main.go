package main

import (
	"context"
	"log"

	"learning-assistant-be/internal/bootstrap"
	"learning-assistant-be/internal/config"
	"learning-assistant-be/internal/server"
	"learning-assistant-be/internal/tracer"
	"learning-assistant-be/pkg/database"
	"learning-assistant-be/pkg/events"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Start Background Services
	// Note: In a larger app, we might use an errgroup or supervisor here
	go func() {
		log.Println("Background: Starting Consumer Service...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Consumer Error: %v", err)
		}
	}()

	// On-demand sync triggers arrive over NATS
	if container.NatsSubscriber != nil {
		err := container.NatsSubscriber.Subscribe(
			"events."+events.TypeSyncRequested,
			"content-sync-worker",
			func(ctx context.Context, evt events.Event) error {
				log.Println("Background: Sync requested via NATS")
				_, err := container.IngestionService.Sync(ctx)
				return err
			},
		)
		if err != nil {
			log.Printf("Background: Failed to subscribe to sync requests: %v", err)
		}
	}

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
