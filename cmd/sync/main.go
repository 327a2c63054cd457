package main

import (
	"context"
	"flag"
	"log"

	"learning-assistant-be/internal/bootstrap"
	"learning-assistant-be/internal/config"
	"learning-assistant-be/pkg/database"
	"learning-assistant-be/pkg/events"
)

// One-shot reconciliation run, suitable for cron. With -request the
// command only publishes a CONTENT_SYNC_REQUESTED event and lets the
// running REST service do the work.
func main() {
	requestOnly := flag.Bool("request", false, "publish a sync request event instead of syncing locally")
	flag.Parse()

	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)
	ctx := context.Background()

	if *requestOnly {
		if container.NatsPublisher == nil {
			log.Fatalf("Error: NATS is not available, cannot publish sync request")
		}
		evt := events.NewSyncRequested(cfg.Confluence.SpaceKey)
		if err := container.NatsPublisher.Publish(ctx, evt); err != nil {
			log.Fatalf("Error: Failed to publish sync request: %v", err)
		}
		log.Printf("✅ Sync requested for space %s", cfg.Confluence.SpaceKey)
		return
	}

	res, err := container.IngestionService.Sync(ctx)
	if err != nil {
		log.Fatalf("Error: Sync failed: %v", err)
	}

	log.Printf("✅ Sync complete: %d remote, %d added, %d updated, %d unchanged, %d indexed (%d failed)",
		res.RemoteTotal, res.Added, res.Updated, res.Unchanged, res.Indexed, res.IndexFailed)

	// Embed synchronously; a one-shot process has no consumer loop to
	// drain the queue before exit.
	embedded := 0
	for _, pageID := range res.ChangedPageIds {
		if err := container.ConsumerService.EmbedPage(ctx, pageID); err != nil {
			log.Printf("Error: Failed to embed page %s: %v", pageID, err)
			continue
		}
		embedded++
	}
	log.Printf("✅ Embedded %d/%d changed pages", embedded, len(res.ChangedPageIds))
}
