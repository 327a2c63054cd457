// FILE: internal/service/consumer_service.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"learning-assistant-be/internal/dto"
	"learning-assistant-be/internal/entity"
	"learning-assistant-be/internal/pkg/mailer"
	"learning-assistant-be/internal/repository/specification"
	"learning-assistant-be/internal/repository/unitofwork"
	"learning-assistant-be/pkg/embedding"
	"learning-assistant-be/pkg/utils"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// ErrPageNotFound marks an embed request whose page has no local mirror
// row. It is not retriable; the next sync enqueues the page again.
var ErrPageNotFound = errors.New("page not found")

type IConsumerService interface {
	Consume(ctx context.Context) error
	EmbedPage(ctx context.Context, pageID string) error
}

type consumerService struct {
	pubSub            *gochannel.GoChannel
	embedTopicName    string
	profileTopicName  string
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.Provider
	emailService      mailer.IEmailService
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	embedTopicName string,
	profileTopicName string,
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.Provider,
	emailService mailer.IEmailService,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		embedTopicName:    embedTopicName,
		profileTopicName:  profileTopicName,
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		emailService:      emailService,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	embedMessages, err := cs.pubSub.Subscribe(ctx, cs.embedTopicName)
	if err != nil {
		return err
	}
	profileMessages, err := cs.pubSub.Subscribe(ctx, cs.profileTopicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range embedMessages {
			cs.processEmbedMessage(ctx, msg)
		}
	}()
	go func() {
		for msg := range profileMessages {
			cs.processProfileMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processEmbedMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishEmbedPageMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal embed message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	if err := cs.EmbedPage(ctx, payload.PageId); err != nil {
		if errors.Is(err, ErrPageNotFound) {
			log.Printf("[ERROR] Page not found: %s", payload.PageId)
			msg.Ack()
			return
		}
		log.Printf("[ERROR] Failed to embed page %s: %v", payload.PageId, err)
		msg.Nack() // Nack for retriable errors
		return
	}

	msg.Ack()
}

// EmbedPage chunks one mirrored page and replaces its embedding rows in a
// single transaction. The one-shot sync command calls it directly; the
// message consumer calls it per queued page.
func (cs *consumerService) EmbedPage(ctx context.Context, pageID string) error {
	log.Printf("[INFO] Processing page embedding for PageId: %s", pageID)

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	page, err := uow.ContentPageRepository().FindOne(ctx, specification.ByPageId{PageId: pageID})
	if err != nil {
		return fmt.Errorf("get page %s: %w", pageID, err)
	}
	if page == nil {
		return fmt.Errorf("%w: %s", ErrPageNotFound, pageID)
	}

	content := fmt.Sprintf(`Page Title: %s
Space: %s

%s

Last Update: %s`,
		page.Title,
		page.Space,
		page.Body,
		page.LastUpdate.Format(time.RFC3339),
	)

	// ChunkSize: 1500 chars (approx 375 tokens), Overlap: 200 chars
	chunks := utils.SplitText(content, 1500, 200)
	log.Printf("[INFO] Page %s split into %d chunks", pageID, len(chunks))

	var newEmbeddings []*entity.ContentEmbedding

	for i, chunk := range chunks {
		res, err := cs.embeddingProvider.Generate(chunk, embedding.TaskDocument)
		if err != nil {
			return fmt.Errorf("generate embedding for chunk %d of page %s: %w", i, pageID, err)
		}

		newEmbeddings = append(newEmbeddings, &entity.ContentEmbedding{
			Id:             uuid.New(),
			PageId:         page.Id,
			Document:       chunk,
			EmbeddingValue: res.Values,
			ChunkIndex:     i,
			CreatedAt:      time.Now(),
		})
	}

	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("begin embed transaction: %w", err)
	}
	defer uow.Rollback()

	if err := uow.ContentEmbeddingRepository().DeleteByPageId(ctx, page.Id); err != nil {
		return fmt.Errorf("delete old embeddings: %w", err)
	}

	if len(newEmbeddings) > 0 {
		if err := uow.ContentEmbeddingRepository().CreateAll(ctx, newEmbeddings); err != nil {
			return fmt.Errorf("create embeddings: %w", err)
		}
	}

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("commit embed transaction: %w", err)
	}

	log.Printf("[SUCCESS] Page embedded: %d chunks for PageId: %s", len(newEmbeddings), pageID)
	return nil
}

func (cs *consumerService) processProfileMessage(ctx context.Context, msg *message.Message) {
	var payload dto.ProfileCompletedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal profile message: %v", err)
		msg.Ack()
		return
	}

	if payload.Email == "" {
		log.Printf("[INFO] Profile completed for %s without email, skipping summary mail", payload.UserId)
		msg.Ack()
		return
	}

	userName := payload.Answers["name"]
	if userName == "" {
		userName = payload.UserId
	}

	if err := cs.emailService.SendProfileSummary(payload.Email, userName, payload.Answers); err != nil {
		log.Printf("[ERROR] Failed to send profile summary to %s: %v", payload.Email, err)
		msg.Nack()
		return
	}

	log.Printf("[SUCCESS] Profile summary sent for user %s", payload.UserId)
	msg.Ack()
}
