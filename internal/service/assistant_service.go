// FILE: internal/service/assistant_service.go
package service

import (
	"context"
	"fmt"
	"strings"

	"learning-assistant-be/internal/dto"
	"learning-assistant-be/internal/pkg/logger"
	"learning-assistant-be/internal/repository/unitofwork"
	"learning-assistant-be/pkg/embedding"
	"learning-assistant-be/pkg/llm"
)

const knowledgeSystemPrompt = `You are a learning assistant for an internal knowledge base.
Answer the user's question using ONLY the provided context. If the context
does not contain the answer, say you don't know and suggest running a
content sync. Keep answers concise and practical.`

// profileCommands are messages that always route to the interview flow,
// even when no flow is live yet.
var profileCommands = map[string]bool{
	"start":      true,
	"start over": true,
	"begin":      true,
	"skip":       true,
	"back":       true,
	"go back":    true,
	"summary":    true,
	"reset":      true,
}

// IAssistantService is the conversational front door. It decides whether a
// message belongs to the profile interview or to knowledge retrieval.
type IAssistantService interface {
	Chat(ctx context.Context, userID, email string, req *dto.SendChatRequest) (*dto.SendChatResponse, error)
	Cleanup(ctx context.Context, sessionID string) error
	AgentCard(baseURL string) *dto.AgentCard
}

type assistantService struct {
	interviewService  IInterviewService
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.Provider
	llmProvider       llm.LLMProvider
	log               logger.ILogger
}

func NewAssistantService(
	interviewService IInterviewService,
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.Provider,
	llmProvider llm.LLMProvider,
	log logger.ILogger,
) IAssistantService {
	return &assistantService{
		interviewService:  interviewService,
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		llmProvider:       llmProvider,
		log:               log,
	}
}

func (s *assistantService) Chat(ctx context.Context, userID, email string, req *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	command := strings.ToLower(strings.TrimSpace(req.Message))

	if profileCommands[command] || s.interviewService.Active(ctx, req.SessionId) {
		return s.interviewService.HandleMessage(ctx, req.SessionId, userID, email, req.Message)
	}

	reply, err := s.answerFromKnowledge(ctx, req.Message)
	if err != nil {
		return nil, err
	}

	return &dto.SendChatResponse{
		SessionId: req.SessionId,
		Reply:     reply,
		Mode:      "knowledge",
	}, nil
}

func (s *assistantService) Cleanup(ctx context.Context, sessionID string) error {
	return s.interviewService.Cleanup(ctx, sessionID)
}

// answerFromKnowledge embeds the question, pulls the nearest content
// chunks and asks the LLM to answer grounded on them.
func (s *assistantService) answerFromKnowledge(ctx context.Context, question string) (string, error) {
	res, err := s.embeddingProvider.Generate(question, embedding.TaskQuery)
	if err != nil {
		return "", fmt.Errorf("embed question: %w", err)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	scored, err := uow.ContentEmbeddingRepository().SearchSimilar(ctx, res.Values, 5)
	if err != nil {
		return "", fmt.Errorf("search similar content: %w", err)
	}

	if len(scored) == 0 {
		return "I don't have any synced content to answer from yet. Try running a content sync first.", nil
	}

	var b strings.Builder
	for i, sc := range scored {
		b.WriteString(fmt.Sprintf("[Context %d]\n%s\n\n", i+1, sc.Embedding.Document))
	}

	history := []llm.Message{
		{Role: "system", Content: knowledgeSystemPrompt},
		{Role: "user", Content: fmt.Sprintf("Context:\n%s\nQuestion: %s", b.String(), question)},
	}

	answer, err := s.llmProvider.Chat(ctx, history, llm.WithTemperature(0.2))
	if err != nil {
		return "", fmt.Errorf("generate answer: %w", err)
	}
	return answer, nil
}

func (s *assistantService) AgentCard(baseURL string) *dto.AgentCard {
	return &dto.AgentCard{
		Name:               "automated_learning_path_agent",
		Description:        "An agent that helps create personalized learning paths.",
		Url:                baseURL,
		Version:            "1.0.0",
		DefaultInputModes:  []string{"text", "text/plain"},
		DefaultOutputModes: []string{"text", "text/plain"},
		Capabilities: dto.AgentCapabilities{
			Streaming:         false,
			PushNotifications: false,
		},
		Skills: []dto.AgentSkill{
			{
				Id:          "profile_builder",
				Name:        "Profile Builder",
				Description: "Builds and manages user learning profiles.",
				Tags:        []string{"profile", "user", "builder"},
			},
			{
				Id:          "internal_content_rag",
				Name:        "Knowledge Search",
				Description: "Answers questions over the synced internal knowledge base.",
				Tags:        []string{"internal", "rag", "search"},
			},
			{
				Id:          "content_sync",
				Name:        "Content Sync",
				Description: "Mirrors and indexes remote knowledge-base content.",
				Tags:        []string{"confluence", "sync", "index"},
			},
		},
	}
}
