package service

import (
	"context"
	"testing"

	"learning-assistant-be/internal/dto"
	"learning-assistant-be/internal/entity"
	"learning-assistant-be/internal/repository/contract"
	"learning-assistant-be/pkg/embedding"
	"learning-assistant-be/pkg/llm"

	"github.com/stretchr/testify/assert"
)

type fakeEmbeddingProvider struct {
	lastTaskType string
}

func (p *fakeEmbeddingProvider) Generate(text string, taskType string) (*embedding.Response, error) {
	p.lastTaskType = taskType
	return &embedding.Response{Values: []float32{0.1, 0.2, 0.3}}, nil
}

type fakeLLM struct {
	lastHistory []llm.Message
	reply       string
}

func (f *fakeLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	f.lastHistory = history
	return f.reply, nil
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return f.reply, nil
}

func newTestAssistantService(scored []*contract.ScoredContentEmbedding, model *fakeLLM, embedder *fakeEmbeddingProvider) IAssistantService {
	interviewSvc := newTestInterviewService(newFakeStateStore(), &fakeProfileRepo{})
	return NewAssistantService(
		interviewSvc,
		&fakeUowFactory{uow: &fakeUow{embeddings: &fakeEmbeddingRepo{scored: scored}}},
		embedder,
		model,
		noopLogger{},
	)
}

func TestChatRoutesProfileCommands(t *testing.T) {
	svc := newTestAssistantService(nil, &fakeLLM{}, &fakeEmbeddingProvider{})

	res, err := svc.Chat(context.Background(), "user-1", "", &dto.SendChatRequest{
		SessionId: "sess-1",
		Message:   "start",
	})
	assert.NoError(t, err)
	assert.Equal(t, "profile", res.Mode)
	assert.Contains(t, res.Reply, "Learning Path Assistant")
}

func TestChatStaysInProfileModeMidInterview(t *testing.T) {
	svc := newTestAssistantService(nil, &fakeLLM{}, &fakeEmbeddingProvider{})
	ctx := context.Background()

	_, err := svc.Chat(ctx, "user-1", "", &dto.SendChatRequest{SessionId: "sess-1", Message: "start"})
	assert.NoError(t, err)

	// A free-text answer mid-interview is an answer, not a knowledge query
	res, err := svc.Chat(ctx, "user-1", "", &dto.SendChatRequest{SessionId: "sess-1", Message: "Alice"})
	assert.NoError(t, err)
	assert.Equal(t, "profile", res.Mode)
	assert.Contains(t, res.Reply, "Question 1/14")
}

func TestChatAnswersFromKnowledge(t *testing.T) {
	scored := []*contract.ScoredContentEmbedding{
		{
			Embedding:  &entity.ContentEmbedding{Document: "Kubernetes is a container orchestrator."},
			Similarity: 0.91,
		},
	}
	model := &fakeLLM{reply: "Kubernetes orchestrates containers."}
	embedder := &fakeEmbeddingProvider{}
	svc := newTestAssistantService(scored, model, embedder)

	res, err := svc.Chat(context.Background(), "user-1", "", &dto.SendChatRequest{
		SessionId: "sess-2",
		Message:   "What is Kubernetes?",
	})
	assert.NoError(t, err)
	assert.Equal(t, "knowledge", res.Mode)
	assert.Equal(t, "Kubernetes orchestrates containers.", res.Reply)

	// Query embeddings use the query task type
	assert.Equal(t, embedding.TaskQuery, embedder.lastTaskType)

	// The retrieved chunk is part of the grounding prompt
	assert.Len(t, model.lastHistory, 2)
	assert.Contains(t, model.lastHistory[1].Content, "Kubernetes is a container orchestrator.")
	assert.Contains(t, model.lastHistory[1].Content, "What is Kubernetes?")
}

func TestChatWithoutSyncedContent(t *testing.T) {
	svc := newTestAssistantService(nil, &fakeLLM{}, &fakeEmbeddingProvider{})

	res, err := svc.Chat(context.Background(), "user-1", "", &dto.SendChatRequest{
		SessionId: "sess-3",
		Message:   "What is Kubernetes?",
	})
	assert.NoError(t, err)
	assert.Equal(t, "knowledge", res.Mode)
	assert.Contains(t, res.Reply, "content sync")
}
