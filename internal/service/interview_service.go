// FILE: internal/service/interview_service.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"learning-assistant-be/internal/dto"
	"learning-assistant-be/internal/entity"
	"learning-assistant-be/internal/pkg/logger"
	"learning-assistant-be/internal/repository/memory"
	"learning-assistant-be/internal/repository/unitofwork"
	"learning-assistant-be/pkg/events"
	"learning-assistant-be/pkg/interview"
	pkgNats "learning-assistant-be/pkg/nats"

	"github.com/google/uuid"
)

// FlowStateStore persists resumable flow snapshots across process
// restarts. The Redis repository is the production implementation.
type FlowStateStore interface {
	Save(ctx context.Context, sessionID string, state interview.State) error
	Get(ctx context.Context, sessionID string) (*interview.State, error)
	Delete(ctx context.Context, sessionID string) error
}

// IInterviewService drives the profile interview for one session at a
// time. The flow engine has no locking of its own; this service is the
// single writer for each session's flow.
type IInterviewService interface {
	HandleMessage(ctx context.Context, sessionID, userID, email, text string) (*dto.SendChatResponse, error)
	Active(ctx context.Context, sessionID string) bool
	Cleanup(ctx context.Context, sessionID string) error
}

type interviewService struct {
	sessions         *memory.InterviewSessionRepository
	states           FlowStateStore
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	eventPublisher   *pkgNats.Publisher
	log              logger.ILogger
}

func NewInterviewService(
	sessions *memory.InterviewSessionRepository,
	states FlowStateStore,
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	eventPublisher *pkgNats.Publisher,
	log logger.ILogger,
) IInterviewService {
	return &interviewService{
		sessions:         sessions,
		states:           states,
		uowFactory:       uowFactory,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		log:              log,
	}
}

// profileStore adapts the unit of work to the flow engine's persistence
// contract. One completed interview becomes one appended profile row.
type profileStore struct {
	uowFactory unitofwork.RepositoryFactory
}

func (s *profileStore) Append(ctx context.Context, userID string, answers map[string]interview.Answer) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	profile := &entity.Profile{
		Id:        uuid.New(),
		UserId:    userID,
		Answers:   answers,
		CreatedAt: time.Now(),
	}
	return uow.ProfileRepository().Append(ctx, profile)
}

func (s *interviewService) HandleMessage(ctx context.Context, sessionID, userID, email, text string) (*dto.SendChatResponse, error) {
	flow, err := s.getOrCreateFlow(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}

	command := strings.ToLower(strings.TrimSpace(text))

	var reply string
	switch command {
	case "start", "start over", "begin":
		reply = flow.StartNew(userID)
	case "skip":
		reply, err = flow.Skip(ctx)
	case "back", "go back":
		reply = flow.GoBack()
	case "summary":
		reply = flow.Summary()
	case "reset":
		reply = flow.Reset()
	default:
		reply, err = flow.Advance(ctx, text)
	}

	if err != nil {
		if errors.Is(err, interview.ErrFlowFinished) {
			return &dto.SendChatResponse{
				SessionId: sessionID,
				Reply:     flow.CurrentQuestion(),
				Mode:      "profile",
				Finished:  true,
			}, nil
		}
		return nil, err
	}

	s.sessions.Save(sessionID, flow)
	s.snapshot(ctx, sessionID, flow)

	if flow.IsFinished() {
		s.announceCompletion(ctx, sessionID, email, flow)
	}

	return &dto.SendChatResponse{
		SessionId: sessionID,
		Reply:     reply,
		Mode:      "profile",
		Finished:  flow.IsFinished(),
	}, nil
}

// Active reports whether the session has an unfinished interview, either
// live in memory or snapshotted in Redis.
func (s *interviewService) Active(ctx context.Context, sessionID string) bool {
	if flow, ok := s.sessions.Get(sessionID); ok {
		return !flow.IsFinished()
	}
	state, err := s.states.Get(ctx, sessionID)
	if err != nil || state == nil {
		return false
	}
	return !state.Finished
}

func (s *interviewService) Cleanup(ctx context.Context, sessionID string) error {
	s.sessions.Delete(sessionID)
	if err := s.states.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("cleanup session %s: %w", sessionID, err)
	}
	return nil
}

// getOrCreateFlow resolves the session's flow: live flow first, then a
// Redis snapshot from a previous process, then a fresh flow.
func (s *interviewService) getOrCreateFlow(ctx context.Context, sessionID, userID string) (*interview.Flow, error) {
	if flow, ok := s.sessions.Get(sessionID); ok {
		return flow, nil
	}

	flow := interview.NewFlow(interview.DefaultQuestionBank(), &profileStore{uowFactory: s.uowFactory})

	state, err := s.states.Get(ctx, sessionID)
	if err != nil {
		s.log.Warn("interview", "Failed to load flow snapshot, starting fresh", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
	} else if state != nil {
		flow.Resume(*state)
	}

	s.sessions.Save(sessionID, flow)
	return flow, nil
}

func (s *interviewService) snapshot(ctx context.Context, sessionID string, flow *interview.Flow) {
	if err := s.states.Save(ctx, sessionID, flow.Snapshot()); err != nil {
		s.log.Warn("interview", "Failed to persist flow snapshot", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
	}
}

// announceCompletion fans out the finished profile. Delivery is best
// effort; the profile row itself was already appended by the flow.
func (s *interviewService) announceCompletion(ctx context.Context, sessionID, email string, flow *interview.Flow) {
	answers := make(map[string]string)
	for key, ans := range flow.Answers() {
		answers[key] = ans.Display()
	}

	payload := dto.ProfileCompletedMessage{
		UserId:  flow.UserID(),
		Email:   email,
		Answers: answers,
	}
	data, err := json.Marshal(payload)
	if err == nil {
		if err := s.publisherService.Publish(ctx, data); err != nil {
			s.log.Warn("interview", "Failed to publish profile completion", map[string]interface{}{
				"session_id": sessionID,
				"error":      err.Error(),
			})
		}
	}

	if s.eventPublisher != nil {
		evt := events.NewProfileCompleted(flow.UserID(), sessionID)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.log.Warn("interview", "Failed to publish PROFILE_COMPLETED event", map[string]interface{}{
				"session_id": sessionID,
				"error":      err.Error(),
			})
		}
	}
}
