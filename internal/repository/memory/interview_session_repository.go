package memory

import (
	"time"

	"github.com/patrickmn/go-cache"

	"learning-assistant-be/pkg/interview"
)

// InterviewSessionRepository keeps at most one live interview flow per
// user session. The flow itself has no internal locking, so the session
// layer must hand each flow to exactly one conversation at a time.
type InterviewSessionRepository struct {
	cache *cache.Cache
}

func NewInterviewSessionRepository() *InterviewSessionRepository {
	// Sessions idle for an hour are dropped; expired entries are purged
	// every 10 minutes.
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &InterviewSessionRepository{
		cache: c,
	}
}

func (r *InterviewSessionRepository) Save(sessionID string, flow *interview.Flow) {
	r.cache.Set(sessionID, flow, cache.DefaultExpiration)
}

func (r *InterviewSessionRepository) Get(sessionID string) (*interview.Flow, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*interview.Flow), true
	}
	return nil, false
}

func (r *InterviewSessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
