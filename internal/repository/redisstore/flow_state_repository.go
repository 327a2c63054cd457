// Package redisstore persists interview flow snapshots in Redis so a
// session can resume after a process restart. The in-memory repository
// stays the owner of live flows; this store only holds serialized state.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"learning-assistant-be/pkg/interview"
)

const keyPrefix = "interview:state:"

type FlowStateRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewFlowStateRepository(client *redis.Client, ttl time.Duration) *FlowStateRepository {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &FlowStateRepository{
		client: client,
		ttl:    ttl,
	}
}

func (r *FlowStateRepository) Save(ctx context.Context, sessionID string, state interview.State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal flow state: %w", err)
	}
	if err := r.client.Set(ctx, keyPrefix+sessionID, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("save flow state: %w", err)
	}
	return nil
}

func (r *FlowStateRepository) Get(ctx context.Context, sessionID string) (*interview.State, error) {
	data, err := r.client.Get(ctx, keyPrefix+sessionID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("load flow state: %w", err)
	}

	var state interview.State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("decode flow state: %w", err)
	}
	return &state, nil
}

func (r *FlowStateRepository) Delete(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, keyPrefix+sessionID).Err()
}
