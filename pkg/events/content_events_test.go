package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSyncRequested(t *testing.T) {
	evt := NewSyncRequested("ENG")

	assert.Equal(t, TypeSyncRequested, evt.EventType())
	assert.Equal(t, "ENG", evt.Payload()["space_key"])
	assert.False(t, evt.Timestamp().IsZero())
}

func TestNewContentSynced(t *testing.T) {
	evt := NewContentSynced("ENG", 2, 1, 3)

	assert.Equal(t, TypeContentSynced, evt.EventType())
	assert.Equal(t, "ENG", evt.Payload()["space_key"])
	assert.Equal(t, 2, evt.Payload()["added"])
	assert.Equal(t, 1, evt.Payload()["updated"])
	assert.Equal(t, 3, evt.Payload()["indexed"])
}
