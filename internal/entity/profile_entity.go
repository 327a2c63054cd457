package entity

import (
	"time"

	"github.com/google/uuid"

	"learning-assistant-be/pkg/interview"
)

// Profile is one completed interview. Profiles are append-only: a user who
// redoes the interview gets a new row, earlier rows are kept.
type Profile struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId    string
	Answers   map[string]interview.Answer
	CreatedAt time.Time
}
