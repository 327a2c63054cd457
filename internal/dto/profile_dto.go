package dto

import (
	"time"

	"github.com/google/uuid"
)

// ProfileCompletedMessage is published when an interview finishes so the
// consumer can send the summary email out of band.
type ProfileCompletedMessage struct {
	UserId  string            `json:"user_id"`
	Email   string            `json:"email,omitempty"`
	Answers map[string]string `json:"answers"`
}

type ProfileResponse struct {
	Id        uuid.UUID         `json:"id"`
	UserId    string            `json:"user_id"`
	Answers   map[string]string `json:"answers"`
	CreatedAt time.Time         `json:"created_at"`
}
