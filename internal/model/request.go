package model

import (
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a notification request.
//
// Transitions only move forward: queued -> processing -> sent | failed.
type Status string

const (
	StatusQueued     Status = "queued"
	StatusProcessing Status = "processing"
	StatusSent       Status = "sent"
	StatusFailed     Status = "failed"
)

// Terminal reports whether no further transition is permitted from s.
func (s Status) Terminal() bool {
	return s == StatusSent || s == StatusFailed
}

// Channel is the delivery channel of a notification request.
type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
	ChannelPush  Channel = "push"
)

type Request struct {
	ID        uuid.UUID `json:"id"`
	To        string    `json:"to"`
	Message   string    `json:"message"`
	Channel   Channel   `json:"channel"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
