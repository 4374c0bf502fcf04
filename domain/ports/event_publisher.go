package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Task lifecycle event actions.
const (
	TaskCreated = "created"
	TaskUpdated = "updated"
	TaskDeleted = "deleted"
)

// TaskEvent is published after a successful task mutation. Consumers are
// external (audit, analytics); publishing is fire-and-forget and never
// fails the mutation itself.
type TaskEvent struct {
	Action     string    `json:"action"`
	TaskID     uuid.UUID `json:"taskId"`
	UserID     uuid.UUID `json:"userId"`
	Status     string    `json:"status,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

type EventPublisherPort interface {
	PublishTaskEvent(ctx context.Context, event *TaskEvent) error
}
