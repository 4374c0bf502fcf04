package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"taskhub/domain/ports"
)

// Subjects for task lifecycle events.
const (
	SubjectTaskCreated = "tasks.created"
	SubjectTaskUpdated = "tasks.updated"
	SubjectTaskDeleted = "tasks.deleted"
)

// Publisher emits task lifecycle events. Delivery is fire-and-forget.
type Publisher struct {
	client *Client
}

func NewPublisher(client *Client) *Publisher {
	return &Publisher{client: client}
}

func (p *Publisher) PublishTaskEvent(ctx context.Context, event *ports.TaskEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal task event: %w", err)
	}

	var subject string
	switch event.Action {
	case ports.TaskCreated:
		subject = SubjectTaskCreated
	case ports.TaskUpdated:
		subject = SubjectTaskUpdated
	case ports.TaskDeleted:
		subject = SubjectTaskDeleted
	default:
		return fmt.Errorf("unknown task event action: %s", event.Action)
	}

	return p.client.conn.Publish(subject, data)
}
