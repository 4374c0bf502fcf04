package repositories

import (
	"context"

	"github.com/google/uuid"

	"taskhub/domain/models"
)

// TaskRepository persists tasks. Every lookup and mutation takes the owner
// id and folds it into the store predicate, so a mismatched owner and a
// missing id are the same outcome: no row. Update and Delete run a single
// conditional statement keyed on id+owner and report the matched-row count
// rather than doing a read-then-write.
type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*models.Task, error)
	ListByUser(ctx context.Context, userID uuid.UUID, filter models.TaskFilter) ([]*models.Task, error)
	UpdateFields(ctx context.Context, id, userID uuid.UUID, fields map[string]any) (int64, error)
	DeleteByIDAndUser(ctx context.Context, id, userID uuid.UUID) (int64, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
}
