package services

import (
	"context"

	"github.com/google/uuid"

	"taskhub/domain/dto"
	"taskhub/domain/models"
)

type TaskService interface {
	CreateTask(ctx context.Context, userID uuid.UUID, req *dto.CreateTaskRequest) (*models.Task, error)
	ListTasks(ctx context.Context, userID uuid.UUID, req *dto.TaskFilterRequest) ([]*models.Task, error)
	GetTask(ctx context.Context, taskID, userID uuid.UUID) (*models.Task, error)
	UpdateTask(ctx context.Context, taskID, userID uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error)
	UpdateTaskStatus(ctx context.Context, taskID, userID uuid.UUID, status string) (*models.Task, error)
	DeleteTask(ctx context.Context, taskID, userID uuid.UUID) error
}
