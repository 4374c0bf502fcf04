package serviceimpl

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"taskhub/domain/dto"
	"taskhub/domain/models"
	"taskhub/domain/ports"
	"taskhub/domain/repositories"
	"taskhub/domain/services"
	"taskhub/pkg/logger"
)

type TaskServiceImpl struct {
	taskRepo  repositories.TaskRepository
	publisher ports.EventPublisherPort // nil when events are disabled
	now       func() time.Time
}

func NewTaskService(taskRepo repositories.TaskRepository, publisher ports.EventPublisherPort) services.TaskService {
	return &TaskServiceImpl{
		taskRepo:  taskRepo,
		publisher: publisher,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *TaskServiceImpl) CreateTask(ctx context.Context, userID uuid.UUID, req *dto.CreateTaskRequest) (*models.Task, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, services.ErrTitleRequired
	}

	status := req.Status
	if status == "" {
		status = models.StatusPending
	}
	if !models.IsValidStatus(status) {
		return nil, services.ErrInvalidStatus
	}

	now := s.now()
	task := &models.Task{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       title,
		Description: req.Description,
		Status:      status,
		Category:    req.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to create task", "user_id", userID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task created", "task_id", task.ID, "user_id", userID)
	s.publishEvent(ctx, ports.TaskCreated, task)

	return task, nil
}

func (s *TaskServiceImpl) ListTasks(ctx context.Context, userID uuid.UUID, req *dto.TaskFilterRequest) ([]*models.Task, error) {
	filter := models.TaskFilter{}
	if req != nil {
		if req.Status != "" && !models.IsValidStatus(req.Status) {
			return nil, services.ErrInvalidStatus
		}
		filter.Status = req.Status
		filter.Category = req.Category
	}

	tasks, err := s.taskRepo.ListByUser(ctx, userID, filter)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list tasks", "user_id", userID, "error", err)
		return nil, err
	}
	return tasks, nil
}

func (s *TaskServiceImpl) GetTask(ctx context.Context, taskID, userID uuid.UUID) (*models.Task, error) {
	task, err := s.taskRepo.GetByIDAndUser(ctx, taskID, userID)
	if err != nil {
		return nil, services.ErrTaskNotFound
	}
	return task, nil
}

func (s *TaskServiceImpl) UpdateTask(ctx context.Context, taskID, userID uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error) {
	return s.applyPatch(ctx, taskID, userID, req.Patch())
}

func (s *TaskServiceImpl) UpdateTaskStatus(ctx context.Context, taskID, userID uuid.UUID, status string) (*models.Task, error) {
	return s.applyPatch(ctx, taskID, userID, models.TaskPatch{Status: &status})
}

// applyPatch runs a single conditional UPDATE keyed on id+owner. Ownership
// is part of the predicate, not a separate check, so a stale or foreign
// owner simply matches zero rows.
func (s *TaskServiceImpl) applyPatch(ctx context.Context, taskID, userID uuid.UUID, patch models.TaskPatch) (*models.Task, error) {
	if patch.IsEmpty() {
		return nil, services.ErrEmptyPatch
	}

	fields := map[string]any{}
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return nil, services.ErrTitleRequired
		}
		fields["title"] = title
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	if patch.Status != nil {
		if !models.IsValidStatus(*patch.Status) {
			return nil, services.ErrInvalidStatus
		}
		fields["status"] = *patch.Status
	}
	if patch.Category != nil {
		fields["category"] = *patch.Category
	}

	// updatedAt is refreshed on every successful mutation, even when the
	// supplied values equal the stored ones.
	fields["updated_at"] = s.now()

	affected, err := s.taskRepo.UpdateFields(ctx, taskID, userID, fields)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to update task", "task_id", taskID, "error", err)
		return nil, err
	}
	if affected == 0 {
		return nil, services.ErrTaskNotFound
	}

	task, err := s.taskRepo.GetByIDAndUser(ctx, taskID, userID)
	if err != nil {
		return nil, services.ErrTaskNotFound
	}

	logger.InfoContext(ctx, "Task updated", "task_id", taskID, "user_id", userID)
	s.publishEvent(ctx, ports.TaskUpdated, task)

	return task, nil
}

func (s *TaskServiceImpl) DeleteTask(ctx context.Context, taskID, userID uuid.UUID) error {
	affected, err := s.taskRepo.DeleteByIDAndUser(ctx, taskID, userID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to delete task", "task_id", taskID, "error", err)
		return err
	}
	if affected == 0 {
		return services.ErrTaskNotFound
	}

	logger.InfoContext(ctx, "Task deleted", "task_id", taskID, "user_id", userID)
	s.publishEvent(ctx, ports.TaskDeleted, &models.Task{ID: taskID, UserID: userID})

	return nil
}

func (s *TaskServiceImpl) publishEvent(ctx context.Context, action string, task *models.Task) {
	if s.publisher == nil {
		return
	}
	event := &ports.TaskEvent{
		Action:     action,
		TaskID:     task.ID,
		UserID:     task.UserID,
		Status:     task.Status,
		OccurredAt: s.now(),
	}
	if err := s.publisher.PublishTaskEvent(ctx, event); err != nil {
		logger.WarnContext(ctx, "Failed to publish task event", "action", action, "task_id", task.ID, "error", err)
	}
}
