package dto

import (
	"time"

	"github.com/google/uuid"

	"taskhub/domain/models"
)

type CreateTaskRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"omitempty,max=1000"`
	Status      string `json:"status" validate:"omitempty,oneof=pending in-progress completed"`
	Category    string `json:"category" validate:"omitempty,max=100"`
}

// UpdateTaskRequest carries a partial update. Pointer fields distinguish
// "absent" (leave unchanged) from "present but empty" (clear the value).
type UpdateTaskRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=200"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	Status      *string `json:"status" validate:"omitempty,oneof=pending in-progress completed"`
	Category    *string `json:"category" validate:"omitempty,max=100"`
}

// Patch converts the request into the domain patch type.
func (r *UpdateTaskRequest) Patch() models.TaskPatch {
	return models.TaskPatch{
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		Category:    r.Category,
	}
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending in-progress completed"`
}

type TaskFilterRequest struct {
	Status   string `query:"status" validate:"omitempty,oneof=pending in-progress completed"`
	Category string `query:"category" validate:"omitempty,max=100"`
}

type TaskResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
