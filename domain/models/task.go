package models

import (
	"time"

	"github.com/google/uuid"
)

// Task statuses. These three values are the only ones that ever persist.
const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

// IsValidStatus reports whether s is one of the persisted status values.
// Matching is case-sensitive.
func IsValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

type Task struct {
	ID          uuid.UUID `gorm:"primaryKey;type:uuid"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"not null"`
	Description string
	Status      string `gorm:"not null;default:'pending'"`
	Category    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Task) TableName() string {
	return "tasks"
}

// TaskFilter narrows a task listing. Zero-value fields impose no
// constraint; present fields compose as a conjunction. Category matching
// is exact-string equality, no case folding or trimming.
type TaskFilter struct {
	Status   string
	Category string
}

// TaskPatch is a partial update. A nil field leaves the stored value
// unchanged; a non-nil field replaces it, so an empty string clears
// description/category. Owner, id and createdAt are never patchable.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *string
	Category    *string
}

// IsEmpty reports whether the patch carries no field at all.
func (p *TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Status == nil && p.Category == nil
}
