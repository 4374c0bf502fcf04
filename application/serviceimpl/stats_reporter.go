package serviceimpl

import (
	"context"
	"time"

	"taskhub/domain/models"
	"taskhub/domain/repositories"
	"taskhub/pkg/logger"
	"taskhub/pkg/scheduler"
)

// StatsReporter periodically logs aggregate task counts per status. It is
// the only scheduled job in the service and exists for ops visibility.
type StatsReporter struct {
	taskRepo repositories.TaskRepository
}

func NewStatsReporter(taskRepo repositories.TaskRepository) *StatsReporter {
	return &StatsReporter{taskRepo: taskRepo}
}

// Register schedules the report on the given cron expression.
func (r *StatsReporter) Register(sched scheduler.EventScheduler, cronExpr string) error {
	return sched.AddJob("task-stats-report", cronExpr, r.Report)
}

func (r *StatsReporter) Report() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	counts, err := r.taskRepo.CountByStatus(ctx)
	if err != nil {
		logger.Error("Failed to collect task stats", "error", err)
		return
	}

	var total int64
	for _, n := range counts {
		total += n
	}

	logger.Info("Task stats",
		"total", total,
		"pending", counts[models.StatusPending],
		"in-progress", counts[models.StatusInProgress],
		"completed", counts[models.StatusCompleted],
	)
}
