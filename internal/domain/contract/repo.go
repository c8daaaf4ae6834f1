package contract

import (
	"context"

	"github.com/diegoclair/task-reminder-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Task() TaskRepo
	Setting() SettingRepo
}

// TaskRepo defines the contract for task repository
type TaskRepo interface {
	Create(ctx context.Context, task *entity.Task) error
	GetByID(ctx context.Context, id int64) (*entity.Task, error)
	List(ctx context.Context, filter entity.TaskFilter) ([]*entity.Task, error)
	Update(ctx context.Context, task *entity.Task) error
	Delete(ctx context.Context, id int64) error
	// GetPendingWithDueTime returns incomplete tasks whose due time is set and non-blank.
	GetPendingWithDueTime(ctx context.Context) ([]*entity.Task, error)
	// SetNotified writes only the reminder flags of a task.
	SetNotified(ctx context.Context, id int64, notified60, notified5 bool) error
}

// SettingRepo defines the contract for the key-value settings table
type SettingRepo interface {
	// Get returns an empty string when the key is absent.
	Get(ctx context.Context, key string) (string, error)
	Upsert(ctx context.Context, key, value string) error
}
