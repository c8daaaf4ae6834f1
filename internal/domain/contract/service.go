package contract

import (
	"context"

	"github.com/diegoclair/task-reminder-bot/internal/domain/entity"
)

type TaskService interface {
	Create(ctx context.Context, input entity.TaskInput) (*entity.Task, error)
	Get(ctx context.Context, id int64) (*entity.Task, error)
	List(ctx context.Context, filter entity.TaskFilter) ([]*entity.Task, error)
	Update(ctx context.Context, id int64, input entity.TaskUpdate) (*entity.Task, error)
	Delete(ctx context.Context, id int64) error
}

// DestinationResolver finds the single chat reminders are delivered to.
type DestinationResolver interface {
	Resolve(ctx context.Context) (chatID int64, ok bool)
}
