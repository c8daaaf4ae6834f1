package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/task-reminder-bot/internal/domain"
	"github.com/diegoclair/task-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/task-reminder-bot/internal/domain/entity"
)

type taskService struct {
	dm contract.DataManager
}

func newTaskService(dm contract.DataManager) *taskService {
	return &taskService{dm: dm}
}

func (s *taskService) Create(ctx context.Context, input entity.TaskInput) (*entity.Task, error) {
	title, err := validateTitle(input.Title)
	if err != nil {
		return nil, err
	}

	dueTime, err := normalizeDueTime(input.DueTime)
	if err != nil {
		return nil, err
	}

	task := &entity.Task{
		Title:       title,
		Description: input.Description,
		DueTime:     dueTime,
	}

	if err := s.dm.Task().Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

func (s *taskService) Get(ctx context.Context, id int64) (*entity.Task, error) {
	task, err := s.dm.Task().GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	if task == nil {
		return nil, domain.ErrTaskNotFound
	}

	return task, nil
}

func (s *taskService) List(ctx context.Context, filter entity.TaskFilter) ([]*entity.Task, error) {
	if filter.Limit <= 0 {
		filter.Limit = domain.DefaultTaskLimit
	}
	if filter.Limit > domain.MaxTaskLimit {
		filter.Limit = domain.MaxTaskLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	if filter.SortBy == "" {
		filter.SortBy = domain.SortByCreated
	}
	if filter.Order == "" {
		filter.Order = domain.OrderAsc
	}

	tasks, err := s.dm.Task().List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, nil
}

// Update replaces the editable fields of a task. Reminder flags are left as
// they are when the due time changes; callers that want a fresh reminder for
// a new due time must reset them explicitly.
func (s *taskService) Update(ctx context.Context, id int64, input entity.TaskUpdate) (*entity.Task, error) {
	title, err := validateTitle(input.Title)
	if err != nil {
		return nil, err
	}

	dueTime, err := normalizeDueTime(input.DueTime)
	if err != nil {
		return nil, err
	}

	var updated *entity.Task
	err = s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		task, err := tx.Task().GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get task: %w", err)
		}
		if task == nil {
			return domain.ErrTaskNotFound
		}

		task.Title = title
		task.Description = input.Description
		task.DueTime = dueTime
		if input.Completed != nil {
			task.Completed = *input.Completed
		}
		if input.Notified60 != nil {
			task.Notified60 = *input.Notified60
		}
		if input.Notified5 != nil {
			task.Notified5 = *input.Notified5
		}

		if err := tx.Task().Update(ctx, task); err != nil {
			return fmt.Errorf("failed to update task: %w", err)
		}

		updated = task
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *taskService) Delete(ctx context.Context, id int64) error {
	return s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		task, err := tx.Task().GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get task: %w", err)
		}
		if task == nil {
			return domain.ErrTaskNotFound
		}

		if err := tx.Task().Delete(ctx, id); err != nil {
			return fmt.Errorf("failed to delete task: %w", err)
		}
		return nil
	})
}

func validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", fmt.Errorf("%w: title is required", domain.ErrInvalidTask)
	}
	return title, nil
}

// normalizeDueTime stores blank due times as NULL and rejects values the
// reminder loop would never be able to parse.
func normalizeDueTime(dueTime *string) (*string, error) {
	if dueTime == nil {
		return nil, nil
	}

	value := strings.TrimSpace(*dueTime)
	if value == "" {
		return nil, nil
	}

	if _, _, err := domain.ParseDueTime(value, time.Local); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidTask, err)
	}

	return &value, nil
}
