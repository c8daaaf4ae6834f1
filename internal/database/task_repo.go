package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/task-reminder-bot/internal/domain"
	"github.com/diegoclair/task-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/task-reminder-bot/internal/domain/entity"
)

const taskColumns = `id, title, description, completed, due_time, notified_60, notified_5, created_at, updated_at`

// sortColumns whitelists the ORDER BY targets; "created" has no column of its
// own and orders by id.
var sortColumns = map[string]string{
	domain.SortByID:      "id",
	domain.SortByTitle:   "title",
	domain.SortByDue:     "due_time",
	domain.SortByCreated: "id",
}

type taskRepo struct {
	db dbConn
}

func newTaskRepo(db dbConn) contract.TaskRepo {
	return &taskRepo{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*entity.Task, error) {
	task := &entity.Task{}
	var description, dueTime sql.NullString

	err := row.Scan(
		&task.ID,
		&task.Title,
		&description,
		&task.Completed,
		&dueTime,
		&task.Notified60,
		&task.Notified5,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		task.Description = &description.String
	}
	if dueTime.Valid {
		task.DueTime = &dueTime.String
	}

	return task, nil
}

func nullableString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func (r *taskRepo) Create(ctx context.Context, task *entity.Task) error {
	query := `
		INSERT INTO tasks (title, description, completed, due_time, notified_60, notified_5, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx, query,
		task.Title,
		nullableString(task.Description),
		task.Completed,
		nullableString(task.DueTime),
		task.Notified60,
		task.Notified5,
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	task.ID = id
	task.CreatedAt = now
	task.UpdatedAt = now
	return nil
}

func (r *taskRepo) GetByID(ctx context.Context, id int64) (*entity.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`

	task, err := scanTask(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return task, nil
}

func (r *taskRepo) List(ctx context.Context, filter entity.TaskFilter) ([]*entity.Task, error) {
	var (
		conditions []string
		args       []any
	)

	if filter.Completed != nil {
		conditions = append(conditions, "completed = ?")
		args = append(args, *filter.Completed)
	}
	if filter.HasDue != nil {
		if *filter.HasDue {
			conditions = append(conditions, "due_time IS NOT NULL")
		} else {
			conditions = append(conditions, "due_time IS NULL")
		}
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		conditions = append(conditions, "(title LIKE ? OR description LIKE ?)")
		args = append(args, like, like)
	}

	var sb strings.Builder
	sb.WriteString(`SELECT ` + taskColumns + ` FROM tasks`)
	if len(conditions) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(conditions, " AND "))
	}

	column, ok := sortColumns[filter.SortBy]
	if !ok {
		column = "id"
	}
	direction := "ASC"
	if strings.EqualFold(filter.Order, domain.OrderDesc) {
		direction = "DESC"
	}
	fmt.Fprintf(&sb, " ORDER BY %s %s", column, direction)

	limit := filter.Limit
	if limit <= 0 {
		limit = domain.DefaultTaskLimit
	}
	sb.WriteString(" LIMIT ? OFFSET ?")
	args = append(args, limit, filter.Offset)

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	return scanTasks(rows)
}

func (r *taskRepo) Update(ctx context.Context, task *entity.Task) error {
	query := `
		UPDATE tasks SET
			title = ?,
			description = ?,
			completed = ?,
			due_time = ?,
			notified_60 = ?,
			notified_5 = ?,
			updated_at = ?
		WHERE id = ?
	`

	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, query,
		task.Title,
		nullableString(task.Description),
		task.Completed,
		nullableString(task.DueTime),
		task.Notified60,
		task.Notified5,
		now,
		task.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	task.UpdatedAt = now
	return nil
}

func (r *taskRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM tasks WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}

func (r *taskRepo) GetPendingWithDueTime(ctx context.Context) ([]*entity.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks
		WHERE completed = 0
			AND due_time IS NOT NULL
			AND TRIM(due_time) <> ''
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get pending tasks: %w", err)
	}
	defer rows.Close()

	return scanTasks(rows)
}

func (r *taskRepo) SetNotified(ctx context.Context, id int64, notified60, notified5 bool) error {
	query := `
		UPDATE tasks SET
			notified_60 = ?,
			notified_5 = ?
		WHERE id = ?
	`

	_, err := r.db.ExecContext(ctx, query, notified60, notified5, id)
	if err != nil {
		return fmt.Errorf("failed to set task %d notification flags: %w", id, err)
	}

	return nil
}

func scanTasks(rows *sql.Rows) ([]*entity.Task, error) {
	tasks := []*entity.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}

	return tasks, nil
}
