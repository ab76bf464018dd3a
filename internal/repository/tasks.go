package repository

import (
	"context"
	"time"

	"github.com/opshub-dev/opshub/backend/internal/domain"
)

func (r *Repository) CreateTask(task *domain.Task) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO tasks (title, description, status, assignee_id, created_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at, version
	`

	args := []any{task.Title, task.Description, task.Status, task.AssigneeID, task.CreatedBy}
	return r.dbpool.QueryRowContext(ctx, query, args...).Scan(&task.ID, &task.CreatedAt, &task.UpdatedAt, &task.Version)
}

func (r *Repository) GetTaskByID(id int64) (*domain.Task, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT title, description, status, assignee_id, created_by, created_at, updated_at, version
		FROM tasks WHERE id = $1
	`

	task := &domain.Task{ID: id}
	dst := []any{&task.Title, &task.Description, &task.Status, &task.AssigneeID, &task.CreatedBy, &task.CreatedAt, &task.UpdatedAt, &task.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return task, nil
}

func (r *Repository) GetAllTasks() ([]*domain.Task, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, title, description, status, assignee_id, created_by, created_at, updated_at, version
		FROM tasks
		ORDER BY created_at DESC
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		task := &domain.Task{}
		dst := []any{&task.ID, &task.Title, &task.Description, &task.Status, &task.AssigneeID, &task.CreatedBy, &task.CreatedAt, &task.UpdatedAt, &task.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

func (r *Repository) UpdateTask(task *domain.Task) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		UPDATE tasks
		SET
			title = $1,
			description = $2,
			status = $3,
			assignee_id = $4,
			updated_at = NOW(),
			version = version + 1
		WHERE id = $5 AND version = $6
		RETURNING updated_at, version
	`

	args := []any{task.Title, task.Description, task.Status, task.AssigneeID, task.ID, task.Version}
	return r.dbpool.QueryRowContext(ctx, query, args...).Scan(&task.UpdatedAt, &task.Version)
}

func (r *Repository) DeleteTask(id int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	return err
}

// CountTasksByStatus returns how many tasks sit in each board column,
// used by the KPI overview.
func (r *Repository) CountTasksByStatus() (map[domain.TaskStatus]int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `SELECT status, COUNT(*) FROM tasks GROUP BY status`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.TaskStatus]int64)
	for rows.Next() {
		var status domain.TaskStatus
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}
