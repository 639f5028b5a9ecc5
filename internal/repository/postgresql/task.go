package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/workpulse/ems-backend/internal/domain/task"
	"github.com/workpulse/ems-backend/internal/pkg/database"
)

type taskRepository struct {
	db *database.DB
}

func NewTaskRepository(db *database.DB) task.TaskRepository {
	return &taskRepository{db: db}
}

// GetByID implements task.TaskRepository. Ownership is part of the lookup; a
// task owned by someone else is simply not found.
func (r *taskRepository) GetByID(ctx context.Context, id, employeeID string) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, to_char(task_date, 'YYYY-MM-DD'), description, status, total_minutes, created_at
		FROM tasks
		WHERE id = $1 AND employee_id = $2
	`

	var t task.Task
	err := q.QueryRow(ctx, query, id, employeeID).Scan(
		&t.ID, &t.EmployeeID, &t.TaskDate, &t.Description, &t.Status, &t.TotalMinutes, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return task.Task{}, task.ErrTaskNotFound
		}
		return task.Task{}, fmt.Errorf("failed to get task by ID: %w", err)
	}

	return t, nil
}

// Create implements task.TaskRepository.
func (r *taskRepository) Create(ctx context.Context, newTask task.Task) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	newTask.ID = uuid.NewString()
	if newTask.Status == "" {
		newTask.Status = task.StatusPending
	}

	query := `
		INSERT INTO tasks (id, employee_id, task_date, description, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		newTask.ID, newTask.EmployeeID, newTask.TaskDate, newTask.Description, newTask.Status,
	).Scan(&newTask.CreatedAt)
	if err != nil {
		return task.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	return newTask, nil
}

// ListByDate implements task.TaskRepository.
func (r *taskRepository) ListByDate(ctx context.Context, employeeID, taskDate string) ([]task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, to_char(task_date, 'YYYY-MM-DD'), description, status, total_minutes, created_at
		FROM tasks
		WHERE employee_id = $1 AND task_date = $2
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, employeeID, taskDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		var t task.Task
		if err := rows.Scan(&t.ID, &t.EmployeeID, &t.TaskDate, &t.Description, &t.Status, &t.TotalMinutes, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

// ListActiveByDate implements task.TaskRepository.
func (r *taskRepository) ListActiveByDate(ctx context.Context, employeeID, taskDate string) ([]task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.employee_id, to_char(t.task_date, 'YYYY-MM-DD'), t.description, t.status, t.total_minutes, t.created_at,
			   ts.start_time AS active_session_start
		FROM tasks t
		LEFT JOIN task_sessions ts ON ts.task_id = t.id AND ts.end_time IS NULL
		WHERE t.employee_id = $1
		  AND t.task_date = $2
		  AND t.status = 'Active'
		ORDER BY t.created_at
	`

	rows, err := q.Query(ctx, query, employeeID, taskDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list active tasks: %w", err)
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		var t task.Task
		if err := rows.Scan(&t.ID, &t.EmployeeID, &t.TaskDate, &t.Description, &t.Status, &t.TotalMinutes, &t.CreatedAt, &t.ActiveSessionStart); err != nil {
			return nil, fmt.Errorf("failed to scan active task: %w", err)
		}
		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

// UpdateStatus implements task.TaskRepository.
func (r *taskRepository) UpdateStatus(ctx context.Context, id, employeeID string, status task.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE tasks SET status = $1 WHERE id = $2 AND employee_id = $3`

	commandTag, err := q.Exec(ctx, query, status, id, employeeID)
	if err != nil {
		return fmt.Errorf("failed to update task status: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return task.ErrTaskNotFound
	}

	return nil
}

// AccumulateMinutes implements task.TaskRepository. The stored total is the
// authoritative running sum; it is only ever added to.
func (r *taskRepository) AccumulateMinutes(ctx context.Context, id string, minutes float64) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE tasks SET total_minutes = total_minutes + $1 WHERE id = $2`

	commandTag, err := q.Exec(ctx, query, minutes, id)
	if err != nil {
		return fmt.Errorf("failed to accumulate task minutes: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return task.ErrTaskNotFound
	}

	return nil
}
