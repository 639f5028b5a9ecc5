package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/workpulse/ems-backend/internal/domain/task"
	"github.com/workpulse/ems-backend/internal/pkg/database"
)

type taskSessionRepository struct {
	db *database.DB
}

func NewTaskSessionRepository(db *database.DB) task.TaskSessionRepository {
	return &taskSessionRepository{db: db}
}

// GetOpenByEmployee implements task.TaskSessionRepository. The join enforces
// the cross-task invariant: at most one open session per employee.
func (r *taskSessionRepository) GetOpenByEmployee(ctx context.Context, employeeID string) (task.TaskSession, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ts.id, ts.task_id, ts.start_time, ts.end_time
		FROM task_sessions ts
		JOIN tasks t ON t.id = ts.task_id
		WHERE t.employee_id = $1
		  AND ts.end_time IS NULL
		LIMIT 1
	`

	var s task.TaskSession
	err := q.QueryRow(ctx, query, employeeID).Scan(&s.ID, &s.TaskID, &s.StartTime, &s.EndTime)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return task.TaskSession{}, task.ErrNoActiveSession
		}
		return task.TaskSession{}, fmt.Errorf("failed to get open task session: %w", err)
	}

	return s, nil
}

// Open implements task.TaskSessionRepository.
func (r *taskSessionRepository) Open(ctx context.Context, taskID string, startTime time.Time) (task.TaskSession, error) {
	q := GetQuerier(ctx, r.db)

	session := task.TaskSession{
		ID:        uuid.NewString(),
		TaskID:    taskID,
		StartTime: startTime,
	}

	query := `
		INSERT INTO task_sessions (id, task_id, start_time)
		VALUES ($1, $2, $3)
	`

	if _, err := q.Exec(ctx, query, session.ID, taskID, startTime); err != nil {
		return task.TaskSession{}, fmt.Errorf("failed to open task session: %w", err)
	}

	return session, nil
}

// Close implements task.TaskSessionRepository.
func (r *taskSessionRepository) Close(ctx context.Context, id string, endTime time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE task_sessions SET end_time = $1 WHERE id = $2 AND end_time IS NULL`

	commandTag, err := q.Exec(ctx, query, endTime, id)
	if err != nil {
		return fmt.Errorf("failed to close task session: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return task.ErrNoActiveSession
	}

	return nil
}

// ListByTask implements task.TaskSessionRepository.
func (r *taskSessionRepository) ListByTask(ctx context.Context, taskID string) ([]task.TaskSession, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, task_id, start_time, end_time
		FROM task_sessions
		WHERE task_id = $1
		ORDER BY start_time
	`

	rows, err := q.Query(ctx, query, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to list task sessions: %w", err)
	}
	defer rows.Close()

	var sessions []task.TaskSession
	for rows.Next() {
		var s task.TaskSession
		if err := rows.Scan(&s.ID, &s.TaskID, &s.StartTime, &s.EndTime); err != nil {
			return nil, fmt.Errorf("failed to scan task session: %w", err)
		}
		sessions = append(sessions, s)
	}

	return sessions, rows.Err()
}
