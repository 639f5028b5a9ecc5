package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/workpulse/ems-backend/internal/domain/timeclock"
	"github.com/workpulse/ems-backend/internal/pkg/database"
)

type breakSessionRepository struct {
	db *database.DB
}

func NewBreakSessionRepository(db *database.DB) timeclock.BreakSessionRepository {
	return &breakSessionRepository{db: db}
}

// GetOpen implements timeclock.BreakSessionRepository.
func (r *breakSessionRepository) GetOpen(ctx context.Context, workSessionID string) (timeclock.BreakSession, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, work_session_id, to_char(start_time, 'HH24:MI:SS'), to_char(end_time, 'HH24:MI:SS'), created_at
		FROM break_sessions
		WHERE work_session_id = $1
		  AND end_time IS NULL
		LIMIT 1
	`

	var b timeclock.BreakSession
	err := q.QueryRow(ctx, query, workSessionID).Scan(
		&b.ID, &b.WorkSessionID, &b.StartTime, &b.EndTime, &b.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timeclock.BreakSession{}, timeclock.ErrNotOnBreak
		}
		return timeclock.BreakSession{}, fmt.Errorf("failed to get open break: %w", err)
	}

	return b, nil
}

// Open implements timeclock.BreakSessionRepository.
func (r *breakSessionRepository) Open(ctx context.Context, workSessionID, startTime string) (timeclock.BreakSession, error) {
	q := GetQuerier(ctx, r.db)

	breakSession := timeclock.BreakSession{
		ID:            uuid.NewString(),
		WorkSessionID: workSessionID,
		StartTime:     startTime,
	}

	query := `
		INSERT INTO break_sessions (id, work_session_id, start_time)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query, breakSession.ID, workSessionID, startTime).Scan(&breakSession.CreatedAt)
	if err != nil {
		return timeclock.BreakSession{}, fmt.Errorf("failed to open break: %w", err)
	}

	return breakSession, nil
}

// CloseOpen implements timeclock.BreakSessionRepository. The subquery scopes
// the close to the employee's own work sessions.
func (r *breakSessionRepository) CloseOpen(ctx context.Context, employeeID, endTime string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE break_sessions
		SET end_time = $1
		WHERE end_time IS NULL
		  AND work_session_id IN (SELECT id FROM work_sessions WHERE employee_id = $2)
	`

	commandTag, err := q.Exec(ctx, query, endTime, employeeID)
	if err != nil {
		return 0, fmt.Errorf("failed to close break: %w", err)
	}

	return commandTag.RowsAffected(), nil
}

// ListByWorkSession implements timeclock.BreakSessionRepository.
func (r *breakSessionRepository) ListByWorkSession(ctx context.Context, workSessionID string) ([]timeclock.BreakSession, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, work_session_id, to_char(start_time, 'HH24:MI:SS'), to_char(end_time, 'HH24:MI:SS'), created_at
		FROM break_sessions
		WHERE work_session_id = $1
		ORDER BY start_time
	`

	rows, err := q.Query(ctx, query, workSessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list breaks: %w", err)
	}
	defer rows.Close()

	var breaks []timeclock.BreakSession
	for rows.Next() {
		var b timeclock.BreakSession
		if err := rows.Scan(&b.ID, &b.WorkSessionID, &b.StartTime, &b.EndTime, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan break: %w", err)
		}
		breaks = append(breaks, b)
	}

	return breaks, rows.Err()
}
