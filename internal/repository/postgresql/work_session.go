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

type workSessionRepository struct {
	db *database.DB
}

func NewWorkSessionRepository(db *database.DB) timeclock.WorkSessionRepository {
	return &workSessionRepository{db: db}
}

// GetOpen implements timeclock.WorkSessionRepository.
func (r *workSessionRepository) GetOpen(ctx context.Context, employeeID string) (timeclock.WorkSession, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, to_char(work_date, 'YYYY-MM-DD'), to_char(start_time, 'HH24:MI:SS'), to_char(end_time, 'HH24:MI:SS'), created_at
		FROM work_sessions
		WHERE employee_id = $1
		  AND end_time IS NULL
		ORDER BY created_at DESC
		LIMIT 1
	`

	var s timeclock.WorkSession
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&s.ID, &s.EmployeeID, &s.WorkDate, &s.StartTime, &s.EndTime, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timeclock.WorkSession{}, timeclock.ErrNoOpenSession
		}
		return timeclock.WorkSession{}, fmt.Errorf("failed to get open work session: %w", err)
	}

	return s, nil
}

// Open implements timeclock.WorkSessionRepository.
func (r *workSessionRepository) Open(ctx context.Context, employeeID, workDate, startTime string) (timeclock.WorkSession, error) {
	q := GetQuerier(ctx, r.db)

	session := timeclock.WorkSession{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		WorkDate:   workDate,
		StartTime:  startTime,
	}

	query := `
		INSERT INTO work_sessions (id, employee_id, work_date, start_time)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query, session.ID, employeeID, workDate, startTime).Scan(&session.CreatedAt)
	if err != nil {
		return timeclock.WorkSession{}, fmt.Errorf("failed to open work session: %w", err)
	}

	return session, nil
}

// CloseOpen implements timeclock.WorkSessionRepository.
func (r *workSessionRepository) CloseOpen(ctx context.Context, employeeID, endTime string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE work_sessions
		SET end_time = $1
		WHERE employee_id = $2
		  AND end_time IS NULL
	`

	commandTag, err := q.Exec(ctx, query, endTime, employeeID)
	if err != nil {
		return 0, fmt.Errorf("failed to close work session: %w", err)
	}

	return commandTag.RowsAffected(), nil
}

// ListByDate implements timeclock.WorkSessionRepository.
func (r *workSessionRepository) ListByDate(ctx context.Context, employeeID, workDate string) ([]timeclock.WorkSession, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, to_char(work_date, 'YYYY-MM-DD'), to_char(start_time, 'HH24:MI:SS'), to_char(end_time, 'HH24:MI:SS'), created_at
		FROM work_sessions
		WHERE employee_id = $1
		  AND work_date = $2
		ORDER BY start_time
	`

	rows, err := q.Query(ctx, query, employeeID, workDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list work sessions: %w", err)
	}
	defer rows.Close()

	var sessions []timeclock.WorkSession
	for rows.Next() {
		var s timeclock.WorkSession
		if err := rows.Scan(&s.ID, &s.EmployeeID, &s.WorkDate, &s.StartTime, &s.EndTime, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan work session: %w", err)
		}
		sessions = append(sessions, s)
	}

	return sessions, rows.Err()
}
