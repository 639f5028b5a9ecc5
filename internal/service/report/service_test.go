package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workpulse/ems-backend/internal/domain/employee"
	"github.com/workpulse/ems-backend/internal/domain/report"
	"github.com/workpulse/ems-backend/internal/domain/task"
	"github.com/workpulse/ems-backend/internal/domain/timeclock"
	"github.com/workpulse/ems-backend/internal/pkg/validator"
)

const testEmployeeID = "emp-1"

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) GetByUsername(context.Context, string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	return e, nil
}

func (f *fakeEmployeeRepo) List(context.Context, string) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) ListByRole(context.Context, employee.Role) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) UpdateAllowedIPs(context.Context, string, string) error { return nil }

func (f *fakeEmployeeRepo) Delete(context.Context, string) error { return nil }

type fakeWorkRepo struct {
	sessions []timeclock.WorkSession
}

func (f *fakeWorkRepo) GetOpen(context.Context, string) (timeclock.WorkSession, error) {
	return timeclock.WorkSession{}, timeclock.ErrNoOpenSession
}

func (f *fakeWorkRepo) Open(context.Context, string, string, string) (timeclock.WorkSession, error) {
	return timeclock.WorkSession{}, nil
}

func (f *fakeWorkRepo) CloseOpen(context.Context, string, string) (int64, error) { return 0, nil }

func (f *fakeWorkRepo) ListByDate(_ context.Context, employeeID, workDate string) ([]timeclock.WorkSession, error) {
	var out []timeclock.WorkSession
	for _, s := range f.sessions {
		if s.EmployeeID == employeeID && s.WorkDate == workDate {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeBreakRepo struct {
	sessions []timeclock.BreakSession
}

func (f *fakeBreakRepo) GetOpen(context.Context, string) (timeclock.BreakSession, error) {
	return timeclock.BreakSession{}, timeclock.ErrNotOnBreak
}

func (f *fakeBreakRepo) Open(context.Context, string, string) (timeclock.BreakSession, error) {
	return timeclock.BreakSession{}, nil
}

func (f *fakeBreakRepo) CloseOpen(context.Context, string, string) (int64, error) { return 0, nil }

func (f *fakeBreakRepo) ListByWorkSession(_ context.Context, workSessionID string) ([]timeclock.BreakSession, error) {
	var out []timeclock.BreakSession
	for _, s := range f.sessions {
		if s.WorkSessionID == workSessionID {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeTaskRepo struct {
	tasks []task.Task
}

func (f *fakeTaskRepo) GetByID(_ context.Context, id, employeeID string) (task.Task, error) {
	for _, t := range f.tasks {
		if t.ID == id && t.EmployeeID == employeeID {
			return t, nil
		}
	}
	return task.Task{}, task.ErrTaskNotFound
}

func (f *fakeTaskRepo) Create(_ context.Context, t task.Task) (task.Task, error) { return t, nil }

func (f *fakeTaskRepo) ListByDate(_ context.Context, employeeID, taskDate string) ([]task.Task, error) {
	var out []task.Task
	for _, t := range f.tasks {
		if t.EmployeeID == employeeID && t.TaskDate == taskDate {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTaskRepo) ListActiveByDate(context.Context, string, string) ([]task.Task, error) {
	return nil, nil
}

func (f *fakeTaskRepo) UpdateStatus(context.Context, string, string, task.Status) error { return nil }

func (f *fakeTaskRepo) AccumulateMinutes(context.Context, string, float64) error { return nil }

type fakeTaskSessionRepo struct {
	sessions []task.TaskSession
}

func (f *fakeTaskSessionRepo) GetOpenByEmployee(context.Context, string) (task.TaskSession, error) {
	return task.TaskSession{}, task.ErrNoActiveSession
}

func (f *fakeTaskSessionRepo) Open(context.Context, string, time.Time) (task.TaskSession, error) {
	return task.TaskSession{}, nil
}

func (f *fakeTaskSessionRepo) Close(context.Context, string, time.Time) error { return nil }

func (f *fakeTaskSessionRepo) ListByTask(_ context.Context, taskID string) ([]task.TaskSession, error) {
	var out []task.TaskSession
	for _, s := range f.sessions {
		if s.TaskID == taskID {
			out = append(out, s)
		}
	}
	return out, nil
}

func newTestService(work *fakeWorkRepo, brk *fakeBreakRepo, tasks *fakeTaskRepo, taskSessions *fakeTaskSessionRepo) *Service {
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		testEmployeeID: {ID: testEmployeeID, FullName: "Jane Roe", Role: employee.RoleEmployee},
	}}
	return NewService(employees, work, brk, tasks, taskSessions)
}

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func localTime(date string, hour, min int) time.Time {
	d, _ := time.ParseInLocation("2006-01-02", date, time.Local)
	return time.Date(d.Year(), d.Month(), d.Day(), hour, min, 0, 0, time.Local)
}

func TestBuildReport_SingleDayScenario(t *testing.T) {
	// 09:00 clock in, task 09:05-09:35, break 09:40-09:50, 10:00 clock out.
	const date = "2026-03-02"

	work := &fakeWorkRepo{sessions: []timeclock.WorkSession{
		{ID: "ws-1", EmployeeID: testEmployeeID, WorkDate: date, StartTime: "09:00:00", EndTime: strPtr("10:00:00")},
	}}
	brk := &fakeBreakRepo{sessions: []timeclock.BreakSession{
		{ID: "bs-1", WorkSessionID: "ws-1", StartTime: "09:40:00", EndTime: strPtr("09:50:00")},
	}}
	tasks := &fakeTaskRepo{tasks: []task.Task{
		{ID: "t-1", EmployeeID: testEmployeeID, TaskDate: date, Description: "Write docs", Status: task.StatusPaused, TotalMinutes: 30},
	}}
	taskSessions := &fakeTaskSessionRepo{sessions: []task.TaskSession{
		{ID: "tss-1", TaskID: "t-1", StartTime: localTime(date, 9, 5), EndTime: timePtr(localTime(date, 9, 35))},
	}}

	svc := newTestService(work, brk, tasks, taskSessions)
	rep, err := svc.BuildReport(context.Background(), report.ReportRequest{
		EmployeeID: testEmployeeID,
		StartDate:  date,
		EndDate:    date,
	})
	require.NoError(t, err)

	assert.InDelta(t, 1.0, rep.Summary.Work, 1e-9)
	assert.InDelta(t, 10, rep.Summary.Break, 1e-9)
	assert.InDelta(t, 30, rep.Summary.Task, 1e-9)
	assert.InDelta(t, 20, rep.Summary.Idle, 1e-9)

	require.Len(t, rep.Tasks, 1)
	assert.Equal(t, "Write docs", rep.Tasks[0].Description)

	wantTypes := []report.EventType{
		report.EventClockIn,
		report.EventTaskStart,
		report.EventTaskStop,
		report.EventBreakStart,
		report.EventBreakEnd,
		report.EventClockOut,
	}
	require.Len(t, rep.Timeline, len(wantTypes))
	for i, want := range wantTypes {
		assert.Equal(t, want, rep.Timeline[i].Type, "event %d", i)
	}
	assert.Equal(t, "09:05:00", rep.Timeline[1].Time)
	assert.Equal(t, "Started task: Write docs", rep.Timeline[1].Text)
}

func TestBuildReport_FullDayIdle(t *testing.T) {
	// 480 minutes of work with a 30 minute break and no tasks leaves 450
	// minutes idle.
	const date = "2026-03-03"

	work := &fakeWorkRepo{sessions: []timeclock.WorkSession{
		{ID: "ws-1", EmployeeID: testEmployeeID, WorkDate: date, StartTime: "08:00:00", EndTime: strPtr("16:00:00")},
	}}
	brk := &fakeBreakRepo{sessions: []timeclock.BreakSession{
		{ID: "bs-1", WorkSessionID: "ws-1", StartTime: "11:00:00", EndTime: strPtr("11:30:00")},
	}}

	svc := newTestService(work, brk, &fakeTaskRepo{}, &fakeTaskSessionRepo{})
	rep, err := svc.BuildReport(context.Background(), report.ReportRequest{
		EmployeeID: testEmployeeID,
		StartDate:  date,
		EndDate:    date,
	})
	require.NoError(t, err)

	assert.InDelta(t, 8.0, rep.Summary.Work, 1e-9)
	assert.InDelta(t, 30, rep.Summary.Break, 1e-9)
	assert.InDelta(t, 0, rep.Summary.Task, 1e-9)
	assert.InDelta(t, 450, rep.Summary.Idle, 1e-9)
}

func TestBuildReport_IdleNeverNegative(t *testing.T) {
	// Accumulated task minutes can exceed clocked time when sessions straddle
	// days; idle clamps at zero instead of going negative.
	const date = "2026-03-04"

	work := &fakeWorkRepo{sessions: []timeclock.WorkSession{
		{ID: "ws-1", EmployeeID: testEmployeeID, WorkDate: date, StartTime: "09:00:00", EndTime: strPtr("09:10:00")},
	}}
	tasks := &fakeTaskRepo{tasks: []task.Task{
		{ID: "t-1", EmployeeID: testEmployeeID, TaskDate: date, Description: "Overrun", Status: task.StatusPaused, TotalMinutes: 45},
	}}

	svc := newTestService(work, &fakeBreakRepo{}, tasks, &fakeTaskSessionRepo{})
	rep, err := svc.BuildReport(context.Background(), report.ReportRequest{
		EmployeeID: testEmployeeID,
		StartDate:  date,
		EndDate:    date,
	})
	require.NoError(t, err)

	assert.InDelta(t, 0, rep.Summary.Idle, 1e-9)
	assert.GreaterOrEqual(t, rep.Summary.Idle, 0.0)
}

func TestBuildReport_TimelineTieBreak(t *testing.T) {
	// Break end and clock out share the same instant; the clock event sorts
	// first.
	const date = "2026-03-05"

	work := &fakeWorkRepo{sessions: []timeclock.WorkSession{
		{ID: "ws-1", EmployeeID: testEmployeeID, WorkDate: date, StartTime: "09:00:00", EndTime: strPtr("10:00:00")},
	}}
	brk := &fakeBreakRepo{sessions: []timeclock.BreakSession{
		{ID: "bs-1", WorkSessionID: "ws-1", StartTime: "09:50:00", EndTime: strPtr("10:00:00")},
	}}

	svc := newTestService(work, brk, &fakeTaskRepo{}, &fakeTaskSessionRepo{})
	rep, err := svc.BuildReport(context.Background(), report.ReportRequest{
		EmployeeID: testEmployeeID,
		StartDate:  date,
		EndDate:    date,
	})
	require.NoError(t, err)

	require.Len(t, rep.Timeline, 4)
	assert.Equal(t, report.EventClockOut, rep.Timeline[2].Type)
	assert.Equal(t, report.EventBreakEnd, rep.Timeline[3].Type)
	assert.Equal(t, rep.Timeline[2].Time, rep.Timeline[3].Time)
}

func TestBuildReport_TimelineNonDecreasing(t *testing.T) {
	work := &fakeWorkRepo{sessions: []timeclock.WorkSession{
		{ID: "ws-1", EmployeeID: testEmployeeID, WorkDate: "2026-03-02", StartTime: "09:00:00", EndTime: strPtr("17:00:00")},
		{ID: "ws-2", EmployeeID: testEmployeeID, WorkDate: "2026-03-03", StartTime: "08:30:00", EndTime: strPtr("12:00:00")},
	}}
	brk := &fakeBreakRepo{sessions: []timeclock.BreakSession{
		{ID: "bs-1", WorkSessionID: "ws-1", StartTime: "12:00:00", EndTime: strPtr("12:30:00")},
		{ID: "bs-2", WorkSessionID: "ws-2", StartTime: "10:00:00", EndTime: strPtr("10:15:00")},
	}}
	tasks := &fakeTaskRepo{tasks: []task.Task{
		{ID: "t-1", EmployeeID: testEmployeeID, TaskDate: "2026-03-02", Description: "Review", Status: task.StatusCompleted, TotalMinutes: 60},
	}}
	taskSessions := &fakeTaskSessionRepo{sessions: []task.TaskSession{
		{ID: "tss-1", TaskID: "t-1", StartTime: localTime("2026-03-02", 14, 0), EndTime: timePtr(localTime("2026-03-02", 15, 0))},
	}}

	svc := newTestService(work, brk, tasks, taskSessions)
	rep, err := svc.BuildReport(context.Background(), report.ReportRequest{
		EmployeeID: testEmployeeID,
		StartDate:  "2026-03-02",
		EndDate:    "2026-03-03",
	})
	require.NoError(t, err)
	require.NotEmpty(t, rep.Timeline)

	for i := 1; i < len(rep.Timeline); i++ {
		prev, cur := rep.Timeline[i-1], rep.Timeline[i]
		if prev.Date == cur.Date {
			assert.LessOrEqual(t, prev.Time, cur.Time, "event %d out of order", i)
		} else {
			assert.Less(t, prev.Date, cur.Date, "event %d out of order", i)
		}
	}
}

func TestBuildReport_SingleDaySubsetOfRange(t *testing.T) {
	work := &fakeWorkRepo{sessions: []timeclock.WorkSession{
		{ID: "ws-1", EmployeeID: testEmployeeID, WorkDate: "2026-03-01", StartTime: "09:00:00", EndTime: strPtr("11:00:00")},
		{ID: "ws-2", EmployeeID: testEmployeeID, WorkDate: "2026-03-02", StartTime: "09:00:00", EndTime: strPtr("10:00:00")},
	}}

	svc := newTestService(work, &fakeBreakRepo{}, &fakeTaskRepo{}, &fakeTaskSessionRepo{})

	single, err := svc.BuildReport(context.Background(), report.ReportRequest{
		EmployeeID: testEmployeeID,
		StartDate:  "2026-03-02",
		EndDate:    "2026-03-02",
	})
	require.NoError(t, err)

	wide, err := svc.BuildReport(context.Background(), report.ReportRequest{
		EmployeeID: testEmployeeID,
		StartDate:  "2026-03-01",
		EndDate:    "2026-03-03",
	})
	require.NoError(t, err)

	assert.Subset(t, wide.Timeline, single.Timeline)
	assert.LessOrEqual(t, single.Summary.Work, wide.Summary.Work)
	assert.InDelta(t, 1.0, single.Summary.Work, 1e-9)
	assert.InDelta(t, 3.0, wide.Summary.Work, 1e-9)
}

func TestBuildReport_OrphanedOpenBreak(t *testing.T) {
	// An open break inside a closed work session contributes nothing and does
	// not fail the report.
	const date = "2026-03-06"

	work := &fakeWorkRepo{sessions: []timeclock.WorkSession{
		{ID: "ws-1", EmployeeID: testEmployeeID, WorkDate: date, StartTime: "09:00:00", EndTime: strPtr("10:00:00")},
	}}
	brk := &fakeBreakRepo{sessions: []timeclock.BreakSession{
		{ID: "bs-1", WorkSessionID: "ws-1", StartTime: "09:40:00"},
	}}

	svc := newTestService(work, brk, &fakeTaskRepo{}, &fakeTaskSessionRepo{})
	rep, err := svc.BuildReport(context.Background(), report.ReportRequest{
		EmployeeID: testEmployeeID,
		StartDate:  date,
		EndDate:    date,
	})
	require.NoError(t, err)

	assert.InDelta(t, 0, rep.Summary.Break, 1e-9)
	require.Len(t, rep.Timeline, 3)
	assert.Equal(t, report.EventBreakStart, rep.Timeline[1].Type)
}

func TestBuildReport_OpenWorkSession(t *testing.T) {
	// A still-open work session shows up as a clock-in only and adds no work
	// minutes yet.
	const date = "2026-03-07"

	work := &fakeWorkRepo{sessions: []timeclock.WorkSession{
		{ID: "ws-1", EmployeeID: testEmployeeID, WorkDate: date, StartTime: "09:00:00"},
	}}

	svc := newTestService(work, &fakeBreakRepo{}, &fakeTaskRepo{}, &fakeTaskSessionRepo{})
	rep, err := svc.BuildReport(context.Background(), report.ReportRequest{
		EmployeeID: testEmployeeID,
		StartDate:  date,
		EndDate:    date,
	})
	require.NoError(t, err)

	assert.InDelta(t, 0, rep.Summary.Work, 1e-9)
	require.Len(t, rep.Timeline, 1)
	assert.Equal(t, report.EventClockIn, rep.Timeline[0].Type)
}

func TestBuildReport_UnknownEmployee(t *testing.T) {
	svc := newTestService(&fakeWorkRepo{}, &fakeBreakRepo{}, &fakeTaskRepo{}, &fakeTaskSessionRepo{})

	_, err := svc.BuildReport(context.Background(), report.ReportRequest{
		EmployeeID: "nope",
		StartDate:  "2026-03-02",
		EndDate:    "2026-03-02",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestBuildReport_InvalidRange(t *testing.T) {
	svc := newTestService(&fakeWorkRepo{}, &fakeBreakRepo{}, &fakeTaskRepo{}, &fakeTaskSessionRepo{})

	_, err := svc.BuildReport(context.Background(), report.ReportRequest{
		EmployeeID: testEmployeeID,
		StartDate:  "2026-03-05",
		EndDate:    "2026-03-02",
	})

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "end_date")
}
