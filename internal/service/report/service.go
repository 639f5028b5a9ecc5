package report

import (
	"context"
	"fmt"
	"sort"

	"github.com/workpulse/ems-backend/internal/domain/employee"
	"github.com/workpulse/ems-backend/internal/domain/report"
	"github.com/workpulse/ems-backend/internal/domain/task"
	"github.com/workpulse/ems-backend/internal/domain/timeclock"
	"github.com/workpulse/ems-backend/internal/pkg/timeutil"
)

// Service is the accounting engine: it reconstructs an employee's
// work/break/task/idle totals and the merged event timeline from the ledger
// rows of an inclusive date range. Read-only.
type Service struct {
	employeeRepo    employee.EmployeeRepository
	workRepo        timeclock.WorkSessionRepository
	breakRepo       timeclock.BreakSessionRepository
	taskRepo        task.TaskRepository
	taskSessionRepo task.TaskSessionRepository
}

func NewService(
	employeeRepo employee.EmployeeRepository,
	workRepo timeclock.WorkSessionRepository,
	breakRepo timeclock.BreakSessionRepository,
	taskRepo task.TaskRepository,
	taskSessionRepo task.TaskSessionRepository,
) *Service {
	return &Service{
		employeeRepo:    employeeRepo,
		workRepo:        workRepo,
		breakRepo:       breakRepo,
		taskRepo:        taskRepo,
		taskSessionRepo: taskSessionRepo,
	}
}

// BuildReport aggregates the range day by day. The range is human-scale (days
// to a few months), so O(days × sessions-per-day) is fine. A missing employee
// aborts the whole report; a day without sessions contributes zero.
func (s *Service) BuildReport(ctx context.Context, req report.ReportRequest) (report.Report, error) {
	if err := req.Validate(); err != nil {
		return report.Report{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return report.Report{}, err
	}

	dates, err := timeutil.DateRange(req.StartDate, req.EndDate)
	if err != nil {
		return report.Report{}, err
	}

	var events []report.TimelineEvent
	var tasks []task.TaskResponse
	var workMinutes, breakMinutes, taskMinutes float64

	for _, date := range dates {
		workSessions, err := s.workRepo.ListByDate(ctx, req.EmployeeID, date)
		if err != nil {
			return report.Report{}, fmt.Errorf("build report: %w", err)
		}

		for _, session := range workSessions {
			events = append(events, report.TimelineEvent{
				Date: date, Type: report.EventClockIn, Time: session.StartTime, Text: "Clocked In",
			})
			if session.EndTime != nil {
				events = append(events, report.TimelineEvent{
					Date: date, Type: report.EventClockOut, Time: *session.EndTime, Text: "Clocked Out",
				})
				minutes, err := timeutil.MinutesBetween(date, session.StartTime, *session.EndTime)
				if err != nil {
					return report.Report{}, fmt.Errorf("build report: %w", err)
				}
				workMinutes += minutes
			}

			breaks, err := s.breakRepo.ListByWorkSession(ctx, session.ID)
			if err != nil {
				return report.Report{}, fmt.Errorf("build report: %w", err)
			}
			for _, b := range breaks {
				events = append(events, report.TimelineEvent{
					Date: date, Type: report.EventBreakStart, Time: b.StartTime, Text: "Break Started",
				})
				// A break left open inside a closed work session is a
				// data-integrity wrinkle; it contributes zero, never an error.
				if b.EndTime != nil {
					events = append(events, report.TimelineEvent{
						Date: date, Type: report.EventBreakEnd, Time: *b.EndTime, Text: "Break Ended",
					})
					minutes, err := timeutil.MinutesBetween(date, b.StartTime, *b.EndTime)
					if err != nil {
						return report.Report{}, fmt.Errorf("build report: %w", err)
					}
					breakMinutes += minutes
				}
			}
		}

		dailyTasks, err := s.taskRepo.ListByDate(ctx, req.EmployeeID, date)
		if err != nil {
			return report.Report{}, fmt.Errorf("build report: %w", err)
		}
		for _, t := range dailyTasks {
			tasks = append(tasks, task.ToTaskResponse(t))
			// The stored running total is authoritative; it persists across
			// pause/resume and is never recomputed from the sessions.
			taskMinutes += t.TotalMinutes

			sessions, err := s.taskSessionRepo.ListByTask(ctx, t.ID)
			if err != nil {
				return report.Report{}, fmt.Errorf("build report: %w", err)
			}
			for _, ts := range sessions {
				events = append(events, report.TimelineEvent{
					Date: date,
					Type: report.EventTaskStart,
					Time: ts.StartTime.Local().Format(timeutil.TimeOfDayLayout),
					Text: "Started task: " + t.Description,
				})
				if ts.EndTime != nil {
					events = append(events, report.TimelineEvent{
						Date: date,
						Type: report.EventTaskStop,
						Time: ts.EndTime.Local().Format(timeutil.TimeOfDayLayout),
						Text: "Stopped task: " + t.Description,
					})
				}
			}
		}
	}

	sortTimeline(events)

	return report.Report{
		Employee: report.EmployeeInfo{
			FullName:   emp.FullName,
			Position:   emp.Position,
			Department: emp.Department,
		},
		Summary:  buildSummary(workMinutes, breakMinutes, taskMinutes),
		Tasks:    tasks,
		Timeline: events,
	}, nil
}

// buildSummary converts accumulated minutes into the summary shape: work in
// hours, the rest in minutes. Idle is clocked-in time on neither a break nor a
// task and is clamped at zero.
func buildSummary(workMinutes, breakMinutes, taskMinutes float64) report.Summary {
	idle := workMinutes - breakMinutes - taskMinutes
	if idle < 0 {
		idle = 0
	}
	return report.Summary{
		Work:  workMinutes / 60,
		Break: breakMinutes,
		Task:  taskMinutes,
		Idle:  idle,
	}
}

// sortTimeline orders events ascending by (date, time). Identical instants
// are tie-broken by category, clock before break before task, then by
// discovery order.
func sortTimeline(events []report.TimelineEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Date != events[j].Date {
			return events[i].Date < events[j].Date
		}
		if events[i].Time != events[j].Time {
			return events[i].Time < events[j].Time
		}
		return events[i].Type.CategoryRank() < events[j].Type.CategoryRank()
	})
}
