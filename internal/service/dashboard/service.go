package dashboard

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/workpulse/ems-backend/internal/domain/report"
	"github.com/workpulse/ems-backend/internal/domain/task"
	"github.com/workpulse/ems-backend/internal/domain/timeclock"
	"github.com/workpulse/ems-backend/internal/pkg/timeutil"
	"github.com/workpulse/ems-backend/internal/projection"
	reportsvc "github.com/workpulse/ems-backend/internal/service/report"
	tasksvc "github.com/workpulse/ems-backend/internal/service/task"
	tcsvc "github.com/workpulse/ems-backend/internal/service/timeclock"
)

// Response is the single payload behind the employee landing screen: the
// current status token, today's tasks and today's totals projected to now.
type Response struct {
	CurrentStatus timeclock.EmployeeStatus `json:"current_status"`
	Tasks         []task.TaskResponse      `json:"tasks"`
	Stats         projection.LiveStats     `json:"stats"`
}

type Service struct {
	timeclockService *tcsvc.Service
	taskService      *tasksvc.Service
	reportService    *reportsvc.Service

	now func() time.Time
}

func NewService(timeclockService *tcsvc.Service, taskService *tasksvc.Service, reportService *reportsvc.Service) *Service {
	return &Service{
		timeclockService: timeclockService,
		taskService:      taskService,
		reportService:    reportService,
		now:              time.Now,
	}
}

// Get fans out the three independent reads and projects today's summary to
// the current instant, so open sessions are already counted when the page
// first renders.
func (s *Service) Get(ctx context.Context, employeeID string) (Response, error) {
	now := s.now()
	today := now.Format(timeutil.DateLayout)

	var (
		status timeclock.EmployeeStatus
		tasks  []task.Task
		rep    report.Report
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		status, err = s.timeclockService.Status(gctx, employeeID)
		return err
	})
	g.Go(func() error {
		var err error
		tasks, err = s.taskService.ListForDate(gctx, employeeID, today)
		return err
	})
	g.Go(func() error {
		var err error
		rep, err = s.reportService.BuildReport(gctx, report.ReportRequest{
			EmployeeID: employeeID,
			StartDate:  today,
			EndDate:    today,
		})
		return err
	})
	if err := g.Wait(); err != nil {
		return Response{}, err
	}

	responses := make([]task.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		responses = append(responses, task.ToTaskResponse(t))
	}

	return Response{
		CurrentStatus: status,
		Tasks:         responses,
		Stats:         projection.Project(rep.Summary, status, now),
	}, nil
}

// Live returns the inputs a live stream projects forward: today's closed-row
// summary and the current status token.
func (s *Service) Live(ctx context.Context, employeeID string) (report.Summary, timeclock.EmployeeStatus, error) {
	today := s.now().Format(timeutil.DateLayout)

	var (
		status timeclock.EmployeeStatus
		rep    report.Report
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		status, err = s.timeclockService.Status(gctx, employeeID)
		return err
	})
	g.Go(func() error {
		var err error
		rep, err = s.reportService.BuildReport(gctx, report.ReportRequest{
			EmployeeID: employeeID,
			StartDate:  today,
			EndDate:    today,
		})
		return err
	})
	if err := g.Wait(); err != nil {
		return report.Summary{}, timeclock.EmployeeStatus{}, err
	}

	return rep.Summary, status, nil
}
