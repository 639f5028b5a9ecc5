// Package projection extrapolates a stored day summary forward in time from
// an employee's current status, so live totals keep ticking between writes.
// The projection is advisory and never flows back into the ledger.
package projection

import (
	"sync"
	"time"

	"github.com/workpulse/ems-backend/internal/domain/report"
	"github.com/workpulse/ems-backend/internal/domain/timeclock"
	"github.com/workpulse/ems-backend/internal/pkg/timeutil"
)

// LiveStats mirrors report.Summary with the same units: work in hours, break,
// task and idle in minutes.
type LiveStats struct {
	Work  float64 `json:"work"`
	Break float64 `json:"break"`
	Task  float64 `json:"task"`
	Idle  float64 `json:"idle"`
}

// Project extrapolates base, which accounts for closed rows only, to the
// instant now. The open work session (and open break or task session, if any)
// contributes its elapsed time on top; idle is recomputed from the projected
// components and clamped at zero.
func Project(base report.Summary, status timeclock.EmployeeStatus, now time.Time) LiveStats {
	workMinutes := base.Work * 60
	breakMinutes := base.Break
	taskMinutes := base.Task

	if status.ClockedIn() && status.WorkStartTime != nil {
		workMinutes += elapsedMinutes(*status.WorkStartTime, now)
	}
	if status.State == timeclock.StateOnBreak && status.BreakStartTime != nil {
		breakMinutes += elapsedMinutes(*status.BreakStartTime, now)
	}
	if status.State == timeclock.StateOnTask && status.TaskStartTime != nil {
		if start, err := time.Parse(time.RFC3339, *status.TaskStartTime); err == nil {
			taskMinutes += clampMinutes(now.Sub(start))
		}
	}

	idle := workMinutes - breakMinutes - taskMinutes
	if idle < 0 {
		idle = 0
	}

	return LiveStats{
		Work:  workMinutes / 60,
		Break: breakMinutes,
		Task:  taskMinutes,
		Idle:  idle,
	}
}

// elapsedMinutes measures from a same-day "15:04:05" start to now. A start
// that parses ahead of now (clock skew, midnight rollover) counts as zero.
func elapsedMinutes(startOfDay string, now time.Time) float64 {
	start, err := timeutil.CombineDateTime(now.Format(timeutil.DateLayout), startOfDay)
	if err != nil {
		return 0
	}
	return clampMinutes(now.Sub(start))
}

func clampMinutes(d time.Duration) float64 {
	if d < 0 {
		return 0
	}
	return d.Minutes()
}

// Projector re-projects a fixed base on a one-second tick and hands each
// result to the callback. Start and Stop are idempotent and safe from any
// goroutine.
type Projector struct {
	base   report.Summary
	status timeclock.EmployeeStatus
	onTick func(LiveStats)

	startOnce sync.Once
	stopOnce  sync.Once
	started   chan struct{}
	stop      chan struct{}
	done      chan struct{}
}

func NewProjector(base report.Summary, status timeclock.EmployeeStatus, onTick func(LiveStats)) *Projector {
	return &Projector{
		base:    base,
		status:  status,
		onTick:  onTick,
		started: make(chan struct{}),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Start launches the tick loop. The callback runs on the projector's
// goroutine and must not block for long.
func (p *Projector) Start() {
	p.startOnce.Do(func() {
		close(p.started)
		go p.run()
	})
}

func (p *Projector) run() {
	defer close(p.done)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-p.stop:
			return
		case now := <-ticker.C:
			p.onTick(Project(p.base, p.status, now))
		}
	}
}

// Stop halts the loop and waits for the in-flight tick, if any, to finish.
// Calling Stop on a projector that was never started returns immediately.
func (p *Projector) Stop() {
	p.stopOnce.Do(func() { close(p.stop) })
	select {
	case <-p.started:
		<-p.done
	default:
	}
}
