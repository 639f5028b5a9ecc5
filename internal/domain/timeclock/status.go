package timeclock

// State is the single current activity state derivable for an employee.
type State string

const (
	StateClockedOut State = "Clocked Out"
	StateWorking    State = "Working"
	StateOnBreak    State = "On Break"
	StateOnTask     State = "On Task"
)

// EmployeeStatus is the explicit per-employee state token: the derived state
// plus the open-row start times the live projection extrapolates from. It is
// computed once per request and passed through instead of being re-inferred
// from the ledger tables ad hoc.
type EmployeeStatus struct {
	State State  `json:"state"`
	Text  string `json:"text"`

	// Open-row references, set only for the states they belong to.
	WorkStartTime  *string `json:"work_start_time,omitempty"`  // "15:04:05", Working/OnBreak/OnTask
	BreakStartTime *string `json:"break_start_time,omitempty"` // "15:04:05", OnBreak only
	TaskStartTime  *string `json:"task_start_time,omitempty"`  // RFC3339, OnTask only
	ActiveTaskID   *string `json:"active_task_id,omitempty"`
}

// ClockedIn reports whether any work session is open.
func (s EmployeeStatus) ClockedIn() bool {
	return s.State != StateClockedOut
}

// CanClockIn reports whether a clock-in transition is legal.
func (s EmployeeStatus) CanClockIn() bool {
	return s.State == StateClockedOut
}

// CanStartBreak reports whether a start-break transition is legal.
// Starting a break from OnTask is legal; the open task session is closed first.
func (s EmployeeStatus) CanStartBreak() bool {
	return s.State == StateWorking || s.State == StateOnTask
}

// CanEndBreak reports whether an end-break transition is legal.
func (s EmployeeStatus) CanEndBreak() bool {
	return s.State == StateOnBreak
}

// CanStartTask reports whether a start-task transition is legal. Starting a
// task while another is running is legal; the running session is closed first.
func (s EmployeeStatus) CanStartTask() bool {
	return s.State == StateWorking || s.State == StateOnTask
}
