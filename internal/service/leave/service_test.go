package leave

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workpulse/ems-backend/internal/domain/leave"
	"github.com/workpulse/ems-backend/internal/pkg/validator"
)

type memLeaveRepo struct {
	requests map[string]*leave.LeaveRequest
	nextID   int
}

func newMemLeaveRepo() *memLeaveRepo {
	return &memLeaveRepo{requests: map[string]*leave.LeaveRequest{}}
}

func (m *memLeaveRepo) GetByID(_ context.Context, id string) (leave.LeaveRequest, error) {
	r, ok := m.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return *r, nil
}

func (m *memLeaveRepo) Create(_ context.Context, newRequest leave.LeaveRequest) (leave.LeaveRequest, error) {
	m.nextID++
	newRequest.ID = "lr-" + strconv.Itoa(m.nextID)
	m.requests[newRequest.ID] = &newRequest
	return newRequest, nil
}

func (m *memLeaveRepo) ListByEmployee(_ context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, r := range m.requests {
		if r.EmployeeID == employeeID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *memLeaveRepo) ListPending(_ context.Context) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, r := range m.requests {
		if r.Status == leave.StatusPending {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *memLeaveRepo) UpdateStatus(_ context.Context, id string, status leave.Status) error {
	r, ok := m.requests[id]
	if !ok {
		return leave.ErrLeaveRequestNotFound
	}
	r.Status = status
	return nil
}

func validRequest() leave.CreateLeaveRequestRequest {
	return leave.CreateLeaveRequestRequest{
		LeaveType: "Vacation",
		StartDate: "2026-04-06",
		EndDate:   "2026-04-10",
		Reason:    "Family trip",
	}
}

func TestCreate(t *testing.T) {
	svc := NewService(newMemLeaveRepo())

	created, err := svc.Create(context.Background(), "emp-1", validRequest())
	require.NoError(t, err)
	assert.Equal(t, string(leave.StatusPending), created.Status)
	assert.Equal(t, "emp-1", created.EmployeeID)
}

func TestCreate_EndBeforeStart(t *testing.T) {
	svc := NewService(newMemLeaveRepo())

	req := validRequest()
	req.StartDate, req.EndDate = req.EndDate, req.StartDate
	_, err := svc.Create(context.Background(), "emp-1", req)

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "end_date")
}

func TestDecide(t *testing.T) {
	repo := newMemLeaveRepo()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), "emp-1", validRequest())
	require.NoError(t, err)

	decided, err := svc.Decide(context.Background(), created.ID, leave.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, string(leave.StatusApproved), decided.Status)

	pending, err := svc.ListPending(context.Background())
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestDecide_Terminal(t *testing.T) {
	svc := NewService(newMemLeaveRepo())

	created, err := svc.Create(context.Background(), "emp-1", validRequest())
	require.NoError(t, err)

	_, err = svc.Decide(context.Background(), created.ID, leave.StatusRejected)
	require.NoError(t, err)

	// A decision is final, including repeating the same one.
	_, err = svc.Decide(context.Background(), created.ID, leave.StatusApproved)
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)
	_, err = svc.Decide(context.Background(), created.ID, leave.StatusRejected)
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)
}

func TestDecide_InvalidStatus(t *testing.T) {
	svc := NewService(newMemLeaveRepo())

	_, err := svc.Decide(context.Background(), "lr-1", leave.Status("Maybe"))
	assert.ErrorIs(t, err, leave.ErrInvalidDecision)
}

func TestDecide_NotFound(t *testing.T) {
	svc := NewService(newMemLeaveRepo())

	_, err := svc.Decide(context.Background(), "missing", leave.StatusApproved)
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestListOwn(t *testing.T) {
	svc := NewService(newMemLeaveRepo())

	_, err := svc.Create(context.Background(), "emp-1", validRequest())
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), "emp-2", validRequest())
	require.NoError(t, err)

	own, err := svc.ListOwn(context.Background(), "emp-1")
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, "emp-1", own[0].EmployeeID)
}
