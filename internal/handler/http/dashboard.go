package http

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/workpulse/ems-backend/internal/handler/http/middleware"
	"github.com/workpulse/ems-backend/internal/handler/http/response"
	"github.com/workpulse/ems-backend/internal/projection"
	dashboardservice "github.com/workpulse/ems-backend/internal/service/dashboard"
)

type DashboardHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Stream(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService *dashboardservice.Service
}

func NewDashboardHandler(dashboardService *dashboardservice.Service) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: dashboardService}
}

// Get implements DashboardHandler.
func (h *DashboardHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.CurrentUser(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	dashboard, err := h.dashboardService.Get(r.Context(), user.ID)
	if err != nil {
		slog.Error("Dashboard service error", "error", err, "employee_id", user.ID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, dashboard)
}

// Stream pushes live stat projections as server-sent events, one per second,
// until the client disconnects. The base summary and status are fixed at
// connect time; clients reconnect after any transition to pick up new ones.
func (h *DashboardHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.CurrentUser(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	summary, status, err := h.dashboardService.Live(r.Context(), user.ID)
	if err != nil {
		slog.Error("Dashboard stream error", "error", err, "employee_id", user.ID)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	ticks := make(chan projection.LiveStats, 1)
	proj := projection.NewProjector(summary, status, func(stats projection.LiveStats) {
		select {
		case ticks <- stats:
		default:
		}
	})
	proj.Start()
	defer proj.Stop()

	writeStatsEvent(w, flusher, projection.Project(summary, status, time.Now()))

	for {
		select {
		case stats := <-ticks:
			writeStatsEvent(w, flusher, stats)
		case <-r.Context().Done():
			return
		}
	}
}

func writeStatsEvent(w io.Writer, flusher http.Flusher, stats projection.LiveStats) {
	data, err := json.Marshal(stats)
	if err != nil {
		return
	}
	fmt.Fprintf(w, "event: stats\ndata: %s\n\n", data)
	flusher.Flush()
}
