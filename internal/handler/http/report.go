package http

import (
	"log/slog"
	"net/http"

	"github.com/workpulse/ems-backend/internal/domain/report"
	"github.com/workpulse/ems-backend/internal/handler/http/response"
	reportservice "github.com/workpulse/ems-backend/internal/service/report"
)

type ReportHandler interface {
	ViewReport(w http.ResponseWriter, r *http.Request)
	ExportReport(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService *reportservice.Service
}

func NewReportHandler(reportService *reportservice.Service) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// ViewReport implements ReportHandler.
func (h *ReportHandlerImpl) ViewReport(w http.ResponseWriter, r *http.Request) {
	req := reportRequestFromQuery(r)

	rep, err := h.reportService.BuildReport(r.Context(), req)
	if err != nil {
		slog.Error("View report service error", "error", err, "employee_id", req.EmployeeID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, rep)
}

// ExportReport implements ReportHandler.
func (h *ReportHandlerImpl) ExportReport(w http.ResponseWriter, r *http.Request) {
	req := reportRequestFromQuery(r)

	data, filename, err := h.reportService.ExportXLSX(r.Context(), req)
	if err != nil {
		slog.Error("Export report service error", "error", err, "employee_id", req.EmployeeID)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	_, _ = w.Write(data)
}

func reportRequestFromQuery(r *http.Request) report.ReportRequest {
	q := r.URL.Query()
	return report.ReportRequest{
		EmployeeID: q.Get("employee_id"),
		StartDate:  q.Get("start_date"),
		EndDate:    q.Get("end_date"),
	}
}
