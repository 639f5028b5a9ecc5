package report

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/workpulse/ems-backend/internal/domain/report"
)

// ExportXLSX builds the report for the requested range and renders it as an
// xlsx workbook with Summary, Tasks and Timeline sheets. The caller owns the
// returned bytes.
func (s *Service) ExportXLSX(ctx context.Context, req report.ReportRequest) ([]byte, string, error) {
	rep, err := s.BuildReport(ctx, req)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := writeSummarySheet(f, rep, req); err != nil {
		return nil, "", fmt.Errorf("export report: %w", err)
	}
	if err := writeTasksSheet(f, rep); err != nil {
		return nil, "", fmt.Errorf("export report: %w", err)
	}
	if err := writeTimelineSheet(f, rep); err != nil {
		return nil, "", fmt.Errorf("export report: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("export report: %w", err)
	}

	filename := fmt.Sprintf("report_%s_%s_to_%s.xlsx", rep.Employee.FullName, req.StartDate, req.EndDate)
	return buf.Bytes(), filename, nil
}

func writeSummarySheet(f *excelize.File, rep report.Report, req report.ReportRequest) error {
	const sheet = "Summary"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	position := "-"
	if rep.Employee.Position != nil {
		position = *rep.Employee.Position
	}
	department := "-"
	if rep.Employee.Department != nil {
		department = *rep.Employee.Department
	}

	rows := [][]interface{}{
		{"Employee", rep.Employee.FullName},
		{"Position", position},
		{"Department", department},
		{"Period", req.StartDate + " to " + req.EndDate},
		{},
		{"Total Work (hours)", rep.Summary.Work},
		{"Total Break (minutes)", rep.Summary.Break},
		{"Total Task Time (minutes)", rep.Summary.Task},
		{"Total Idle Time (minutes)", rep.Summary.Idle},
	}
	return writeRows(f, sheet, rows)
}

func writeTasksSheet(f *excelize.File, rep report.Report) error {
	const sheet = "Tasks"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	rows := [][]interface{}{{"Date", "Description", "Status", "Total Minutes"}}
	for _, t := range rep.Tasks {
		rows = append(rows, []interface{}{t.TaskDate, t.Description, t.Status, t.TotalMinutes})
	}
	return writeRows(f, sheet, rows)
}

func writeTimelineSheet(f *excelize.File, rep report.Report) error {
	const sheet = "Timeline"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	rows := [][]interface{}{{"Date", "Time", "Event", "Details"}}
	for _, e := range rep.Timeline {
		rows = append(rows, []interface{}{e.Date, e.Time, string(e.Type), e.Text})
	}
	return writeRows(f, sheet, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
