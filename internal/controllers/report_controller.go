package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"gearguard/internal/analytics"
	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/services"
	"gearguard/pkg/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

// GetPivot: отдел x команда. ?format=xlsx выгружает таблицу файлом.
func (c *ReportController) GetPivot(ctx echo.Context) error {
	report := c.reportService.Pivot()
	if strings.ToLower(ctx.QueryParam("format")) == "xlsx" {
		return c.respondWithXLSX(ctx, "pivot", pivotWorkbook(report))
	}
	return utils.SuccessResponse(ctx, report, "Отчет успешно сформирован", http.StatusOK)
}

func (c *ReportController) GetTeamCounts(ctx echo.Context) error {
	return utils.SuccessResponse(ctx, c.reportService.TeamRequestCounts(), "Заявки по командам", http.StatusOK)
}

// ExportRequests выгружает все заявки с подставленными именами.
func (c *ReportController) ExportRequests(ctx echo.Context) error {
	requests, snap := c.reportService.RequestRows()
	return c.respondWithXLSX(ctx, "requests", requestsWorkbook(snap, requests, time.Now()))
}

func pivotWorkbook(report dto.PivotReportDTO) *excelize.File {
	f := excelize.NewFile()
	sheet := "Pivot"
	f.SetSheetName("Sheet1", sheet)

	header := make([]interface{}, 0, len(report.Teams)+2)
	header = append(header, "Department")
	for _, t := range report.Teams {
		header = append(header, t)
	}
	header = append(header, "Grand Total")
	f.SetSheetRow(sheet, "A1", &header)

	for i, row := range report.Rows {
		cells := make([]interface{}, 0, len(row.Counts)+2)
		cells = append(cells, row.Department)
		for _, n := range row.Counts {
			cells = append(cells, n)
		}
		cells = append(cells, row.Total)
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		f.SetSheetRow(sheet, cell, &cells)
	}

	totals := make([]interface{}, 0, len(report.TeamTotals)+2)
	totals = append(totals, "Grand Total")
	for _, n := range report.TeamTotals {
		totals = append(totals, n)
	}
	totals = append(totals, report.GrandTotal)
	totalRow := len(report.Rows) + 2
	cell, _ := excelize.CoordinatesToCellName(1, totalRow)
	f.SetSheetRow(sheet, cell, &totals)

	bold, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	lastCol, _ := excelize.ColumnNumberToName(len(header))
	f.SetCellStyle(sheet, "A1", lastCol+"1", bold)
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", totalRow), fmt.Sprintf("%s%d", lastCol, totalRow), bold)
	f.SetColWidth(sheet, "A", "A", 25)
	f.SetColWidth(sheet, "B", lastCol, 16)
	return f
}

var requestHeaders = []string{
	"ID", "Subject", "Target", "Type", "Stage", "Priority", "Scheduled", "Duration (h)",
	"Team", "Technician", "Overdue",
}

func requestToSlice(s *entities.Snapshot, r entities.MaintenanceRequest, now time.Time) []interface{} {
	overdue := "no"
	if analytics.IsOverdue(r, now) {
		overdue = "yes"
	}
	return []interface{}{
		r.ID, r.Subject, analytics.TargetName(s, r), r.Type, r.Stage.Label(), r.Priority, r.ScheduledDate,
		r.Duration, analytics.TeamName(s, r.TeamID), analytics.TechnicianName(s, r.TechnicianID), overdue,
	}
}

func requestsWorkbook(s *entities.Snapshot, requests []entities.MaintenanceRequest, now time.Time) *excelize.File {
	f := excelize.NewFile()
	sheet := "Requests"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &requestHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "K1", style)

	for i, r := range requests {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := requestToSlice(s, r, now)
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "B", "C", 30)
	f.SetColWidth(sheet, "I", "J", 20)
	return f
}

func (c *ReportController) respondWithXLSX(ctx echo.Context, name string, f *excelize.File) error {
	defer f.Close()

	fileName := fmt.Sprintf("%s_%s.xlsx", name, time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, xlsxContentType)
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	if err := f.Write(ctx.Response().Writer); err != nil {
		c.logger.Error("Не удалось записать XLSX", zap.String("report", name), zap.Error(err))
		return err
	}
	return nil
}
