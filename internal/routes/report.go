package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/controllers"
	"gearguard/internal/services"
)

func runReportRouter(
	api *echo.Group,
	reportService services.ReportServiceInterface,
	logger *zap.Logger,
) {
	reportController := controllers.NewReportController(reportService, logger)

	api.GET("/reports/pivot", reportController.GetPivot)
	api.GET("/reports/teams", reportController.GetTeamCounts)
	api.GET("/reports/requests", reportController.ExportRequests)
}
