package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/controllers"
	"gearguard/internal/services"
	"gearguard/pkg/metrics"
	"gearguard/pkg/middleware"
	"gearguard/pkg/websocket"
)

type Loggers struct {
	Main        *zap.Logger
	Maintenance *zap.Logger
	Dashboard   *zap.Logger
	Report      *zap.Logger
}

func InitRouter(
	e *echo.Echo,
	maintenanceService services.MaintenanceServiceInterface,
	dashboardService services.DashboardServiceInterface,
	reportService services.ReportServiceInterface,
	hub *websocket.Hub,
	m *metrics.Metrics,
	loggers *Loggers,
) {
	loggers.Main.Info("InitRouter: Начало создания маршрутов")

	// --- 0. ОБЩИЕ КОМПОНЕНТЫ ---
	e.Use(middleware.RequestContext(loggers.Main))
	sessionMW := middleware.NewSessionMiddleware(loggers.Main)
	api := e.Group("/api", sessionMW.Session)

	// --- 1. КОНТРОЛЛЕРЫ ---
	equipmentController := controllers.NewEquipmentController(maintenanceService, dashboardService, loggers.Maintenance)
	teamController := controllers.NewTeamController(maintenanceService, dashboardService, loggers.Maintenance)
	technicianController := controllers.NewTechnicianController(maintenanceService, dashboardService, loggers.Maintenance)
	requestController := controllers.NewRequestController(maintenanceService, dashboardService, loggers.Maintenance)
	workCenterController := controllers.NewWorkCenterController(maintenanceService, dashboardService, loggers.Maintenance)
	categoryController := controllers.NewEquipmentCategoryController(maintenanceService, dashboardService, loggers.Maintenance)
	dashboardController := controllers.NewDashboardController(dashboardService, maintenanceService, loggers.Dashboard)
	wsController := controllers.NewWebSocketController(hub, dashboardService, loggers.Main)

	// --- 2. РОУТЕРЫ ---
	runDashboardRouter(api, dashboardController)
	runEquipmentRouter(api, equipmentController)
	runTeamRouter(api, teamController)
	runTechnicianRouter(api, technicianController)
	runRequestRouter(api, requestController)
	runWorkCenterRouter(api, workCenterController)
	runEquipmentCategoryRouter(api, categoryController)
	runReportRouter(api, reportService, loggers.Report)

	api.GET("/ws", wsController.ServeWs)
	if m != nil {
		e.GET("/metrics", echo.WrapHandler(m.Handler()))
	}

	loggers.Main.Info("INIT_ROUTER: Создание маршрутов завершено")
}

func runDashboardRouter(api *echo.Group, ctrl *controllers.DashboardController) {
	api.GET("/snapshot", ctrl.GetSnapshot)
	api.POST("/refresh", ctrl.Refresh)
	api.GET("/dashboard", ctrl.GetDashboard)
	api.GET("/kanban", ctrl.GetKanban)
	api.GET("/calendar", ctrl.GetCalendar)
}
