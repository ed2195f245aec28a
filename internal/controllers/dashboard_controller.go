package controllers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/analytics"
	"gearguard/internal/services"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"
)

const monthLayout = "2006-01"

type DashboardController struct {
	dashboardService   services.DashboardServiceInterface
	maintenanceService services.MaintenanceServiceInterface
	logger             *zap.Logger
}

func NewDashboardController(
	dashboardService services.DashboardServiceInterface,
	maintenanceService services.MaintenanceServiceInterface,
	logger *zap.Logger,
) *DashboardController {
	return &DashboardController{
		dashboardService:   dashboardService,
		maintenanceService: maintenanceService,
		logger:             logger,
	}
}

// GetSnapshot отдаёт все шесть коллекций одной версии.
func (c *DashboardController) GetSnapshot(ctx echo.Context) error {
	return utils.SuccessResponse(ctx, c.dashboardService.Snapshot(), "Снимок данных", http.StatusOK)
}

func (c *DashboardController) GetDashboard(ctx echo.Context) error {
	res := c.dashboardService.Dashboard(ctx.QueryParam("search"))
	return utils.SuccessResponse(ctx, res, "Статистика для дашборда успешно получена", http.StatusOK)
}

func (c *DashboardController) GetKanban(ctx echo.Context) error {
	order, err := analytics.ParseSortOrder(ctx.QueryParam("sort"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, c.dashboardService.Kanban(order), "Доска заявок", http.StatusOK)
}

// GetCalendar: ?date=2026-01-15 - один день, ?month=2026-01 - весь месяц,
// без параметров - текущий месяц.
func (c *DashboardController) GetCalendar(ctx echo.Context) error {
	if raw := ctx.QueryParam("date"); raw != "" {
		day, err := time.Parse(utils.DateLayout, raw)
		if err != nil {
			return utils.ErrorResponse(ctx,
				apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат даты, ожидается ГГГГ-ММ-ДД", err, map[string]interface{}{"date": raw}),
				c.logger,
			)
		}
		return utils.SuccessResponse(ctx, c.dashboardService.CalendarDay(day), "Календарь на день", http.StatusOK)
	}

	month := time.Now().UTC()
	if raw := ctx.QueryParam("month"); raw != "" {
		parsed, err := time.Parse(monthLayout, raw)
		if err != nil {
			return utils.ErrorResponse(ctx,
				apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат месяца, ожидается ГГГГ-ММ", err, map[string]interface{}{"month": raw}),
				c.logger,
			)
		}
		month = parsed
	}
	return utils.SuccessResponse(ctx, c.dashboardService.CalendarMonth(month.Year(), month.Month()), "Календарь на месяц", http.StatusOK)
}

// Refresh - ручная полная перезагрузка снимка.
func (c *DashboardController) Refresh(ctx echo.Context) error {
	if err := c.maintenanceService.Refresh(ctx.Request().Context()); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	snap := c.dashboardService.Snapshot()
	return utils.SuccessResponse(ctx, map[string]interface{}{
		"version":   snap.Version,
		"loaded_at": snap.LoadedAt,
	}, "Данные обновлены", http.StatusOK)
}
