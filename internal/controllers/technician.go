package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/services"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"
)

type TechnicianController struct {
	maintenanceService services.MaintenanceServiceInterface
	dashboardService   services.DashboardServiceInterface
	logger             *zap.Logger
}

func NewTechnicianController(
	maintenanceService services.MaintenanceServiceInterface,
	dashboardService services.DashboardServiceInterface,
	logger *zap.Logger,
) *TechnicianController {
	return &TechnicianController{
		maintenanceService: maintenanceService,
		dashboardService:   dashboardService,
		logger:             logger,
	}
}

func (c *TechnicianController) GetTechnicians(ctx echo.Context) error {
	return utils.SuccessResponse(ctx, c.dashboardService.Snapshot().Technicians, "Список техников успешно получен", http.StatusOK)
}

func (c *TechnicianController) CreateTechnician(ctx echo.Context) error {
	var payload dto.TechnicianPayloadDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат данных в теле запроса", err, nil),
			c.logger,
		)
	}
	res, err := c.maintenanceService.AddTechnician(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Техник успешно создан", http.StatusCreated)
}

func (c *TechnicianController) UpdateTechnician(ctx echo.Context) error {
	id, err := utils.ParseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.TechnicianPayloadDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат данных в теле запроса", err, nil),
			c.logger,
		)
	}
	res, err := c.maintenanceService.UpdateTechnician(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Техник успешно обновлён", http.StatusOK)
}

func (c *TechnicianController) DeleteTechnician(ctx echo.Context) error {
	id, err := utils.ParseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.maintenanceService.DeleteTechnician(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Техник успешно удалён", http.StatusOK)
}

func (c *TechnicianController) GetTechnicianLoad(ctx echo.Context) error {
	id, err := utils.ParseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.dashboardService.TechnicianLoad(id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Загрузка техника", http.StatusOK)
}

// GetLoadBoard - все техники, от самых загруженных.
func (c *TechnicianController) GetLoadBoard(ctx echo.Context) error {
	return utils.SuccessResponse(ctx, c.dashboardService.LoadBoard(), "Загрузка техников", http.StatusOK)
}
