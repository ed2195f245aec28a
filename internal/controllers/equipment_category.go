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

type EquipmentCategoryController struct {
	maintenanceService services.MaintenanceServiceInterface
	dashboardService   services.DashboardServiceInterface
	logger             *zap.Logger
}

func NewEquipmentCategoryController(
	maintenanceService services.MaintenanceServiceInterface,
	dashboardService services.DashboardServiceInterface,
	logger *zap.Logger,
) *EquipmentCategoryController {
	return &EquipmentCategoryController{
		maintenanceService: maintenanceService,
		dashboardService:   dashboardService,
		logger:             logger,
	}
}

func (c *EquipmentCategoryController) GetCategories(ctx echo.Context) error {
	return utils.SuccessResponse(ctx, c.dashboardService.Snapshot().EquipmentCategories, "Список категорий успешно получен", http.StatusOK)
}

func (c *EquipmentCategoryController) CreateCategory(ctx echo.Context) error {
	var payload dto.EquipmentCategoryPayloadDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат данных в теле запроса", err, nil),
			c.logger,
		)
	}
	res, err := c.maintenanceService.AddEquipmentCategory(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Категория успешно создана", http.StatusCreated)
}

func (c *EquipmentCategoryController) UpdateCategory(ctx echo.Context) error {
	id, err := utils.ParseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.EquipmentCategoryPayloadDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат данных в теле запроса", err, nil),
			c.logger,
		)
	}
	res, err := c.maintenanceService.UpdateEquipmentCategory(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Категория успешно обновлена", http.StatusOK)
}

func (c *EquipmentCategoryController) DeleteCategory(ctx echo.Context) error {
	id, err := utils.ParseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.maintenanceService.DeleteEquipmentCategory(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Категория успешно удалена", http.StatusOK)
}
