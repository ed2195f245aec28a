package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/lifecycle"
	"gearguard/internal/services"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"
)

type RequestController struct {
	maintenanceService services.MaintenanceServiceInterface
	dashboardService   services.DashboardServiceInterface
	logger             *zap.Logger
}

func NewRequestController(
	maintenanceService services.MaintenanceServiceInterface,
	dashboardService services.DashboardServiceInterface,
	logger *zap.Logger,
) *RequestController {
	return &RequestController{
		maintenanceService: maintenanceService,
		dashboardService:   dashboardService,
		logger:             logger,
	}
}

func (c *RequestController) GetRequests(ctx echo.Context) error {
	return utils.SuccessResponse(ctx, c.dashboardService.Snapshot().Requests, "Список заявок успешно получен", http.StatusOK)
}

func (c *RequestController) FindRequest(ctx echo.Context) error {
	id, err := utils.ParseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	req, ok := c.dashboardService.Snapshot().RequestByID(id)
	if !ok {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusNotFound, "Заявка не найдена", nil, nil),
			c.logger,
		)
	}
	return utils.SuccessResponse(ctx, req, "Заявка успешно найдена", http.StatusOK)
}

func (c *RequestController) CreateRequest(ctx echo.Context) error {
	var payload dto.MaintenanceRequestPayloadDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Error("CreateRequest: ошибка привязки данных", zap.Error(err))
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат данных в теле запроса", err, nil),
			c.logger,
		)
	}
	res, err := c.maintenanceService.AddRequest(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Заявка успешно создана", http.StatusCreated)
}

func (c *RequestController) UpdateRequest(ctx echo.Context) error {
	id, err := utils.ParseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.MaintenanceRequestPayloadDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Error("UpdateRequest: ошибка привязки данных", zap.Error(err))
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат данных в теле запроса", err, nil),
			c.logger,
		)
	}
	res, err := c.maintenanceService.UpdateRequest(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Заявка успешно обновлена", http.StatusOK)
}

func (c *RequestController) DeleteRequest(ctx echo.Context) error {
	id, err := utils.ParseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := c.maintenanceService.DeleteRequest(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Заявка успешно удалена", http.StatusOK)
}

// UpdateStage: PUT /requests/:id/stage?stage=Repaired. Echo не связывает
// query-параметры для PUT, поэтому стадия читается вручную.
func (c *RequestController) UpdateStage(ctx echo.Context) error {
	id, err := utils.ParseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	payload := dto.UpdateStageDTO{Stage: lifecycle.Stage(ctx.QueryParam("stage"))}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.maintenanceService.UpdateRequestStage(ctx.Request().Context(), id, payload.Stage)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Стадия заявки обновлена", http.StatusOK)
}

// StepStage сдвигает заявку на соседнюю колонку: {"direction": "forward"}.
func (c *RequestController) StepStage(ctx echo.Context) error {
	id, err := utils.ParseIDParam(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	var payload dto.StepStageDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат данных в теле запроса", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.maintenanceService.StepRequestStage(ctx.Request().Context(), id, payload.Direction)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Стадия заявки обновлена", http.StatusOK)
}
