package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/controllers"
)

func runRequestRouter(api *echo.Group, ctrl *controllers.RequestController) {
	api.GET("/requests", ctrl.GetRequests)
	api.GET("/requests/:id", ctrl.FindRequest)
	api.POST("/requests", ctrl.CreateRequest)
	api.PUT("/requests/:id", ctrl.UpdateRequest)
	api.DELETE("/requests/:id", ctrl.DeleteRequest)
	api.PUT("/requests/:id/stage", ctrl.UpdateStage)
	api.POST("/requests/:id/step", ctrl.StepStage)
}
