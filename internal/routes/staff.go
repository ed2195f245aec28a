package routes

import (
	"github.com/labstack/echo/v4"

	"gearguard/internal/controllers"
)

func runTeamRouter(api *echo.Group, ctrl *controllers.TeamController) {
	api.GET("/teams", ctrl.GetTeams)
	api.POST("/teams", ctrl.CreateTeam)
	api.PUT("/teams/:id", ctrl.UpdateTeam)
	api.DELETE("/teams/:id", ctrl.DeleteTeam)
}

func runTechnicianRouter(api *echo.Group, ctrl *controllers.TechnicianController) {
	api.GET("/technicians", ctrl.GetTechnicians)
	api.GET("/technicians/load", ctrl.GetLoadBoard)
	api.GET("/technicians/:id/load", ctrl.GetTechnicianLoad)
	api.POST("/technicians", ctrl.CreateTechnician)
	api.PUT("/technicians/:id", ctrl.UpdateTechnician)
	api.DELETE("/technicians/:id", ctrl.DeleteTechnician)
}

func runWorkCenterRouter(api *echo.Group, ctrl *controllers.WorkCenterController) {
	api.GET("/work-centers", ctrl.GetWorkCenters)
	api.POST("/work-centers", ctrl.CreateWorkCenter)
	api.PUT("/work-centers/:id", ctrl.UpdateWorkCenter)
	api.DELETE("/work-centers/:id", ctrl.DeleteWorkCenter)
}
