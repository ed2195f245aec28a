package controllers

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/services"
	"gearguard/pkg/constants"
	appwebsocket "gearguard/pkg/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WebSocketController struct {
	hub              *appwebsocket.Hub
	dashboardService services.DashboardServiceInterface
	logger           *zap.Logger
}

func NewWebSocketController(
	hub *appwebsocket.Hub,
	dashboardService services.DashboardServiceInterface,
	logger *zap.Logger,
) *WebSocketController {
	return &WebSocketController{
		hub:              hub,
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// ServeWs подключает UI к рассылке о новых версиях снимка.
func (c *WebSocketController) ServeWs(ctx echo.Context) error {
	conn, err := upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		c.logger.Error("WebSocket: не удалось улучшить соединение", zap.Error(err))
		return err
	}

	client := appwebsocket.NewClient(c.hub, conn)

	// Новый клиент сразу узнаёт текущую версию и сравнивает со своей.
	hello, err := appwebsocket.Encode(services.SnapshotPayload(c.dashboardService.Snapshot()), constants.MessageTypeSnapshotReloaded)
	if err == nil {
		client.Send <- hello
	}
	client.Hub.Register <- client

	go client.WritePump()
	go client.ReadPump()

	c.logger.Info("WebSocket: клиент успешно подключен", zap.String("client_id", client.ID))
	return nil
}
