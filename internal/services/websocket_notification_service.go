package services

import (
	"go.uber.org/zap"

	"gearguard/internal/entities"
	"gearguard/pkg/constants"
	"gearguard/pkg/websocket"
)

// WebSocketNotificationServiceInterface сообщает UI-клиентам о смене снимка.
type WebSocketNotificationServiceInterface interface {
	SnapshotReloaded(snap *entities.Snapshot) error
	LoadFailed(err error) error
}

type WebSocketNotificationService struct {
	hub    *websocket.Hub
	logger *zap.Logger
}

func NewWebSocketNotificationService(hub *websocket.Hub, logger *zap.Logger) WebSocketNotificationServiceInterface {
	return &WebSocketNotificationService{
		hub:    hub,
		logger: logger.Named("ws_notify"),
	}
}

// SnapshotReloaded рассылает номер новой версии и размеры коллекций.
// Сами данные клиент забирает через GET /api/snapshot.
func (s *WebSocketNotificationService) SnapshotReloaded(snap *entities.Snapshot) error {
	if s.hub.ClientCount() == 0 {
		return nil
	}
	s.logger.Debug("Рассылка новой версии снимка",
		zap.Uint64("version", snap.Version),
		zap.Int("clients", s.hub.ClientCount()),
	)
	return s.hub.Broadcast(SnapshotPayload(snap), constants.MessageTypeSnapshotReloaded)
}

func (s *WebSocketNotificationService) LoadFailed(err error) error {
	if s.hub.ClientCount() == 0 {
		return nil
	}
	return s.hub.Broadcast(websocket.LoadFailedPayload{Error: err.Error()}, constants.MessageTypeLoadFailed)
}

func SnapshotPayload(snap *entities.Snapshot) websocket.SnapshotPayload {
	return websocket.SnapshotPayload{
		Version:  snap.Version,
		LoadedAt: snap.LoadedAt,
		Counts: websocket.Counts{
			Equipment:           len(snap.Equipment),
			Teams:               len(snap.Teams),
			Technicians:         len(snap.Technicians),
			Requests:            len(snap.Requests),
			WorkCenters:         len(snap.WorkCenters),
			EquipmentCategories: len(snap.EquipmentCategories),
		},
	}
}
