package websocket

import "time"

// Envelope - конверт сообщения; по Type фронтенд решает, что делать.
type Envelope struct {
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

// SnapshotPayload сообщает, что снимок обновился и его стоит перечитать.
type SnapshotPayload struct {
	Version  uint64    `json:"version"`
	LoadedAt time.Time `json:"loaded_at"`
	Counts   Counts    `json:"counts"`
}

type Counts struct {
	Equipment           int `json:"equipment"`
	Teams               int `json:"teams"`
	Technicians         int `json:"technicians"`
	Requests            int `json:"requests"`
	WorkCenters         int `json:"work_centers"`
	EquipmentCategories int `json:"equipment_categories"`
}

// LoadFailedPayload - загрузка не удалась, UI продолжает показывать прежние данные.
type LoadFailedPayload struct {
	Error string `json:"error"`
}
