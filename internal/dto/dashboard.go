package dto

import "time"

type DashboardStatsDTO struct {
	CriticalEquipment    int     `json:"critical_equipment"`
	TotalEquipment       int     `json:"total_equipment"`
	OperationalEquipment int     `json:"operational_equipment"`
	ScheduledMaintenance int     `json:"scheduled_maintenance"`
	OverdueRequests      int     `json:"overdue_requests"`
	OnTrackRequests      int     `json:"on_track_requests"`
	OnTrackPercentage    int     `json:"on_track_percentage"`
	TotalRequests        int     `json:"total_requests"`
	AverageHealth        float64 `json:"average_health"`
}

type DashboardDTO struct {
	Stats          DashboardStatsDTO   `json:"stats"`
	TechnicianLoad []TechnicianLoadDTO `json:"technician_load"`
	Requests       []RequestCardDTO    `json:"requests"`
	Loading        bool                `json:"loading"`
	Version        uint64              `json:"version"`
	LoadedAt       time.Time           `json:"loaded_at"`
}

type KanbanColumnDTO struct {
	Stage string           `json:"stage"`
	Label string           `json:"label"`
	Cards []RequestCardDTO `json:"cards"`
}

type CalendarDayDTO struct {
	Date      string              `json:"date"`
	Requests  []RequestCardDTO    `json:"requests"`
	Purchases []ShortEquipmentDTO `json:"purchases"`
}

type ShortEquipmentDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
