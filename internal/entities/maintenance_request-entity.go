package entities

import (
	"github.com/aarondl/null/v8"

	"gearguard/internal/lifecycle"
)

// MaintenanceRequest ссылается ровно на одну цель: оборудование или рабочий центр.
type MaintenanceRequest struct {
	ID             int64           `json:"id"`
	Subject        string          `json:"subject"`
	EquipmentID    null.Int64      `json:"equipment_id"`
	WorkCenterID   null.Int64      `json:"work_center_id"`
	Type           string          `json:"type"`
	Stage          lifecycle.Stage `json:"stage"`
	ScheduledDate  string          `json:"scheduled_date"`
	Duration       float64         `json:"duration"`
	Priority       string          `json:"priority"`
	TeamID         null.Int64      `json:"team_id"`
	TechnicianID   null.Int64      `json:"technician_id"`
	Company        null.String     `json:"company"`
	WorksheetNotes null.String     `json:"worksheet_notes"`
}

func (r MaintenanceRequest) TargetsEquipment(equipmentID int64) bool {
	return r.EquipmentID.Valid && r.EquipmentID.Int64 == equipmentID
}

func (r MaintenanceRequest) AssignedTo(technicianID int64) bool {
	return r.TechnicianID.Valid && r.TechnicianID.Int64 == technicianID
}
