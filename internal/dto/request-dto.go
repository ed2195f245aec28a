package dto

import (
	"github.com/aarondl/null/v8"

	"gearguard/internal/lifecycle"
)

// MaintenanceRequestPayloadDTO - тело POST/PUT /requests.
type MaintenanceRequestPayloadDTO struct {
	Subject        string          `json:"subject"        validate:"required"`
	EquipmentID    null.Int64      `json:"equipment_id"`
	WorkCenterID   null.Int64      `json:"work_center_id"`
	Type           string          `json:"type"           validate:"required,maintenance_type"`
	Stage          lifecycle.Stage `json:"stage,omitempty" validate:"omitempty,stage"`
	ScheduledDate  string          `json:"scheduled_date" validate:"required"`
	Duration       float64         `json:"duration"       validate:"gte=0"`
	Priority       string          `json:"priority,omitempty" validate:"omitempty,priority"`
	TeamID         null.Int64      `json:"team_id"`
	TechnicianID   null.Int64      `json:"technician_id"`
	Company        null.String     `json:"company"`
	WorksheetNotes null.String     `json:"worksheet_notes"`
}

// HasSingleTarget: не более одной цели одновременно.
func (p MaintenanceRequestPayloadDTO) HasSingleTarget() bool {
	return !(p.EquipmentID.Valid && p.WorkCenterID.Valid)
}

// SetEquipmentTarget выбирает оборудование и сбрасывает рабочий центр.
func (p *MaintenanceRequestPayloadDTO) SetEquipmentTarget(equipmentID int64) {
	p.EquipmentID = null.Int64From(equipmentID)
	p.WorkCenterID = null.Int64{}
}

// SetWorkCenterTarget выбирает рабочий центр и сбрасывает оборудование.
func (p *MaintenanceRequestPayloadDTO) SetWorkCenterTarget(workCenterID int64) {
	p.WorkCenterID = null.Int64From(workCenterID)
	p.EquipmentID = null.Int64{}
}

type UpdateStageDTO struct {
	Stage lifecycle.Stage `json:"stage" query:"stage" validate:"required,stage"`
}

type StepStageDTO struct {
	Direction lifecycle.Direction `json:"direction" validate:"required,oneof=forward backward"`
}

// RequestCardDTO - заявка с уже подставленными именами для карточки доски.
type RequestCardDTO struct {
	ID             int64           `json:"id"`
	Subject        string          `json:"subject"`
	Type           string          `json:"type"`
	Stage          lifecycle.Stage `json:"stage"`
	Priority       string          `json:"priority"`
	ScheduledDate  string          `json:"scheduled_date"`
	TargetName     string          `json:"target_name"`
	TechnicianName string          `json:"technician_name"`
	TeamName       string          `json:"team_name"`
	Overdue        bool            `json:"overdue"`
	CanStepForward bool            `json:"can_step_forward"`
	CanStepBack    bool            `json:"can_step_back"`
}
