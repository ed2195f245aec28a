package dto

import (
	"github.com/aarondl/null/v8"
)

// EquipmentPayloadDTO - тело POST/PUT /equipment. Сервер на PUT меняет только
// пришедшие поля, поэтому пустые status и health не отправляются.
type EquipmentPayloadDTO struct {
	Name         string      `json:"name"          validate:"required"`
	SerialNumber string      `json:"serial_number" validate:"required"`
	PurchaseDate string      `json:"purchase_date" validate:"omitempty,datetime=2006-01-02"`
	Warranty     string      `json:"warranty"`
	Location     string      `json:"location"`
	Department   string      `json:"department"`
	Employee     string      `json:"employee"`
	Status       string      `json:"status,omitempty" validate:"omitempty,equipment_status"`
	Health       *int        `json:"health,omitempty" validate:"omitempty,min=0,max=100"`
	TeamID       null.Int64  `json:"team_id"`
	TechnicianID null.Int64  `json:"technician_id"`
	CategoryID   null.Int64  `json:"category_id"`
	Company      null.String `json:"company"`
}

type EquipmentRequestsDTO struct {
	EquipmentID int64            `json:"equipment_id"`
	OpenCount   int              `json:"open_count"`
	Requests    []RequestCardDTO `json:"requests"`
}

type SimilarEquipmentDTO struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Reason     string `json:"reason"`
}
