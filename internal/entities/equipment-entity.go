package entities

import (
	"github.com/aarondl/null/v8"

	"gearguard/pkg/constants"
)

type Equipment struct {
	ID           int64       `json:"id"`
	Name         string      `json:"name"`
	SerialNumber string      `json:"serial_number"`
	PurchaseDate string      `json:"purchase_date"`
	Warranty     string      `json:"warranty"`
	Location     string      `json:"location"`
	Department   string      `json:"department"`
	Employee     string      `json:"employee"`
	Status       string      `json:"status"`
	Health       int         `json:"health"`
	TeamID       null.Int64  `json:"team_id"`
	TechnicianID null.Int64  `json:"technician_id"`
	CategoryID   null.Int64  `json:"category_id"`
	Company      null.String `json:"company"`
}

// IsCritical: здоровье ниже порога или оборудование списано.
func (e Equipment) IsCritical() bool {
	return e.Health < constants.CriticalHealthBelow || e.Status == constants.EquipmentScrapped
}

func (e Equipment) IsScrapped() bool {
	return e.Status == constants.EquipmentScrapped
}
