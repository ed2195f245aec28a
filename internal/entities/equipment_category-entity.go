package entities

import "github.com/aarondl/null/v8"

type EquipmentCategory struct {
	ID                int64       `json:"id"`
	Name              string      `json:"name"`
	ResponsibleUserID null.Int64  `json:"responsible_user_id"`
	Company           null.String `json:"company"`
}
