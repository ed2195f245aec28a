package dto

import "github.com/aarondl/null/v8"

type EquipmentCategoryPayloadDTO struct {
	Name              string      `json:"name" validate:"required"`
	ResponsibleUserID null.Int64  `json:"responsible_user_id"`
	Company           null.String `json:"company"`
}
