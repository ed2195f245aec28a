package dto

import (
	"github.com/aarondl/null/v8"
	"github.com/shopspring/decimal"
)

type WorkCenterPayloadDTO struct {
	Name                   string          `json:"name" validate:"required"`
	Code                   string          `json:"code" validate:"required"`
	Tag                    null.String     `json:"tag"`
	AlternativeWorkcenters null.String     `json:"alternative_workcenters"`
	CostPerHour            decimal.Decimal `json:"cost_per_hour"`
	CapacityTime           float64         `json:"capacity_time"   validate:"gte=0"`
	TimeEfficiency         float64         `json:"time_efficiency" validate:"gte=0,lte=100"`
	OEETarget              float64         `json:"oee_target"      validate:"gte=0,lte=100"`
}
