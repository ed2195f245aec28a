package entities

import (
	"github.com/aarondl/null/v8"
	"github.com/shopspring/decimal"
)

func init() {
	// API отдаёт cost_per_hour числом, а не строкой.
	decimal.MarshalJSONWithoutQuotes = true
}

type WorkCenter struct {
	ID                     int64           `json:"id"`
	Name                   string          `json:"name"`
	Code                   string          `json:"code"`
	Tag                    null.String     `json:"tag"`
	AlternativeWorkcenters null.String     `json:"alternative_workcenters"`
	CostPerHour            decimal.Decimal `json:"cost_per_hour"`
	CapacityTime           float64         `json:"capacity_time"`
	TimeEfficiency         float64         `json:"time_efficiency"`
	OEETarget              float64         `json:"oee_target"`
}
