package dto

import "github.com/aarondl/null/v8"

type TechnicianPayloadDTO struct {
	Name   string     `json:"name"   validate:"required"`
	Avatar string     `json:"avatar"`
	TeamID null.Int64 `json:"team_id"`
}

type TechnicianLoadDTO struct {
	TechnicianID   int64  `json:"technician_id"`
	Name           string `json:"name"`
	Avatar         string `json:"avatar"`
	TeamName       string `json:"team_name"`
	ActiveRequests int    `json:"active_requests"`
	Load           int    `json:"load"`
	Overloaded     bool   `json:"overloaded"`
}
