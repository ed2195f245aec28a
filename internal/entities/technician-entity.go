package entities

import "github.com/aarondl/null/v8"

type Technician struct {
	ID     int64      `json:"id"`
	Name   string     `json:"name"`
	Avatar string     `json:"avatar"`
	TeamID null.Int64 `json:"team_id"`
}
