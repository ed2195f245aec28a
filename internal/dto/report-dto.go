package dto

type PivotRowDTO struct {
	Department string `json:"department"`
	Counts     []int  `json:"counts"`
	Total      int    `json:"total"`
}

// PivotReportDTO - отделы по строкам, команды по столбцам.
type PivotReportDTO struct {
	Teams      []string      `json:"teams"`
	Rows       []PivotRowDTO `json:"rows"`
	TeamTotals []int         `json:"team_totals"`
	GrandTotal int           `json:"grand_total"`
}

type TeamRequestCountDTO struct {
	TeamID int64  `json:"team_id"`
	Team   string `json:"team"`
	Count  int    `json:"count"`
}
