package analytics

import (
	"gearguard/internal/dto"
	"gearguard/internal/entities"
)

// Pivot строит сводную таблицу "отдел x команда" по количеству заявок.
// Итог строки считает все заявки отдела, итог столбца - все заявки команды,
// общий итог - все заявки, поэтому суммы ячеек могут быть меньше итогов.
func Pivot(s *entities.Snapshot) dto.PivotReportDTO {
	report := dto.PivotReportDTO{
		Teams:      make([]string, 0, len(s.Teams)),
		Rows:       []dto.PivotRowDTO{},
		TeamTotals: make([]int, len(s.Teams)),
		GrandTotal: len(s.Requests),
	}
	for _, t := range s.Teams {
		report.Teams = append(report.Teams, t.Name)
	}

	for _, dept := range Departments(s) {
		row := dto.PivotRowDTO{Department: dept, Counts: make([]int, len(s.Teams))}
		for _, r := range s.Requests {
			if d, ok := requestDepartment(s, r); !ok || d != dept {
				continue
			}
			row.Total++
			for i, t := range s.Teams {
				if r.TeamID.Valid && r.TeamID.Int64 == t.ID {
					row.Counts[i]++
				}
			}
		}
		report.Rows = append(report.Rows, row)
	}

	for i, c := range TeamRequestCounts(s) {
		report.TeamTotals[i] = c.Count
	}
	return report
}

// Departments - различные отделы оборудования в порядке первого появления.
func Departments(s *entities.Snapshot) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, e := range s.Equipment {
		if _, ok := seen[e.Department]; ok {
			continue
		}
		seen[e.Department] = struct{}{}
		out = append(out, e.Department)
	}
	return out
}

// requestDepartment: заявки на рабочие центры и на удалённое оборудование отдела не имеют.
func requestDepartment(s *entities.Snapshot, r entities.MaintenanceRequest) (string, bool) {
	if !r.EquipmentID.Valid {
		return "", false
	}
	e, ok := s.EquipmentByID(r.EquipmentID.Int64)
	if !ok {
		return "", false
	}
	return e.Department, true
}

func TeamRequestCounts(s *entities.Snapshot) []dto.TeamRequestCountDTO {
	out := make([]dto.TeamRequestCountDTO, 0, len(s.Teams))
	for _, t := range s.Teams {
		n := 0
		for _, r := range s.Requests {
			if r.TeamID.Valid && r.TeamID.Int64 == t.ID {
				n++
			}
		}
		out = append(out, dto.TeamRequestCountDTO{TeamID: t.ID, Team: t.Name, Count: n})
	}
	return out
}
