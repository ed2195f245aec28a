package analytics

import (
	"math"
	"sort"
	"strings"
	"time"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/lifecycle"
	"gearguard/pkg/constants"
)

// LoadBoard - все техники с загрузкой, от самых загруженных.
// При равной загрузке сохраняется порядок снимка.
func LoadBoard(s *entities.Snapshot) []dto.TechnicianLoadDTO {
	board := make([]dto.TechnicianLoadDTO, 0, len(s.Technicians))
	for _, t := range s.Technicians {
		active := ActiveRequestCount(s, t.ID)
		load := loadPercent(active)
		board = append(board, dto.TechnicianLoadDTO{
			TechnicianID:   t.ID,
			Name:           t.Name,
			Avatar:         t.Avatar,
			TeamName:       TeamName(s, t.TeamID),
			ActiveRequests: active,
			Load:           load,
			Overloaded:     load > constants.OverloadLoadPercentage,
		})
	}
	sort.SliceStable(board, func(i, j int) bool {
		return board[i].Load > board[j].Load
	})
	return board
}

// FilterRequests оставляет заявки, у которых хотя бы одно текстовое поле
// содержит term без учёта регистра. Пустой term ничего не отбрасывает.
func FilterRequests(s *entities.Snapshot, requests []entities.MaintenanceRequest, term string) []entities.MaintenanceRequest {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return requests
	}
	out := []entities.MaintenanceRequest{}
	for _, r := range requests {
		if containsAny(term,
			TargetName(s, r),
			r.Subject,
			r.Type,
			string(r.Stage),
			r.ScheduledDate,
			TechnicianName(s, r.TechnicianID),
		) {
			out = append(out, r)
		}
	}
	return out
}

func FilterEquipment(equipment []entities.Equipment, term string) []entities.Equipment {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return equipment
	}
	out := []entities.Equipment{}
	for _, e := range equipment {
		if containsAny(term, e.Name, e.SerialNumber, e.Location, e.Department, e.Status) {
			out = append(out, e)
		}
	}
	return out
}

func containsAny(term string, fields ...string) bool {
	for _, f := range fields {
		if f != "" && strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

func CriticalEquipment(equipment []entities.Equipment) []entities.Equipment {
	out := []entities.Equipment{}
	for _, e := range equipment {
		if e.IsCritical() {
			out = append(out, e)
		}
	}
	return out
}

// Stats считает карточки дашборда по отфильтрованным поиском данным.
func Stats(s *entities.Snapshot, now time.Time, search string) dto.DashboardStatsDTO {
	requests := FilterRequests(s, s.Requests, search)
	equipment := FilterEquipment(s.Equipment, search)

	var stats dto.DashboardStatsDTO
	stats.TotalRequests = len(requests)
	stats.TotalEquipment = len(equipment)

	healthSum := 0
	for _, e := range equipment {
		healthSum += e.Health
		if e.IsCritical() {
			stats.CriticalEquipment++
		}
		if e.Status == constants.EquipmentOperational {
			stats.OperationalEquipment++
		}
	}
	if len(equipment) > 0 {
		stats.AverageHealth = math.Round(float64(healthSum)/float64(len(equipment))*10) / 10
	}

	for _, r := range requests {
		if r.Type == constants.MaintenancePreventive && r.Stage != lifecycle.StageRepaired {
			stats.ScheduledMaintenance++
		}
		if IsOverdue(r, now) {
			stats.OverdueRequests++
		}
		if IsOnTrack(r, now) {
			stats.OnTrackRequests++
		}
	}
	stats.OnTrackPercentage = int(math.Round(float64(stats.OnTrackRequests) / float64(max(len(requests), 1)) * 100))
	return stats
}
