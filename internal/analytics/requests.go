// Package analytics - чистые вычисления над снимком. Ничего не пишет и не
// ходит в сеть; одинаковый снимок даёт одинаковый результат.
package analytics

import (
	"math"
	"strings"

	"gearguard/internal/entities"
)

// TechnicianCapacity - число активных заявок, при котором загрузка равна 100%.
const TechnicianCapacity = 4

const (
	ReasonSimilarAssetType = "Similar Asset Type"
	ReasonCommonIssues     = "Common Maintenance Issues"
)

// EquipmentRequests возвращает заявки по оборудованию в порядке снимка.
func EquipmentRequests(s *entities.Snapshot, equipmentID int64) []entities.MaintenanceRequest {
	out := []entities.MaintenanceRequest{}
	for _, r := range s.Requests {
		if r.TargetsEquipment(equipmentID) {
			out = append(out, r)
		}
	}
	return out
}

// OpenRequestCount - заявки по оборудованию, ещё не дошедшие до конечной стадии.
func OpenRequestCount(s *entities.Snapshot, equipmentID int64) int {
	n := 0
	for _, r := range s.Requests {
		if r.TargetsEquipment(equipmentID) && r.Stage.IsActive() {
			n++
		}
	}
	return n
}

func ActiveRequestCount(s *entities.Snapshot, technicianID int64) int {
	n := 0
	for _, r := range s.Requests {
		if r.AssignedTo(technicianID) && r.Stage.IsActive() {
			n++
		}
	}
	return n
}

// TechnicianLoad - загрузка в процентах, не выше 100.
// Неизвестный техник даёт 0.
func TechnicianLoad(s *entities.Snapshot, technicianID int64) int {
	return loadPercent(ActiveRequestCount(s, technicianID))
}

func loadPercent(active int) int {
	load := int(math.Round(float64(active) / TechnicianCapacity * 100))
	if load > 100 {
		return 100
	}
	return load
}

// SimilarMatch - похожее оборудование и причина совпадения.
type SimilarMatch struct {
	Equipment entities.Equipment
	Reason    string
	// Общие заявки цели, тема которых встречается и у найденного оборудования.
	CommonRequests []entities.MaintenanceRequest
}

// SimilarEquipment ищет оборудование с тем же первым словом названия или с
// общими темами заявок. Цель в результат не попадает, порядок - как в снимке.
func SimilarEquipment(s *entities.Snapshot, equipmentID int64) []SimilarMatch {
	out := []SimilarMatch{}
	target, ok := s.EquipmentByID(equipmentID)
	if !ok {
		return out
	}

	targetLabel := assetLabel(target.Name)
	targetRequests := EquipmentRequests(s, target.ID)

	for _, e := range s.Equipment {
		if e.ID == target.ID {
			continue
		}

		labelsMatch := assetLabel(e.Name) == targetLabel
		common := commonIssues(targetRequests, EquipmentRequests(s, e.ID))
		if !labelsMatch && len(common) == 0 {
			continue
		}

		reason := ReasonCommonIssues
		if labelsMatch {
			reason = ReasonSimilarAssetType
		}
		out = append(out, SimilarMatch{Equipment: e, Reason: reason, CommonRequests: common})
	}
	return out
}

// assetLabel - первое слово названия в нижнем регистре: "CNC Machine 01" -> "cnc".
func assetLabel(name string) string {
	label, _, _ := strings.Cut(strings.ToLower(name), " ")
	return label
}

func commonIssues(target, other []entities.MaintenanceRequest) []entities.MaintenanceRequest {
	out := []entities.MaintenanceRequest{}
	for _, tr := range target {
		for _, o := range other {
			if strings.EqualFold(tr.Subject, o.Subject) {
				out = append(out, tr)
				break
			}
		}
	}
	return out
}
