package analytics

import (
	"time"

	"github.com/aarondl/null/v8"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/lifecycle"
	"gearguard/pkg/constants"
)

// Поиск по ссылкам никогда не падает: висячая ссылка превращается в подпись.

func TeamName(s *entities.Snapshot, id null.Int64) string {
	if id.Valid {
		if t, ok := s.TeamByID(id.Int64); ok {
			return t.Name
		}
	}
	return constants.LabelUnassigned
}

func TechnicianName(s *entities.Snapshot, id null.Int64) string {
	if id.Valid {
		if t, ok := s.TechnicianByID(id.Int64); ok {
			return t.Name
		}
	}
	return constants.LabelUnassigned
}

// TargetName - название оборудования или рабочего центра заявки.
func TargetName(s *entities.Snapshot, r entities.MaintenanceRequest) string {
	if r.EquipmentID.Valid {
		if e, ok := s.EquipmentByID(r.EquipmentID.Int64); ok {
			return e.Name
		}
	}
	if r.WorkCenterID.Valid {
		if w, ok := s.WorkCenterByID(r.WorkCenterID.Int64); ok {
			return w.Name
		}
	}
	return constants.LabelUnknown
}

func RequestCard(s *entities.Snapshot, r entities.MaintenanceRequest, now time.Time) dto.RequestCardDTO {
	return dto.RequestCardDTO{
		ID:             r.ID,
		Subject:        r.Subject,
		Type:           r.Type,
		Stage:          r.Stage,
		Priority:       r.Priority,
		ScheduledDate:  r.ScheduledDate,
		TargetName:     TargetName(s, r),
		TechnicianName: TechnicianName(s, r.TechnicianID),
		TeamName:       TeamName(s, r.TeamID),
		Overdue:        IsOverdue(r, now),
		CanStepForward: lifecycle.CanStep(r.Stage, lifecycle.Forward),
		CanStepBack:    lifecycle.CanStep(r.Stage, lifecycle.Backward),
	}
}

func RequestCards(s *entities.Snapshot, requests []entities.MaintenanceRequest, now time.Time) []dto.RequestCardDTO {
	cards := make([]dto.RequestCardDTO, 0, len(requests))
	for _, r := range requests {
		cards = append(cards, RequestCard(s, r, now))
	}
	return cards
}
