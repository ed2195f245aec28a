package analytics

import (
	"time"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/pkg/utils"
)

// CalendarDay - заявки, запланированные на день, и оборудование, купленное в этот день.
func CalendarDay(s *entities.Snapshot, day time.Time, now time.Time) dto.CalendarDayDTO {
	var requests []entities.MaintenanceRequest
	for _, r := range s.Requests {
		if utils.SameDay(r.ScheduledDate, day) {
			requests = append(requests, r)
		}
	}

	purchases := []dto.ShortEquipmentDTO{}
	for _, e := range s.Equipment {
		if utils.SameDay(e.PurchaseDate, day) {
			purchases = append(purchases, dto.ShortEquipmentDTO{ID: e.ID, Name: e.Name})
		}
	}

	return dto.CalendarDayDTO{
		Date:      day.Format(utils.DateLayout),
		Requests:  RequestCards(s, requests, now),
		Purchases: purchases,
	}
}

// CalendarMonth возвращает все дни месяца, включая пустые.
func CalendarMonth(s *entities.Snapshot, year int, month time.Month, now time.Time) []dto.CalendarDayDTO {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	days := first.AddDate(0, 1, -1).Day()

	out := make([]dto.CalendarDayDTO, 0, days)
	for d := 0; d < days; d++ {
		out = append(out, CalendarDay(s, first.AddDate(0, 0, d), now))
	}
	return out
}
