package analytics

import (
	"time"

	"gearguard/internal/entities"
	"gearguard/internal/lifecycle"
	"gearguard/pkg/utils"
)

// IsOverdue: заявка в работе и плановая дата строго раньше now.
func IsOverdue(r entities.MaintenanceRequest, now time.Time) bool {
	if !r.Stage.IsActive() {
		return false
	}
	scheduled, ok := utils.ParseDate(r.ScheduledDate)
	return ok && scheduled.Before(now)
}

// IsOnTrack: заявка отремонтирована или её дата ещё не наступила.
// Scrap в прошлом не попадает ни сюда, ни в просроченные.
func IsOnTrack(r entities.MaintenanceRequest, now time.Time) bool {
	if r.Stage == lifecycle.StageRepaired {
		return true
	}
	scheduled, ok := utils.ParseDate(r.ScheduledDate)
	return ok && !scheduled.Before(now)
}
