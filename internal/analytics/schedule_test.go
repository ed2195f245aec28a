package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"gearguard/internal/entities"
	"gearguard/internal/lifecycle"
)

func TestOverdueAndOnTrack(t *testing.T) {
	now := time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC)

	cases := []struct {
		name      string
		stage     lifecycle.Stage
		scheduled string
		overdue   bool
		onTrack   bool
	}{
		{"active in the past", lifecycle.StageInProgress, "2026-01-10", true, false},
		{"new in the future", lifecycle.StageNew, "2026-01-20", false, true},
		{"repaired in the past", lifecycle.StageRepaired, "2026-01-10", false, true},
		{"scrap in the past", lifecycle.StageScrap, "2026-01-10", false, false},
		{"scrap in the future", lifecycle.StageScrap, "2026-02-10", false, true},
		{"today at midnight", lifecycle.StageNew, "2026-01-15", true, false},
		{"exactly now", lifecycle.StageNew, "2026-01-15T09:30", false, true},
		{"rfc3339", lifecycle.StageNew, "2026-01-15T10:00:00Z", false, true},
		{"unparseable", lifecycle.StageNew, "soon", false, false},
		{"unparseable repaired", lifecycle.StageRepaired, "", false, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := entities.MaintenanceRequest{Stage: tc.stage, ScheduledDate: tc.scheduled}
			assert.Equal(t, tc.overdue, IsOverdue(r, now))
			assert.Equal(t, tc.onTrack, IsOnTrack(r, now))
		})
	}
}
