package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gearguard/internal/entities"
	"gearguard/internal/lifecycle"
)

func TestEquipmentRequests(t *testing.T) {
	s := plantSnapshot()

	got := EquipmentRequests(s, 1)
	require.Len(t, got, 2)
	assert.Equal(t, int64(100), got[0].ID)
	assert.Equal(t, int64(101), got[1].ID)

	assert.Equal(t, got, EquipmentRequests(s, 1), "повторный вызов даёт тот же результат")
	assert.Empty(t, EquipmentRequests(s, 404))
	assert.NotNil(t, EquipmentRequests(s, 404))

	assert.Equal(t, 2, OpenRequestCount(s, 1))
	assert.Equal(t, 0, OpenRequestCount(s, 3))
}

func TestTechnicianLoadFormula(t *testing.T) {
	cases := []struct {
		active int
		want   int
	}{
		{0, 0},
		{1, 25},
		{2, 50},
		{3, 75},
		{4, 100},
		{7, 100},
	}
	for _, tc := range cases {
		s := &entities.Snapshot{}
		for i := 0; i < tc.active; i++ {
			s.Requests = append(s.Requests, entities.MaintenanceRequest{
				ID: int64(i + 1), Stage: lifecycle.StageInProgress, TechnicianID: id(7),
			})
		}
		// Завершённые заявки в нагрузку не входят.
		s.Requests = append(s.Requests,
			entities.MaintenanceRequest{ID: 50, Stage: lifecycle.StageRepaired, TechnicianID: id(7)},
			entities.MaintenanceRequest{ID: 51, Stage: lifecycle.StageScrap, TechnicianID: id(7)},
		)
		assert.Equal(t, tc.want, TechnicianLoad(s, 7), "active=%d", tc.active)
	}
}

func TestTechnicianLoad_UnlistedStagesCountAsActive(t *testing.T) {
	now := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	s := &entities.Snapshot{
		Requests: []entities.MaintenanceRequest{
			{ID: 1, Stage: "Waiting Parts", ScheduledDate: "2026-01-05", TechnicianID: id(7)},
			{ID: 2, Stage: "", ScheduledDate: "2026-01-06", TechnicianID: id(7)},
		},
	}

	assert.Equal(t, 50, TechnicianLoad(s, 7))
	for _, r := range s.Requests {
		assert.True(t, IsOverdue(r, now), "заявка %d", r.ID)
	}
}

func TestTechnicianLoad_Snapshot(t *testing.T) {
	s := plantSnapshot()
	assert.Equal(t, 75, TechnicianLoad(s, 20))
	assert.Equal(t, 0, TechnicianLoad(s, 21))
	assert.Equal(t, 0, TechnicianLoad(s, 404))
}

func TestSimilarEquipment(t *testing.T) {
	s := plantSnapshot()

	got := SimilarEquipment(s, 1)
	require.Len(t, got, 2)

	assert.Equal(t, int64(2), got[0].Equipment.ID)
	assert.Equal(t, ReasonSimilarAssetType, got[0].Reason)
	assert.Empty(t, got[0].CommonRequests)

	assert.Equal(t, int64(3), got[1].Equipment.ID)
	assert.Equal(t, ReasonCommonIssues, got[1].Reason)
	require.Len(t, got[1].CommonRequests, 1)
	assert.Equal(t, int64(100), got[1].CommonRequests[0].ID)

	for _, m := range got {
		assert.NotEqual(t, int64(1), m.Equipment.ID)
	}
}

func TestSimilarEquipment_LabelWinsOverIssues(t *testing.T) {
	s := plantSnapshot()
	s.Requests = append(s.Requests, entities.MaintenanceRequest{
		ID: 200, Subject: "OIL LEAK", EquipmentID: id(2), Stage: lifecycle.StageNew,
	})

	got := SimilarEquipment(s, 1)
	require.NotEmpty(t, got)
	assert.Equal(t, int64(2), got[0].Equipment.ID)
	assert.Equal(t, ReasonSimilarAssetType, got[0].Reason)
	assert.Len(t, got[0].CommonRequests, 1)
}

func TestSimilarEquipment_UnknownTarget(t *testing.T) {
	got := SimilarEquipment(plantSnapshot(), 404)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestAssetLabel(t *testing.T) {
	assert.Equal(t, "cnc", assetLabel("CNC Machine 01"))
	assert.Equal(t, "printer", assetLabel("Printer"))
	assert.Equal(t, "", assetLabel(""))
}
