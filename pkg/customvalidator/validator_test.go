package customvalidator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gearguard/internal/dto"
	"gearguard/internal/lifecycle"
)

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	require.NoError(t, RegisterCustomValidations(v))
	return v
}

func TestRequestPayloadRules(t *testing.T) {
	v := newValidator(t)

	valid := dto.MaintenanceRequestPayloadDTO{
		Subject:       "Oil leak",
		Type:          "Corrective",
		ScheduledDate: "2026-01-10",
		Priority:      "High",
	}
	assert.NoError(t, v.Struct(valid))

	withStage := valid
	withStage.Stage = lifecycle.StageScrap
	assert.NoError(t, v.Struct(withStage))

	badStage := valid
	badStage.Stage = "Closed"
	assert.Error(t, v.Struct(badStage))

	badType := valid
	badType.Type = "Urgent"
	err := v.Struct(badType)
	require.Error(t, err)
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "maintenance_type", verrs[0].Tag())

	badPriority := valid
	badPriority.Priority = "Critical"
	assert.Error(t, v.Struct(badPriority))
}

func TestEquipmentPayloadRules(t *testing.T) {
	v := newValidator(t)

	health := 120
	payload := dto.EquipmentPayloadDTO{
		Name:         "CNC Machine 01",
		SerialNumber: "CNC-001",
		PurchaseDate: "2024-03-01",
		Status:       "operational",
		Health:       &health,
	}
	assert.Error(t, v.Struct(payload), "здоровье выше 100")

	health = 80
	assert.NoError(t, v.Struct(payload))

	payload.Status = "broken"
	assert.Error(t, v.Struct(payload))
}
