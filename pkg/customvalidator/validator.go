// Файл: pkg/customvalidator/validator.go

package customvalidator

import (
	"github.com/go-playground/validator/v10"

	"gearguard/internal/lifecycle"
	"gearguard/pkg/constants"
)

// RegisterCustomValidations регистрирует доменные правила в переданном валидаторе.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("stage", isValidStage); err != nil {
		return err
	}
	if err := v.RegisterValidation("maintenance_type", isValidMaintenanceType); err != nil {
		return err
	}
	if err := v.RegisterValidation("priority", isValidPriority); err != nil {
		return err
	}
	if err := v.RegisterValidation("equipment_status", isValidEquipmentStatus); err != nil {
		return err
	}
	return nil
}

func isValidStage(fl validator.FieldLevel) bool {
	return lifecycle.Stage(fl.Field().String()).Valid()
}

func isValidMaintenanceType(fl validator.FieldLevel) bool {
	return constants.IsValidMaintenanceType(fl.Field().String())
}

func isValidPriority(fl validator.FieldLevel) bool {
	return constants.IsValidPriority(fl.Field().String())
}

func isValidEquipmentStatus(fl validator.FieldLevel) bool {
	return constants.IsValidEquipmentStatus(fl.Field().String())
}
