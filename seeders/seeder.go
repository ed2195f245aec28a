package seeders

import (
	"context"
	"fmt"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/integrations"
	"gearguard/pkg/constants"
)

// idMap переводит локальные ID демо-данных в ID, выданные API.
type idMap map[int64]int64

func (m idMap) ref(id null.Int64) null.Int64 {
	if !id.Valid {
		return id
	}
	if mapped, ok := m[id.Int64]; ok {
		return null.Int64From(mapped)
	}
	return null.Int64{}
}

// SeedAPI записывает plant в удалённый API через provider. Если в API уже
// есть команды и force не задан, ничего не делает и возвращает false.
func SeedAPI(ctx context.Context, provider integrations.DataProvider, plant *entities.Snapshot, force bool, logger *zap.Logger) (bool, error) {
	if !force {
		teams, err := provider.GetTeams(ctx)
		if err != nil {
			return false, fmt.Errorf("проверка существующих данных: %w", err)
		}
		if len(teams) > 0 {
			logger.Info("Данные уже существуют, наполнение пропущено", zap.Int("teams", len(teams)))
			return false, nil
		}
	}

	ids := make(idMap)
	create := func(resource constants.Resource, localID int64, payload interface{}) error {
		var created struct {
			ID int64 `json:"id"`
		}
		if err := provider.Create(ctx, resource, payload, &created); err != nil {
			return fmt.Errorf("создание %s #%d: %w", resource, localID, err)
		}
		ids[localID] = created.ID
		return nil
	}

	// Порядок важен: ссылки указывают только на уже созданные записи.
	for _, t := range plant.Teams {
		if err := create(constants.ResourceTeams, t.ID, dto.TeamPayloadDTO{
			Name: t.Name, Leader: t.Leader, MembersCount: t.MembersCount,
		}); err != nil {
			return false, err
		}
	}
	for _, t := range plant.Technicians {
		if err := create(constants.ResourceTechnicians, t.ID, dto.TechnicianPayloadDTO{
			Name: t.Name, Avatar: t.Avatar, TeamID: ids.ref(t.TeamID),
		}); err != nil {
			return false, err
		}
	}
	for _, w := range plant.WorkCenters {
		if err := create(constants.ResourceWorkCenters, w.ID, dto.WorkCenterPayloadDTO{
			Name: w.Name, Code: w.Code, Tag: w.Tag, AlternativeWorkcenters: w.AlternativeWorkcenters,
			CostPerHour: w.CostPerHour, CapacityTime: w.CapacityTime, TimeEfficiency: w.TimeEfficiency, OEETarget: w.OEETarget,
		}); err != nil {
			return false, err
		}
	}
	for _, c := range plant.EquipmentCategories {
		if err := create(constants.ResourceEquipmentCategories, c.ID, dto.EquipmentCategoryPayloadDTO{
			Name: c.Name, ResponsibleUserID: c.ResponsibleUserID, Company: c.Company,
		}); err != nil {
			return false, err
		}
	}
	for _, e := range plant.Equipment {
		health := e.Health
		if err := create(constants.ResourceEquipment, e.ID, dto.EquipmentPayloadDTO{
			Name: e.Name, SerialNumber: e.SerialNumber, PurchaseDate: e.PurchaseDate, Warranty: e.Warranty,
			Location: e.Location, Department: e.Department, Employee: e.Employee, Status: e.Status, Health: &health,
			TeamID: ids.ref(e.TeamID), TechnicianID: ids.ref(e.TechnicianID), CategoryID: ids.ref(e.CategoryID),
			Company: e.Company,
		}); err != nil {
			return false, err
		}
	}
	for _, r := range plant.Requests {
		if err := create(constants.ResourceRequests, r.ID, dto.MaintenanceRequestPayloadDTO{
			Subject: r.Subject, EquipmentID: ids.ref(r.EquipmentID), WorkCenterID: ids.ref(r.WorkCenterID),
			Type: r.Type, Stage: r.Stage, ScheduledDate: r.ScheduledDate, Duration: r.Duration, Priority: r.Priority,
			TeamID: ids.ref(r.TeamID), TechnicianID: ids.ref(r.TechnicianID),
			Company: r.Company, WorksheetNotes: r.WorksheetNotes,
		}); err != nil {
			return false, err
		}
	}

	logger.Info("Демо-данные записаны",
		zap.Int("teams", len(plant.Teams)),
		zap.Int("technicians", len(plant.Technicians)),
		zap.Int("equipment", len(plant.Equipment)),
		zap.Int("requests", len(plant.Requests)),
	)
	return true, nil
}
