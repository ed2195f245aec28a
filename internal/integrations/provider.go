package integrations

import (
	"context"

	"gearguard/internal/entities"
	"gearguard/internal/lifecycle"
	"gearguard/pkg/constants"
)

// Fetcher читает шесть коллекций снимка.
type Fetcher interface {
	GetEquipment(ctx context.Context) ([]entities.Equipment, error)
	GetTeams(ctx context.Context) ([]entities.Team, error)
	GetTechnicians(ctx context.Context) ([]entities.Technician, error)
	GetRequests(ctx context.Context) ([]entities.MaintenanceRequest, error)
	GetWorkCenters(ctx context.Context) ([]entities.WorkCenter, error)
	GetEquipmentCategories(ctx context.Context) ([]entities.EquipmentCategory, error)
}

// Writer выполняет запись в удалённый API. out может быть nil,
// тогда тело ответа не разбирается.
type Writer interface {
	Create(ctx context.Context, resource constants.Resource, payload interface{}, out interface{}) error
	Update(ctx context.Context, resource constants.Resource, id int64, payload interface{}, out interface{}) error
	Delete(ctx context.Context, resource constants.Resource, id int64) error
	UpdateRequestStage(ctx context.Context, id int64, stage lifecycle.Stage) (*entities.MaintenanceRequest, error)
}

type DataProvider interface {
	Name() string
	Fetcher
	Writer
}
