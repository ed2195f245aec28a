package mock

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"gearguard/internal/entities"
	"gearguard/internal/integrations"
	"gearguard/internal/lifecycle"
	"gearguard/pkg/constants"
	apperrors "gearguard/pkg/errors"
)

const ProviderName = "mock"

// MockProvider - удалённый API целиком в памяти. Используется для демо-режима
// и как хранилище фейкового HTTP-сервера в тестах.
type MockProvider struct {
	mu     sync.Mutex
	nextID int64

	equipment   table[entities.Equipment]
	teams       table[entities.Team]
	technicians table[entities.Technician]
	requests    table[entities.MaintenanceRequest]
	workCenters table[entities.WorkCenter]
	categories  table[entities.EquipmentCategory]

	// FailReads / FailWrites подменяют ответ API ошибкой.
	FailReads  error
	FailWrites error
}

var _ integrations.DataProvider = (*MockProvider)(nil)

func NewMockProvider() *MockProvider {
	return &MockProvider{
		equipment: table[entities.Equipment]{
			id:       func(e *entities.Equipment) *int64 { return &e.ID },
			defaults: func(e *entities.Equipment) { e.Status = constants.EquipmentOperational; e.Health = constants.DefaultHealth },
			notFound: "Equipment not found",
		},
		teams: table[entities.Team]{
			id:       func(t *entities.Team) *int64 { return &t.ID },
			notFound: "Team not found",
		},
		technicians: table[entities.Technician]{
			id:       func(t *entities.Technician) *int64 { return &t.ID },
			notFound: "Technician not found",
		},
		requests: table[entities.MaintenanceRequest]{
			id:       func(r *entities.MaintenanceRequest) *int64 { return &r.ID },
			defaults: func(r *entities.MaintenanceRequest) { r.Stage = lifecycle.Initial; r.Priority = constants.DefaultPriority },
			notFound: "Request not found",
		},
		workCenters: table[entities.WorkCenter]{
			id: func(w *entities.WorkCenter) *int64 { return &w.ID },
			defaults: func(w *entities.WorkCenter) {
				w.CapacityTime = constants.DefaultCapacityTime
				w.TimeEfficiency = constants.DefaultTimeEfficiency
				w.OEETarget = constants.DefaultOEETarget
			},
			notFound: "Work Center not found",
		},
		categories: table[entities.EquipmentCategory]{
			id:       func(c *entities.EquipmentCategory) *int64 { return &c.ID },
			notFound: "Category not found",
		},
	}
}

func (m *MockProvider) Name() string {
	return ProviderName
}

// Seed заменяет содержимое всех коллекций.
func (m *MockProvider) Seed(s *entities.Snapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.equipment.seed(s.Equipment)
	m.teams.seed(s.Teams)
	m.technicians.seed(s.Technicians)
	m.requests.seed(s.Requests)
	m.workCenters.seed(s.WorkCenters)
	m.categories.seed(s.EquipmentCategories)

	m.nextID = 0
	for _, c := range m.collections() {
		if id := c.maxID(); id > m.nextID {
			m.nextID = id
		}
	}
}

func (m *MockProvider) collections() map[constants.Resource]collection {
	return map[constants.Resource]collection{
		constants.ResourceEquipment:           &m.equipment,
		constants.ResourceTeams:               &m.teams,
		constants.ResourceTechnicians:         &m.technicians,
		constants.ResourceRequests:            &m.requests,
		constants.ResourceWorkCenters:         &m.workCenters,
		constants.ResourceEquipmentCategories: &m.categories,
	}
}

func (m *MockProvider) read(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return m.FailReads
}

func (m *MockProvider) GetEquipment(ctx context.Context) ([]entities.Equipment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.read(ctx); err != nil {
		return nil, err
	}
	return m.equipment.list(), nil
}

func (m *MockProvider) GetTeams(ctx context.Context) ([]entities.Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.read(ctx); err != nil {
		return nil, err
	}
	return m.teams.list(), nil
}

func (m *MockProvider) GetTechnicians(ctx context.Context) ([]entities.Technician, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.read(ctx); err != nil {
		return nil, err
	}
	return m.technicians.list(), nil
}

func (m *MockProvider) GetRequests(ctx context.Context) ([]entities.MaintenanceRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.read(ctx); err != nil {
		return nil, err
	}
	return m.requests.list(), nil
}

func (m *MockProvider) GetWorkCenters(ctx context.Context) ([]entities.WorkCenter, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.read(ctx); err != nil {
		return nil, err
	}
	return m.workCenters.list(), nil
}

func (m *MockProvider) GetEquipmentCategories(ctx context.Context) ([]entities.EquipmentCategory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.read(ctx); err != nil {
		return nil, err
	}
	return m.categories.list(), nil
}

func (m *MockProvider) write(ctx context.Context, resource constants.Resource) (collection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.FailWrites != nil {
		return nil, m.FailWrites
	}
	c, ok := m.collections()[resource]
	if !ok {
		return nil, &apperrors.APIError{StatusCode: http.StatusNotFound, Detail: "Not Found", Endpoint: resource.Path()}
	}
	return c, nil
}

func (m *MockProvider) Create(ctx context.Context, resource constants.Resource, payload interface{}, out interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, err := m.write(ctx, resource)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("ошибка сериализации тела запроса: %w", err)
	}
	m.nextID++
	created, err := c.create(raw, m.nextID)
	if err != nil {
		m.nextID--
		return withEndpoint(err, http.MethodPost, resource.Path())
	}
	return copyInto(created, out)
}

func (m *MockProvider) Update(ctx context.Context, resource constants.Resource, id int64, payload interface{}, out interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, err := m.write(ctx, resource)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("ошибка сериализации тела запроса: %w", err)
	}
	updated, err := c.update(id, raw)
	if err != nil {
		return withEndpoint(err, http.MethodPut, fmt.Sprintf("%s/%d", resource.Path(), id))
	}
	return copyInto(updated, out)
}

func (m *MockProvider) Delete(ctx context.Context, resource constants.Resource, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, err := m.write(ctx, resource)
	if err != nil {
		return err
	}
	if err := c.remove(id); err != nil {
		return withEndpoint(err, http.MethodDelete, fmt.Sprintf("%s/%d", resource.Path(), id))
	}
	return nil
}

// UpdateRequestStage, как и сервер, принимает любую строку; Scrap списывает оборудование.
func (m *MockProvider) UpdateRequestStage(ctx context.Context, id int64, stage lifecycle.Stage) (*entities.MaintenanceRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, err := m.write(ctx, constants.ResourceRequests); err != nil {
		return nil, err
	}
	endpoint := fmt.Sprintf("%s/%d/stage", constants.ResourceRequests.Path(), id)
	req, _ := m.requests.find(id)
	if req == nil {
		return nil, withEndpoint(m.requests.missing(id), http.MethodPut, endpoint)
	}
	req.Stage = stage
	if stage == lifecycle.StageScrap && req.EquipmentID.Valid {
		if eq, _ := m.equipment.find(req.EquipmentID.Int64); eq != nil {
			eq.Status = constants.EquipmentScrapped
		}
	}
	updated := *req
	return &updated, nil
}

func withEndpoint(err error, method, endpoint string) error {
	if apiErr, ok := err.(*apperrors.APIError); ok {
		apiErr.Method = method
		apiErr.Endpoint = endpoint
	}
	return err
}

func copyInto(src interface{}, out interface{}) error {
	if out == nil {
		return nil
	}
	raw, err := json.Marshal(src)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}
