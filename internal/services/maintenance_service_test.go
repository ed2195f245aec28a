package services

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/integrations/gearguard"
	"gearguard/internal/lifecycle"
	"gearguard/internal/store"
	"gearguard/internal/testutils/fakeapi"
	"gearguard/pkg/customvalidator"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/metrics"
)

func newTestValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	require.NoError(t, customvalidator.RegisterCustomValidations(v))
	return v
}

func seedPlant() *entities.Snapshot {
	return &entities.Snapshot{
		Equipment: []entities.Equipment{
			{ID: 1, Name: "CNC Machine 01", SerialNumber: "CNC-1", Department: "Production", Status: "operational", Health: 80,
				TeamID: null.Int64From(10), TechnicianID: null.Int64From(20)},
		},
		Teams:       []entities.Team{{ID: 10, Name: "Mechanics", Leader: "Ann", MembersCount: 2}},
		Technicians: []entities.Technician{{ID: 20, Name: "Bob", TeamID: null.Int64From(10)}},
		Requests: []entities.MaintenanceRequest{
			{ID: 30, Subject: "Oil leak", EquipmentID: null.Int64From(1), Type: "Corrective", Stage: lifecycle.StageNew, ScheduledDate: "2026-01-10", Priority: "High",
				TechnicianID: null.Int64From(20)},
			{ID: 31, Subject: "Belt", EquipmentID: null.Int64From(1), Type: "Preventive", Stage: lifecycle.StageInProgress, ScheduledDate: "2026-02-10", Priority: "Low",
				TechnicianID: null.Int64From(20)},
		},
		WorkCenters:         []entities.WorkCenter{{ID: 40, Name: "Assembly 1", Code: "WC-1"}},
		EquipmentCategories: []entities.EquipmentCategory{{ID: 50, Name: "Machines"}},
	}
}

type MaintenanceServiceSuite struct {
	suite.Suite
	srv     *fakeapi.Server
	store   *store.Store
	service MaintenanceServiceInterface
	ctx     context.Context
}

func (s *MaintenanceServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.srv = fakeapi.New(s.T())
	s.srv.Token = "writer-token"
	s.srv.Seed(seedPlant())

	provider := gearguard.New(s.srv.BaseURL(), s.srv.Client(), gearguard.StaticToken("writer-token"), zap.NewNop())
	s.store = store.New(provider, nil, metrics.New(), zap.NewNop())
	s.Require().NoError(s.store.Load(s.ctx))

	s.service = NewMaintenanceService(provider, s.store, newTestValidator(s.T()), metrics.New(), zap.NewNop())
}

func (s *MaintenanceServiceSuite) reads() int {
	return s.srv.CallsTo(http.MethodGet, "/api/requests")
}

func (s *MaintenanceServiceSuite) TestAddRequestDefaultsToNewAndReloads() {
	before := s.reads()

	created, err := s.service.AddRequest(s.ctx, dto.MaintenanceRequestPayloadDTO{
		Subject:       "Spindle noise",
		EquipmentID:   null.Int64From(1),
		Type:          "Corrective",
		ScheduledDate: "2026-03-01",
	})
	s.Require().NoError(err)
	s.Equal(lifecycle.StageNew, created.Stage)
	s.Equal("Medium", created.Priority)
	s.Equal(int64(10), created.TeamID.Int64, "команда из оборудования")
	s.Equal(int64(20), created.TechnicianID.Int64, "техник из оборудования")

	s.Equal(before+1, s.reads(), "после записи снимок перечитан")
	got, ok := s.store.Current().RequestByID(created.ID)
	s.Require().True(ok)
	s.Equal("Spindle noise", got.Subject)
	s.Equal(lifecycle.StageNew, got.Stage)
}

func (s *MaintenanceServiceSuite) TestFailedMutationLeavesSnapshotUntouched() {
	before := s.store.Current()
	reads := s.reads()
	s.srv.FailNext(http.MethodPut, "/api/requests/30/stage", http.StatusInternalServerError, "database is locked")

	_, err := s.service.UpdateRequestStage(s.ctx, 30, lifecycle.StageRepaired)

	var apiErr *apperrors.APIError
	s.Require().ErrorAs(err, &apiErr)
	s.Equal(http.StatusInternalServerError, apiErr.StatusCode)
	s.Equal("database is locked", apiErr.Detail)
	s.Same(before, s.store.Current())
	s.Equal(reads, s.reads(), "после ошибки перезагрузки нет")
}

func (s *MaintenanceServiceSuite) TestValidationFailureMakesNoCall() {
	calls := len(s.srv.Calls())

	_, err := s.service.AddRequest(s.ctx, dto.MaintenanceRequestPayloadDTO{
		Subject:       "No type",
		EquipmentID:   null.Int64From(1),
		Type:          "Urgent",
		ScheduledDate: "2026-03-01",
	})
	var verrs validator.ValidationErrors
	s.ErrorAs(err, &verrs)

	_, err = s.service.AddRequest(s.ctx, dto.MaintenanceRequestPayloadDTO{
		Subject:       "Both targets",
		EquipmentID:   null.Int64From(1),
		WorkCenterID:  null.Int64From(40),
		Type:          "Corrective",
		ScheduledDate: "2026-03-01",
	})
	s.ErrorIs(err, apperrors.ErrAmbiguousTarget)

	_, err = s.service.UpdateRequestStage(s.ctx, 30, "Closed")
	s.ErrorIs(err, apperrors.ErrInvalidStage)

	s.Len(s.srv.Calls(), calls)
}

func (s *MaintenanceServiceSuite) TestStageUpdateAllowsAnyTransition() {
	updated, err := s.service.UpdateRequestStage(s.ctx, 30, lifecycle.StageScrap)
	s.Require().NoError(err)
	s.Equal(lifecycle.StageScrap, updated.Stage)

	snap := s.store.Current()
	req, _ := snap.RequestByID(30)
	s.Equal(lifecycle.StageScrap, req.Stage)
	eq, _ := snap.EquipmentByID(1)
	s.Equal("scrapped", eq.Status, "списание заявки списывает оборудование")

	// Из конечной стадии назад тоже можно.
	_, err = s.service.UpdateRequestStage(s.ctx, 30, lifecycle.StageNew)
	s.Require().NoError(err)
}

func (s *MaintenanceServiceSuite) TestStepRequestStage() {
	updated, err := s.service.StepRequestStage(s.ctx, 30, lifecycle.Forward)
	s.Require().NoError(err)
	s.Equal(lifecycle.StageInProgress, updated.Stage)

	calls := len(s.srv.Calls())
	_, err = s.service.StepRequestStage(s.ctx, 30, lifecycle.Backward)
	s.Require().NoError(err)

	_, err = s.service.StepRequestStage(s.ctx, 30, lifecycle.Backward)
	s.ErrorIs(err, apperrors.ErrStageBoundary)

	_, err = s.service.StepRequestStage(s.ctx, 999, lifecycle.Forward)
	s.ErrorIs(err, apperrors.ErrNotFound)

	s.Equal(calls+1+6, len(s.srv.Calls()), "одна запись и одна перезагрузка")
}

func (s *MaintenanceServiceSuite) TestConcurrentStageUpdatesBothVisible() {
	var wg sync.WaitGroup
	errs := make([]error, 2)
	targets := []struct {
		id    int64
		stage lifecycle.Stage
	}{
		{30, lifecycle.StageRepaired},
		{31, lifecycle.StageScrap},
	}
	for i, tc := range targets {
		wg.Add(1)
		go func(i int, id int64, stage lifecycle.Stage) {
			defer wg.Done()
			_, errs[i] = s.service.UpdateRequestStage(s.ctx, id, stage)
		}(i, tc.id, tc.stage)
	}
	wg.Wait()

	s.Require().NoError(errs[0])
	s.Require().NoError(errs[1])
	s.False(s.store.Loading())

	snap := s.store.Current()
	first, _ := snap.RequestByID(30)
	second, _ := snap.RequestByID(31)
	s.Equal(lifecycle.StageRepaired, first.Stage)
	s.Equal(lifecycle.StageScrap, second.Stage)
}

func (s *MaintenanceServiceSuite) TestReloadFailureIsAbsorbed() {
	before := s.store.Current()
	s.srv.FailNext(http.MethodGet, "/api/teams", http.StatusBadGateway, "upstream down")

	team, err := s.service.AddTeam(s.ctx, dto.TeamPayloadDTO{Name: "Electricians", Leader: "Eve", MembersCount: 1})
	s.Require().NoError(err, "запись прошла, ошибка перезагрузки не возвращается")
	s.NotZero(team.ID)

	s.Same(before, s.store.Current())
	s.Require().NoError(s.service.Refresh(s.ctx))
	_, ok := s.store.Current().TeamByID(team.ID)
	s.True(ok)
}

func (s *MaintenanceServiceSuite) TestCrudForEveryKind() {
	eq, err := s.service.AddEquipment(s.ctx, dto.EquipmentPayloadDTO{Name: "Forklift", SerialNumber: "FL-1"})
	s.Require().NoError(err)
	s.Equal("operational", eq.Status)
	s.Equal(100, eq.Health)

	eq, err = s.service.UpdateEquipment(s.ctx, eq.ID, dto.EquipmentPayloadDTO{Name: "Forklift B", SerialNumber: "FL-1", Department: "Logistics"})
	s.Require().NoError(err)
	s.Equal("Forklift B", eq.Name)

	tech, err := s.service.AddTechnician(s.ctx, dto.TechnicianPayloadDTO{Name: "Carol", TeamID: null.Int64From(10)})
	s.Require().NoError(err)
	_, err = s.service.UpdateTechnician(s.ctx, tech.ID, dto.TechnicianPayloadDTO{Name: "Carol K"})
	s.Require().NoError(err)

	wc, err := s.service.AddWorkCenter(s.ctx, dto.WorkCenterPayloadDTO{Name: "Paint", Code: "WC-2"})
	s.Require().NoError(err)
	s.Equal(85.0, wc.OEETarget)
	s.Equal(100.0, wc.CapacityTime)
	_, err = s.service.UpdateWorkCenter(s.ctx, wc.ID, dto.WorkCenterPayloadDTO{Name: "Paint", Code: "WC-2", OEETarget: 90})
	s.Require().NoError(err)

	cat, err := s.service.AddEquipmentCategory(s.ctx, dto.EquipmentCategoryPayloadDTO{Name: "Vehicles"})
	s.Require().NoError(err)
	_, err = s.service.UpdateEquipmentCategory(s.ctx, cat.ID, dto.EquipmentCategoryPayloadDTO{Name: "Trucks"})
	s.Require().NoError(err)

	_, err = s.service.UpdateTeam(s.ctx, 10, dto.TeamPayloadDTO{Name: "Mechanics", Leader: "Bob", MembersCount: 3})
	s.Require().NoError(err)

	req, err := s.service.UpdateRequest(s.ctx, 31, dto.MaintenanceRequestPayloadDTO{
		Subject: "Belt replaced", WorkCenterID: null.Int64From(40), Type: "Preventive", ScheduledDate: "2026-02-11",
	})
	s.Require().NoError(err)
	s.Equal(lifecycle.StageInProgress, req.Stage, "стадия сохраняется из снимка")
	s.False(req.EquipmentID.Valid)

	snap := s.store.Current()
	s.Len(snap.Equipment, 2)
	s.Len(snap.Technicians, 2)
	s.Len(snap.WorkCenters, 2)
	s.Len(snap.EquipmentCategories, 2)

	s.Require().NoError(s.service.DeleteEquipment(s.ctx, eq.ID))
	s.Require().NoError(s.service.DeleteTechnician(s.ctx, tech.ID))
	s.Require().NoError(s.service.DeleteWorkCenter(s.ctx, wc.ID))
	s.Require().NoError(s.service.DeleteEquipmentCategory(s.ctx, cat.ID))
	s.Require().NoError(s.service.DeleteRequest(s.ctx, 31))
	s.Require().NoError(s.service.DeleteTeam(s.ctx, 10))

	snap = s.store.Current()
	s.Len(snap.Equipment, 1)
	s.Len(snap.Technicians, 1)
	s.Len(snap.Requests, 1)
	s.Empty(snap.Teams)
}

func (s *MaintenanceServiceSuite) TestUpdateEquipmentKeepsStatusAndHealth() {
	s.srv.Seed(&entities.Snapshot{
		Equipment: []entities.Equipment{
			{ID: 7, Name: "Press", SerialNumber: "P-1", Location: "Hall A", Status: "scrapped", Health: 30},
		},
	})
	s.Require().NoError(s.store.Load(s.ctx))

	_, err := s.service.UpdateEquipment(s.ctx, 7, dto.EquipmentPayloadDTO{Name: "Press", SerialNumber: "P-1", Location: "Hall B"})
	s.Require().NoError(err)

	eq, ok := s.store.Current().EquipmentByID(7)
	s.Require().True(ok)
	s.Equal("Hall B", eq.Location)
	s.Equal("scrapped", eq.Status)
	s.Equal(30, eq.Health)
}

func (s *MaintenanceServiceSuite) TestUpdateRequestKeepsPriority() {
	_, err := s.service.UpdateRequest(s.ctx, 30, dto.MaintenanceRequestPayloadDTO{
		Subject: "Oil leak, gasket", EquipmentID: null.Int64From(1), Type: "Corrective", ScheduledDate: "2026-01-12",
	})
	s.Require().NoError(err)

	r, ok := s.store.Current().RequestByID(30)
	s.Require().True(ok)
	s.Equal("Oil leak, gasket", r.Subject)
	s.Equal("High", r.Priority)
	s.Equal(lifecycle.StageNew, r.Stage)
}

func (s *MaintenanceServiceSuite) TestDeleteMissingReturnsNotFound() {
	err := s.service.DeleteTeam(s.ctx, 404)
	s.ErrorIs(err, apperrors.ErrNotFound)

	var apiErr *apperrors.APIError
	s.Require().True(errors.As(err, &apiErr))
	s.Equal("Team not found", apiErr.Detail)
}

func TestMaintenanceServiceSuite(t *testing.T) {
	suite.Run(t, new(MaintenanceServiceSuite))
}
