package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"gearguard/internal/entities"
	"gearguard/internal/integrations/mock"
	"gearguard/internal/lifecycle"
	"gearguard/internal/services"
	"gearguard/internal/store"
	"gearguard/pkg/customvalidator"
	"gearguard/pkg/metrics"
	"gearguard/pkg/utils"
	"gearguard/pkg/websocket"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Body    json.RawMessage `json:"body"`
}

type RouterTestSuite struct {
	suite.Suite
	Echo    *echo.Echo
	Backend *mock.MockProvider
	Store   *store.Store
}

func (suite *RouterTestSuite) SetupTest() {
	nopLogger := zap.NewNop()
	appLoggers := &Loggers{
		Main:        nopLogger,
		Maintenance: nopLogger,
		Dashboard:   nopLogger,
		Report:      nopLogger,
	}

	e := echo.New()
	v := validator.New()
	suite.Require().NoError(customvalidator.RegisterCustomValidations(v))
	e.Validator = utils.NewValidator(v)

	backend := mock.NewMockProvider()
	backend.Seed(&entities.Snapshot{
		Equipment: []entities.Equipment{
			{ID: 1, Name: "CNC Machine 01", SerialNumber: "CNC-1", Department: "Production", Status: "operational", Health: 90,
				TeamID: null.Int64From(10), TechnicianID: null.Int64From(20)},
		},
		Teams:       []entities.Team{{ID: 10, Name: "Mechanics"}},
		Technicians: []entities.Technician{{ID: 20, Name: "Bob", TeamID: null.Int64From(10)}},
		Requests: []entities.MaintenanceRequest{
			{ID: 30, Subject: "Oil leak", EquipmentID: null.Int64From(1), Type: "Corrective", Stage: lifecycle.StageNew,
				ScheduledDate: "2026-01-10", Priority: "High", TechnicianID: null.Int64From(20)},
			{ID: 31, Subject: "Belt", EquipmentID: null.Int64From(1), Type: "Preventive", Stage: lifecycle.StageInProgress,
				ScheduledDate: "2026-02-10", Priority: "Low", TechnicianID: null.Int64From(20)},
		},
	})

	m := metrics.New()
	st := store.New(backend, nil, m, nopLogger)
	suite.Require().NoError(st.Load(context.Background()))

	maintenanceService := services.NewMaintenanceService(backend, st, v, m, nopLogger)
	dashboardService := services.NewDashboardService(st, nopLogger)
	reportService := services.NewReportService(st, nopLogger)

	InitRouter(e, maintenanceService, dashboardService, reportService, websocket.NewHub(nopLogger), m, appLoggers)

	suite.Echo = e
	suite.Backend = backend
	suite.Store = st
}

func (suite *RouterTestSuite) do(method, target, body string, headers map[string]string) (*httptest.ResponseRecorder, envelope) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	suite.Echo.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		_ = json.Unmarshal(rec.Body.Bytes(), &env)
	}
	return rec, env
}

func (suite *RouterTestSuite) requestStage(id int64) lifecycle.Stage {
	r, ok := suite.Store.Current().RequestByID(id)
	suite.Require().True(ok, "заявка %d должна быть в снимке", id)
	return r.Stage
}

func (suite *RouterTestSuite) TestSnapshot() {
	rec, env := suite.do(http.MethodGet, "/api/snapshot", "", nil)
	suite.Equal(http.StatusOK, rec.Code, rec.Body.String())
	suite.True(env.Status)

	var snap entities.Snapshot
	suite.Require().NoError(json.Unmarshal(env.Body, &snap))
	suite.Len(snap.Requests, 2)
	suite.Len(snap.Equipment, 1)
	suite.Equal(uint64(1), snap.Version)
}

func (suite *RouterTestSuite) TestCreateRequestReloadsSnapshot() {
	body := `{"subject": "Spindle noise", "equipment_id": 1, "type": "Corrective", "scheduled_date": "2026-03-01"}`
	rec, env := suite.do(http.MethodPost, "/api/requests", body, nil)
	suite.Equal(http.StatusCreated, rec.Code, rec.Body.String())
	suite.True(env.Status)

	snap := suite.Store.Current()
	suite.Len(snap.Requests, 3)
	suite.Equal(uint64(2), snap.Version)
}

func (suite *RouterTestSuite) TestCreateRequestValidation() {
	rec, env := suite.do(http.MethodPost, "/api/requests", `{"subject": "", "type": "Urgent"}`, nil)
	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.False(env.Status)
	suite.Len(suite.Store.Current().Requests, 2)
}

func (suite *RouterTestSuite) TestUpdateStage() {
	rec, _ := suite.do(http.MethodPut, "/api/requests/30/stage?stage=Repaired", "", nil)
	suite.Equal(http.StatusOK, rec.Code, rec.Body.String())
	suite.Equal(lifecycle.StageRepaired, suite.requestStage(30))

	rec, _ = suite.do(http.MethodPut, "/api/requests/30/stage?stage=Closed", "", nil)
	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.Equal(lifecycle.StageRepaired, suite.requestStage(30))

	rec, _ = suite.do(http.MethodPut, "/api/requests/999/stage?stage=New", "", nil)
	suite.Equal(http.StatusNotFound, rec.Code)
}

func (suite *RouterTestSuite) TestStepStage() {
	rec, _ := suite.do(http.MethodPost, "/api/requests/31/step", `{"direction": "backward"}`, nil)
	suite.Equal(http.StatusOK, rec.Code, rec.Body.String())
	suite.Equal(lifecycle.StageNew, suite.requestStage(31))

	rec, _ = suite.do(http.MethodPost, "/api/requests/31/step", `{"direction": "backward"}`, nil)
	suite.Equal(http.StatusConflict, rec.Code)
	suite.Equal(lifecycle.StageNew, suite.requestStage(31))
}

func (suite *RouterTestSuite) TestTechnicianLoad() {
	rec, env := suite.do(http.MethodGet, "/api/technicians/20/load", "", nil)
	suite.Equal(http.StatusOK, rec.Code, rec.Body.String())
	suite.Contains(string(env.Body), "50")

	rec, _ = suite.do(http.MethodGet, "/api/technicians/999/load", "", nil)
	suite.Equal(http.StatusNotFound, rec.Code)

	rec, _ = suite.do(http.MethodGet, "/api/technicians/load", "", nil)
	suite.Equal(http.StatusOK, rec.Code)
}

func (suite *RouterTestSuite) TestKanbanSortValidation() {
	rec, _ := suite.do(http.MethodGet, "/api/kanban?sort=priority", "", nil)
	suite.Equal(http.StatusOK, rec.Code)

	rec, _ = suite.do(http.MethodGet, "/api/kanban?sort=bogus", "", nil)
	suite.Equal(http.StatusBadRequest, rec.Code)
}

func (suite *RouterTestSuite) TestSessionHeader() {
	rec, _ := suite.do(http.MethodGet, "/api/teams", "", map[string]string{echo.HeaderAuthorization: "Token abc"})
	suite.Equal(http.StatusUnauthorized, rec.Code)

	rec, _ = suite.do(http.MethodGet, "/api/teams", "", map[string]string{
		echo.HeaderAuthorization: "Bearer abc",
		echo.HeaderXRequestID:    "req-42",
	})
	suite.Equal(http.StatusOK, rec.Code)
	suite.Equal("req-42", rec.Header().Get(echo.HeaderXRequestID))
}

func (suite *RouterTestSuite) TestPivotExport() {
	rec, _ := suite.do(http.MethodGet, "/api/reports/pivot?format=xlsx", "", nil)
	suite.Equal(http.StatusOK, rec.Code)
	suite.Contains(rec.Header().Get("Content-Disposition"), ".xlsx")
	suite.NotEmpty(rec.Body.Bytes())
}

func (suite *RouterTestSuite) TestMetrics() {
	rec, _ := suite.do(http.MethodGet, "/metrics", "", nil)
	suite.Equal(http.StatusOK, rec.Code)
	suite.Contains(rec.Body.String(), "gearguard_snapshot_version")
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func TestRefreshBumpsVersion(t *testing.T) {
	s := new(RouterTestSuite)
	s.SetT(t)
	s.SetupTest()

	rec, env := s.do(http.MethodPost, "/api/refresh", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Body), `"version":2`)
}
