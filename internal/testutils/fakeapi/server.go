// Package fakeapi поднимает HTTP-сервер, повторяющий удалённый API обслуживания,
// поверх mock.MockProvider.
package fakeapi

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"

	"gearguard/internal/entities"
	"gearguard/internal/integrations/mock"
	"gearguard/internal/lifecycle"
	"gearguard/pkg/constants"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"
)

// Call - запись об одном запросе к серверу.
type Call struct {
	Method        string
	Path          string
	Query         string
	Authorization string
	RequestID     string
}

type failure struct {
	method string
	path   string
	status int
	detail string
}

type Server struct {
	*httptest.Server
	Backend *mock.MockProvider

	// Token - ожидаемый bearer для записи; пустой - не проверяется.
	Token    string
	Username string
	Password string

	mu       sync.Mutex
	calls    []Call
	failures []failure
	gates    map[string]chan struct{}
	logins   int
}

func New(t *testing.T) *Server {
	t.Helper()

	s := &Server{
		Backend: mock.NewMockProvider(),
		gates:   make(map[string]chan struct{}),
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(s.record)

	api := e.Group("/api")
	api.POST("/auth/login", s.login)
	api.GET("/:resource", s.list)
	api.POST("/:resource", s.create, s.auth)
	api.PUT("/:resource/:id", s.update, s.auth)
	api.DELETE("/:resource/:id", s.remove, s.auth)
	api.PUT("/requests/:id/stage", s.stage, s.auth)

	s.Server = httptest.NewServer(e)
	t.Cleanup(s.Close)
	return s
}

// BaseURL - адрес, который передаётся клиенту как GEARGUARD_API_URL.
func (s *Server) BaseURL() string {
	return s.URL + "/api"
}

func (s *Server) Seed(snapshot *entities.Snapshot) {
	s.Backend.Seed(snapshot)
}

// FailNext заставляет следующий запрос method+path вернуть status с detail.
func (s *Server) FailNext(method, path string, status int, detail string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = append(s.failures, failure{method: method, path: path, status: status, detail: detail})
}

// Hold задерживает GET коллекции до вызова release.
func (s *Server) Hold(resource constants.Resource) (release func()) {
	gate := make(chan struct{})
	s.mu.Lock()
	s.gates[resource.String()] = gate
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.gates, resource.String())
			s.mu.Unlock()
			close(gate)
		})
	}
}

func (s *Server) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Call(nil), s.calls...)
}

// CallsTo считает запросы с указанным методом и путём.
func (s *Server) CallsTo(method, path string) int {
	n := 0
	for _, c := range s.Calls() {
		if c.Method == method && c.Path == path {
			n++
		}
	}
	return n
}

func (s *Server) Logins() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.logins
}

func (s *Server) record(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		s.mu.Lock()
		s.calls = append(s.calls, Call{
			Method:        req.Method,
			Path:          req.URL.Path,
			Query:         req.URL.RawQuery,
			Authorization: req.Header.Get("Authorization"),
			RequestID:     req.Header.Get("X-Request-ID"),
		})
		var injected *failure
		for i, f := range s.failures {
			if f.method == req.Method && f.path == req.URL.Path {
				injected = &f
				s.failures = append(s.failures[:i], s.failures[i+1:]...)
				break
			}
		}
		s.mu.Unlock()

		if injected != nil {
			return c.JSON(injected.status, map[string]string{"detail": injected.detail})
		}
		return next(c)
	}
}

func (s *Server) auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if s.Token == "" {
			return next(c)
		}
		if utils.ExtractBearer(c.Request().Header.Get("Authorization")) != s.Token {
			return c.JSON(http.StatusUnauthorized, map[string]string{"detail": "Could not validate credentials"})
		}
		return next(c)
	}
}

func (s *Server) login(c echo.Context) error {
	if c.FormValue("username") != s.Username || c.FormValue("password") != s.Password {
		return c.JSON(http.StatusUnauthorized, map[string]string{"detail": "Invalid Password"})
	}
	s.mu.Lock()
	s.logins++
	s.mu.Unlock()
	return c.JSON(http.StatusOK, map[string]string{
		"access_token": s.Token,
		"token_type":   "bearer",
		"username":     s.Username,
		"role":         "admin",
	})
}

func (s *Server) list(c echo.Context) error {
	resource := constants.Resource(c.Param("resource"))

	s.mu.Lock()
	gate := s.gates[resource.String()]
	s.mu.Unlock()
	if gate != nil {
		select {
		case <-gate:
		case <-c.Request().Context().Done():
			return c.Request().Context().Err()
		}
	}

	ctx := context.Background()
	var (
		items interface{}
		err   error
	)
	switch resource {
	case constants.ResourceEquipment:
		items, err = s.Backend.GetEquipment(ctx)
	case constants.ResourceTeams:
		items, err = s.Backend.GetTeams(ctx)
	case constants.ResourceTechnicians:
		items, err = s.Backend.GetTechnicians(ctx)
	case constants.ResourceRequests:
		items, err = s.Backend.GetRequests(ctx)
	case constants.ResourceWorkCenters:
		items, err = s.Backend.GetWorkCenters(ctx)
	case constants.ResourceEquipmentCategories:
		items, err = s.Backend.GetEquipmentCategories(ctx)
	default:
		return c.JSON(http.StatusNotFound, map[string]string{"detail": "Not Found"})
	}
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (s *Server) create(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return err
	}
	var out map[string]interface{}
	if err := s.Backend.Create(context.Background(), constants.Resource(c.Param("resource")), rawJSON(body), &out); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"detail": "id must be an integer"})
	}
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return err
	}
	var out map[string]interface{}
	if err := s.Backend.Update(context.Background(), constants.Resource(c.Param("resource")), id, rawJSON(body), &out); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) remove(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"detail": "id must be an integer"})
	}
	if err := s.Backend.Delete(context.Background(), constants.Resource(c.Param("resource")), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) stage(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"detail": "id must be an integer"})
	}
	stage := c.QueryParam("stage")
	if strings.TrimSpace(stage) == "" {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"detail": "stage is required"})
	}
	updated, err := s.Backend.UpdateRequestStage(context.Background(), id, lifecycle.Stage(stage))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// rawJSON передаёт тело запроса в backend без повторной сериализации.
type rawJSON []byte

func (r rawJSON) MarshalJSON() ([]byte, error) {
	if len(r) == 0 {
		return []byte("null"), nil
	}
	return r, nil
}

func writeError(c echo.Context, err error) error {
	var apiErr *apperrors.APIError
	if errors.As(err, &apiErr) {
		return c.JSON(apiErr.StatusCode, map[string]string{"detail": apiErr.Detail})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"detail": err.Error()})
}
