package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "gearguard/pkg/errors"
)

func respond(t *testing.T, err error) (int, map[string]interface{}) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	ctx := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, ErrorResponse(ctx, err, zap.NewNop()))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestErrorResponse_HttpError(t *testing.T) {
	code, body := respond(t, apperrors.NewHttpError(http.StatusTeapot, "чайник", errors.New("x"), nil))
	assert.Equal(t, http.StatusTeapot, code)
	assert.Equal(t, false, body["status"])
	assert.Equal(t, "чайник", body["message"])
}

func TestErrorResponse_Validation(t *testing.T) {
	type payload struct {
		Name string `validate:"required"`
	}
	err := validator.New().Struct(payload{})

	code, body := respond(t, err)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, body["message"], "Name")
}

func TestErrorResponse_APIErrorPassthrough(t *testing.T) {
	apiErr := &apperrors.APIError{Method: http.MethodDelete, Endpoint: "/teams/3", StatusCode: http.StatusNotFound, Detail: "Team not found"}
	code, body := respond(t, fmt.Errorf("удаление: %w", apiErr))
	assert.Equal(t, http.StatusNotFound, code)
	assert.Contains(t, body["message"], "Team not found")
}

func TestErrorResponse_Unexpected(t *testing.T) {
	code, body := respond(t, errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "Внутренняя ошибка сервера", body["message"])
}

func TestParseIDParam(t *testing.T) {
	e := echo.New()
	ctx := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	ctx.SetParamNames("id")
	ctx.SetParamValues("42")

	id, err := ParseIDParam(ctx, "id")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	ctx.SetParamValues("abc")
	_, err = ParseIDParam(ctx, "id")
	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}
