package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIError_Is(t *testing.T) {
	notFound := &APIError{Method: http.MethodPut, Endpoint: "/requests/9", StatusCode: http.StatusNotFound, Detail: "Request not found"}

	assert.True(t, errors.Is(notFound, ErrNotFound))
	assert.False(t, errors.Is(notFound, ErrUnauthorized))
	assert.Contains(t, notFound.Error(), "Request not found")

	wrapped := fmt.Errorf("обновление заявки: %w", &APIError{StatusCode: http.StatusUnauthorized})
	assert.True(t, errors.Is(wrapped, ErrUnauthorized))
}

func TestStatusCode(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"api 4xx проходит как есть", &APIError{StatusCode: http.StatusUnprocessableEntity}, http.StatusUnprocessableEntity},
		{"api 5xx становится 502", &APIError{StatusCode: http.StatusInternalServerError}, http.StatusBadGateway},
		{"граница стадий", fmt.Errorf("шаг: %w", ErrStageBoundary), http.StatusConflict},
		{"неверная стадия", ErrInvalidStage, http.StatusBadRequest},
		{"не найдено", ErrNotFound, http.StatusNotFound},
		{"ввод", NewInvalidInputError("поле %s", "x"), http.StatusBadRequest},
		{"нет учётных данных", ErrMissingCredentials, http.StatusUnauthorized},
		{"прочее", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StatusCode(tc.err))
		})
	}
}

func TestHttpError_Unwrap(t *testing.T) {
	httpErr := NewHttpError(http.StatusBadRequest, "плохо", ErrBadRequest, nil)
	assert.ErrorIs(t, httpErr, ErrBadRequest)
	assert.Equal(t, "плохо: неверный запрос", httpErr.Error())
}
