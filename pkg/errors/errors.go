package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// Авторизация
	ErrUnauthorized       = fmt.Errorf("неавторизован")
	ErrMissingCredentials = fmt.Errorf("не заданы учётные данные для API")
	ErrInvalidToken       = fmt.Errorf("недопустимый токен")

	// Жизненный цикл заявок
	ErrInvalidStage    = fmt.Errorf("недопустимая стадия заявки")
	ErrStageBoundary   = fmt.Errorf("заявка уже на крайней стадии")
	ErrAmbiguousTarget = fmt.Errorf("заявка должна ссылаться либо на оборудование, либо на рабочий центр")

	// Общие
	ErrNotFound   = fmt.Errorf("запись не найдена")
	ErrBadRequest = fmt.Errorf("неверный запрос")
)

// Кастомные типы ошибок
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}

// HttpError отдаётся UI-клиентам через utils.ErrorResponse.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Context map[string]interface{}
	Details interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, ctx map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Context: ctx}
}

// APIError - ответ удалённого API со статусом вне 2xx.
type APIError struct {
	Method     string
	Endpoint   string
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("API %s %s вернул статус %d: %s", e.Method, e.Endpoint, e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("API %s %s вернул статус %d", e.Method, e.Endpoint, e.StatusCode)
}

// Is сопоставляет статусы удалённого API с общими sentinel-ошибками.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
	case ErrBadRequest:
		return e.StatusCode == http.StatusBadRequest || e.StatusCode == http.StatusUnprocessableEntity
	}
	return false
}

// StatusCode подбирает HTTP-статус для ответа UI по цепочке ошибок.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
			return apiErr.StatusCode
		}
		return http.StatusBadGateway
	}
	var inputErr *InvalidInputError
	switch {
	case errors.As(err, &inputErr),
		errors.Is(err, ErrBadRequest),
		errors.Is(err, ErrInvalidStage),
		errors.Is(err, ErrAmbiguousTarget):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrStageBoundary):
		return http.StatusConflict
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrMissingCredentials), errors.Is(err, ErrInvalidToken):
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}
