package mock

import (
	"encoding/json"
	"fmt"
	"net/http"

	apperrors "gearguard/pkg/errors"
)

// table - типизированная коллекция с автоинкрементом, как таблица на сервере.
type table[T any] struct {
	rows     []T
	id       func(*T) *int64
	defaults func(*T)
	notFound string
}

func (t *table[T]) list() []T {
	out := make([]T, len(t.rows))
	copy(out, t.rows)
	return out
}

func (t *table[T]) find(id int64) (*T, int) {
	for i := range t.rows {
		if *t.id(&t.rows[i]) == id {
			return &t.rows[i], i
		}
	}
	return nil, -1
}

func (t *table[T]) decode(payload []byte) (T, error) {
	var row T
	if t.defaults != nil {
		t.defaults(&row)
	}
	if err := json.Unmarshal(payload, &row); err != nil {
		return row, &apperrors.APIError{StatusCode: http.StatusUnprocessableEntity, Detail: err.Error()}
	}
	return row, nil
}

func (t *table[T]) create(payload []byte, id int64) (interface{}, error) {
	row, err := t.decode(payload)
	if err != nil {
		return nil, err
	}
	*t.id(&row) = id
	t.rows = append(t.rows, row)
	return row, nil
}

func (t *table[T]) update(id int64, payload []byte) (interface{}, error) {
	existing, _ := t.find(id)
	if existing == nil {
		return nil, t.missing(id)
	}
	// Как и сервер, меняем только пришедшие поля.
	row := *existing
	if err := json.Unmarshal(payload, &row); err != nil {
		return nil, &apperrors.APIError{StatusCode: http.StatusUnprocessableEntity, Detail: err.Error()}
	}
	*t.id(&row) = id
	*existing = row
	return row, nil
}

func (t *table[T]) remove(id int64) error {
	_, i := t.find(id)
	if i < 0 {
		return t.missing(id)
	}
	t.rows = append(t.rows[:i], t.rows[i+1:]...)
	return nil
}

func (t *table[T]) seed(rows []T) {
	t.rows = append([]T(nil), rows...)
}

func (t *table[T]) maxID() int64 {
	var max int64
	for i := range t.rows {
		if id := *t.id(&t.rows[i]); id > max {
			max = id
		}
	}
	return max
}

func (t *table[T]) missing(id int64) error {
	return &apperrors.APIError{
		StatusCode: http.StatusNotFound,
		Detail:     t.notFound,
		Endpoint:   fmt.Sprintf("#%d", id),
	}
}

// collection стирает тип строки для диспетчеризации по ресурсу.
type collection interface {
	create(payload []byte, id int64) (interface{}, error)
	update(id int64, payload []byte) (interface{}, error)
	remove(id int64) error
	maxID() int64
}
