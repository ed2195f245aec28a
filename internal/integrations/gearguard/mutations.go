package gearguard

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"gearguard/internal/entities"
	"gearguard/internal/lifecycle"
	"gearguard/pkg/constants"
)

func (p *Provider) Create(ctx context.Context, resource constants.Resource, payload interface{}, out interface{}) error {
	raw, err := p.do(ctx, http.MethodPost, resource.Path(), payload, true)
	if err != nil {
		return fmt.Errorf("ошибка создания записи в %s: %w", resource, err)
	}
	p.decodeInto(raw, out, resource)
	return nil
}

func (p *Provider) Update(ctx context.Context, resource constants.Resource, id int64, payload interface{}, out interface{}) error {
	raw, err := p.do(ctx, http.MethodPut, itemPath(resource, id), payload, true)
	if err != nil {
		return fmt.Errorf("ошибка обновления записи %d в %s: %w", id, resource, err)
	}
	p.decodeInto(raw, out, resource)
	return nil
}

func (p *Provider) Delete(ctx context.Context, resource constants.Resource, id int64) error {
	if _, err := p.do(ctx, http.MethodDelete, itemPath(resource, id), nil, true); err != nil {
		return fmt.Errorf("ошибка удаления записи %d из %s: %w", id, resource, err)
	}
	return nil
}

// UpdateRequestStage отправляет только стадию, в query-параметре stage.
func (p *Provider) UpdateRequestStage(ctx context.Context, id int64, stage lifecycle.Stage) (*entities.MaintenanceRequest, error) {
	endpoint := itemPath(constants.ResourceRequests, id) + "/stage?" + url.Values{"stage": {stage.String()}}.Encode()
	raw, err := p.do(ctx, http.MethodPut, endpoint, nil, true)
	if err != nil {
		return nil, fmt.Errorf("ошибка смены стадии заявки %d: %w", id, err)
	}
	var updated entities.MaintenanceRequest
	p.decodeInto(raw, &updated, constants.ResourceRequests)
	return &updated, nil
}

func itemPath(resource constants.Resource, id int64) string {
	return fmt.Sprintf("%s/%d", resource.Path(), id)
}

// decodeInto разбирает ответ на запись. Ответ 2xx значит, что сервер запись
// уже принял, поэтому нечитаемое тело только логируется.
func (p *Provider) decodeInto(raw []byte, out interface{}, resource constants.Resource) {
	if out == nil || len(raw) == 0 {
		return
	}
	if err := json.Unmarshal(raw, out); err != nil {
		p.logger.Warn("Ответ на запись не разобран, запись считается выполненной",
			zap.String("resource", resource.String()),
			zap.Error(err),
		)
	}
}
