package gearguard

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"gearguard/internal/entities"
	"gearguard/internal/integrations"
	"gearguard/pkg/constants"
)

const ProviderName = "http"

// Provider - клиент удалённого REST API обслуживания.
// Чтение выполняется без авторизации, запись - с bearer-токеном из TokenSource.
type Provider struct {
	httpClient *http.Client
	baseURL    string
	tokens     TokenSource
	logger     *zap.Logger
}

var _ integrations.DataProvider = (*Provider)(nil)

// New принимает готовый http.Client: таймаут задаётся снаружи, ноль - без таймаута.
func New(baseURL string, httpClient *http.Client, tokens TokenSource, logger *zap.Logger) *Provider {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Provider{
		httpClient: httpClient,
		baseURL:    baseURL,
		tokens:     tokens,
		logger:     logger.Named("gearguard_provider"),
	}
}

func (p *Provider) Name() string {
	return ProviderName
}

// fetchCollection получает и разбирает одну коллекцию.
func fetchCollection[T any](p *Provider, ctx context.Context, resource constants.Resource) ([]T, error) {
	rawData, err := p.do(ctx, http.MethodGet, resource.Path(), nil, false)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения коллекции %s: %w", resource, err)
	}

	items := []T{}
	if err := json.Unmarshal(rawData, &items); err != nil {
		return nil, fmt.Errorf("ошибка парсинга JSON для коллекции %s: %w", resource, err)
	}
	if items == nil {
		items = []T{}
	}
	p.logger.Debug("Коллекция получена",
		zap.String("resource", resource.String()),
		zap.Int("count", len(items)),
	)
	return items, nil
}

func (p *Provider) GetEquipment(ctx context.Context) ([]entities.Equipment, error) {
	return fetchCollection[entities.Equipment](p, ctx, constants.ResourceEquipment)
}

func (p *Provider) GetTeams(ctx context.Context) ([]entities.Team, error) {
	return fetchCollection[entities.Team](p, ctx, constants.ResourceTeams)
}

func (p *Provider) GetTechnicians(ctx context.Context) ([]entities.Technician, error) {
	return fetchCollection[entities.Technician](p, ctx, constants.ResourceTechnicians)
}

func (p *Provider) GetRequests(ctx context.Context) ([]entities.MaintenanceRequest, error) {
	return fetchCollection[entities.MaintenanceRequest](p, ctx, constants.ResourceRequests)
}

func (p *Provider) GetWorkCenters(ctx context.Context) ([]entities.WorkCenter, error) {
	return fetchCollection[entities.WorkCenter](p, ctx, constants.ResourceWorkCenters)
}

func (p *Provider) GetEquipmentCategories(ctx context.Context) ([]entities.EquipmentCategory, error) {
	return fetchCollection[entities.EquipmentCategory](p, ctx, constants.ResourceEquipmentCategories)
}
