package services

import (
	"go.uber.org/zap"

	"gearguard/internal/analytics"
	"gearguard/internal/dto"
	"gearguard/internal/entities"
)

type ReportServiceInterface interface {
	Pivot() dto.PivotReportDTO
	TeamRequestCounts() []dto.TeamRequestCountDTO
	RequestRows() ([]entities.MaintenanceRequest, *entities.Snapshot)
}

type reportService struct {
	store  SnapshotReader
	logger *zap.Logger
}

func NewReportService(store SnapshotReader, logger *zap.Logger) ReportServiceInterface {
	return &reportService{store: store, logger: logger.Named("report")}
}

func (s *reportService) Pivot() dto.PivotReportDTO {
	return analytics.Pivot(s.store.Current())
}

func (s *reportService) TeamRequestCounts() []dto.TeamRequestCountDTO {
	return analytics.TeamRequestCounts(s.store.Current())
}

// RequestRows отдаёт заявки вместе со снимком, из которого они взяты,
// чтобы выгрузка подставляла имена из того же снимка.
func (s *reportService) RequestRows() ([]entities.MaintenanceRequest, *entities.Snapshot) {
	snap := s.store.Current()
	return snap.Requests, snap
}
