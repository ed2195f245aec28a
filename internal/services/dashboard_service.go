package services

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"gearguard/internal/analytics"
	"gearguard/internal/dto"
	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"
)

// SnapshotReader - доступ на чтение к хранилищу снимка.
type SnapshotReader interface {
	Current() *entities.Snapshot
	Loading() bool
}

type DashboardServiceInterface interface {
	Snapshot() *entities.Snapshot
	Dashboard(search string) dto.DashboardDTO
	Kanban(order analytics.SortOrder) []dto.KanbanColumnDTO
	CalendarDay(day time.Time) dto.CalendarDayDTO
	CalendarMonth(year int, month time.Month) []dto.CalendarDayDTO
	EquipmentRequests(equipmentID int64) dto.EquipmentRequestsDTO
	SimilarEquipment(equipmentID int64) []dto.SimilarEquipmentDTO
	TechnicianLoad(technicianID int64) (*dto.TechnicianLoadDTO, error)
	LoadBoard() []dto.TechnicianLoadDTO
}

// DashboardService собирает представления из одного снимка за вызов,
// поэтому все цифры ответа согласованы между собой.
type DashboardService struct {
	store  SnapshotReader
	now    func() time.Time
	logger *zap.Logger
}

func NewDashboardService(store SnapshotReader, logger *zap.Logger) *DashboardService {
	return &DashboardService{store: store, now: time.Now, logger: logger.Named("dashboard")}
}

func (s *DashboardService) Snapshot() *entities.Snapshot {
	return s.store.Current()
}

func (s *DashboardService) Dashboard(search string) dto.DashboardDTO {
	snap := s.store.Current()
	now := s.now()

	requests := analytics.FilterRequests(snap, snap.Requests, search)
	return dto.DashboardDTO{
		Stats:          analytics.Stats(snap, now, search),
		TechnicianLoad: analytics.LoadBoard(snap),
		Requests:       analytics.RequestCards(snap, requests, now),
		Loading:        s.store.Loading(),
		Version:        snap.Version,
		LoadedAt:       snap.LoadedAt,
	}
}

func (s *DashboardService) Kanban(order analytics.SortOrder) []dto.KanbanColumnDTO {
	return analytics.Kanban(s.store.Current(), order, s.now())
}

func (s *DashboardService) CalendarDay(day time.Time) dto.CalendarDayDTO {
	return analytics.CalendarDay(s.store.Current(), day, s.now())
}

func (s *DashboardService) CalendarMonth(year int, month time.Month) []dto.CalendarDayDTO {
	return analytics.CalendarMonth(s.store.Current(), year, month, s.now())
}

func (s *DashboardService) EquipmentRequests(equipmentID int64) dto.EquipmentRequestsDTO {
	snap := s.store.Current()
	return dto.EquipmentRequestsDTO{
		EquipmentID: equipmentID,
		OpenCount:   analytics.OpenRequestCount(snap, equipmentID),
		Requests:    analytics.RequestCards(snap, analytics.EquipmentRequests(snap, equipmentID), s.now()),
	}
}

func (s *DashboardService) SimilarEquipment(equipmentID int64) []dto.SimilarEquipmentDTO {
	matches := analytics.SimilarEquipment(s.store.Current(), equipmentID)
	out := make([]dto.SimilarEquipmentDTO, 0, len(matches))
	for _, m := range matches {
		out = append(out, dto.SimilarEquipmentDTO{
			ID:         m.Equipment.ID,
			Name:       m.Equipment.Name,
			Department: m.Equipment.Department,
			Reason:     m.Reason,
		})
	}
	return out
}

func (s *DashboardService) TechnicianLoad(technicianID int64) (*dto.TechnicianLoadDTO, error) {
	for _, row := range analytics.LoadBoard(s.store.Current()) {
		if row.TechnicianID == technicianID {
			return &row, nil
		}
	}
	return nil, fmt.Errorf("%w: техник %d", apperrors.ErrNotFound, technicianID)
}

func (s *DashboardService) LoadBoard() []dto.TechnicianLoadDTO {
	return analytics.LoadBoard(s.store.Current())
}
