// Package store владеет снимком шести коллекций и заменяет его только целиком.
package store

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"gearguard/internal/entities"
	"gearguard/internal/events"
	"gearguard/internal/integrations"
	"gearguard/pkg/eventbus"
	"gearguard/pkg/metrics"
)

type Store struct {
	fetcher integrations.Fetcher
	bus     *eventbus.Bus
	metrics *metrics.Metrics
	logger  *zap.Logger

	mu      sync.RWMutex
	current *entities.Snapshot
	version uint64
	// applied - номер загрузки, результат которой сейчас опубликован.
	applied uint64

	started  atomic.Uint64
	inflight atomic.Int32
	now      func() time.Time
}

// New: bus и m могут быть nil.
func New(fetcher integrations.Fetcher, bus *eventbus.Bus, m *metrics.Metrics, logger *zap.Logger) *Store {
	return &Store{
		fetcher: fetcher,
		bus:     bus,
		metrics: m,
		logger:  logger.Named("store"),
		current: entities.EmptySnapshot(),
		now:     time.Now,
	}
}

// Current возвращает опубликованный снимок. Снимок нельзя изменять.
func (s *Store) Current() *entities.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Loading истинно, пока хотя бы одна загрузка не завершилась.
func (s *Store) Loading() bool {
	return s.inflight.Load() > 0
}

func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

func (s *Store) LoadedAt() time.Time {
	return s.Current().LoadedAt
}

// Load читает все шесть коллекций параллельно. Ошибка любой из них отменяет
// остальные, снимок при этом не меняется. Ошибка логируется и возвращается.
//
// Из перекрывающихся загрузок публикуется результат той, что стартовала позже:
// загрузка, начатая раньше уже опубликованной, отбрасывается без ошибки.
func (s *Store) Load(ctx context.Context) error {
	ticket := s.started.Add(1)
	s.inflight.Add(1)
	started := s.now()
	s.metrics.LoadStarted()

	snapshot, err := s.fetchAll(ctx)
	if err != nil {
		s.inflight.Add(-1)
		s.metrics.LoadFinished(started, err, 0)
		s.logger.Error("Не удалось загрузить данные, остаётся прежний снимок",
			zap.Uint64("version", s.Version()),
			zap.Error(err),
		)
		s.publish(ctx, events.SnapshotLoadFailedEvent{Err: err})
		return fmt.Errorf("загрузка снимка: %w", err)
	}

	s.mu.Lock()
	if ticket < s.applied {
		version := s.version
		s.mu.Unlock()
		s.inflight.Add(-1)
		s.metrics.LoadFinished(started, nil, version)
		s.logger.Debug("Загрузка устарела, снимок не заменён",
			zap.Uint64("ticket", ticket),
			zap.Uint64("version", version),
		)
		return nil
	}
	s.applied = ticket
	s.version++
	snapshot.Version = s.version
	snapshot.LoadedAt = s.now()
	s.current = snapshot
	s.mu.Unlock()
	s.inflight.Add(-1)

	s.metrics.LoadFinished(started, nil, snapshot.Version)
	s.logger.Debug("Снимок обновлён",
		zap.Uint64("version", snapshot.Version),
		zap.Int("equipment", len(snapshot.Equipment)),
		zap.Int("requests", len(snapshot.Requests)),
		zap.Duration("took", s.now().Sub(started)),
	)
	s.publish(ctx, events.SnapshotReloadedEvent{Snapshot: snapshot})
	return nil
}

func (s *Store) fetchAll(ctx context.Context) (*entities.Snapshot, error) {
	snapshot := &entities.Snapshot{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) { snapshot.Equipment, err = s.fetcher.GetEquipment(gctx); return })
	g.Go(func() (err error) { snapshot.Teams, err = s.fetcher.GetTeams(gctx); return })
	g.Go(func() (err error) { snapshot.Technicians, err = s.fetcher.GetTechnicians(gctx); return })
	g.Go(func() (err error) { snapshot.Requests, err = s.fetcher.GetRequests(gctx); return })
	g.Go(func() (err error) { snapshot.WorkCenters, err = s.fetcher.GetWorkCenters(gctx); return })
	g.Go(func() (err error) {
		snapshot.EquipmentCategories, err = s.fetcher.GetEquipmentCategories(gctx)
		return
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snapshot, nil
}

func (s *Store) publish(ctx context.Context, event eventbus.Event) {
	if s.bus == nil {
		return
	}
	s.bus.Publish(ctx, event)
}
