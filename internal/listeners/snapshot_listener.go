package listeners

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"gearguard/internal/entities"
	"gearguard/internal/events"
	"gearguard/internal/services"
	"gearguard/pkg/eventbus"
)

// SnapshotListener рассылает UI-клиентам уведомления о новых версиях снимка.
// Серия перезагрузок внутри окна window схлопывается в одно сообщение
// о последней версии.
type SnapshotListener struct {
	wsNotificationService services.WebSocketNotificationServiceInterface
	window                time.Duration
	logger                *zap.Logger

	mu      sync.Mutex
	pending *entities.Snapshot
	timer   *time.Timer
}

func NewSnapshotListener(
	wsNotificationService services.WebSocketNotificationServiceInterface,
	window time.Duration,
	logger *zap.Logger,
) *SnapshotListener {
	return &SnapshotListener{
		wsNotificationService: wsNotificationService,
		window:                window,
		logger:                logger,
	}
}

func (l *SnapshotListener) Register(bus *eventbus.Bus) {
	bus.Subscribe(events.SnapshotReloaded, l.handleReloaded)
	bus.Subscribe(events.SnapshotLoadFailed, l.handleLoadFailed)
	l.logger.Info("SnapshotListener подписан на события снимка")
}

func (l *SnapshotListener) handleReloaded(_ context.Context, event eventbus.Event) error {
	e, ok := event.(events.SnapshotReloadedEvent)
	if !ok || e.Snapshot == nil {
		return nil
	}
	if l.window <= 0 {
		return l.send(e.Snapshot)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.pending == nil || e.Snapshot.Version > l.pending.Version {
		l.pending = e.Snapshot
	}
	if l.timer == nil {
		l.timer = time.AfterFunc(l.window, l.flush)
	}
	return nil
}

func (l *SnapshotListener) flush() {
	l.mu.Lock()
	snap := l.pending
	l.pending = nil
	l.timer = nil
	l.mu.Unlock()

	if snap == nil {
		return
	}
	if err := l.send(snap); err != nil {
		l.logger.Error("Не удалось разослать уведомление о снимке", zap.Error(err))
	}
}

func (l *SnapshotListener) send(snap *entities.Snapshot) error {
	return l.wsNotificationService.SnapshotReloaded(snap)
}

func (l *SnapshotListener) handleLoadFailed(_ context.Context, event eventbus.Event) error {
	e, ok := event.(events.SnapshotLoadFailedEvent)
	if !ok || e.Err == nil {
		return nil
	}
	return l.wsNotificationService.LoadFailed(e.Err)
}
