package events

import "gearguard/internal/entities"

const (
	SnapshotReloaded   = "snapshot.reloaded"
	SnapshotLoadFailed = "snapshot.load_failed"
)

// SnapshotReloadedEvent - опубликован новый снимок.
type SnapshotReloadedEvent struct {
	Snapshot *entities.Snapshot
}

func (e SnapshotReloadedEvent) Name() string {
	return SnapshotReloaded
}

// SnapshotLoadFailedEvent - загрузка не удалась, прежний снимок остался.
type SnapshotLoadFailedEvent struct {
	Err error
}

func (e SnapshotLoadFailedEvent) Name() string {
	return SnapshotLoadFailed
}
