package store

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"gearguard/internal/entities"
	"gearguard/internal/events"
	"gearguard/internal/integrations/mock"
	"gearguard/internal/lifecycle"
	"gearguard/pkg/eventbus"
	"gearguard/pkg/metrics"
)

// gatedFetcher задерживает вызов GetTeams с номером gateCall до закрытия gate.
type gatedFetcher struct {
	*mock.MockProvider
	gateCall int32
	calls    atomic.Int32
	gate     chan struct{}
	started  chan struct{}
}

func newGatedFetcher(backend *mock.MockProvider, gateCall int32) *gatedFetcher {
	return &gatedFetcher{
		MockProvider: backend,
		gateCall:     gateCall,
		gate:         make(chan struct{}),
		started:      make(chan struct{}, 1),
	}
}

func (f *gatedFetcher) GetTeams(ctx context.Context) ([]entities.Team, error) {
	if f.calls.Add(1) == f.gateCall {
		f.started <- struct{}{}
		select {
		case <-f.gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return f.MockProvider.GetTeams(ctx)
}

type StoreTestSuite struct {
	suite.Suite
	backend *mock.MockProvider
	bus     *eventbus.Bus
	store   *Store
}

func (s *StoreTestSuite) SetupTest() {
	s.backend = mock.NewMockProvider()
	s.backend.Seed(&entities.Snapshot{
		Equipment: []entities.Equipment{{ID: 1, Name: "CNC Machine 01", Health: 80}},
		Teams:     []entities.Team{{ID: 2, Name: "Mechanics"}},
		Technicians: []entities.Technician{
			{ID: 3, Name: "Bob", TeamID: null.Int64From(2)},
		},
		Requests: []entities.MaintenanceRequest{
			{ID: 4, Subject: "Oil leak", EquipmentID: null.Int64From(1), Stage: lifecycle.StageNew},
		},
		WorkCenters:         []entities.WorkCenter{{ID: 5, Name: "Assembly"}},
		EquipmentCategories: []entities.EquipmentCategory{{ID: 6, Name: "Machines"}},
	})
	s.bus = eventbus.New(zap.NewNop())
	s.store = New(s.backend, s.bus, metrics.New(), zap.NewNop())
}

func (s *StoreTestSuite) TestInitialStateIsEmpty() {
	snap := s.store.Current()
	s.Require().NotNil(snap)
	s.Empty(snap.Equipment)
	s.NotNil(snap.Requests)
	s.False(s.store.Loading())
	s.Zero(s.store.Version())
}

func (s *StoreTestSuite) TestLoadReplacesAllCollections() {
	s.Require().NoError(s.store.Load(context.Background()))

	snap := s.store.Current()
	s.Len(snap.Equipment, 1)
	s.Len(snap.Teams, 1)
	s.Len(snap.Technicians, 1)
	s.Len(snap.Requests, 1)
	s.Len(snap.WorkCenters, 1)
	s.Len(snap.EquipmentCategories, 1)
	s.Equal(uint64(1), snap.Version)
	s.False(snap.LoadedAt.IsZero())
	s.False(s.store.Loading())
}

func (s *StoreTestSuite) TestFailedLoadKeepsPreviousSnapshot() {
	s.Require().NoError(s.store.Load(context.Background()))
	before := s.store.Current()

	boom := errors.New("connection refused")
	s.backend.FailReads = boom
	err := s.store.Load(context.Background())

	s.ErrorIs(err, boom)
	s.Same(before, s.store.Current(), "снимок не должен меняться ни частично, ни целиком")
	s.Equal(uint64(1), s.store.Version())
	s.False(s.store.Loading())
}

func (s *StoreTestSuite) TestLoadPublishesEvents() {
	got := make(chan eventbus.Event, 2)
	s.bus.Subscribe(events.SnapshotReloaded, func(_ context.Context, e eventbus.Event) error {
		got <- e
		return nil
	})
	s.bus.Subscribe(events.SnapshotLoadFailed, func(_ context.Context, e eventbus.Event) error {
		got <- e
		return nil
	})

	s.Require().NoError(s.store.Load(context.Background()))
	s.backend.FailReads = errors.New("down")
	s.Require().Error(s.store.Load(context.Background()))
	s.bus.Wait()

	s.Require().Len(got, 2)
	names := map[string]bool{}
	for len(got) > 0 {
		names[(<-got).Name()] = true
	}
	s.True(names[events.SnapshotReloaded])
	s.True(names[events.SnapshotLoadFailed])
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func TestStore_StaleDataVisibleWhileLoading(t *testing.T) {
	backend := mock.NewMockProvider()
	backend.Seed(&entities.Snapshot{Teams: []entities.Team{{ID: 1, Name: "Mechanics"}}})

	fetcher := newGatedFetcher(backend, 2)
	st := New(fetcher, nil, nil, zap.NewNop())

	require.NoError(t, st.Load(context.Background()))
	first := st.Current()

	backend.Seed(&entities.Snapshot{Teams: []entities.Team{{ID: 1, Name: "Mechanics"}, {ID: 2, Name: "Electricians"}}})

	done := make(chan error, 1)
	go func() { done <- st.Load(context.Background()) }()

	<-fetcher.started
	assert.True(t, st.Loading())
	assert.Same(t, first, st.Current())
	assert.Len(t, st.Current().Teams, 1)

	close(fetcher.gate)
	require.NoError(t, <-done)
	assert.False(t, st.Loading())
	assert.Len(t, st.Current().Teams, 2)
	assert.Equal(t, uint64(2), st.Version())
}

func TestStore_CanceledContextLeavesSnapshot(t *testing.T) {
	backend := mock.NewMockProvider()
	backend.Seed(&entities.Snapshot{Teams: []entities.Team{{ID: 1}}})
	st := New(backend, nil, nil, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := st.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, st.Current().Teams)
	assert.False(t, st.Loading())
}

func TestStore_ConcurrentLoadsSettle(t *testing.T) {
	backend := mock.NewMockProvider()
	backend.Seed(&entities.Snapshot{Teams: []entities.Team{{ID: 1}}})
	st := New(backend, nil, nil, zap.NewNop())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = st.Load(context.Background())
		}()
	}
	wg.Wait()

	assert.False(t, st.Loading())
	assert.GreaterOrEqual(t, st.Version(), uint64(1))
	assert.LessOrEqual(t, st.Version(), uint64(8))
	assert.Equal(t, st.Version(), st.Current().Version)
}

func TestStore_EarlierLoadDoesNotOverwriteLater(t *testing.T) {
	backend := mock.NewMockProvider()
	backend.Seed(&entities.Snapshot{Teams: []entities.Team{{ID: 1, Name: "old"}}})

	fetcher := newGatedFetcher(backend, 1)
	st := New(fetcher, nil, nil, zap.NewNop())

	done := make(chan error, 1)
	go func() { done <- st.Load(context.Background()) }()
	<-fetcher.started

	// Вторая загрузка стартует позже, завершается первой и видит новые данные.
	backend.Seed(&entities.Snapshot{Teams: []entities.Team{{ID: 1, Name: "new"}}})
	require.NoError(t, st.Load(context.Background()))
	published := st.Current()
	assert.Equal(t, "new", published.Teams[0].Name)

	close(fetcher.gate)
	require.NoError(t, <-done)

	assert.Same(t, published, st.Current(), "результат ранней загрузки не публикуется")
	assert.Equal(t, uint64(1), st.Version())
	assert.False(t, st.Loading())
}
