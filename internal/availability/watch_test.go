package availability

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opshub-dev/opshub/backend/internal/domain"
)

// syncRecordStore is a concurrency-safe store for watcher tests, since the
// watcher polls from its own goroutine.
type syncRecordStore struct {
	mu     sync.Mutex
	record *domain.WeekAvailability
}

func (s *syncRecordStore) set(record *domain.WeekAvailability) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record = record
}

func (s *syncRecordStore) GetWeekAvailability(userID int64, weekStart string) (*domain.WeekAvailability, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.record == nil {
		return nil, ErrNoRecord
	}
	clone := *s.record
	return &clone, nil
}

func (s *syncRecordStore) CreateWeekAvailability(record *domain.WeekAvailability) error {
	s.set(record)
	return nil
}

func (s *syncRecordStore) OverwriteWeekSlots(id string, slots map[string][]int32, submittedAt time.Time) error {
	return nil
}

func (s *syncRecordStore) OverwriteWeekPendingSlots(id string, pendingSlots map[string][]int32) error {
	return nil
}

// flakyRecordStore fails a fixed number of polls before delegating to the
// wrapped store.
type flakyRecordStore struct {
	syncRecordStore
	failures atomic.Int32
}

func (s *flakyRecordStore) GetWeekAvailability(userID int64, weekStart string) (*domain.WeekAvailability, error) {
	if s.failures.Add(-1) >= 0 {
		return nil, errors.New("store temporarily unavailable")
	}
	return s.syncRecordStore.GetWeekAvailability(userID, weekStart)
}

func recvSnapshot(t *testing.T, ch <-chan Snapshot) Snapshot {
	t.Helper()
	select {
	case snap, ok := <-ch:
		require.True(t, ok, "channel closed unexpectedly")
		return snap
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a snapshot")
		return Snapshot{}
	}
}

func TestWatchEmitsInitialSnapshotAndChanges(t *testing.T) {
	store := &syncRecordStore{}
	watcher := NewWatcher(store, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := watcher.Watch(ctx, 7, "2026-01-05")

	// first snapshot arrives immediately, with no record yet
	snap := recvSnapshot(t, ch)
	assert.Nil(t, snap.Record)

	store.set(&domain.WeekAvailability{
		ID:        "rec-1",
		UserID:    7,
		WeekStart: "2026-01-05",
		Status:    domain.AvailabilityStatusPending,
		Version:   1,
	})
	snap = recvSnapshot(t, ch)
	require.NotNil(t, snap.Record)
	assert.Equal(t, domain.AvailabilityStatusPending, snap.Record.Status)

	store.set(&domain.WeekAvailability{
		ID:        "rec-1",
		UserID:    7,
		WeekStart: "2026-01-05",
		Status:    domain.AvailabilityStatusApproved,
		Version:   2,
	})
	snap = recvSnapshot(t, ch)
	require.NotNil(t, snap.Record)
	assert.Equal(t, domain.AvailabilityStatusApproved, snap.Record.Status)
}

func TestWatchWaitsForSuccessfulPollBeforeFirstEmit(t *testing.T) {
	store := &flakyRecordStore{}
	store.failures.Store(3)
	store.set(&domain.WeekAvailability{
		ID:        "rec-1",
		UserID:    7,
		WeekStart: "2026-01-05",
		Status:    domain.AvailabilityStatusPending,
		Version:   1,
	})

	watcher := NewWatcher(store, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// failed polls must not surface as an empty week
	snap := recvSnapshot(t, watcher.Watch(ctx, 7, "2026-01-05"))
	require.NotNil(t, snap.Record)
	assert.Equal(t, "rec-1", snap.Record.ID)
}

func TestWatchClosesOnCancel(t *testing.T) {
	store := &syncRecordStore{}
	watcher := NewWatcher(store, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	ch := watcher.Watch(ctx, 7, "2026-01-05")

	recvSnapshot(t, ch)
	cancel()

	select {
	case _, ok := <-ch:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("channel did not close after cancel")
	}
}
