package availability

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/opshub-dev/opshub/backend/internal/domain"
)

// Snapshot is one observation of a week record. Record is nil while no
// submission exists for the week.
type Snapshot struct {
	Record *domain.WeekAvailability `json:"record"`
}

// Watcher turns the pull-based record store into a push-style stream of
// snapshots by polling. Consumers must treat the stream as at-least-once:
// a restarted watch re-delivers the current snapshot, so handling must be
// idempotent.
type Watcher struct {
	records  RecordStore
	interval time.Duration
}

func NewWatcher(records RecordStore, interval time.Duration) *Watcher {
	return &Watcher{
		records:  records,
		interval: interval,
	}
}

// Watch emits the current snapshot as soon as one poll has succeeded and
// then again whenever the record for (userID, weekStart) changes. The
// channel closes when ctx is cancelled; cancelling is the only way to
// release the subscription.
func (w *Watcher) Watch(ctx context.Context, userID int64, weekStart string) <-chan Snapshot {
	out := make(chan Snapshot, 1)

	go func() {
		defer close(out)

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		var last *domain.WeekAvailability
		first := true

		for {
			record, err := w.records.GetWeekAvailability(userID, weekStart)
			switch {
			case errors.Is(err, ErrNoRecord):
				record = nil
				err = nil
			case err != nil:
				// Transient store failures keep the previous snapshot;
				// the next tick retries. Nothing is emitted until a poll
				// has succeeded, so a failure cannot be mistaken for an
				// authoritative empty week.
				slog.Error("availability watch poll failed", "userID", userID, "weekStart", weekStart, "error", err)
				record = last
			}

			if err == nil && (first || changed(last, record)) {
				select {
				case out <- Snapshot{Record: record}:
				case <-ctx.Done():
					return
				}
				last = record
				first = false
			}

			select {
			case <-ticker.C:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

func changed(prev, next *domain.WeekAvailability) bool {
	if (prev == nil) != (next == nil) {
		return true
	}
	if prev == nil {
		return false
	}
	return prev.Version != next.Version || prev.Status != next.Status
}
