// Package draft persists unsubmitted availability selections in Redis so
// a user's picks survive reloads before submission. The cache is purely a
// convenience: corrupted entries are dropped, writes are best-effort and
// entries expire on their own.
package draft

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/opshub-dev/opshub/backend/internal/config"
)

type payload struct {
	WeekStart string    `json:"weekStart"`
	Selected  []string  `json:"selected"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Store struct {
	cfg    *config.Config
	client *redis.Client
}

func NewStore(cfg *config.Config, client *redis.Client) *Store {
	return &Store{
		cfg:    cfg,
		client: client,
	}
}

func (s *Store) key(userID int64, weekStart string) string {
	return fmt.Sprintf("availability_draft_%d_%s", userID, weekStart)
}

func (s *Store) operationCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Duration(s.cfg.Redis.OperationExpiration)*time.Minute)
}

// SaveDraft overwrites the draft for (userID, weekStart). Failures are
// logged and swallowed: losing a draft costs the user a few clicks, not
// data.
func (s *Store) SaveDraft(userID int64, weekStart string, selected []string) error {
	data, err := json.Marshal(payload{
		WeekStart: weekStart,
		Selected:  selected,
		UpdatedAt: time.Now(),
	})
	if err != nil {
		slog.Error("failed to marshal availability draft", "userID", userID, "weekStart", weekStart, "error", err)
		return nil
	}

	ctx, cancel := s.operationCtx()
	defer cancel()

	if err := s.client.Set(ctx, s.key(userID, weekStart), data, time.Duration(s.cfg.Draft.Expiration)*time.Second).Err(); err != nil {
		slog.Error("failed to save availability draft", "userID", userID, "weekStart", weekStart, "error", err)
	}
	return nil
}

// LoadDraft returns the most recent saved selection, or ok=false when none
// exists. A payload that no longer parses is deleted and reported as
// absent rather than surfaced as an error.
func (s *Store) LoadDraft(userID int64, weekStart string) ([]string, bool, error) {
	ctx, cancel := s.operationCtx()
	defer cancel()

	data, err := s.client.Get(ctx, s.key(userID, weekStart)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var p payload
	if err := json.Unmarshal(data, &p); err != nil {
		slog.Warn("dropping corrupted availability draft", "userID", userID, "weekStart", weekStart, "error", err)
		_ = s.client.Del(ctx, s.key(userID, weekStart)).Err()
		return nil, false, nil
	}

	return p.Selected, true, nil
}

// ClearDraft removes the draft. Deleting a missing key is a no-op, so the
// call is idempotent.
func (s *Store) ClearDraft(userID int64, weekStart string) error {
	ctx, cancel := s.operationCtx()
	defer cancel()

	return s.client.Del(ctx, s.key(userID, weekStart)).Err()
}
