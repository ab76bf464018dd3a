package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/opshub-dev/opshub/backend/internal/availability"
	"github.com/opshub-dev/opshub/backend/internal/domain"
)

func (r *Repository) GetWeekAvailability(userID int64, weekStart string) (*domain.WeekAvailability, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	record := &domain.WeekAvailability{
		UserID:       userID,
		WeekStart:    weekStart,
		Slots:        make(map[string][]int32),
		PendingSlots: make(map[string][]int32),
	}

	query := `
		SELECT id, status, submitted_at, version
		FROM week_availabilities
		WHERE user_id = $1 AND week_start = $2
	`
	if err := r.dbpool.QueryRowContext(ctx, query, userID, weekStart).Scan(&record.ID, &record.Status, &record.SubmittedAt, &record.Version); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, availability.ErrNoRecord
		}
		return nil, err
	}

	if err := r.loadWeekSlots(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

func (r *Repository) loadWeekSlots(ctx context.Context, record *domain.WeekAvailability) error {
	query := `
		SELECT slot_date, slot_index, pending
		FROM week_availability_slots
		WHERE record_id = $1
		ORDER BY slot_date, slot_index
	`

	rows, err := r.dbpool.QueryContext(ctx, query, record.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var row struct {
			date    time.Time
			index   int32
			pending bool
		}
		if err := rows.Scan(&row.date, &row.index, &row.pending); err != nil {
			return err
		}

		dateStr := row.date.Format(availability.DateLayout)
		if row.pending {
			record.PendingSlots[dateStr] = append(record.PendingSlots[dateStr], row.index)
		} else {
			record.Slots[dateStr] = append(record.Slots[dateStr], row.index)
		}
	}

	return rows.Err()
}

func (r *Repository) CreateWeekAvailability(record *domain.WeekAvailability) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		INSERT INTO week_availabilities (id, user_id, week_start, status, submitted_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING version
	`
	args := []any{record.ID, record.UserID, record.WeekStart, record.Status, record.SubmittedAt}
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&record.Version); err != nil {
		return err
	}

	if err := insertWeekSlots(ctx, tx, record.ID, record.Slots, false); err != nil {
		return err
	}

	return tx.Commit()
}

// OverwriteWeekSlots replaces the slots field wholesale (re-submission
// while still under review) and stamps a fresh submission time. The
// existing rows are deleted and re-inserted inside one transaction.
func (r *Repository) OverwriteWeekSlots(id string, slots map[string][]int32, submittedAt time.Time) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `DELETE FROM week_availability_slots WHERE record_id = $1 AND pending = FALSE`
	if _, err := tx.ExecContext(ctx, query, id); err != nil {
		return err
	}

	if err := insertWeekSlots(ctx, tx, id, slots, false); err != nil {
		return err
	}

	query = `
		UPDATE week_availabilities
		SET status = $1, submitted_at = $2, version = version + 1
		WHERE id = $3
	`
	if _, err := tx.ExecContext(ctx, query, domain.AvailabilityStatusPending, submittedAt, id); err != nil {
		return err
	}

	return tx.Commit()
}

// OverwriteWeekPendingSlots replaces only the pending proposal, leaving
// the approved baseline untouched, and reverts the record to pending.
func (r *Repository) OverwriteWeekPendingSlots(id string, pendingSlots map[string][]int32) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `DELETE FROM week_availability_slots WHERE record_id = $1 AND pending = TRUE`
	if _, err := tx.ExecContext(ctx, query, id); err != nil {
		return err
	}

	if err := insertWeekSlots(ctx, tx, id, pendingSlots, true); err != nil {
		return err
	}

	query = `
		UPDATE week_availabilities
		SET status = $1, version = version + 1
		WHERE id = $2
	`
	if _, err := tx.ExecContext(ctx, query, domain.AvailabilityStatusPending, id); err != nil {
		return err
	}

	return tx.Commit()
}

// ApproveWeekAvailability is the reviewer transition: when a pending
// proposal exists it becomes the new baseline, otherwise the first
// submission already sitting in the slots field is simply accepted.
func (r *Repository) ApproveWeekAvailability(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var pendingCount int
	query := `SELECT COUNT(*) FROM week_availability_slots WHERE record_id = $1 AND pending = TRUE`
	if err := tx.QueryRowContext(ctx, query, id).Scan(&pendingCount); err != nil {
		return err
	}

	if pendingCount > 0 {
		query = `DELETE FROM week_availability_slots WHERE record_id = $1 AND pending = FALSE`
		if _, err := tx.ExecContext(ctx, query, id); err != nil {
			return err
		}

		query = `UPDATE week_availability_slots SET pending = FALSE WHERE record_id = $1 AND pending = TRUE`
		if _, err := tx.ExecContext(ctx, query, id); err != nil {
			return err
		}
	}

	query = `
		UPDATE week_availabilities
		SET status = $1, version = version + 1
		WHERE id = $2
	`
	if _, err := tx.ExecContext(ctx, query, domain.AvailabilityStatusApproved, id); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *Repository) GetWeekAvailabilityByID(id string) (*domain.WeekAvailability, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	record := &domain.WeekAvailability{
		ID:           id,
		Slots:        make(map[string][]int32),
		PendingSlots: make(map[string][]int32),
	}

	var weekStart time.Time
	query := `
		SELECT user_id, week_start, status, submitted_at, version
		FROM week_availabilities
		WHERE id = $1
	`
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(&record.UserID, &weekStart, &record.Status, &record.SubmittedAt, &record.Version); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, availability.ErrNoRecord
		}
		return nil, err
	}
	record.WeekStart = weekStart.Format(availability.DateLayout)

	if err := r.loadWeekSlots(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

func (r *Repository) GetPendingWeekAvailabilities() ([]*domain.WeekAvailability, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, user_id, week_start, status, submitted_at, version
		FROM week_availabilities
		WHERE status = $1
		ORDER BY submitted_at
	`

	rows, err := r.dbpool.QueryContext(ctx, query, domain.AvailabilityStatusPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]*domain.WeekAvailability, 0)
	for rows.Next() {
		record := &domain.WeekAvailability{
			Slots:        make(map[string][]int32),
			PendingSlots: make(map[string][]int32),
		}
		var weekStart time.Time
		if err := rows.Scan(&record.ID, &record.UserID, &weekStart, &record.Status, &record.SubmittedAt, &record.Version); err != nil {
			return nil, err
		}
		record.WeekStart = weekStart.Format(availability.DateLayout)
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, record := range records {
		if err := r.loadWeekSlots(ctx, record); err != nil {
			return nil, err
		}
	}

	return records, nil
}

func insertWeekSlots(ctx context.Context, tx *sql.Tx, recordID string, slots map[string][]int32, pending bool) error {
	query := `
		INSERT INTO week_availability_slots (record_id, slot_date, slot_index, pending)
		VALUES ($1, $2, $3, $4)
	`
	for date, indices := range slots {
		for _, index := range indices {
			if _, err := tx.ExecContext(ctx, query, recordID, date, index, pending); err != nil {
				return err
			}
		}
	}
	return nil
}
