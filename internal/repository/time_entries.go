package repository

import (
	"context"
	"time"

	"github.com/opshub-dev/opshub/backend/internal/domain"
)

func (r *Repository) CreateTimeEntry(entry *domain.TimeEntry) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO time_entries (user_id, entry_date, clock_in, clock_out, total_hours)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	args := []any{entry.UserID, entry.Date, entry.ClockIn, entry.ClockOut, entry.TotalHours}
	return r.dbpool.QueryRowContext(ctx, query, args...).Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)
}

// GetOpenTimeEntry returns the entry the user is currently clocked in on,
// or sql.ErrNoRows when the user is clocked out.
func (r *Repository) GetOpenTimeEntry(userID int64) (*domain.TimeEntry, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, entry_date, clock_in, clock_out, total_hours, created_at, updated_at
		FROM time_entries
		WHERE user_id = $1 AND clock_in IS NOT NULL AND clock_out IS NULL
		ORDER BY clock_in DESC
		LIMIT 1
	`

	entry := &domain.TimeEntry{UserID: userID}
	dst := []any{&entry.ID, &entry.Date, &entry.ClockIn, &entry.ClockOut, &entry.TotalHours, &entry.CreatedAt, &entry.UpdatedAt}
	if err := r.dbpool.QueryRowContext(ctx, query, userID).Scan(dst...); err != nil {
		return nil, err
	}

	return entry, nil
}

func (r *Repository) CloseTimeEntry(entry *domain.TimeEntry) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		UPDATE time_entries
		SET clock_out = $1, total_hours = $2, updated_at = NOW()
		WHERE id = $3 AND clock_out IS NULL
		RETURNING updated_at
	`

	return r.dbpool.QueryRowContext(ctx, query, entry.ClockOut, entry.TotalHours, entry.ID).Scan(&entry.UpdatedAt)
}

func (r *Repository) GetTimeEntriesByUserAndDate(userID int64, date time.Time) ([]*domain.TimeEntry, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, entry_date, clock_in, clock_out, total_hours, created_at, updated_at
		FROM time_entries
		WHERE user_id = $1 AND entry_date = $2
		ORDER BY clock_in
	`

	rows, err := r.dbpool.QueryContext(ctx, query, userID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]*domain.TimeEntry, 0)
	for rows.Next() {
		entry := &domain.TimeEntry{UserID: userID}
		dst := []any{&entry.ID, &entry.Date, &entry.ClockIn, &entry.ClockOut, &entry.TotalHours, &entry.CreatedAt, &entry.UpdatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *Repository) GetTimeEntriesByDate(date time.Time) ([]*domain.TimeEntry, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, user_id, entry_date, clock_in, clock_out, total_hours, created_at, updated_at
		FROM time_entries
		WHERE entry_date = $1
		ORDER BY user_id, clock_in
	`

	rows, err := r.dbpool.QueryContext(ctx, query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]*domain.TimeEntry, 0)
	for rows.Next() {
		entry := &domain.TimeEntry{}
		dst := []any{&entry.ID, &entry.UserID, &entry.Date, &entry.ClockIn, &entry.ClockOut, &entry.TotalHours, &entry.CreatedAt, &entry.UpdatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// GetOpenTimeEntries lists everyone currently clocked in, for the admin
// live view.
func (r *Repository) GetOpenTimeEntries() ([]*domain.TimeEntry, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, user_id, entry_date, clock_in, clock_out, total_hours, created_at, updated_at
		FROM time_entries
		WHERE clock_in IS NOT NULL AND clock_out IS NULL
		ORDER BY clock_in
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]*domain.TimeEntry, 0)
	for rows.Next() {
		entry := &domain.TimeEntry{}
		dst := []any{&entry.ID, &entry.UserID, &entry.Date, &entry.ClockIn, &entry.ClockOut, &entry.TotalHours, &entry.CreatedAt, &entry.UpdatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
