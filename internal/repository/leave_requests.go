package repository

import (
	"context"
	"time"

	"github.com/opshub-dev/opshub/backend/internal/domain"
)

func (r *Repository) CreateLeaveRequest(req *domain.LeaveRequest) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO leave_requests (user_id, from_date, to_date, description, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, applied_at, version
	`

	args := []any{req.UserID, req.FromDate, req.ToDate, req.Description, req.Status}
	return r.dbpool.QueryRowContext(ctx, query, args...).Scan(&req.ID, &req.AppliedAt, &req.Version)
}

func (r *Repository) GetLeaveRequestByID(id int64) (*domain.LeaveRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT user_id, from_date, to_date, description, status, applied_at, version
		FROM leave_requests WHERE id = $1
	`

	req := &domain.LeaveRequest{ID: id}
	dst := []any{&req.UserID, &req.FromDate, &req.ToDate, &req.Description, &req.Status, &req.AppliedAt, &req.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return req, nil
}

// GetUpcomingLeaveRequestsByUser lists the user's requests whose end date
// has not passed yet, matching what the availability screen shows.
func (r *Repository) GetUpcomingLeaveRequestsByUser(userID int64) ([]*domain.LeaveRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, from_date, to_date, description, status, applied_at, version
		FROM leave_requests
		WHERE user_id = $1 AND to_date >= NOW()
		ORDER BY from_date
	`

	rows, err := r.dbpool.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reqs := make([]*domain.LeaveRequest, 0)
	for rows.Next() {
		req := &domain.LeaveRequest{UserID: userID}
		dst := []any{&req.ID, &req.FromDate, &req.ToDate, &req.Description, &req.Status, &req.AppliedAt, &req.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		reqs = append(reqs, req)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return reqs, nil
}

func (r *Repository) GetPendingLeaveRequests() ([]*domain.LeaveRequest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, user_id, from_date, to_date, description, status, applied_at, version
		FROM leave_requests
		WHERE status = $1
		ORDER BY applied_at
	`

	rows, err := r.dbpool.QueryContext(ctx, query, domain.LeaveStatusPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reqs := make([]*domain.LeaveRequest, 0)
	for rows.Next() {
		req := &domain.LeaveRequest{}
		dst := []any{&req.ID, &req.UserID, &req.FromDate, &req.ToDate, &req.Description, &req.Status, &req.AppliedAt, &req.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		reqs = append(reqs, req)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return reqs, nil
}

func (r *Repository) UpdateLeaveRequestStatus(req *domain.LeaveRequest) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		UPDATE leave_requests
		SET status = $1, version = version + 1
		WHERE id = $2 AND version = $3
		RETURNING version
	`

	return r.dbpool.QueryRowContext(ctx, query, req.Status, req.ID, req.Version).Scan(&req.Version)
}
