package repository

import (
	"context"
	"time"

	"github.com/opshub-dev/opshub/backend/internal/domain"
)

func (r *Repository) CreateLead(lead *domain.RecruitmentLead) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO recruitment_leads (name, email, phone, source, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at, version
	`

	args := []any{lead.Name, lead.Email, lead.Phone, lead.Source, lead.Status, lead.Notes}
	return r.dbpool.QueryRowContext(ctx, query, args...).Scan(&lead.ID, &lead.CreatedAt, &lead.UpdatedAt, &lead.Version)
}

func (r *Repository) GetLeadByID(id int64) (*domain.RecruitmentLead, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT name, email, phone, source, status, notes, created_at, updated_at, version
		FROM recruitment_leads WHERE id = $1
	`

	lead := &domain.RecruitmentLead{ID: id}
	dst := []any{&lead.Name, &lead.Email, &lead.Phone, &lead.Source, &lead.Status, &lead.Notes, &lead.CreatedAt, &lead.UpdatedAt, &lead.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return lead, nil
}

func (r *Repository) GetAllLeads() ([]*domain.RecruitmentLead, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, name, email, phone, source, status, notes, created_at, updated_at, version
		FROM recruitment_leads
		ORDER BY created_at DESC
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leads := make([]*domain.RecruitmentLead, 0)
	for rows.Next() {
		lead := &domain.RecruitmentLead{}
		dst := []any{&lead.ID, &lead.Name, &lead.Email, &lead.Phone, &lead.Source, &lead.Status, &lead.Notes, &lead.CreatedAt, &lead.UpdatedAt, &lead.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return leads, nil
}

func (r *Repository) UpdateLead(lead *domain.RecruitmentLead) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		UPDATE recruitment_leads
		SET
			name = $1,
			email = $2,
			phone = $3,
			source = $4,
			status = $5,
			notes = $6,
			updated_at = NOW(),
			version = version + 1
		WHERE id = $7 AND version = $8
		RETURNING updated_at, version
	`

	args := []any{lead.Name, lead.Email, lead.Phone, lead.Source, lead.Status, lead.Notes, lead.ID, lead.Version}
	return r.dbpool.QueryRowContext(ctx, query, args...).Scan(&lead.UpdatedAt, &lead.Version)
}

func (r *Repository) DeleteLead(id int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, `DELETE FROM recruitment_leads WHERE id = $1`, id)
	return err
}
