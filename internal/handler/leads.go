package handler

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/opshub-dev/opshub/backend/internal/domain"
)

func (h *Handler) CreateLead(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name   string `json:"name" validate:"required"`
		Email  string `json:"email" validate:"required,email"`
		Phone  string `json:"phone"`
		Source string `json:"source"`
		Notes  string `json:"notes"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	lead := &domain.RecruitmentLead{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Source: req.Source,
		Status: domain.LeadStatusNew,
		Notes:  req.Notes,
	}

	if err := h.repository.CreateLead(lead); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "lead created", lead)
}

func (h *Handler) GetAllLeads(w http.ResponseWriter, r *http.Request) {
	leads, err := h.repository.GetAllLeads()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "leads fetched", leads)
}

func (h *Handler) UpdateLead(w http.ResponseWriter, r *http.Request) {
	lead := r.Context().Value(RecruitmentLeadCtx).(*domain.RecruitmentLead)

	var req struct {
		Name   *string `json:"name"`
		Email  *string `json:"email" validate:"omitempty,email"`
		Phone  *string `json:"phone"`
		Source *string `json:"source"`
		Notes  *string `json:"notes"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.Name != nil {
		lead.Name = *req.Name
	}
	if req.Email != nil {
		lead.Email = *req.Email
	}
	if req.Phone != nil {
		lead.Phone = *req.Phone
	}
	if req.Source != nil {
		lead.Source = *req.Source
	}
	if req.Notes != nil {
		lead.Notes = *req.Notes
	}

	if err := h.repository.UpdateLead(lead); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "the lead changed underneath you, please retry")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "lead updated", lead)
}

// UpdateLeadStatus moves a lead along the recruitment pipeline. Unlike the
// task board, only forward transitions and rejection are allowed.
func (h *Handler) UpdateLeadStatus(w http.ResponseWriter, r *http.Request) {
	lead := r.Context().Value(RecruitmentLeadCtx).(*domain.RecruitmentLead)

	var req struct {
		Status string `json:"status" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	status, err := domain.ParseLeadStatus(req.Status)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	if !domain.IsLeadTransitionAllowed(lead.Status, status) {
		h.errorResponse(w, r, fmt.Sprintf("a lead cannot move from %s to %s", lead.Status, status))
		return
	}

	lead.Status = status
	if err := h.repository.UpdateLead(lead); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "the lead changed underneath you, please retry")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "lead status updated", lead)
}

func (h *Handler) DeleteLead(w http.ResponseWriter, r *http.Request) {
	lead := r.Context().Value(RecruitmentLeadCtx).(*domain.RecruitmentLead)

	if err := h.repository.DeleteLead(lead.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "lead deleted", nil)
}
