package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/opshub-dev/opshub/backend/internal/availability"
	"github.com/opshub-dev/opshub/backend/internal/domain"
)

// GetAvailabilityWeek returns the derived grid for one week plus the
// navigation targets. The previous week is clamped so nobody can browse
// back past the current week.
func (h *Handler) GetAvailabilityWeek(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)
	weekStart := chi.URLParam(r, "weekStart")

	view, err := h.engine.View(myInfo.ID, weekStart)
	if err != nil {
		if availability.IsValidationError(err) {
			h.errorResponse(w, r, err.Error())
			return
		}
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "availability fetched", view)
}

func (h *Handler) SaveAvailabilityDraft(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)
	weekStart := chi.URLParam(r, "weekStart")

	var req struct {
		Selected []string `json:"selected" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.engine.SaveDraft(myInfo.ID, weekStart, req.Selected); err != nil {
		if availability.IsValidationError(err) || errors.Is(err, availability.ErrMalformedKey) {
			h.errorResponse(w, r, err.Error())
			return
		}
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "draft saved", nil)
}

func (h *Handler) ToggleAvailabilityDraft(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)
	weekStart := chi.URLParam(r, "weekStart")

	var req struct {
		Key      string   `json:"key" validate:"required"`
		Selected []string `json:"selected"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	selection := make(map[string]bool, len(req.Selected))
	for _, key := range req.Selected {
		selection[key] = true
	}

	if err := h.engine.Toggle(selection, req.Key); err != nil {
		if availability.IsValidationError(err) || errors.Is(err, availability.ErrMalformedKey) {
			h.errorResponse(w, r, err.Error())
			return
		}
		h.internalServerError(w, r, err)
		return
	}

	selected := make([]string, 0, len(selection))
	for key := range selection {
		selected = append(selected, key)
	}

	if err := h.engine.SaveDraft(myInfo.ID, weekStart, selected); err != nil {
		if availability.IsValidationError(err) || errors.Is(err, availability.ErrMalformedKey) {
			h.errorResponse(w, r, err.Error())
			return
		}
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "slot toggled", struct {
		Selected []string `json:"selected"`
	}{Selected: selected})
}

func (h *Handler) ClearAvailabilityDraft(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)
	weekStart := chi.URLParam(r, "weekStart")

	if err := h.engine.ClearDraft(myInfo.ID, weekStart); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "draft cleared", nil)
}

func (h *Handler) SubmitAvailability(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)
	weekStart := chi.URLParam(r, "weekStart")

	var req struct {
		Selected []string `json:"selected" validate:"required,min=1"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	record, err := h.engine.Submit(myInfo.ID, weekStart, req.Selected)
	if err != nil {
		if availability.IsValidationError(err) || errors.Is(err, availability.ErrMalformedKey) {
			h.errorResponse(w, r, err.Error())
			return
		}
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "availability submitted", record)
}

func (h *Handler) RequestAvailabilityChanges(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)
	weekStart := chi.URLParam(r, "weekStart")

	var req struct {
		Selected []string `json:"selected" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	record, err := h.engine.RequestChanges(myInfo.ID, weekStart, req.Selected)
	if err != nil {
		if availability.IsValidationError(err) || errors.Is(err, availability.ErrMalformedKey) {
			h.errorResponse(w, r, err.Error())
			return
		}
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "changes requested", record)
}

// WatchAvailabilityWeek streams record snapshots over server-sent events
// until the client disconnects.
func (h *Handler) WatchAvailabilityWeek(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)
	weekStart := chi.URLParam(r, "weekStart")

	flusher, ok := w.(http.Flusher)
	if !ok {
		h.errorResponse(w, r, "streaming is not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for snapshot := range h.watcher.Watch(r.Context(), myInfo.ID, weekStart) {
		payload, err := json.Marshal(snapshot)
		if err != nil {
			h.logInternalServerError(r, err)
			return
		}
		fmt.Fprintf(w, "data: %s\n\n", payload)
		flusher.Flush()
	}
}

func (h *Handler) GetPendingAvailability(w http.ResponseWriter, r *http.Request) {
	records, err := h.repository.GetPendingWeekAvailabilities()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "pending availability fetched", records)
}

// ApproveAvailability approves a record. When an edit proposal is pending
// it becomes the new baseline; either way the record ends up approved and
// the owner is notified by email.
func (h *Handler) ApproveAvailability(w http.ResponseWriter, r *http.Request) {
	record := r.Context().Value(WeekAvailabilityCtx).(*domain.WeekAvailability)

	if record.Status == domain.AvailabilityStatusApproved {
		h.errorResponse(w, r, "this availability is already approved")
		return
	}

	if err := h.repository.ApproveWeekAvailability(record.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if record.HasPendingProposal() {
		record.Slots = record.PendingSlots
		record.PendingSlots = nil
	}
	record.Status = domain.AvailabilityStatusApproved

	owner, err := h.repository.GetUserByID(record.UserID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	mailMessage := domain.MailMessage{
		Type: "availability_decision",
		To:   owner.Email,
		Data: domain.AvailabilityDecisionMailData{
			FullName:  owner.FullName,
			WeekStart: record.WeekStart,
			Approved:  true,
		},
	}

	mailData, err := json.Marshal(mailMessage)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	if err := h.mailChannel.PublishWithContext(
		ctx,
		"",
		"email_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        mailData,
		},
	); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "availability approved", record)
}
