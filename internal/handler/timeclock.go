package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/opshub-dev/opshub/backend/internal/availability"
	"github.com/opshub-dev/opshub/backend/internal/domain"
	"github.com/opshub-dev/opshub/backend/internal/utils"
)

func (h *Handler) ClockIn(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	if _, err := h.repository.GetOpenTimeEntry(myInfo.ID); err == nil {
		h.errorResponse(w, r, "you are already clocked in")
		return
	} else if !errors.Is(err, sql.ErrNoRows) {
		h.internalServerError(w, r, err)
		return
	}

	now := time.Now()
	entry := &domain.TimeEntry{
		UserID:  myInfo.ID,
		Date:    time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
		ClockIn: &now,
	}

	if err := h.repository.CreateTimeEntry(entry); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "clocked in", entry)
}

func (h *Handler) ClockOut(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	entry, err := h.repository.GetOpenTimeEntry(myInfo.ID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "you are not clocked in")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	now := time.Now()
	hours := now.Sub(*entry.ClockIn).Hours()
	entry.ClockOut = &now
	entry.TotalHours = &hours

	if err := h.repository.CloseTimeEntry(entry); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "clocked out", entry)
}

// CreateManualTimeEntry records a past clock-in/out pair, for the days the
// clock was forgotten.
func (h *Handler) CreateManualTimeEntry(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	var req struct {
		ClockIn  time.Time `json:"clockIn" validate:"required"`
		ClockOut time.Time `json:"clockOut" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	hours := req.ClockOut.Sub(req.ClockIn).Hours()
	entry := &domain.TimeEntry{
		UserID:     myInfo.ID,
		Date:       time.Date(req.ClockIn.Year(), req.ClockIn.Month(), req.ClockIn.Day(), 0, 0, 0, 0, req.ClockIn.Location()),
		ClockIn:    &req.ClockIn,
		ClockOut:   &req.ClockOut,
		TotalHours: &hours,
	}

	if err := utils.ValidateManualTimeEntry(entry); err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	if err := h.repository.CreateTimeEntry(entry); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "time entry recorded", entry)
}

func (h *Handler) GetMyTimeEntries(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	date, err := h.parseDateQuery(r)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	entries, err := h.repository.GetTimeEntriesByUserAndDate(myInfo.ID, date)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "time entries fetched", entries)
}

func (h *Handler) GetAllTimeEntries(w http.ResponseWriter, r *http.Request) {
	date, err := h.parseDateQuery(r)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	entries, err := h.repository.GetTimeEntriesByDate(date)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "time entries fetched", entries)
}

func (h *Handler) GetActiveTimeEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.repository.GetOpenTimeEntries()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "active time entries fetched", entries)
}

// parseDateQuery reads the optional ?date= query parameter, defaulting to
// today.
func (h *Handler) parseDateQuery(r *http.Request) (time.Time, error) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
	}

	date, err := time.Parse(availability.DateLayout, raw)
	if err != nil {
		return time.Time{}, errors.New("invalid date")
	}
	return date, nil
}
