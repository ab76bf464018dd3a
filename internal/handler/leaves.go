package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/opshub-dev/opshub/backend/internal/availability"
	"github.com/opshub-dev/opshub/backend/internal/domain"
	"github.com/opshub-dev/opshub/backend/internal/utils"
)

func (h *Handler) RequestLeave(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	var req struct {
		FromDate    string `json:"fromDate" validate:"required"`
		ToDate      string `json:"toDate" validate:"required"`
		Description string `json:"description" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	fromDate, err := time.Parse(availability.DateLayout, req.FromDate)
	if err != nil {
		h.errorResponse(w, r, "invalid start date")
		return
	}
	toDate, err := time.Parse(availability.DateLayout, req.ToDate)
	if err != nil {
		h.errorResponse(w, r, "invalid end date")
		return
	}

	leave := &domain.LeaveRequest{
		UserID:      myInfo.ID,
		FromDate:    fromDate,
		ToDate:      toDate,
		Description: req.Description,
		Status:      domain.LeaveStatusPending,
	}

	if err := utils.ValidateLeaveRequestDates(leave, time.Now()); err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	if err := h.repository.CreateLeaveRequest(leave); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "leave requested", leave)
}

func (h *Handler) GetMyLeaveRequests(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	reqs, err := h.repository.GetUpcomingLeaveRequestsByUser(myInfo.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "leave requests fetched", reqs)
}

func (h *Handler) GetPendingLeaveRequests(w http.ResponseWriter, r *http.Request) {
	reqs, err := h.repository.GetPendingLeaveRequests()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "pending leave requests fetched", reqs)
}

func (h *Handler) ApproveLeaveRequest(w http.ResponseWriter, r *http.Request) {
	h.decideLeaveRequest(w, r, domain.LeaveStatusApproved)
}

func (h *Handler) RejectLeaveRequest(w http.ResponseWriter, r *http.Request) {
	h.decideLeaveRequest(w, r, domain.LeaveStatusRejected)
}

func (h *Handler) decideLeaveRequest(w http.ResponseWriter, r *http.Request, decision domain.LeaveStatus) {
	leave := r.Context().Value(LeaveRequestCtx).(*domain.LeaveRequest)

	if leave.Status != domain.LeaveStatusPending {
		h.errorResponse(w, r, "this leave request has already been decided")
		return
	}

	leave.Status = decision
	if err := h.repository.UpdateLeaveRequestStatus(leave); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "the leave request changed underneath you, please retry")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	owner, err := h.repository.GetUserByID(leave.UserID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	mailMessage := domain.MailMessage{
		Type: "leave_decision",
		To:   owner.Email,
		Data: domain.LeaveDecisionMailData{
			FullName: owner.FullName,
			FromDate: leave.FromDate.Format(availability.DateLayout),
			ToDate:   leave.ToDate.Format(availability.DateLayout),
			Approved: decision == domain.LeaveStatusApproved,
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

	h.successResponse(w, r, "leave request decided", leave)
}
