package handler

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/opshub-dev/opshub/backend/internal/availability"
	"github.com/opshub-dev/opshub/backend/internal/domain"
	"github.com/opshub-dev/opshub/backend/internal/repository"
)

func (h *Handler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	var req struct {
		Type           string          `json:"type" validate:"required,oneof=INFLOW OUTFLOW"`
		Category       string          `json:"category" validate:"required,oneof=CLIENT_PAYMENT MARKETING TAX FRANCHISE_FEE GST INVESTMENT OTHER"`
		CustomCategory string          `json:"customCategory"`
		AmountNet      decimal.Decimal `json:"amountNet" validate:"required"`
		GSTApplied     bool            `json:"gstApplied"`
		PaymentMethod  string          `json:"paymentMethod" validate:"required,oneof=BANK_TRANSFER_BUSINESS BANK_TRANSFER_PERSONAL CREDIT_DEBIT_CARD CASH"`
		Description    string          `json:"description"`
		ClientName     string          `json:"clientName"`
		Date           string          `json:"date" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if !req.AmountNet.IsPositive() {
		h.errorResponse(w, r, "amount must be positive")
		return
	}

	date, err := time.Parse(availability.DateLayout, req.Date)
	if err != nil {
		h.errorResponse(w, r, "invalid transaction date")
		return
	}

	txn := &domain.Transaction{
		Type:           domain.TransactionType(req.Type),
		Category:       domain.TransactionCategory(req.Category),
		CustomCategory: req.CustomCategory,
		AmountNet:      req.AmountNet,
		GSTApplied:     req.GSTApplied,
		PaymentMethod:  domain.PaymentMethod(req.PaymentMethod),
		Description:    req.Description,
		ClientName:     req.ClientName,
		Date:           date,
		CreatedBy:      myInfo.ID,
	}
	txn.ComputeGross()

	if err := h.repository.CreateTransaction(txn); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "transaction recorded", txn)
}

func (h *Handler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	filters := repository.TransactionFilters{}

	query := r.URL.Query()
	filters.Type = domain.TransactionType(query.Get("type"))
	filters.Category = domain.TransactionCategory(query.Get("category"))

	if raw := query.Get("from"); raw != "" {
		from, err := time.Parse(availability.DateLayout, raw)
		if err != nil {
			h.errorResponse(w, r, "invalid from date")
			return
		}
		filters.From = &from
	}
	if raw := query.Get("to"); raw != "" {
		to, err := time.Parse(availability.DateLayout, raw)
		if err != nil {
			h.errorResponse(w, r, "invalid to date")
			return
		}
		filters.To = &to
	}

	txns, err := h.repository.GetTransactions(filters)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "transactions fetched", txns)
}
