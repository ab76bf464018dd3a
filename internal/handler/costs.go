package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/opshub-dev/opshub/backend/internal/domain"
	"github.com/opshub-dev/opshub/backend/internal/utils"
)

const monthLayout = "2006-01"

func (h *Handler) CreateCost(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	var req struct {
		Name           string          `json:"name" validate:"required"`
		Type           string          `json:"type" validate:"required,oneof=fixed variable"`
		Category       string          `json:"category" validate:"required,oneof=CLIENT_PAYMENT MARKETING TAX FRANCHISE_FEE GST INVESTMENT OTHER"`
		Amount         decimal.Decimal `json:"amount" validate:"required"`
		Unit           *string         `json:"unit" validate:"omitempty,oneof=task hour client unit"`
		ExpectedVolume *int32          `json:"expectedVolume"`
		ActualVolume   *int32          `json:"actualVolume"`
		Month          string          `json:"month" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if _, err := time.Parse(monthLayout, req.Month); err != nil {
		h.errorResponse(w, r, "invalid month, expected YYYY-MM")
		return
	}

	cost := &domain.Cost{
		Name:           req.Name,
		Type:           domain.CostType(req.Type),
		Category:       domain.TransactionCategory(req.Category),
		Amount:         req.Amount,
		ExpectedVolume: req.ExpectedVolume,
		ActualVolume:   req.ActualVolume,
		Month:          req.Month,
		CreatedBy:      myInfo.ID,
	}
	if req.Unit != nil {
		unit := domain.CostUnit(*req.Unit)
		cost.Unit = &unit
	}

	if err := utils.ValidateCostFields(cost); err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	if err := h.repository.CreateCost(cost); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "cost created", cost)
}

func (h *Handler) GetCosts(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if month == "" {
		month = time.Now().Format(monthLayout)
	}
	if _, err := time.Parse(monthLayout, month); err != nil {
		h.errorResponse(w, r, "invalid month, expected YYYY-MM")
		return
	}

	costs, err := h.repository.GetCostsByMonth(month)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "costs fetched", costs)
}

// GetCostSummary folds one month's costs together with that month's net
// inflow revenue into the finance dashboard totals.
func (h *Handler) GetCostSummary(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if month == "" {
		month = time.Now().Format(monthLayout)
	}
	if _, err := time.Parse(monthLayout, month); err != nil {
		h.errorResponse(w, r, "invalid month, expected YYYY-MM")
		return
	}

	costs, err := h.repository.GetCostsByMonth(month)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	revenue, err := h.repository.GetMonthlyRevenue(month)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "cost summary fetched", domain.SummarizeCosts(costs, revenue))
}

func (h *Handler) UpdateCost(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)
	cost := r.Context().Value(CostCtx).(*domain.Cost)

	var req struct {
		Name           *string          `json:"name"`
		Type           *string          `json:"type" validate:"omitempty,oneof=fixed variable"`
		Category       *string          `json:"category" validate:"omitempty,oneof=CLIENT_PAYMENT MARKETING TAX FRANCHISE_FEE GST INVESTMENT OTHER"`
		Amount         *decimal.Decimal `json:"amount"`
		Unit           *string          `json:"unit" validate:"omitempty,oneof=task hour client unit"`
		ExpectedVolume *int32           `json:"expectedVolume"`
		ActualVolume   *int32           `json:"actualVolume"`
		Month          *string          `json:"month"`
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
		cost.Name = *req.Name
	}
	if req.Type != nil {
		cost.Type = domain.CostType(*req.Type)
	}
	if req.Category != nil {
		cost.Category = domain.TransactionCategory(*req.Category)
	}
	if req.Amount != nil {
		cost.Amount = *req.Amount
	}
	if req.Unit != nil {
		unit := domain.CostUnit(*req.Unit)
		cost.Unit = &unit
	}
	if req.ExpectedVolume != nil {
		cost.ExpectedVolume = req.ExpectedVolume
	}
	if req.ActualVolume != nil {
		cost.ActualVolume = req.ActualVolume
	}
	if req.Month != nil {
		if _, err := time.Parse(monthLayout, *req.Month); err != nil {
			h.errorResponse(w, r, "invalid month, expected YYYY-MM")
			return
		}
		cost.Month = *req.Month
	}

	if err := utils.ValidateCostFields(cost); err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	cost.UpdatedBy = &myInfo.ID

	if err := h.repository.UpdateCost(cost); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "the cost changed underneath you, please retry")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "cost updated", cost)
}

func (h *Handler) DeleteCost(w http.ResponseWriter, r *http.Request) {
	cost := r.Context().Value(CostCtx).(*domain.Cost)

	if err := h.repository.DeleteCost(cost.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "cost deleted", nil)
}
