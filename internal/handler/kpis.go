package handler

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/opshub-dev/opshub/backend/internal/domain"
)

// GetKPIOverview assembles the month's target-vs-actual cards. Targets
// come from configuration, actuals from the ledger and the task board.
func (h *Handler) GetKPIOverview(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if month == "" {
		month = time.Now().Format(monthLayout)
	}
	if _, err := time.Parse(monthLayout, month); err != nil {
		h.errorResponse(w, r, "invalid month, expected YYYY-MM")
		return
	}

	revenue, err := h.repository.GetMonthlyRevenue(month)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	taskCounts, err := h.repository.CountTasksByStatus()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	costs, err := h.repository.GetCostsByMonth(month)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	summary := domain.SummarizeCosts(costs, revenue)

	cards := []domain.KPICard{
		domain.NewKPICard(
			"Monthly Revenue",
			decimal.NewFromFloat(h.config.KPI.MonthlyRevenueTarget),
			revenue,
			"$",
		),
		domain.NewKPICard(
			"Tasks Completed",
			decimal.NewFromInt(int64(h.config.KPI.MonthlyTaskTarget)),
			decimal.NewFromInt(taskCounts[domain.TaskStatusComplete]),
			"tasks",
		),
		domain.NewKPICard(
			"Profit",
			summary.Revenue.Sub(summary.TotalTargetCost),
			summary.Profit,
			"$",
		),
	}

	h.successResponse(w, r, "KPI overview fetched", struct {
		Month   string             `json:"month"`
		Cards   []domain.KPICard   `json:"cards"`
		Summary domain.CostSummary `json:"summary"`
	}{
		Month:   month,
		Cards:   cards,
		Summary: summary,
	})
}
