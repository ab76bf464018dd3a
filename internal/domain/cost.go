package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type CostType string

const (
	CostTypeFixed    CostType = "fixed"
	CostTypeVariable CostType = "variable"
)

type CostUnit string

const (
	CostUnitTask   CostUnit = "task"
	CostUnitHour   CostUnit = "hour"
	CostUnitClient CostUnit = "client"
	CostUnitUnit   CostUnit = "unit"
)

// Cost is a fixed monthly amount, or a per-unit rate for variable costs.
// ExpectedVolume and ActualVolume only apply to variable costs.
type Cost struct {
	ID             int64               `json:"id"`
	Name           string              `json:"name"`
	Type           CostType            `json:"type"`
	Category       TransactionCategory `json:"category"`
	Amount         decimal.Decimal     `json:"amount"`
	Unit           *CostUnit           `json:"unit,omitempty"`
	ExpectedVolume *int32              `json:"expectedVolume,omitempty"`
	ActualVolume   *int32              `json:"actualVolume,omitempty"`
	Month          string              `json:"month"` // YYYY-MM
	CreatedBy      int64               `json:"createdBy"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedBy      *int64              `json:"updatedBy,omitempty"`
	UpdatedAt      *time.Time          `json:"updatedAt,omitempty"`
	Version        int32               `json:"-"`
}

type CostSummary struct {
	TotalFixedCost     decimal.Decimal `json:"totalFixedCost"`
	TotalVariableCost  decimal.Decimal `json:"totalVariableCost"`
	TargetVariableCost decimal.Decimal `json:"targetVariableCost"`
	TotalCost          decimal.Decimal `json:"totalCost"`
	TotalTargetCost    decimal.Decimal `json:"totalTargetCost"`
	Revenue            decimal.Decimal `json:"revenue"`
	Profit             decimal.Decimal `json:"profit"`
	Margin             decimal.Decimal `json:"margin"` // percentage
}

// SummarizeCosts folds a cost list and a revenue figure into the summary
// shown on the finance dashboard. Variable costs are weighted by their
// actual volume for the real total and by their expected volume for the
// target total. Margin is zero when there is no revenue.
func SummarizeCosts(costs []*Cost, revenue decimal.Decimal) CostSummary {
	summary := CostSummary{Revenue: revenue}

	for _, cost := range costs {
		switch cost.Type {
		case CostTypeFixed:
			summary.TotalFixedCost = summary.TotalFixedCost.Add(cost.Amount)
		case CostTypeVariable:
			var actual, expected int64
			if cost.ActualVolume != nil {
				actual = int64(*cost.ActualVolume)
			}
			if cost.ExpectedVolume != nil {
				expected = int64(*cost.ExpectedVolume)
			}
			summary.TotalVariableCost = summary.TotalVariableCost.Add(cost.Amount.Mul(decimal.NewFromInt(actual)))
			summary.TargetVariableCost = summary.TargetVariableCost.Add(cost.Amount.Mul(decimal.NewFromInt(expected)))
		}
	}

	summary.TotalCost = summary.TotalFixedCost.Add(summary.TotalVariableCost)
	summary.TotalTargetCost = summary.TotalFixedCost.Add(summary.TargetVariableCost)
	summary.Profit = revenue.Sub(summary.TotalCost)
	if revenue.IsPositive() {
		summary.Margin = summary.Profit.Div(revenue).Mul(decimal.NewFromInt(100))
	}

	return summary
}
