package domain

import "github.com/shopspring/decimal"

// KPICard is one target-vs-actual comparison on the KPI overview.
type KPICard struct {
	Title    string          `json:"title"`
	Target   decimal.Decimal `json:"target"`
	Actual   decimal.Decimal `json:"actual"`
	Unit     string          `json:"unit"`
	Progress decimal.Decimal `json:"progress"` // percentage of target reached
}

// NewKPICard computes the progress percentage up front so every consumer
// renders the same number. A zero target yields zero progress rather than a
// division error.
func NewKPICard(title string, target, actual decimal.Decimal, unit string) KPICard {
	card := KPICard{
		Title:  title,
		Target: target,
		Actual: actual,
		Unit:   unit,
	}
	if target.IsPositive() {
		card.Progress = actual.Div(target).Mul(decimal.NewFromInt(100))
	}
	return card
}
