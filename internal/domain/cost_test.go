package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func int32ptr(v int32) *int32 { return &v }

func TestSummarizeCosts(t *testing.T) {
	hour := CostUnitHour
	costs := []*Cost{
		{Type: CostTypeFixed, Amount: decimal.NewFromInt(650)},
		{Type: CostTypeFixed, Amount: decimal.NewFromInt(350)},
		{
			Type:           CostTypeVariable,
			Amount:         decimal.NewFromInt(30),
			Unit:           &hour,
			ExpectedVolume: int32ptr(100),
			ActualVolume:   int32ptr(80),
		},
	}

	summary := SummarizeCosts(costs, decimal.NewFromInt(8000))

	assert.True(t, summary.TotalFixedCost.Equal(decimal.NewFromInt(1000)))
	assert.True(t, summary.TotalVariableCost.Equal(decimal.NewFromInt(2400)))
	assert.True(t, summary.TargetVariableCost.Equal(decimal.NewFromInt(3000)))
	assert.True(t, summary.TotalCost.Equal(decimal.NewFromInt(3400)))
	assert.True(t, summary.TotalTargetCost.Equal(decimal.NewFromInt(4000)))
	assert.True(t, summary.Profit.Equal(decimal.NewFromInt(4600)))
	assert.True(t, summary.Margin.Equal(decimal.NewFromFloat(57.5)))
}

func TestSummarizeCostsMissingVolumes(t *testing.T) {
	task := CostUnitTask
	costs := []*Cost{
		{Type: CostTypeVariable, Amount: decimal.NewFromInt(12), Unit: &task},
	}

	summary := SummarizeCosts(costs, decimal.NewFromInt(100))

	assert.True(t, summary.TotalVariableCost.IsZero())
	assert.True(t, summary.TargetVariableCost.IsZero())
}

func TestSummarizeCostsZeroRevenue(t *testing.T) {
	costs := []*Cost{
		{Type: CostTypeFixed, Amount: decimal.NewFromInt(100)},
	}

	summary := SummarizeCosts(costs, decimal.Zero)

	assert.True(t, summary.Profit.Equal(decimal.NewFromInt(-100)))
	assert.True(t, summary.Margin.IsZero())
}
