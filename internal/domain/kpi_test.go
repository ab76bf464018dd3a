package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewKPICard(t *testing.T) {
	card := NewKPICard("Monthly Revenue", decimal.NewFromInt(50000), decimal.NewFromInt(12500), "$")
	assert.True(t, card.Progress.Equal(decimal.NewFromInt(25)))

	card = NewKPICard("Tasks Completed", decimal.Zero, decimal.NewFromInt(10), "tasks")
	assert.True(t, card.Progress.IsZero())

	card = NewKPICard("Monthly Revenue", decimal.NewFromInt(100), decimal.NewFromInt(150), "$")
	assert.True(t, card.Progress.Equal(decimal.NewFromInt(150)))
}
