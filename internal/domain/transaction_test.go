package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeGross(t *testing.T) {
	txn := &Transaction{AmountNet: decimal.NewFromInt(200), GSTApplied: true}
	txn.ComputeGross()
	assert.True(t, txn.AmountGross.Equal(decimal.NewFromInt(220)))

	txn = &Transaction{AmountNet: decimal.NewFromInt(200)}
	txn.ComputeGross()
	assert.True(t, txn.AmountGross.Equal(decimal.NewFromInt(200)))
}

func TestComputeGrossFractionalAmount(t *testing.T) {
	txn := &Transaction{AmountNet: decimal.NewFromFloat(99.95), GSTApplied: true}
	txn.ComputeGross()
	assert.True(t, txn.AmountGross.Equal(decimal.NewFromFloat(109.945)))
}
