package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionInflow  TransactionType = "INFLOW"
	TransactionOutflow TransactionType = "OUTFLOW"
)

type TransactionCategory string

const (
	CategoryClientPayment TransactionCategory = "CLIENT_PAYMENT"
	CategoryMarketing     TransactionCategory = "MARKETING"
	CategoryTax           TransactionCategory = "TAX"
	CategoryFranchiseFee  TransactionCategory = "FRANCHISE_FEE"
	CategoryGST           TransactionCategory = "GST"
	CategoryInvestment    TransactionCategory = "INVESTMENT"
	CategoryOther         TransactionCategory = "OTHER"
)

type PaymentMethod string

const (
	PaymentBankTransferBusiness PaymentMethod = "BANK_TRANSFER_BUSINESS"
	PaymentBankTransferPersonal PaymentMethod = "BANK_TRANSFER_PERSONAL"
	PaymentCreditDebitCard      PaymentMethod = "CREDIT_DEBIT_CARD"
	PaymentCash                 PaymentMethod = "CASH"
)

// gstRate is the flat goods-and-services tax rate applied on top of net
// amounts when GSTApplied is set.
var gstRate = decimal.NewFromFloat(0.1)

type Transaction struct {
	ID             int64               `json:"id"`
	Type           TransactionType     `json:"type"`
	Category       TransactionCategory `json:"category"`
	CustomCategory string              `json:"customCategory,omitempty"`
	AmountNet      decimal.Decimal     `json:"amountNet"`
	GSTApplied     bool                `json:"gstApplied"`
	AmountGross    decimal.Decimal     `json:"amountGross"`
	PaymentMethod  PaymentMethod       `json:"paymentMethod"`
	Description    string              `json:"description"`
	ClientName     string              `json:"clientName,omitempty"`
	Date           time.Time           `json:"date"`
	CreatedBy      int64               `json:"createdBy"`
	CreatedAt      time.Time           `json:"createdAt"`
}

// ComputeGross derives the gross amount from the net amount and the GST
// flag. Net amounts never include GST.
func (t *Transaction) ComputeGross() {
	if t.GSTApplied {
		t.AmountGross = t.AmountNet.Add(t.AmountNet.Mul(gstRate))
	} else {
		t.AmountGross = t.AmountNet
	}
}
