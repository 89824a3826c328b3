package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateTransaction = "transaction created successfully"
	MessageSuccessGetTransactions   = "transactions retrieved successfully"

	MessageFailedCreateTransaction = "failed to create transaction"
	MessageFailedGetTransactions   = "failed to retrieve transactions"

	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInvalidAmount       = errors.New("amount must not be zero")
	ErrInvalidDate         = errors.New("invalid transaction date")
)

type (
	CreateTransactionRequest struct {
		BankAccountID     string  `json:"bank_account_id" validate:"required,uuid"`
		Amount            float64 `json:"amount" validate:"required"`
		Type              string  `json:"type" validate:"required,oneof=Debit Credit"`
		Date              string  `json:"date" validate:"required"`
		Description       string  `json:"description"`
		MerchantName      string  `json:"merchant_name"`
		Category          string  `json:"category"`
		TaxCategory       string  `json:"tax_category"`
		IsBusinessExpense bool    `json:"is_business_expense"`
	}

	TransactionResponse struct {
		ID                string    `json:"id"`
		BankAccountID     string    `json:"bank_account_id"`
		Amount            float64   `json:"amount"`
		Type              string    `json:"type"`
		Date              time.Time `json:"date"`
		Description       string    `json:"description,omitempty"`
		MerchantName      string    `json:"merchant_name,omitempty"`
		Category          string    `json:"category"`
		TaxCategory       string    `json:"tax_category,omitempty"`
		IsBusinessExpense bool      `json:"is_business_expense"`
		ReceiptID         string    `json:"receipt_id,omitempty"`
	}
)
