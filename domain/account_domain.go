package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateAccount = "bank account created successfully"
	MessageSuccessGetAccounts   = "bank accounts retrieved successfully"

	MessageFailedCreateAccount = "failed to create bank account"
	MessageFailedGetAccounts   = "failed to retrieve bank accounts"

	ErrBankAccountNotFound = errors.New("bank account not found")
)

type (
	CreateBankAccountRequest struct {
		Name          string  `json:"name" validate:"required"`
		BankName      string  `json:"bank_name" validate:"required"`
		AccountNumber string  `json:"account_number" validate:"required,min=4"`
		AccountType   string  `json:"account_type" validate:"required,oneof=Checking Savings Credit"`
		Balance       float64 `json:"balance"`
	}

	BankAccountResponse struct {
		ID            string    `json:"id"`
		Name          string    `json:"name"`
		BankName      string    `json:"bank_name"`
		AccountNumber string    `json:"account_number"`
		AccountType   string    `json:"account_type"`
		Balance       float64   `json:"balance"`
		CreatedAt     time.Time `json:"created_at"`
	}
)
