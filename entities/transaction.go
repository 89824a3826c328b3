package entities

import (
	"time"

	"github.com/google/uuid"
)

type Transaction struct {
	ID                uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID            uuid.UUID  `json:"user_id"`
	BankAccountID     uuid.UUID  `json:"bank_account_id"`
	Amount            float64    `json:"amount"` // negative = expense
	Type              string     `json:"type"`   // Debit, Credit
	Date              time.Time  `json:"date"`
	Description       string     `json:"description"`
	MerchantName      string     `json:"merchant_name,omitempty"`
	Category          string     `json:"category"`
	TaxCategory       string     `json:"tax_category,omitempty"`
	IsBusinessExpense bool       `json:"is_business_expense"`
	ReceiptID         *uuid.UUID `json:"receipt_id,omitempty"`

	User        *User        `gorm:"foreignKey:UserID"`
	BankAccount *BankAccount `gorm:"foreignKey:BankAccountID"`
	Timestamp
}
