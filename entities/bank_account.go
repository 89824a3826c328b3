package entities

import (
	"github.com/google/uuid"
)

type BankAccount struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	Name          string    `json:"name"`
	BankName      string    `json:"bank_name"`
	AccountNumber string    `json:"account_number"` // last four digits only
	AccountType   string    `json:"account_type"`   // Checking, Savings, Credit
	Balance       float64   `json:"balance"`

	User         *User          `gorm:"foreignKey:UserID"`
	Transactions []*Transaction `gorm:"foreignKey:BankAccountID"`
	Timestamp
}
