package entities

import (
	"time"

	"github.com/google/uuid"
)

const (
	ReceiptStatusPending        = "Pending"
	ReceiptStatusProcessing     = "Processing"
	ReceiptStatusCompleted      = "Completed"
	ReceiptStatusFailed         = "Failed"
	ReceiptStatusRequiresReview = "RequiresReview"
)

type Receipt struct {
	ID                uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID            uuid.UUID  `json:"user_id"`
	BankAccountID     *uuid.UUID `json:"bank_account_id,omitempty"`
	TransactionID     *uuid.UUID `json:"transaction_id,omitempty"`
	ObjectKey         string     `json:"object_key"`
	FileURL           string     `json:"file_url"`
	MimeType          string     `json:"mime_type"`
	FileSize          int64      `json:"file_size"`
	Status            string     `json:"status"` // Pending, Processing, Completed, Failed, RequiresReview
	Description       string     `json:"description,omitempty"`
	Category          string     `json:"category,omitempty"`
	TaxCategory       string     `json:"tax_category,omitempty"`
	IsBusinessExpense bool       `json:"is_business_expense"`
	ExtractedFields   string     `json:"extracted_fields,omitempty" gorm:"type:text"`
	ValidationResults string     `json:"validation_results,omitempty" gorm:"type:text"`
	ErrorMessage      string     `json:"error_message,omitempty"`
	UploadedAt        time.Time  `json:"uploaded_at"`
	ProcessedAt       *time.Time `json:"processed_at,omitempty"`
	ProcessingTimeMs  int64      `json:"processing_time_ms,omitempty"`

	User        *User        `gorm:"foreignKey:UserID"`
	Transaction *Transaction `gorm:"foreignKey:TransactionID"`
	Timestamp
}
