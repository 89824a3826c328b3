package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessUploadReceipt = "receipt uploaded successfully, extraction in progress"
	MessageSuccessGetReceipt    = "receipt retrieved successfully"
	MessageSuccessGetReceipts   = "receipts retrieved successfully"

	MessageFailedUploadReceipt  = "failed to upload receipt"
	MessageFailedGetReceipt     = "failed to retrieve receipt"
	MessageFailedGetReceipts    = "failed to retrieve receipts"
	MessageFailedProcessReceipt = "failed to process receipt"

	ErrReceiptFileRequired      = errors.New("receipt file is required")
	ErrUnsupportedFileType      = errors.New("unsupported file type, allowed: jpg, jpeg, png, webp, pdf")
	ErrFileTooLarge             = errors.New("file exceeds the 10 MiB size limit")
	ErrCorruptImage             = errors.New("image file is corrupt or unreadable")
	ErrInvalidTransactionRef    = errors.New("invalid transaction reference")
	ErrTransactionAlreadyLinked = errors.New("transaction already has a receipt attached")
	ErrInvalidBankAccountRef    = errors.New("invalid bank account reference")
	ErrReceiptNotFound          = errors.New("receipt not found")
	ErrExtractionFailed         = errors.New("receipt extraction failed")
	ErrExtractionUnavailable    = errors.New("extraction service not configured")
)

type (
	UploadReceiptRequest struct {
		Receipt           *multipart.FileHeader `json:"receipt" form:"receipt" validate:"required"`
		TransactionID     string                `json:"transaction_id" form:"transaction_id" validate:"omitempty,uuid"`
		BankAccountID     string                `json:"bank_account_id" form:"bank_account_id" validate:"omitempty,uuid"`
		Description       string                `json:"description" form:"description"`
		Category          string                `json:"category" form:"category"`
		TaxCategory       string                `json:"tax_category" form:"tax_category"`
		IsBusinessExpense bool                  `json:"is_business_expense" form:"is_business_expense"`
	}

	UploadReceiptResponse struct {
		ReceiptID               string `json:"receipt_id"`
		Status                  string `json:"status"`
		Message                 string `json:"message"`
		EstimatedProcessingTime string `json:"estimated_processing_time"`
	}

	ReceiptLineItem struct {
		Description string  `json:"description"`
		Quantity    float64 `json:"quantity"`
		UnitPrice   float64 `json:"unit_price"`
		LineTotal   float64 `json:"line_total"`
	}

	// ExtractedReceiptData is the transient result of one extraction attempt.
	// It is replaced wholesale on retry, never merged.
	ExtractedReceiptData struct {
		MerchantName   string            `json:"merchant_name,omitempty"`
		BusinessNumber string            `json:"business_number,omitempty"`
		Date           *time.Time        `json:"date,omitempty"`
		TotalAmount    *float64          `json:"total_amount,omitempty"`
		TaxAmount      *float64          `json:"tax_amount,omitempty"`
		LineItems      []ReceiptLineItem `json:"line_items,omitempty"`
		PaymentMethod  string            `json:"payment_method,omitempty"`
		ReceiptNumber  string            `json:"receipt_number,omitempty"`
		Address        string            `json:"address,omitempty"`
		Confidence     float64           `json:"confidence"`
	}

	ValidationResult struct {
		IsValid     bool     `json:"is_valid"`
		Errors      []string `json:"errors"`
		Warnings    []string `json:"warnings"`
		Suggestions []string `json:"suggestions"`
	}

	TransactionSummary struct {
		ID           string    `json:"id"`
		Amount       float64   `json:"amount"`
		Date         time.Time `json:"date"`
		MerchantName string    `json:"merchant_name,omitempty"`
		Category     string    `json:"category"`
	}

	ReceiptStatusResponse struct {
		ID                string                `json:"id"`
		Status            string                `json:"status"`
		FileURL           string                `json:"file_url"`
		ExtractedData     *ExtractedReceiptData `json:"extracted_data,omitempty"`
		ValidationResults *ValidationResult     `json:"validation_results,omitempty"`
		Transaction       *TransactionSummary   `json:"transaction,omitempty"`
		ErrorMessage      string                `json:"error_message,omitempty"`
		UploadedAt        time.Time             `json:"uploaded_at"`
		ProcessedAt       *time.Time            `json:"processed_at,omitempty"`
		ProcessingTimeMs  int64                 `json:"processing_time_ms,omitempty"`
	}

	ReceiptListItem struct {
		ID         string    `json:"id"`
		Status     string    `json:"status"`
		FileURL    string    `json:"file_url"`
		UploadedAt time.Time `json:"uploaded_at"`
	}
)
