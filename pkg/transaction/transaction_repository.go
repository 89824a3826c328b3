package transaction

import (
	"Finora-Backend/entities"
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	TransactionRepository interface {
		CreateTransaction(ctx context.Context, transaction *entities.Transaction) error
		GetTransactionByID(ctx context.Context, id string) (*entities.Transaction, error)
		GetTransactions(ctx context.Context, userID string, bankAccountID string, page, limit int) ([]*entities.Transaction, int64, error)
		GetUnmatchedDebits(ctx context.Context, userID string, bankAccountID string, from, to time.Time) ([]*entities.Transaction, error)
		LinkReceipt(ctx context.Context, transactionID, receiptID uuid.UUID) (bool, error)
	}

	transactionRepository struct {
		db *gorm.DB
	}
)

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) CreateTransaction(ctx context.Context, transaction *entities.Transaction) error {
	return r.db.WithContext(ctx).Create(transaction).Error
}

func (r *transactionRepository) GetTransactionByID(ctx context.Context, id string) (*entities.Transaction, error) {
	var transaction entities.Transaction
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&transaction).Error; err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (r *transactionRepository) GetTransactions(ctx context.Context, userID string, bankAccountID string, page, limit int) ([]*entities.Transaction, int64, error) {
	var transactions []*entities.Transaction
	var count int64

	offset := (page - 1) * limit
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)

	if bankAccountID != "" {
		query = query.Where("bank_account_id = ?", bankAccountID)
	}

	if err := query.Model(&entities.Transaction{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(limit).Order("date desc").Find(&transactions).Error; err != nil {
		return nil, 0, err
	}

	return transactions, count, nil
}

func (r *transactionRepository) GetUnmatchedDebits(ctx context.Context, userID string, bankAccountID string, from, to time.Time) ([]*entities.Transaction, error) {
	var transactions []*entities.Transaction
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND bank_account_id = ? AND type = ? AND receipt_id IS NULL AND date BETWEEN ? AND ?",
			userID, bankAccountID, "Debit", from, to).
		Order("date asc").
		Find(&transactions).Error; err != nil {
		return nil, err
	}
	return transactions, nil
}

// LinkReceipt attaches a receipt to a transaction only if no receipt claimed it
// yet. Returns false when another receipt won the race.
func (r *transactionRepository) LinkReceipt(ctx context.Context, transactionID, receiptID uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Model(&entities.Transaction{}).
		Where("id = ? AND receipt_id IS NULL", transactionID).
		Update("receipt_id", receiptID)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
