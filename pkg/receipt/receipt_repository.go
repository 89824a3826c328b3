package receipt

import (
	"Finora-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	ReceiptRepository interface {
		CreateReceipt(ctx context.Context, receipt *entities.Receipt) error
		GetReceiptByID(ctx context.Context, id string) (*entities.Receipt, error)
		UpdateReceipt(ctx context.Context, receipt *entities.Receipt) error
		GetReceipts(ctx context.Context, userID string, status string, page, limit int) ([]*entities.Receipt, int64, error)
	}

	receiptRepository struct {
		db *gorm.DB
	}
)

func NewReceiptRepository(db *gorm.DB) ReceiptRepository {
	return &receiptRepository{db: db}
}

func (r *receiptRepository) CreateReceipt(ctx context.Context, receipt *entities.Receipt) error {
	return r.db.WithContext(ctx).Create(receipt).Error
}

func (r *receiptRepository) GetReceiptByID(ctx context.Context, id string) (*entities.Receipt, error) {
	var receipt entities.Receipt
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&receipt).Error; err != nil {
		return nil, err
	}
	return &receipt, nil
}

func (r *receiptRepository) UpdateReceipt(ctx context.Context, receipt *entities.Receipt) error {
	return r.db.WithContext(ctx).Save(receipt).Error
}

func (r *receiptRepository) GetReceipts(ctx context.Context, userID string, status string, page, limit int) ([]*entities.Receipt, int64, error) {
	var receipts []*entities.Receipt
	var count int64

	offset := (page - 1) * limit
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)

	if status != "all" && status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Model(&entities.Receipt{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(limit).Order("uploaded_at desc").Find(&receipts).Error; err != nil {
		return nil, 0, err
	}

	return receipts, count, nil
}
