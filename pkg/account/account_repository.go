package account

import (
	"Finora-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	AccountRepository interface {
		CreateBankAccount(ctx context.Context, account *entities.BankAccount) error
		GetBankAccountByID(ctx context.Context, id string) (*entities.BankAccount, error)
		GetBankAccounts(ctx context.Context, userID string) ([]*entities.BankAccount, error)
	}

	accountRepository struct {
		db *gorm.DB
	}
)

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) CreateBankAccount(ctx context.Context, account *entities.BankAccount) error {
	return r.db.WithContext(ctx).Create(account).Error
}

func (r *accountRepository) GetBankAccountByID(ctx context.Context, id string) (*entities.BankAccount, error) {
	var account entities.BankAccount
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) GetBankAccounts(ctx context.Context, userID string) ([]*entities.BankAccount, error) {
	var accounts []*entities.BankAccount
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}
