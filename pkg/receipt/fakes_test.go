package receipt

import (
	"Finora-Backend/domain"
	"Finora-Backend/entities"
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakeTransactionRepo struct {
	mu           sync.Mutex
	transactions map[uuid.UUID]*entities.Transaction
	created      []*entities.Transaction
	linkRefused  map[uuid.UUID]bool
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{
		transactions: make(map[uuid.UUID]*entities.Transaction),
		linkRefused:  make(map[uuid.UUID]bool),
	}
}

func (f *fakeTransactionRepo) add(transaction *entities.Transaction) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.transactions[transaction.ID] = transaction
}

func (f *fakeTransactionRepo) CreateTransaction(_ context.Context, transaction *entities.Transaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.transactions[transaction.ID] = transaction
	f.created = append(f.created, transaction)
	return nil
}

func (f *fakeTransactionRepo) GetTransactionByID(_ context.Context, id string) (*entities.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	transaction, ok := f.transactions[parsed]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return transaction, nil
}

func (f *fakeTransactionRepo) GetTransactions(_ context.Context, userID string, bankAccountID string, page, limit int) ([]*entities.Transaction, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []*entities.Transaction
	for _, transaction := range f.transactions {
		if transaction.UserID.String() == userID {
			result = append(result, transaction)
		}
	}
	return result, int64(len(result)), nil
}

func (f *fakeTransactionRepo) GetUnmatchedDebits(_ context.Context, userID string, bankAccountID string, from, to time.Time) ([]*entities.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []*entities.Transaction
	for _, transaction := range f.transactions {
		if transaction.UserID.String() != userID ||
			transaction.BankAccountID.String() != bankAccountID ||
			transaction.Type != "Debit" ||
			transaction.ReceiptID != nil {
			continue
		}
		if transaction.Date.Before(from) || transaction.Date.After(to) {
			continue
		}
		result = append(result, transaction)
	}
	return result, nil
}

func (f *fakeTransactionRepo) LinkReceipt(_ context.Context, transactionID, receiptID uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.linkRefused[transactionID] {
		return false, nil
	}
	transaction, ok := f.transactions[transactionID]
	if !ok || transaction.ReceiptID != nil {
		return false, nil
	}
	transaction.ReceiptID = &receiptID
	return true, nil
}

type fakeReceiptRepo struct {
	mu        sync.Mutex
	receipts  map[uuid.UUID]*entities.Receipt
	createErr error
}

func newFakeReceiptRepo() *fakeReceiptRepo {
	return &fakeReceiptRepo{receipts: make(map[uuid.UUID]*entities.Receipt)}
}

func (f *fakeReceiptRepo) CreateReceipt(_ context.Context, receipt *entities.Receipt) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	clone := *receipt
	f.receipts[receipt.ID] = &clone
	return nil
}

func (f *fakeReceiptRepo) GetReceiptByID(_ context.Context, id string) (*entities.Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	receipt, ok := f.receipts[parsed]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *receipt
	return &clone, nil
}

func (f *fakeReceiptRepo) UpdateReceipt(_ context.Context, receipt *entities.Receipt) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	clone := *receipt
	f.receipts[receipt.ID] = &clone
	return nil
}

func (f *fakeReceiptRepo) GetReceipts(_ context.Context, userID string, status string, page, limit int) ([]*entities.Receipt, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []*entities.Receipt
	for _, receipt := range f.receipts {
		if receipt.UserID.String() != userID {
			continue
		}
		if status != "all" && status != "" && receipt.Status != status {
			continue
		}
		clone := *receipt
		result = append(result, &clone)
	}
	return result, int64(len(result)), nil
}

func (f *fakeReceiptRepo) status(id uuid.UUID) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	receipt, ok := f.receipts[id]
	if !ok {
		return ""
	}
	return receipt.Status
}

func (f *fakeReceiptRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.receipts)
}

type fakeAccountRepo struct {
	accounts map[uuid.UUID]*entities.BankAccount
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[uuid.UUID]*entities.BankAccount)}
}

func (f *fakeAccountRepo) CreateBankAccount(_ context.Context, account *entities.BankAccount) error {
	f.accounts[account.ID] = account
	return nil
}

func (f *fakeAccountRepo) GetBankAccountByID(_ context.Context, id string) (*entities.BankAccount, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	account, ok := f.accounts[parsed]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return account, nil
}

func (f *fakeAccountRepo) GetBankAccounts(_ context.Context, userID string) ([]*entities.BankAccount, error) {
	var result []*entities.BankAccount
	for _, account := range f.accounts {
		if account.UserID.String() == userID {
			result = append(result, account)
		}
	}
	return result, nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*entities.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entities.User)}
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *entities.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	user, ok := f.users[parsed]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) UpdateUser(_ context.Context, user *entities.User) error {
	f.users[user.ID] = user
	return nil
}

type fakeAuditRepo struct {
	mu      sync.Mutex
	entries []*entities.AuditLog
}

func (f *fakeAuditRepo) CreateAuditLog(_ context.Context, entry *entities.AuditLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeAuditRepo) GetAuditLogs(_ context.Context, userID string, page, limit int) ([]*entities.AuditLog, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.entries, int64(len(f.entries)), nil
}

func (f *fakeAuditRepo) last() *entities.AuditLog {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.entries) == 0 {
		return nil
	}
	return f.entries[len(f.entries)-1]
}

type fakeStorage struct {
	mu        sync.Mutex
	uploads   map[string]string // key -> local path
	deleted   []string
	uploadErr error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{uploads: make(map[string]string)}
}

func (f *fakeStorage) UploadLocalFile(localPath string, objectKey string, contentType string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.uploadErr != nil {
		return f.uploadErr
	}
	f.uploads[objectKey] = localPath
	return nil
}

func (f *fakeStorage) DeleteFile(objectKey string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, objectKey)
	return nil
}

func (f *fakeStorage) GetPublicLinkKey(objectKey string) string {
	return "https://files.test/" + objectKey
}

func (f *fakeStorage) PresignGetObject(_ context.Context, objectKey string, _ time.Duration) (string, error) {
	return "https://files.test/signed/" + objectKey, nil
}

type fakeExtractor struct {
	data domain.ExtractedReceiptData
	err  error
}

func (f *fakeExtractor) ExtractReceiptData(_ context.Context, _ string) (domain.ExtractedReceiptData, error) {
	if f.err != nil {
		return domain.ExtractedReceiptData{}, f.err
	}
	return f.data, nil
}
