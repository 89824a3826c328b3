package transaction

import (
	"Finora-Backend/domain"
	"Finora-Backend/entities"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeTransactionRepo struct {
	transactions map[uuid.UUID]*entities.Transaction
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{transactions: make(map[uuid.UUID]*entities.Transaction)}
}

func (f *fakeTransactionRepo) CreateTransaction(_ context.Context, transaction *entities.Transaction) error {
	f.transactions[transaction.ID] = transaction
	return nil
}

func (f *fakeTransactionRepo) GetTransactionByID(_ context.Context, id string) (*entities.Transaction, error) {
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
	var result []*entities.Transaction
	for _, transaction := range f.transactions {
		if transaction.UserID.String() == userID {
			result = append(result, transaction)
		}
	}
	return result, int64(len(result)), nil
}

func (f *fakeTransactionRepo) GetUnmatchedDebits(_ context.Context, userID string, bankAccountID string, from, to time.Time) ([]*entities.Transaction, error) {
	return nil, nil
}

func (f *fakeTransactionRepo) LinkReceipt(_ context.Context, transactionID, receiptID uuid.UUID) (bool, error) {
	transaction, ok := f.transactions[transactionID]
	if !ok || transaction.ReceiptID != nil {
		return false, nil
	}
	transaction.ReceiptID = &receiptID
	return true, nil
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
	return nil, nil
}

func TestCreateTransaction(t *testing.T) {
	transactions := newFakeTransactionRepo()
	accounts := newFakeAccountRepo()
	service := NewTransactionService(transactions, accounts)

	owner := uuid.New()
	account := &entities.BankAccount{ID: uuid.New(), UserID: owner}
	require.NoError(t, accounts.CreateBankAccount(context.Background(), account))

	res, err := service.CreateTransaction(context.Background(), domain.CreateTransactionRequest{
		BankAccountID: account.ID.String(),
		Amount:        -42.50,
		Type:          "Debit",
		Date:          "2026-08-20",
		MerchantName:  "Coles",
	}, owner.String())

	require.NoError(t, err)
	assert.Equal(t, -42.50, res.Amount)
	assert.Equal(t, "Debit", res.Type)
	assert.Equal(t, time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC), res.Date)
	assert.Len(t, transactions.transactions, 1)
}

func TestCreateTransactionRejectsZeroAmount(t *testing.T) {
	service := NewTransactionService(newFakeTransactionRepo(), newFakeAccountRepo())

	_, err := service.CreateTransaction(context.Background(), domain.CreateTransactionRequest{
		BankAccountID: uuid.NewString(),
		Amount:        0,
		Type:          "Debit",
		Date:          "2026-08-20",
	}, uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestCreateTransactionRejectsBadDate(t *testing.T) {
	service := NewTransactionService(newFakeTransactionRepo(), newFakeAccountRepo())

	_, err := service.CreateTransaction(context.Background(), domain.CreateTransactionRequest{
		BankAccountID: uuid.NewString(),
		Amount:        -10,
		Type:          "Debit",
		Date:          "20/08/2026",
	}, uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestCreateTransactionRejectsForeignAccount(t *testing.T) {
	transactions := newFakeTransactionRepo()
	accounts := newFakeAccountRepo()
	service := NewTransactionService(transactions, accounts)

	account := &entities.BankAccount{ID: uuid.New(), UserID: uuid.New()}
	require.NoError(t, accounts.CreateBankAccount(context.Background(), account))

	_, err := service.CreateTransaction(context.Background(), domain.CreateTransactionRequest{
		BankAccountID: account.ID.String(),
		Amount:        -10,
		Type:          "Debit",
		Date:          "2026-08-20",
	}, uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrBankAccountNotFound)
	assert.Empty(t, transactions.transactions)
}

func TestGetTransactionByIDScopedToOwner(t *testing.T) {
	transactions := newFakeTransactionRepo()
	service := NewTransactionService(transactions, newFakeAccountRepo())

	owner := uuid.New()
	transaction := &entities.Transaction{ID: uuid.New(), UserID: owner, BankAccountID: uuid.New(), Amount: -10, Type: "Debit"}
	require.NoError(t, transactions.CreateTransaction(context.Background(), transaction))

	_, err := service.GetTransactionByID(context.Background(), transaction.ID.String(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrTransactionNotFound)

	res, err := service.GetTransactionByID(context.Background(), transaction.ID.String(), owner.String())
	require.NoError(t, err)
	assert.Equal(t, transaction.ID.String(), res.ID)
}
