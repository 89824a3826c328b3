package account

import (
	"Finora-Backend/domain"
	"Finora-Backend/entities"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

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

func TestCreateBankAccountMasksAccountNumber(t *testing.T) {
	service := NewAccountService(newFakeAccountRepo())

	res, err := service.CreateBankAccount(context.Background(), domain.CreateBankAccountRequest{
		Name:          "Everyday",
		BankName:      "CommBank",
		AccountNumber: "062000123456",
		AccountType:   "Checking",
		Balance:       250.00,
	}, uuid.NewString())

	require.NoError(t, err)
	assert.Equal(t, "****3456", res.AccountNumber)
	assert.Equal(t, "Everyday", res.Name)
}

func TestGetBankAccountByIDScopedToOwner(t *testing.T) {
	repo := newFakeAccountRepo()
	service := NewAccountService(repo)
	owner := uuid.New()
	account := &entities.BankAccount{ID: uuid.New(), UserID: owner, Name: "Savings"}
	require.NoError(t, repo.CreateBankAccount(context.Background(), account))

	_, err := service.GetBankAccountByID(context.Background(), account.ID.String(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrBankAccountNotFound)

	res, err := service.GetBankAccountByID(context.Background(), account.ID.String(), owner.String())
	require.NoError(t, err)
	assert.Equal(t, account.ID.String(), res.ID)
}
