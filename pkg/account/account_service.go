package account

import (
	"Finora-Backend/domain"
	"Finora-Backend/entities"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	AccountService interface {
		CreateBankAccount(ctx context.Context, req domain.CreateBankAccountRequest, userID string) (domain.BankAccountResponse, error)
		GetBankAccounts(ctx context.Context, userID string) ([]domain.BankAccountResponse, error)
		GetBankAccountByID(ctx context.Context, id string, userID string) (domain.BankAccountResponse, error)
	}

	accountService struct {
		accountRepository AccountRepository
	}
)

func NewAccountService(accountRepository AccountRepository) AccountService {
	return &accountService{accountRepository: accountRepository}
}

func maskAccountNumber(number string) string {
	if len(number) <= 4 {
		return number
	}
	return "****" + number[len(number)-4:]
}

func (s *accountService) CreateBankAccount(ctx context.Context, req domain.CreateBankAccountRequest, userID string) (domain.BankAccountResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.BankAccountResponse{}, domain.ErrParseUUID
	}

	account := &entities.BankAccount{
		ID:            uuid.New(),
		UserID:        userUUID,
		Name:          req.Name,
		BankName:      req.BankName,
		AccountNumber: maskAccountNumber(req.AccountNumber),
		AccountType:   req.AccountType,
		Balance:       req.Balance,
	}

	if err := s.accountRepository.CreateBankAccount(ctx, account); err != nil {
		return domain.BankAccountResponse{}, err
	}

	return toAccountResponse(account), nil
}

func (s *accountService) GetBankAccounts(ctx context.Context, userID string) ([]domain.BankAccountResponse, error) {
	accounts, err := s.accountRepository.GetBankAccounts(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.BankAccountResponse, 0, len(accounts))
	for _, account := range accounts {
		response = append(response, toAccountResponse(account))
	}
	return response, nil
}

func (s *accountService) GetBankAccountByID(ctx context.Context, id string, userID string) (domain.BankAccountResponse, error) {
	account, err := s.accountRepository.GetBankAccountByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.BankAccountResponse{}, domain.ErrBankAccountNotFound
		}
		return domain.BankAccountResponse{}, err
	}

	if account.UserID.String() != userID {
		return domain.BankAccountResponse{}, domain.ErrBankAccountNotFound
	}

	return toAccountResponse(account), nil
}

func toAccountResponse(account *entities.BankAccount) domain.BankAccountResponse {
	return domain.BankAccountResponse{
		ID:            account.ID.String(),
		Name:          account.Name,
		BankName:      account.BankName,
		AccountNumber: account.AccountNumber,
		AccountType:   account.AccountType,
		Balance:       account.Balance,
		CreatedAt:     account.CreatedAt,
	}
}
