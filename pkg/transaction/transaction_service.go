package transaction

import (
	"Finora-Backend/domain"
	"Finora-Backend/entities"
	"Finora-Backend/pkg/account"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	TransactionService interface {
		CreateTransaction(ctx context.Context, req domain.CreateTransactionRequest, userID string) (domain.TransactionResponse, error)
		GetTransactions(ctx context.Context, userID string, bankAccountID string, page, limit int) ([]domain.TransactionResponse, int64, error)
		GetTransactionByID(ctx context.Context, id string, userID string) (domain.TransactionResponse, error)
	}

	transactionService struct {
		transactionRepository TransactionRepository
		accountRepository     account.AccountRepository
	}
)

func NewTransactionService(transactionRepository TransactionRepository, accountRepository account.AccountRepository) TransactionService {
	return &transactionService{
		transactionRepository: transactionRepository,
		accountRepository:     accountRepository,
	}
}

func (s *transactionService) CreateTransaction(ctx context.Context, req domain.CreateTransactionRequest, userID string) (domain.TransactionResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.TransactionResponse{}, domain.ErrParseUUID
	}

	if req.Amount == 0 {
		return domain.TransactionResponse{}, domain.ErrInvalidAmount
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return domain.TransactionResponse{}, domain.ErrInvalidDate
	}

	bankAccount, err := s.accountRepository.GetBankAccountByID(ctx, req.BankAccountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.TransactionResponse{}, domain.ErrBankAccountNotFound
		}
		return domain.TransactionResponse{}, err
	}

	if bankAccount.UserID.String() != userID {
		return domain.TransactionResponse{}, domain.ErrBankAccountNotFound
	}

	transaction := &entities.Transaction{
		ID:                uuid.New(),
		UserID:            userUUID,
		BankAccountID:     bankAccount.ID,
		Amount:            req.Amount,
		Type:              req.Type,
		Date:              date,
		Description:       req.Description,
		MerchantName:      req.MerchantName,
		Category:          req.Category,
		TaxCategory:       req.TaxCategory,
		IsBusinessExpense: req.IsBusinessExpense,
	}

	if err := s.transactionRepository.CreateTransaction(ctx, transaction); err != nil {
		return domain.TransactionResponse{}, err
	}

	return toTransactionResponse(transaction), nil
}

func (s *transactionService) GetTransactions(ctx context.Context, userID string, bankAccountID string, page, limit int) ([]domain.TransactionResponse, int64, error) {
	transactions, count, err := s.transactionRepository.GetTransactions(ctx, userID, bankAccountID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.TransactionResponse, 0, len(transactions))
	for _, transaction := range transactions {
		response = append(response, toTransactionResponse(transaction))
	}
	return response, count, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, id string, userID string) (domain.TransactionResponse, error) {
	transaction, err := s.transactionRepository.GetTransactionByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.TransactionResponse{}, domain.ErrTransactionNotFound
		}
		return domain.TransactionResponse{}, err
	}

	if transaction.UserID.String() != userID {
		return domain.TransactionResponse{}, domain.ErrTransactionNotFound
	}

	return toTransactionResponse(transaction), nil
}

func toTransactionResponse(transaction *entities.Transaction) domain.TransactionResponse {
	response := domain.TransactionResponse{
		ID:                transaction.ID.String(),
		BankAccountID:     transaction.BankAccountID.String(),
		Amount:            transaction.Amount,
		Type:              transaction.Type,
		Date:              transaction.Date,
		Description:       transaction.Description,
		MerchantName:      transaction.MerchantName,
		Category:          transaction.Category,
		TaxCategory:       transaction.TaxCategory,
		IsBusinessExpense: transaction.IsBusinessExpense,
	}
	if transaction.ReceiptID != nil {
		response.ReceiptID = transaction.ReceiptID.String()
	}
	return response
}
