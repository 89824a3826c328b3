package receipt

import (
	"Finora-Backend/domain"
	"Finora-Backend/entities"
	"Finora-Backend/pkg/transaction"
	"context"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
)

const (
	matchDateWindowDays = 3
	amountTolerance     = 0.10
)

// TransactionMatcher reconciles an extracted receipt against existing bank
// transactions on one account.
type TransactionMatcher struct {
	transactionRepository transaction.TransactionRepository
}

func NewTransactionMatcher(transactionRepository transaction.TransactionRepository) *TransactionMatcher {
	return &TransactionMatcher{transactionRepository: transactionRepository}
}

// MatchOrCreate searches unlinked debit transactions dated within three days of
// the extracted date whose absolute amount is within ten cents of the extracted
// total. Ties break deterministically: closest amount, then closest date, then
// lowest id. Linking uses a conditional update, so a candidate claimed by a
// concurrent upload falls through to the next one. When nothing matches and
// allowCreate is set, a new expense transaction is created and linked.
// Returns the linked transaction and whether it was newly created.
func (m *TransactionMatcher) MatchOrCreate(ctx context.Context, receipt *entities.Receipt, data domain.ExtractedReceiptData, allowCreate bool) (*entities.Transaction, bool, error) {
	total := *data.TotalAmount
	date := *data.Date

	from := date.AddDate(0, 0, -matchDateWindowDays)
	to := date.AddDate(0, 0, matchDateWindowDays)

	candidates, err := m.transactionRepository.GetUnmatchedDebits(
		ctx, receipt.UserID.String(), receipt.BankAccountID.String(), from, to,
	)
	if err != nil {
		return nil, false, err
	}

	matches := make([]*entities.Transaction, 0, len(candidates))
	for _, candidate := range candidates {
		if math.Abs(math.Abs(candidate.Amount)-total) <= amountTolerance {
			matches = append(matches, candidate)
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		amountDiffI := math.Abs(math.Abs(matches[i].Amount) - total)
		amountDiffJ := math.Abs(math.Abs(matches[j].Amount) - total)
		if amountDiffI != amountDiffJ {
			return amountDiffI < amountDiffJ
		}
		dateDiffI := absDuration(matches[i].Date.Sub(date))
		dateDiffJ := absDuration(matches[j].Date.Sub(date))
		if dateDiffI != dateDiffJ {
			return dateDiffI < dateDiffJ
		}
		return matches[i].ID.String() < matches[j].ID.String()
	})

	for _, match := range matches {
		linked, err := m.transactionRepository.LinkReceipt(ctx, match.ID, receipt.ID)
		if err != nil {
			return nil, false, err
		}
		if linked {
			match.ReceiptID = &receipt.ID
			return match, false, nil
		}
	}

	if !allowCreate {
		return nil, false, nil
	}

	category := receipt.Category
	if category == "" {
		category = DeriveCategory(data.MerchantName)
	}

	created := &entities.Transaction{
		ID:                uuid.New(),
		UserID:            receipt.UserID,
		BankAccountID:     *receipt.BankAccountID,
		Amount:            -math.Abs(total),
		Type:              "Debit",
		Date:              date,
		Description:       receipt.Description,
		MerchantName:      data.MerchantName,
		Category:          category,
		TaxCategory:       receipt.TaxCategory,
		IsBusinessExpense: receipt.IsBusinessExpense,
		ReceiptID:         &receipt.ID,
	}

	if err := m.transactionRepository.CreateTransaction(ctx, created); err != nil {
		return nil, false, err
	}

	return created, true, nil
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
