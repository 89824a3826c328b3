package receipt

import (
	"Finora-Backend/domain"
	"Finora-Backend/entities"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func matcherFixture() (*TransactionMatcher, *fakeTransactionRepo, *entities.Receipt) {
	repo := newFakeTransactionRepo()
	accountID := uuid.New()
	receipt := &entities.Receipt{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		BankAccountID: &accountID,
	}
	return NewTransactionMatcher(repo), repo, receipt
}

func debitOn(receipt *entities.Receipt, amount float64, date time.Time) *entities.Transaction {
	return &entities.Transaction{
		ID:            uuid.New(),
		UserID:        receipt.UserID,
		BankAccountID: *receipt.BankAccountID,
		Amount:        amount,
		Type:          "Debit",
		Date:          date,
	}
}

func extractionFor(total float64, date time.Time) domain.ExtractedReceiptData {
	return domain.ExtractedReceiptData{
		MerchantName: "Coles Broadway",
		TotalAmount:  floatPtr(total),
		Date:         timePtr(date),
		Confidence:   0.9,
	}
}

func TestMatchOrCreateLinksExactMatch(t *testing.T) {
	matcher, repo, receipt := matcherFixture()
	date := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	candidate := debitOn(receipt, -42.50, date)
	repo.add(candidate)

	matched, created, err := matcher.MatchOrCreate(context.Background(), receipt, extractionFor(42.50, date), true)

	require.NoError(t, err)
	require.NotNil(t, matched)
	assert.False(t, created)
	assert.Equal(t, candidate.ID, matched.ID)
	require.NotNil(t, matched.ReceiptID)
	assert.Equal(t, receipt.ID, *matched.ReceiptID)
	assert.Empty(t, repo.created)
}

func TestMatchOrCreateAmountTolerance(t *testing.T) {
	matcher, repo, receipt := matcherFixture()
	date := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	repo.add(debitOn(receipt, -42.60, date))

	matched, created, err := matcher.MatchOrCreate(context.Background(), receipt, extractionFor(42.50, date), false)

	require.NoError(t, err)
	require.NotNil(t, matched)
	assert.False(t, created)

	matcher, repo, receipt = matcherFixture()
	repo.add(debitOn(receipt, -42.61, date))

	matched, _, err = matcher.MatchOrCreate(context.Background(), receipt, extractionFor(42.50, date), false)

	require.NoError(t, err)
	assert.Nil(t, matched)
	assert.Empty(t, repo.created)
}

func TestMatchOrCreateDateWindow(t *testing.T) {
	matcher, repo, receipt := matcherFixture()
	date := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	repo.add(debitOn(receipt, -42.50, date.AddDate(0, 0, 3)))
	repo.add(debitOn(receipt, -42.50, date.AddDate(0, 0, -4)))

	matched, _, err := matcher.MatchOrCreate(context.Background(), receipt, extractionFor(42.50, date), false)

	require.NoError(t, err)
	require.NotNil(t, matched)
	assert.Equal(t, date.AddDate(0, 0, 3), matched.Date)
}

func TestMatchOrCreateSkipsCreditsAndLinkedTransactions(t *testing.T) {
	matcher, repo, receipt := matcherFixture()
	date := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	credit := debitOn(receipt, 42.50, date)
	credit.Type = "Credit"
	repo.add(credit)

	otherReceiptID := uuid.New()
	taken := debitOn(receipt, -42.50, date)
	taken.ReceiptID = &otherReceiptID
	repo.add(taken)

	matched, _, err := matcher.MatchOrCreate(context.Background(), receipt, extractionFor(42.50, date), false)

	require.NoError(t, err)
	assert.Nil(t, matched)
}

func TestMatchOrCreatePrefersClosestAmount(t *testing.T) {
	matcher, repo, receipt := matcherFixture()
	date := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	near := debitOn(receipt, -42.50, date.AddDate(0, 0, 2))
	far := debitOn(receipt, -42.55, date)
	repo.add(near)
	repo.add(far)

	matched, _, err := matcher.MatchOrCreate(context.Background(), receipt, extractionFor(42.50, date), false)

	require.NoError(t, err)
	require.NotNil(t, matched)
	assert.Equal(t, near.ID, matched.ID)
}

func TestMatchOrCreateBreaksAmountTieByDate(t *testing.T) {
	matcher, repo, receipt := matcherFixture()
	date := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	sameDay := debitOn(receipt, -42.50, date)
	twoDaysOff := debitOn(receipt, -42.50, date.AddDate(0, 0, -2))
	repo.add(twoDaysOff)
	repo.add(sameDay)

	matched, _, err := matcher.MatchOrCreate(context.Background(), receipt, extractionFor(42.50, date), false)

	require.NoError(t, err)
	require.NotNil(t, matched)
	assert.Equal(t, sameDay.ID, matched.ID)
}

func TestMatchOrCreateFallsThroughClaimedCandidate(t *testing.T) {
	matcher, repo, receipt := matcherFixture()
	date := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	best := debitOn(receipt, -42.50, date)
	second := debitOn(receipt, -42.55, date)
	repo.add(best)
	repo.add(second)
	repo.linkRefused[best.ID] = true

	matched, created, err := matcher.MatchOrCreate(context.Background(), receipt, extractionFor(42.50, date), false)

	require.NoError(t, err)
	require.NotNil(t, matched)
	assert.False(t, created)
	assert.Equal(t, second.ID, matched.ID)
}

func TestMatchOrCreateCreatesExpenseTransaction(t *testing.T) {
	matcher, repo, receipt := matcherFixture()
	receipt.Description = "weekly shop"
	receipt.IsBusinessExpense = true
	date := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	matched, created, err := matcher.MatchOrCreate(context.Background(), receipt, extractionFor(42.50, date), true)

	require.NoError(t, err)
	require.NotNil(t, matched)
	assert.True(t, created)
	require.Len(t, repo.created, 1)

	assert.Equal(t, -42.50, matched.Amount)
	assert.Equal(t, "Debit", matched.Type)
	assert.Equal(t, date, matched.Date)
	assert.Equal(t, "Coles Broadway", matched.MerchantName)
	assert.Equal(t, "Groceries", matched.Category)
	assert.Equal(t, "weekly shop", matched.Description)
	assert.True(t, matched.IsBusinessExpense)
	require.NotNil(t, matched.ReceiptID)
	assert.Equal(t, receipt.ID, *matched.ReceiptID)
}

func TestMatchOrCreateKeepsUserSuppliedCategory(t *testing.T) {
	matcher, _, receipt := matcherFixture()
	receipt.Category = "Travel"
	date := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	matched, created, err := matcher.MatchOrCreate(context.Background(), receipt, extractionFor(42.50, date), true)

	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "Travel", matched.Category)
}

func TestMatchOrCreateSuppressesCreationWhenNotAllowed(t *testing.T) {
	matcher, repo, receipt := matcherFixture()
	date := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	matched, created, err := matcher.MatchOrCreate(context.Background(), receipt, extractionFor(42.50, date), false)

	require.NoError(t, err)
	assert.Nil(t, matched)
	assert.False(t, created)
	assert.Empty(t, repo.created)
}
