package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Felix-Hz/cofr/internal/domain/entity"
	domainerrors "github.com/Felix-Hz/cofr/internal/domain/errors"
	"github.com/Felix-Hz/cofr/internal/domain/repository"
	mockRepo "github.com/Felix-Hz/cofr/internal/mocks/repository"
	"github.com/Felix-Hz/cofr/internal/usecase"
)

type expenseFixture struct {
	expenseRepo *mockRepo.MockExpenseRepository
	accountRepo *mockRepo.MockAccountRepository
	service     usecase.ExpenseUsecase
}

func newExpenseFixture(t *testing.T) *expenseFixture {
	t.Helper()

	f := &expenseFixture{
		expenseRepo: mockRepo.NewMockExpenseRepository(t),
		accountRepo: mockRepo.NewMockAccountRepository(t),
	}
	f.service = NewExpenseService(ExpenseServiceParams{
		ExpenseRepo: f.expenseRepo,
		AccountRepo: f.accountRepo,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return f
}

func TestExpenseService_ListExpenses_DefaultPaging(t *testing.T) {
	f := newExpenseFixture(t)
	ctx := context.Background()

	accountID := uuid.New()
	expenses := []*entity.Expense{
		{ID: uuid.New(), AccountID: accountID, Category: "groceries", Amount: 42.50},
	}

	f.expenseRepo.EXPECT().
		ListByAccountID(ctx, accountID, repository.ExpenseFilter{Limit: defaultExpensePageSize}).
		Return(expenses, int64(1), nil)

	out, err := f.service.ListExpenses(ctx, accountID, usecase.ListExpensesInput{})

	require.NoError(t, err)
	assert.Equal(t, defaultExpensePageSize, out.Limit)
	assert.Equal(t, 0, out.Offset)
	assert.Equal(t, int64(1), out.Total)
	assert.Len(t, out.Expenses, 1)
}

func TestExpenseService_ListExpenses_ClampsLimit(t *testing.T) {
	f := newExpenseFixture(t)
	ctx := context.Background()

	accountID := uuid.New()

	f.expenseRepo.EXPECT().
		ListByAccountID(ctx, accountID, repository.ExpenseFilter{Limit: maxExpensePageSize, Offset: 20}).
		Return(nil, int64(0), nil)

	out, err := f.service.ListExpenses(ctx, accountID, usecase.ListExpensesInput{Limit: 5000, Offset: 20})

	require.NoError(t, err)
	assert.Equal(t, maxExpensePageSize, out.Limit)
	assert.Equal(t, 20, out.Offset)
}

func TestExpenseService_ListExpenses_PassesFilter(t *testing.T) {
	f := newExpenseFixture(t)
	ctx := context.Background()

	accountID := uuid.New()
	start := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	f.expenseRepo.EXPECT().
		ListByAccountID(ctx, accountID, repository.ExpenseFilter{
			Category: "transport",
			Start:    &start,
			End:      &end,
			Limit:    10,
		}).
		Return(nil, int64(0), nil)

	_, err := f.service.ListExpenses(ctx, accountID, usecase.ListExpensesInput{
		Category: "transport",
		Start:    &start,
		End:      &end,
		Limit:    10,
	})

	assert.NoError(t, err)
}

func TestExpenseService_MonthlyStats(t *testing.T) {
	f := newExpenseFixture(t)
	ctx := context.Background()

	accountID := uuid.New()
	stats := &entity.MonthlyStats{
		TotalSpent:       321.90,
		TransactionCount: 7,
		CategoryBreakdown: []entity.CategoryTotal{
			{Category: "groceries", Total: 200.40, Count: 4},
			{Category: "transport", Total: 121.50, Count: 3},
		},
	}

	f.expenseRepo.EXPECT().
		MonthlyStats(ctx, accountID, 2026, time.August).
		Return(stats, nil)

	got, err := f.service.MonthlyStats(ctx, accountID, 2026, time.August)

	require.NoError(t, err)
	assert.InDelta(t, 321.90, got.TotalSpent, 0.001)
	assert.Equal(t, int64(7), got.TransactionCount)
}

func TestExpenseService_MonthlyStats_InvalidInput(t *testing.T) {
	f := newExpenseFixture(t)
	ctx := context.Background()
	accountID := uuid.New()

	_, err := f.service.MonthlyStats(ctx, accountID, 2026, time.Month(13))
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = f.service.MonthlyStats(ctx, accountID, 1999, time.March)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestExpenseService_AddExpense(t *testing.T) {
	f := newExpenseFixture(t)
	ctx := context.Background()

	accountID := uuid.New()
	timestamp := time.Date(2026, time.August, 15, 12, 30, 0, 0, time.UTC)

	f.expenseRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Expense")).
		Run(func(ctx context.Context, expense *entity.Expense) {
			expense.ID = uuid.New()
		}).
		Return(nil)

	got, err := f.service.AddExpense(ctx, accountID, usecase.AddExpenseInput{
		Category:  "groceries",
		Amount:    42.50,
		Currency:  "EUR",
		Notes:     "weekly shop",
		Timestamp: timestamp,
		Hash:      "abc123",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, "EUR", got.Currency)
	assert.Equal(t, timestamp, got.Timestamp)
}

func TestExpenseService_AddExpense_CurrencyFallback(t *testing.T) {
	f := newExpenseFixture(t)
	ctx := context.Background()

	accountID := uuid.New()
	account := &entity.Account{ID: accountID, PreferredCurrency: "NZD"}

	f.accountRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)
	f.expenseRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Expense")).
		Return(nil)

	got, err := f.service.AddExpense(ctx, accountID, usecase.AddExpenseInput{
		Category: "coffee",
		Amount:   5.50,
	})

	require.NoError(t, err)
	assert.Equal(t, "NZD", got.Currency)
	assert.False(t, got.Timestamp.IsZero())
}

func TestExpenseService_AddExpense_Validation(t *testing.T) {
	f := newExpenseFixture(t)
	ctx := context.Background()
	accountID := uuid.New()

	_, err := f.service.AddExpense(ctx, accountID, usecase.AddExpenseInput{Amount: 10, Currency: "NZD"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = f.service.AddExpense(ctx, accountID, usecase.AddExpenseInput{Category: "coffee", Amount: -1, Currency: "NZD"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestExpenseService_AddExpense_Duplicate(t *testing.T) {
	f := newExpenseFixture(t)
	ctx := context.Background()

	accountID := uuid.New()

	f.expenseRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Expense")).
		Return(repository.ErrExpenseDuplicate)

	_, err := f.service.AddExpense(ctx, accountID, usecase.AddExpenseInput{
		Category: "coffee",
		Amount:   5.50,
		Currency: "NZD",
		Hash:     "same-hash",
	})

	assert.ErrorIs(t, err, domainerrors.ErrExpenseDuplicate)
}
