package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Felix-Hz/cofr/internal/domain/entity"
)

// --- Input DTOs ---

// ListExpensesInput narrows and pages an expense listing.
type ListExpensesInput struct {
	Category string
	Start    *time.Time
	End      *time.Time
	Limit    int
	Offset   int
}

// AddExpenseInput describes one expense to record. Hash, when set, dedupes
// repeated submissions of the same source message.
type AddExpenseInput struct {
	Category  string
	Amount    float64
	Currency  string
	Notes     string
	Timestamp time.Time
	Hash      string
}

// --- Output DTOs ---

// ListExpensesOutput is one page of expenses plus the unpaged total.
type ListExpensesOutput struct {
	Expenses []*entity.Expense
	Total    int64
	Limit    int
	Offset   int
}

// ExpenseUsecase defines the read-and-capture expense operations.
type ExpenseUsecase interface {
	// ListExpenses returns a page of the account's expenses, newest first.
	ListExpenses(ctx context.Context, accountID uuid.UUID, input ListExpensesInput) (*ListExpensesOutput, error)

	// MonthlyStats aggregates one calendar month of the account's spending.
	MonthlyStats(ctx context.Context, accountID uuid.UUID, year int, month time.Month) (*entity.MonthlyStats, error)

	// AddExpense records a new expense for the account.
	AddExpense(ctx context.Context, accountID uuid.UUID, input AddExpenseInput) (*entity.Expense, error)
}
