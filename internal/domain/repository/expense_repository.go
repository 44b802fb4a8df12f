package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Felix-Hz/cofr/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrExpenseDuplicate is returned when an expense with the same dedup hash
// has already been recorded.
var ErrExpenseDuplicate = errors.New("expense already recorded")

// ExpenseFilter narrows an expense listing. Zero values mean "no filter".
type ExpenseFilter struct {
	Category string
	Start    *time.Time
	End      *time.Time
	Limit    int
	Offset   int
}

// ExpenseRepository defines the operations for expense persistence.
type ExpenseRepository interface {
	// Create persists a new expense. Returns ErrExpenseDuplicate when the
	// dedup hash is already present.
	Create(ctx context.Context, expense *entity.Expense) error

	// ListByAccountID returns a page of the account's expenses ordered by
	// timestamp descending (id descending as tiebreaker), plus the unpaged
	// total count for the same filter.
	ListByAccountID(ctx context.Context, accountID uuid.UUID, filter ExpenseFilter) ([]*entity.Expense, int64, error)

	// MonthlyStats aggregates one calendar month of the account's spending.
	MonthlyStats(ctx context.Context, accountID uuid.UUID, year int, month time.Month) (*entity.MonthlyStats, error)
}
