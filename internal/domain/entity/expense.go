package entity

import (
	"time"

	"github.com/google/uuid"
)

// Expense is a single recorded transaction belonging to an Account.
type Expense struct {
	ID        uuid.UUID
	AccountID uuid.UUID
	Category  string
	Amount    float64
	Currency  string // ISO 4217 code, defaults to the account's preferred currency.
	Notes     string
	Timestamp time.Time // When the expense happened, not when it was recorded.
	Hash      string    // Dedup key for expenses captured from chat messages, empty for others.
	CreatedAt time.Time
}

// CategoryTotal aggregates spending within one category.
type CategoryTotal struct {
	Category string
	Total    float64
	Count    int64
}

// MonthlyStats summarizes one calendar month of spending.
type MonthlyStats struct {
	TotalSpent        float64
	TransactionCount  int64
	CategoryBreakdown []CategoryTotal
}
