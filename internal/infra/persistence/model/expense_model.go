package model

import (
	"time"

	"github.com/google/uuid"
)

// ExpenseModel mirrors the 'expenses' table. Hash is a content digest used to
// deduplicate repeated bot submissions.
type ExpenseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;index"`
	Category  string    `gorm:"type:varchar(100);not null;index"`
	Amount    float64   `gorm:"type:numeric(12,2);not null"`
	Currency  string    `gorm:"type:varchar(3);not null"`
	Notes     string    `gorm:"type:text"`
	Timestamp time.Time `gorm:"not null;index"`
	Hash      string    `gorm:"type:varchar(64);uniqueIndex:idx_expenses_hash,where:hash <> ''"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ExpenseModel) TableName() string {
	return "expenses"
}
