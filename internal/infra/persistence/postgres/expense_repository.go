package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/Felix-Hz/cofr/internal/domain/entity"
	domainerrors "github.com/Felix-Hz/cofr/internal/domain/errors"
	"github.com/Felix-Hz/cofr/internal/domain/repository"
	"github.com/Felix-Hz/cofr/internal/infra/persistence/model"
)

// expenseRepository implements the domain.ExpenseRepository interface.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository is the constructor for expenseRepository.
func NewExpenseRepository(db *gorm.DB) repository.ExpenseRepository {
	return &expenseRepository{db: db}
}

// Create persists a new expense record.
func (repo *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	expenseM := fromExpenseDomain(expense)

	if err := repo.db.WithContext(ctx).Create(expenseM).Error; err != nil {
		// The unique hash column deduplicates repeated bot submissions.
		if isUniqueConstraintViolation(err) {
			return repository.ErrExpenseDuplicate
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrAccountNotFound.WrapMessage("invalid account reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create expense")
	}

	// Update the entity with generated values
	expense.ID = expenseM.ID
	expense.CreatedAt = expenseM.CreatedAt

	return nil
}

// ListByAccountID returns a page of expenses newest-first plus the unpaged total.
func (repo *expenseRepository) ListByAccountID(ctx context.Context, accountID uuid.UUID, filter repository.ExpenseFilter) ([]*entity.Expense, int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Where("account_id = ?", accountID)

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Start != nil {
		query = query.Where("timestamp >= ?", *filter.Start)
	}
	if filter.End != nil {
		query = query.Where("timestamp <= ?", *filter.End)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.WithStack(err)
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var expenseModels []model.ExpenseModel
	err := query.
		Order("timestamp DESC").
		Order("id DESC").
		Find(&expenseModels).Error
	if err != nil {
		return nil, 0, errors.WithStack(err)
	}

	expenses := make([]*entity.Expense, 0, len(expenseModels))
	for i := range expenseModels {
		expenses = append(expenses, toExpenseDomain(&expenseModels[i]))
	}

	return expenses, total, nil
}

// MonthlyStats aggregates one calendar month of the account's spending.
func (repo *expenseRepository) MonthlyStats(ctx context.Context, accountID uuid.UUID, year int, month time.Month) (*entity.MonthlyStats, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	var rows []struct {
		Category string
		Total    float64
		Count    int64
	}
	err := repo.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Select("category, SUM(amount) AS total, COUNT(*) AS count").
		Where("account_id = ? AND timestamp >= ? AND timestamp < ?", accountID, start, end).
		Group("category").
		Order("total DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.WithStack(err)
	}

	stats := &entity.MonthlyStats{}
	for _, row := range rows {
		stats.TotalSpent += row.Total
		stats.TransactionCount += row.Count
		stats.CategoryBreakdown = append(stats.CategoryBreakdown, entity.CategoryTotal{
			Category: row.Category,
			Total:    row.Total,
			Count:    row.Count,
		})
	}

	return stats, nil
}

// --- Mapper Functions ---

// toExpenseDomain converts a GORM ExpenseModel to a domain Expense entity.
func toExpenseDomain(data *model.ExpenseModel) *entity.Expense {
	if data == nil {
		return nil
	}

	return &entity.Expense{
		ID:        data.ID,
		AccountID: data.AccountID,
		Category:  data.Category,
		Amount:    data.Amount,
		Currency:  data.Currency,
		Notes:     data.Notes,
		Timestamp: data.Timestamp,
		Hash:      data.Hash,
		CreatedAt: data.CreatedAt,
	}
}

// fromExpenseDomain converts a domain Expense entity to a GORM ExpenseModel.
func fromExpenseDomain(data *entity.Expense) *model.ExpenseModel {
	if data == nil {
		return nil
	}

	return &model.ExpenseModel{
		ID:        data.ID,
		AccountID: data.AccountID,
		Category:  data.Category,
		Amount:    data.Amount,
		Currency:  data.Currency,
		Notes:     data.Notes,
		Timestamp: data.Timestamp,
		Hash:      data.Hash,
	}
}
