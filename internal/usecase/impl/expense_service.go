package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"github.com/Felix-Hz/cofr/internal/domain/entity"
	domainerrors "github.com/Felix-Hz/cofr/internal/domain/errors"
	"github.com/Felix-Hz/cofr/internal/domain/repository"
	"github.com/Felix-Hz/cofr/internal/usecase"
)

const (
	defaultExpensePageSize = 50
	maxExpensePageSize     = 100
)

// expenseService implements the ExpenseUsecase interface.
type expenseService struct {
	expenseRepo repository.ExpenseRepository
	accountRepo repository.AccountRepository
	logger      *slog.Logger
}

// ExpenseServiceParams holds dependencies for expenseService, injected by Fx.
type ExpenseServiceParams struct {
	fx.In

	ExpenseRepo repository.ExpenseRepository
	AccountRepo repository.AccountRepository
	Logger      *slog.Logger
}

// NewExpenseService is the constructor for expenseService.
func NewExpenseService(params ExpenseServiceParams) usecase.ExpenseUsecase {
	return &expenseService{
		expenseRepo: params.ExpenseRepo,
		accountRepo: params.AccountRepo,
		logger:      params.Logger,
	}
}

// ListExpenses returns a page of the account's expenses, newest first.
func (srv *expenseService) ListExpenses(ctx context.Context, accountID uuid.UUID, input usecase.ListExpensesInput) (*usecase.ListExpensesOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultExpensePageSize
	}
	if limit > maxExpensePageSize {
		limit = maxExpensePageSize
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	expenses, total, err := srv.expenseRepo.ListByAccountID(ctx, accountID, repository.ExpenseFilter{
		Category: input.Category,
		Start:    input.Start,
		End:      input.End,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list expenses")
	}

	return &usecase.ListExpensesOutput{
		Expenses: expenses,
		Total:    total,
		Limit:    limit,
		Offset:   offset,
	}, nil
}

// MonthlyStats aggregates one calendar month of the account's spending.
func (srv *expenseService) MonthlyStats(ctx context.Context, accountID uuid.UUID, year int, month time.Month) (*entity.MonthlyStats, error) {
	if month < time.January || month > time.December || year < 2000 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid year or month")
	}

	stats, err := srv.expenseRepo.MonthlyStats(ctx, accountID, year, month)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate monthly stats")
	}

	return stats, nil
}

// AddExpense records a new expense for the account. The currency falls back
// to the account's preferred one when the caller does not supply it.
func (srv *expenseService) AddExpense(ctx context.Context, accountID uuid.UUID, input usecase.AddExpenseInput) (*entity.Expense, error) {
	if input.Category == "" || input.Amount <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("category and a positive amount are required")
	}

	currency := input.Currency
	if currency == "" {
		account, err := srv.accountRepo.FindByID(ctx, accountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return nil, domainerrors.ErrAccountNotFound
			}

			return nil, errors.Wrap(err, "failed to load account")
		}
		currency = account.PreferredCurrency
	}

	timestamp := input.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	expense := &entity.Expense{
		AccountID: accountID,
		Category:  input.Category,
		Amount:    input.Amount,
		Currency:  currency,
		Notes:     input.Notes,
		Timestamp: timestamp,
		Hash:      input.Hash,
	}

	if err := srv.expenseRepo.Create(ctx, expense); err != nil {
		if errors.Is(err, repository.ErrExpenseDuplicate) {
			return nil, domainerrors.ErrExpenseDuplicate
		}

		return nil, err
	}

	srv.logger.Info("Expense recorded",
		slog.Any("accountID", accountID),
		slog.String("category", expense.Category),
		slog.Float64("amount", expense.Amount))

	return expense, nil
}
