package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Felix-Hz/cofr/internal/delivery/http/response"
	"github.com/Felix-Hz/cofr/internal/domain/entity"
	"github.com/Felix-Hz/cofr/internal/usecase"
)

// ExpenseHandler holds dependencies for the read-only expense endpoints.
type ExpenseHandler struct {
	uc     usecase.ExpenseUsecase
	logger *slog.Logger
}

// NewExpenseHandler is the constructor for ExpenseHandler, injected by Fx.
func NewExpenseHandler(uc usecase.ExpenseUsecase, logger *slog.Logger) *ExpenseHandler {
	return &ExpenseHandler{
		uc:     uc,
		logger: logger,
	}
}

type expenseDTO struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	Notes     string    `json:"notes,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type listExpensesResponse struct {
	Expenses []expenseDTO `json:"expenses"`
	Total    int64        `json:"total"`
	Limit    int          `json:"limit"`
	Offset   int          `json:"offset"`
}

// ListExpenses returns one page of the account's expenses, newest first.
func (h *ExpenseHandler) ListExpenses(c echo.Context) error {
	accountID, err := sessionAccountID(c)
	if err != nil {
		return err
	}

	input := usecase.ListExpensesInput{
		Category: c.QueryParam("category"),
	}
	if limit := c.QueryParam("limit"); limit != "" {
		input.Limit, _ = strconv.Atoi(limit)
	}
	if offset := c.QueryParam("offset"); offset != "" {
		input.Offset, _ = strconv.Atoi(offset)
	}
	if from := c.QueryParam("start"); from != "" {
		start, err := parseTimeParam(from)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid 'start' timestamp")
		}
		input.Start = &start
	}
	if to := c.QueryParam("end"); to != "" {
		end, err := parseTimeParam(to)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid 'end' timestamp")
		}
		input.End = &end
	}

	output, err := h.uc.ListExpenses(c.Request().Context(), accountID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	dtos := make([]expenseDTO, 0, len(output.Expenses))
	for _, expense := range output.Expenses {
		dtos = append(dtos, newExpenseDTO(expense))
	}

	return response.Success(c, http.StatusOK, listExpensesResponse{
		Expenses: dtos,
		Total:    output.Total,
		Limit:    output.Limit,
		Offset:   output.Offset,
	}, "")
}

type monthlyStatsResponse struct {
	Year              int                `json:"year"`
	Month             int                `json:"month"`
	TotalSpent        float64            `json:"total_spent"`
	TransactionCount  int64              `json:"transaction_count"`
	CategoryBreakdown []categoryTotalDTO `json:"category_breakdown"`
}

type categoryTotalDTO struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
	Count    int64   `json:"count"`
}

// MonthlyStats aggregates one calendar month of the account's spending.
func (h *ExpenseHandler) MonthlyStats(c echo.Context) error {
	accountID, err := sessionAccountID(c)
	if err != nil {
		return err
	}

	year, err := strconv.Atoi(c.QueryParam("year"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid or missing 'year'")
	}
	month, err := strconv.Atoi(c.QueryParam("month"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid or missing 'month'")
	}

	stats, err := h.uc.MonthlyStats(c.Request().Context(), accountID, year, time.Month(month))
	if err != nil {
		return errors.WithStack(err)
	}

	breakdown := make([]categoryTotalDTO, 0, len(stats.CategoryBreakdown))
	for _, total := range stats.CategoryBreakdown {
		breakdown = append(breakdown, categoryTotalDTO{
			Category: total.Category,
			Total:    total.Total,
			Count:    total.Count,
		})
	}

	return response.Success(c, http.StatusOK, monthlyStatsResponse{
		Year:              year,
		Month:             month,
		TotalSpent:        stats.TotalSpent,
		TransactionCount:  stats.TransactionCount,
		CategoryBreakdown: breakdown,
	}, "")
}

func newExpenseDTO(expense *entity.Expense) expenseDTO {
	return expenseDTO{
		ID:        expense.ID.String(),
		Category:  expense.Category,
		Amount:    expense.Amount,
		Currency:  expense.Currency,
		Notes:     expense.Notes,
		Timestamp: expense.Timestamp,
	}
}

// parseTimeParam accepts either a full RFC 3339 timestamp or a bare date.
func parseTimeParam(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	return time.Parse("2006-01-02", value)
}
