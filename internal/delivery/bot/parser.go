// Package bot contains the Telegram long-polling delivery: deep-link
// confirmation and chat-message expense capture.
package bot

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// maxExpenseMessageLen bounds chat messages accepted as expense entries.
const maxExpenseMessageLen = 160

// expenseMessage is a parsed "<amount> <category> [notes]" chat line.
type expenseMessage struct {
	Amount   float64
	Category string
	Notes    string
}

var (
	errMessageTooLong  = errors.New("message too long")
	errMessageNotSpend = errors.New("message is not an expense entry")
)

// parseExpenseMessage reads an "<amount> <category> [notes]" line. The
// amount accepts a comma decimal separator since that is how many keyboards
// type it.
func parseExpenseMessage(text string) (*expenseMessage, error) {
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) > maxExpenseMessageLen {
		return nil, errMessageTooLong
	}

	parts := strings.Fields(text)
	if len(parts) < 2 {
		return nil, errMessageNotSpend
	}

	amount, err := strconv.ParseFloat(strings.ReplaceAll(parts[0], ",", "."), 64)
	if err != nil || amount <= 0 {
		return nil, errMessageNotSpend
	}

	msg := &expenseMessage{
		Amount:   amount,
		Category: strings.ToLower(parts[1]),
	}
	if len(parts) > 2 {
		msg.Notes = strings.Join(parts[2:], " ")
	}

	return msg, nil
}
