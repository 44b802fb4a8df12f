package bot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExpenseMessage(t *testing.T) {
	msg, err := parseExpenseMessage("12.50 groceries weekly shop at the market")

	require.NoError(t, err)
	assert.InDelta(t, 12.50, msg.Amount, 0.001)
	assert.Equal(t, "groceries", msg.Category)
	assert.Equal(t, "weekly shop at the market", msg.Notes)
}

func TestParseExpenseMessage_NoNotes(t *testing.T) {
	msg, err := parseExpenseMessage("5 Coffee")

	require.NoError(t, err)
	assert.InDelta(t, 5.0, msg.Amount, 0.001)
	assert.Equal(t, "coffee", msg.Category)
	assert.Empty(t, msg.Notes)
}

func TestParseExpenseMessage_CommaDecimal(t *testing.T) {
	msg, err := parseExpenseMessage("3,20 transport")

	require.NoError(t, err)
	assert.InDelta(t, 3.20, msg.Amount, 0.001)
}

func TestParseExpenseMessage_MultibyteNotes(t *testing.T) {
	// 100 runes but well over 160 bytes; the length cap counts runes.
	msg, err := parseExpenseMessage("7.50 обед " + strings.Repeat("ъ", 90))

	require.NoError(t, err)
	assert.Equal(t, "обед", msg.Category)
	assert.Equal(t, strings.Repeat("ъ", 90), msg.Notes)
}

func TestParseExpenseMessage_Rejects(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"Empty", ""},
		{"NoCategory", "12.50"},
		{"NotANumber", "lunch 12.50"},
		{"NegativeAmount", "-5 groceries"},
		{"ZeroAmount", "0 groceries"},
		{"TooLong", "5 coffee " + strings.Repeat("x", maxExpenseMessageLen)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseExpenseMessage(tc.text)
			assert.Error(t, err)
		})
	}
}
