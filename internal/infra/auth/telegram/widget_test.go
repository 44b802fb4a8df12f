package telegram

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Felix-Hz/cofr/config"
)

const testBotToken = "123456:ABC-DEF1234ghIkl-zyx57W2v1u123ew11"

// signWidgetFields recomputes the widget signature the way Telegram does, so
// tests exercise the verifier against independently produced hashes.
func signWidgetFields(botToken string, fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		if key == "hash" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, key := range keys {
		lines = append(lines, key+"="+fields[key])
	}

	secret := sha256.Sum256([]byte(botToken))
	mac := hmac.New(sha256.New, secret[:])
	mac.Write([]byte(strings.Join(lines, "\n")))

	return hex.EncodeToString(mac.Sum(nil))
}

func sampleFields() map[string]string {
	return map[string]string{
		"id":         "99887766",
		"first_name": "Alice",
		"last_name":  "Liddell",
		"username":   "alice",
		"auth_date":  "1717171717",
	}
}

func TestVerifyWidgetSignature_Valid(t *testing.T) {
	fields := sampleFields()
	hash := signWidgetFields(testBotToken, fields)

	assert.True(t, VerifyWidgetSignature(testBotToken, fields, hash))
}

func TestVerifyWidgetSignature_IgnoresHashField(t *testing.T) {
	fields := sampleFields()
	hash := signWidgetFields(testBotToken, fields)

	// A payload carrying its own hash field must verify identically.
	fields["hash"] = hash
	assert.True(t, VerifyWidgetSignature(testBotToken, fields, hash))
}

func TestVerifyWidgetSignature_TamperedField(t *testing.T) {
	fields := sampleFields()
	hash := signWidgetFields(testBotToken, fields)

	fields["id"] = "11223344"
	assert.False(t, VerifyWidgetSignature(testBotToken, fields, hash))
}

func TestVerifyWidgetSignature_WrongBotToken(t *testing.T) {
	fields := sampleFields()
	hash := signWidgetFields("999999:other-token", fields)

	assert.False(t, VerifyWidgetSignature(testBotToken, fields, hash))
}

func TestVerifyWidgetSignature_EmptyHash(t *testing.T) {
	assert.False(t, VerifyWidgetSignature(testBotToken, sampleFields(), ""))
}

func TestVerifyWidgetSignature_EmptyBotToken(t *testing.T) {
	fields := sampleFields()
	hash := signWidgetFields(testBotToken, fields)

	assert.False(t, VerifyWidgetSignature("", fields, hash))
}

func TestWidgetVerifier_VerifySignature(t *testing.T) {
	cfg := &config.Config{Telegram: &config.TelegramConfig{BotToken: testBotToken}}
	verifier := NewWidgetVerifier(cfg)

	fields := sampleFields()
	hash := signWidgetFields(testBotToken, fields)

	assert.True(t, verifier.VerifySignature(fields, hash))
	assert.False(t, verifier.VerifySignature(fields, strings.Repeat("0", 64)))
}
