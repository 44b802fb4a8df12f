// Package telegram implements signature verification for the Telegram Login
// Widget. The widget signs its payload with HMAC-SHA256 keyed by the SHA256
// digest of the bot token, over the sorted "key=value" lines of every field
// except the hash itself.
package telegram

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"

	"github.com/Felix-Hz/cofr/config"
	"github.com/Felix-Hz/cofr/internal/domain/service"
)

// widgetVerifier is a concrete implementation of the WidgetVerifier interface.
type widgetVerifier struct {
	botToken string
}

// NewWidgetVerifier is the constructor for widgetVerifier.
func NewWidgetVerifier(cfg *config.Config) service.WidgetVerifier {
	return &widgetVerifier{botToken: cfg.Telegram.BotToken}
}

// VerifySignature checks a widget payload against its claimed hash.
func (v *widgetVerifier) VerifySignature(fields map[string]string, hash string) bool {
	return VerifyWidgetSignature(v.botToken, fields, hash)
}

// VerifyWidgetSignature reports whether hash is the valid HMAC-SHA256 hex
// signature of fields under the given bot token. The "hash" key is ignored if
// present in fields. Comparison is constant-time.
func VerifyWidgetSignature(botToken string, fields map[string]string, hash string) bool {
	if botToken == "" || hash == "" {
		return false
	}

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
	dataCheckString := strings.Join(lines, "\n")

	secret := sha256.Sum256([]byte(botToken))
	mac := hmac.New(sha256.New, secret[:])
	mac.Write([]byte(dataCheckString))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(hash))
}
