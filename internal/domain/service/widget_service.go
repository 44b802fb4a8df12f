package service

// WidgetVerifier validates a Telegram Login Widget payload signature.
// Implementations are pure: no network calls, no errors, false on any
// malformed or mismatched input.
type WidgetVerifier interface {
	// VerifySignature checks the HMAC signature over the widget fields.
	// The fields map must not include the "hash" entry; that is passed
	// separately.
	VerifySignature(fields map[string]string, hash string) bool
}
