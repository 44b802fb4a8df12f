package oauth

import (
	"encoding/base64"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

// idTokenClaims are the identity claims carried in an OIDC id_token payload.
// Only the fields the resolver needs are decoded.
type idTokenClaims struct {
	Sub           string    `json:"sub"`
	Email         string    `json:"email"`
	EmailVerified looseBool `json:"email_verified"`
	Name          string    `json:"name"`
	GivenName     string    `json:"given_name"`
	FamilyName    string    `json:"family_name"`
}

// looseBool accepts both JSON booleans and the string booleans Apple emits.
type looseBool bool

func (b *looseBool) UnmarshalJSON(data []byte) error {
	switch strings.Trim(string(data), `"`) {
	case "true":
		*b = true
	case "false", "null", "":
		*b = false
	default:
		return errors.Errorf("cannot parse %s as bool", string(data))
	}
	return nil
}

// decodeIDTokenClaims extracts the claims from a JWT id_token without
// verifying its signature. The token arrives over the provider's TLS token
// endpoint in direct response to our code exchange, so its origin is already
// authenticated.
func decodeIDTokenClaims(token string) (*idTokenClaims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, errors.New("invalid JWT format")
	}

	decoded, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode token payload")
	}

	var claims idTokenClaims
	if err := json.Unmarshal(decoded, &claims); err != nil {
		return nil, errors.Wrap(err, "failed to parse token claims")
	}

	return &claims, nil
}

// displayName joins the best available name parts from the claims.
func (c *idTokenClaims) displayName() string {
	if c.Name != "" {
		return c.Name
	}
	return strings.TrimSpace(c.GivenName + " " + c.FamilyName)
}
