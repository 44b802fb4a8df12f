// Package handler contains the HTTP handlers for the application.
package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Felix-Hz/cofr/config"
	"github.com/Felix-Hz/cofr/internal/delivery/http/response"
	"github.com/Felix-Hz/cofr/internal/domain/entity"
	domainerrors "github.com/Felix-Hz/cofr/internal/domain/errors"
	"github.com/Felix-Hz/cofr/internal/usecase"
)

// AuthHandler holds dependencies for the login endpoints.
type AuthHandler struct {
	uc     usecase.IdentityUsecase
	cfg    *config.Config
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.IdentityUsecase, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		cfg:    cfg,
		logger: logger,
	}
}

// TelegramLogin handles a Telegram Login Widget payload. The body is the
// widget's JSON object verbatim; every field except the hash is part of the
// signed payload, so values are kept exactly as Telegram rendered them.
func (h *AuthHandler) TelegramLogin(c echo.Context) error {
	fields, hash, err := decodeWidgetPayload(c.Request().Body)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid widget payload")
	}

	output, err := h.uc.TelegramLogin(c.Request().Context(), usecase.TelegramLoginInput{
		Fields: fields,
		Hash:   hash,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, loginResponse(output), "Login successful")
}

// OAuthLogin redirects the browser to the provider's consent page.
func (h *AuthHandler) OAuthLogin(c echo.Context) error {
	provider := entity.ProviderType(c.Param("provider"))
	if !provider.Valid() {
		return domainerrors.ErrProviderNotConfigured
	}

	authURL, err := h.uc.OAuthAuthorizeURL(c.Request().Context(), provider)
	if err != nil {
		return errors.WithStack(err)
	}

	if c.QueryParam("redirect") == "false" {
		return response.Success(c, http.StatusOK, map[string]string{"auth_url": authURL}, "")
	}

	return c.Redirect(http.StatusTemporaryRedirect, authURL)
}

// OAuthCallback lands the provider redirect, finishes the login and bounces
// the browser back to the frontend with the session token in the fragment.
func (h *AuthHandler) OAuthCallback(c echo.Context) error {
	provider := entity.ProviderType(c.Param("provider"))
	if !provider.Valid() {
		return h.redirectLoginError(c, "unknown_provider")
	}

	if errParam := c.QueryParam("error"); errParam != "" {
		h.logger.Warn("OAuth consent denied",
			slog.String("provider", string(provider)),
			slog.String("error", errParam))

		return h.redirectLoginError(c, "consent_denied")
	}

	output, err := h.uc.OAuthCallback(c.Request().Context(), usecase.OAuthCallbackInput{
		Provider: provider,
		Code:     c.QueryParam("code"),
		State:    c.QueryParam("state"),
	})
	if err != nil {
		h.logger.Warn("OAuth callback failed",
			slog.String("provider", string(provider)),
			slog.Any("error", err))

		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return h.redirectLoginError(c, appErr.ErrorCode())
		}

		return h.redirectLoginError(c, "login_failed")
	}

	// The token rides in the fragment so it never reaches server logs.
	return c.Redirect(http.StatusFound,
		h.cfg.URLs.Frontend+"/auth/callback#token="+url.QueryEscape(output.Token))
}

func (h *AuthHandler) redirectLoginError(c echo.Context, code string) error {
	return c.Redirect(http.StatusFound,
		h.cfg.URLs.Frontend+"/login?error="+url.QueryEscape(code))
}

// decodeWidgetPayload flattens the widget JSON into string fields, preserving
// numeric values digit for digit so signature verification sees what Telegram
// signed.
func decodeWidgetPayload(body io.Reader) (map[string]string, string, error) {
	decoder := json.NewDecoder(body)
	decoder.UseNumber()

	var raw map[string]any
	if err := decoder.Decode(&raw); err != nil {
		return nil, "", err
	}

	fields := make(map[string]string, len(raw))
	hash := ""
	for key, value := range raw {
		var str string
		switch v := value.(type) {
		case string:
			str = v
		case json.Number:
			str = v.String()
		default:
			continue
		}

		if key == "hash" {
			hash = str

			continue
		}
		fields[key] = str
	}

	return fields, hash, nil
}

// --- Response DTOs ---

type accountDTO struct {
	ID                string    `json:"id"`
	FirstName         string    `json:"first_name,omitempty"`
	LastName          string    `json:"last_name,omitempty"`
	Username          string    `json:"username"`
	PreferredCurrency string    `json:"preferred_currency"`
	CreatedAt         string    `json:"created_at"`
	Links             []linkDTO `json:"providers,omitempty"`
}

type linkDTO struct {
	ID          string `json:"id"`
	Provider    string `json:"provider"`
	Email       string `json:"email,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
	LinkedAt    string `json:"linked_at"`
}

func newAccountDTO(account *entity.Account) accountDTO {
	dto := accountDTO{
		ID:                account.ID.String(),
		FirstName:         account.FirstName,
		LastName:          account.LastName,
		Username:          account.Username,
		PreferredCurrency: account.PreferredCurrency,
		CreatedAt:         account.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
	for _, link := range account.Links {
		dto.Links = append(dto.Links, newLinkDTO(&link))
	}

	return dto
}

func newLinkDTO(link *entity.ProviderLink) linkDTO {
	return linkDTO{
		ID:          link.ID.String(),
		Provider:    string(link.Provider),
		Email:       link.Email,
		DisplayName: link.DisplayName,
		LinkedAt:    link.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

func loginResponse(output *usecase.LoginOutput) map[string]any {
	return map[string]any{
		"token":   output.Token,
		"account": newAccountDTO(output.Account),
	}
}
