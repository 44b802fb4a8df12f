package handler

import (
	"encoding/base64"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Felix-Hz/cofr/internal/delivery/http/middleware"
	"github.com/Felix-Hz/cofr/internal/delivery/http/response"
	domainerrors "github.com/Felix-Hz/cofr/internal/domain/errors"
	"github.com/Felix-Hz/cofr/internal/usecase"
)

// AccountHandler holds dependencies for profile and link management.
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	linkUC    usecase.LinkUsecase
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(accountUC usecase.AccountUsecase, linkUC usecase.LinkUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		accountUC: accountUC,
		linkUC:    linkUC,
		logger:    logger,
	}
}

// GetProfile returns the authenticated account with its provider links.
func (h *AccountHandler) GetProfile(c echo.Context) error {
	accountID, err := sessionAccountID(c)
	if err != nil {
		return err
	}

	account, err := h.accountUC.GetProfile(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAccountDTO(account), "")
}

type updateProfileRequest struct {
	FirstName         *string `json:"first_name"`
	LastName          *string `json:"last_name"`
	Username          *string `json:"username" validate:"omitempty,min=1,max=64"`
	PreferredCurrency *string `json:"preferred_currency" validate:"omitempty,len=3,alpha"`
}

// UpdateProfile applies a partial profile update.
func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	accountID, err := sessionAccountID(c)
	if err != nil {
		return err
	}

	var input updateProfileRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	account, err := h.accountUC.UpdateProfile(c.Request().Context(), accountID, usecase.UpdateProfileInput{
		FirstName:         input.FirstName,
		LastName:          input.LastName,
		Username:          input.Username,
		PreferredCurrency: input.PreferredCurrency,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAccountDTO(account), "Profile updated")
}

// ListProviders returns the account's linked identity providers.
func (h *AccountHandler) ListProviders(c echo.Context) error {
	accountID, err := sessionAccountID(c)
	if err != nil {
		return err
	}

	links, err := h.linkUC.ListLinks(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	dtos := make([]linkDTO, 0, len(links))
	for _, link := range links {
		dtos = append(dtos, newLinkDTO(link))
	}

	return response.Success(c, http.StatusOK, dtos, "")
}

// Unlink removes one provider link, addressed by its id, from the account.
func (h *AccountHandler) Unlink(c echo.Context) error {
	accountID, err := sessionAccountID(c)
	if err != nil {
		return err
	}

	linkID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrLinkNotFound
	}

	if err := h.linkUC.Unlink(c.Request().Context(), accountID, linkID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": linkID.String()}, "Provider unlinked")
}

// LinkTelegramWidget binds a Login Widget payload to the authenticated
// account, the browser-side alternative to the bot deep link.
func (h *AccountHandler) LinkTelegramWidget(c echo.Context) error {
	accountID, err := sessionAccountID(c)
	if err != nil {
		return err
	}

	fields, hash, err := decodeWidgetPayload(c.Request().Body)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid widget payload")
	}

	link, err := h.linkUC.LinkTelegramWidget(c.Request().Context(), accountID, usecase.TelegramLoginInput{
		Fields: fields,
		Hash:   hash,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newLinkDTO(link), "Provider linked")
}

type initDeepLinkResponse struct {
	Code      string    `json:"code"`
	DeepLink  string    `json:"deep_link"`
	QRCodePNG string    `json:"qr_code_png"` // base64-encoded PNG
	ExpiresAt time.Time `json:"expires_at"`
}

// InitTelegramLink mints a deep-link code for binding a Telegram identity to
// the authenticated account.
func (h *AccountHandler) InitTelegramLink(c echo.Context) error {
	accountID, err := sessionAccountID(c)
	if err != nil {
		return err
	}

	output, err := h.linkUC.InitTelegramDeepLink(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, initDeepLinkResponse{
		Code:      output.Code,
		DeepLink:  output.DeepLink,
		QRCodePNG: base64.StdEncoding.EncodeToString(output.QRCodePNG),
		ExpiresAt: output.ExpiresAt,
	}, "Deep link created")
}

// sessionAccountID pulls the authenticated account id set by the auth
// middleware.
func sessionAccountID(c echo.Context) (uuid.UUID, error) {
	accountID, ok := c.Get(middleware.ContextKeyAccountID).(uuid.UUID)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthorized
	}

	return accountID, nil
}
