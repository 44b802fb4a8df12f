package bot

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"github.com/Felix-Hz/cofr/config"
	"github.com/Felix-Hz/cofr/internal/delivery"
	"github.com/Felix-Hz/cofr/internal/domain/entity"
	domainerrors "github.com/Felix-Hz/cofr/internal/domain/errors"
	"github.com/Felix-Hz/cofr/internal/domain/repository"
	"github.com/Felix-Hz/cofr/internal/usecase"
)

// pollTimeoutSeconds is the long-poll window passed to getUpdates.
const pollTimeoutSeconds = 30

type BotParams struct {
	fx.In
	fx.Lifecycle

	Config    *config.Config
	Logger    *slog.Logger
	LinkUC    usecase.LinkUsecase
	ExpenseUC usecase.ExpenseUsecase
	LinkRepo  repository.LinkRepository
}

type botServer struct {
	api       *tgbotapi.BotAPI
	logger    *slog.Logger
	linkUC    usecase.LinkUsecase
	expenseUC usecase.ExpenseUsecase
	linkRepo  repository.LinkRepository
}

// NewBot is the constructor for the Telegram bot delivery.
func NewBot(params BotParams) (delivery.Delivery, error) {
	if params.Config.Telegram == nil || params.Config.Telegram.BotToken == "" {
		return nil, errors.New("telegram bot token is not configured")
	}

	api, err := tgbotapi.NewBotAPI(params.Config.Telegram.BotToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to telegram")
	}

	bot := &botServer{
		api:       api,
		logger:    params.Logger,
		linkUC:    params.LinkUC,
		expenseUC: params.ExpenseUC,
		linkRepo:  params.LinkRepo,
	}

	params.Append(fx.Hook{
		OnStop: bot.stop,
	})

	return bot, nil
}

// Serve long-polls Telegram and dispatches every incoming message.
func (b *botServer) Serve(ctx context.Context) error {
	b.logger.Info("Starting Telegram bot", slog.String("username", b.api.Self.UserName))

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = pollTimeoutSeconds

	for update := range b.api.GetUpdatesChan(updateConfig) {
		if update.Message == nil || update.Message.From == nil {
			continue
		}

		b.handleMessage(ctx, update.Message)
	}

	return nil
}

func (b *botServer) stop(ctx context.Context) error {
	b.logger.Info("Shutting down Telegram bot")
	b.api.StopReceivingUpdates()

	return nil
}

func (b *botServer) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.IsCommand() {
		b.handleCommand(ctx, msg)

		return
	}

	b.handleExpense(ctx, msg)
}

func (b *botServer) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		b.handleStart(ctx, msg)
	case "help":
		b.reply(msg, "Send \"<amount> <category> [notes]\" to record an expense, e.g. \"12.50 groceries weekly shop\".")
	default:
		b.reply(msg, "Unknown command. Try /help.")
	}
}

// handleStart redeems a deep-link code carried in the /start payload.
func (b *botServer) handleStart(ctx context.Context, msg *tgbotapi.Message) {
	code := msg.CommandArguments()
	if code == "" {
		b.reply(msg, "Hi! Open the web app and link your Telegram account to start tracking expenses here.")

		return
	}

	account, err := b.linkUC.ConfirmTelegramDeepLink(ctx, usecase.ConfirmDeepLinkInput{
		Code:           code,
		TelegramUserID: strconv.FormatInt(msg.From.ID, 10),
		Username:       msg.From.UserName,
		FirstName:      msg.From.FirstName,
		LastName:       msg.From.LastName,
	})
	if err != nil {
		b.logger.Warn("Deep link confirmation failed",
			slog.Int64("telegramUserID", msg.From.ID),
			slog.Any("error", err))
		b.reply(msg, deepLinkErrorText(err))

		return
	}

	b.reply(msg, fmt.Sprintf("Linked! This Telegram account now belongs to %s.", account.DisplayName()))
}

// handleExpense records a plain "<amount> <category> [notes]" message for the
// sender's linked account.
func (b *botServer) handleExpense(ctx context.Context, msg *tgbotapi.Message) {
	parsed, err := parseExpenseMessage(msg.Text)
	if err != nil {
		if errors.Is(err, errMessageTooLong) {
			b.reply(msg, "That message is too long for an expense entry, keep it under 160 characters.")

			return
		}
		b.reply(msg, "I could not read that. Send \"<amount> <category> [notes]\", or /help.")

		return
	}

	link, err := b.linkRepo.FindByProviderAndSubject(ctx, entity.ProviderTypeTelegram, strconv.FormatInt(msg.From.ID, 10))
	if err != nil {
		if errors.Is(err, repository.ErrLinkNotFound) {
			b.reply(msg, "This Telegram account is not linked yet. Link it through the web app first.")

			return
		}
		b.logger.Error("Failed to resolve telegram sender", slog.Any("error", err))
		b.reply(msg, "Something went wrong, try again later.")

		return
	}

	expense, err := b.expenseUC.AddExpense(ctx, link.AccountID, usecase.AddExpenseInput{
		Category: parsed.Category,
		Amount:   parsed.Amount,
		Notes:    parsed.Notes,
		Hash:     messageHash(msg.Chat.ID, msg.MessageID),
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrExpenseDuplicate) {
			b.reply(msg, "Already recorded that one.")

			return
		}
		b.logger.Error("Failed to record expense", slog.Any("error", err))
		b.reply(msg, "Could not record that expense, try again later.")

		return
	}

	b.reply(msg, fmt.Sprintf("Recorded %.2f %s on %s.", expense.Amount, expense.Currency, expense.Category))
}

func (b *botServer) reply(msg *tgbotapi.Message, text string) {
	if _, err := b.api.Send(tgbotapi.NewMessage(msg.Chat.ID, text)); err != nil {
		b.logger.Error("Failed to send reply", slog.Any("error", err))
	}
}

// messageHash dedupes a chat message across delivery retries.
func messageHash(chatID int64, messageID int) string {
	sum := sha256.Sum256([]byte(strconv.FormatInt(chatID, 10) + ":" + strconv.Itoa(messageID)))

	return hex.EncodeToString(sum[:])
}

func deepLinkErrorText(err error) string {
	switch {
	case errors.Is(err, domainerrors.ErrLinkCodeInvalid):
		return "That link code is invalid or has expired. Generate a new one from the web app."
	case errors.Is(err, domainerrors.ErrAlreadyLinkedSameAccount):
		return "This Telegram account is already linked to that profile."
	case errors.Is(err, domainerrors.ErrAlreadyLinkedOtherAccount):
		return "This Telegram account is already linked to a different profile."
	default:
		return "Could not complete the link, try again later."
	}
}
