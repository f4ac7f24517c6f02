package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domainTelegram "wholesale_catalog_bot/internal/domain/telegram"

	"gopkg.in/telebot.v3"
)

// Custom application-level errors for admin service
var ErrAdminNotAuthorized = errors.New("performing user is not authorized as an admin")
var ErrEmptyBroadcast = errors.New("broadcast message is empty")

const (
	broadcastPrefix = "📢 "
	promoPostText   = "🍓 *Замороженные фрукты и ягоды оптом*\n\n" +
		"Работаем напрямую с производителями\n\n" +
		"📋 Актуальный прайс-лист\n" +
		"📦 Остатки на складе\n" +
		"🚚 Ближайшие поступления\n" +
		"📞 Контакты менеджера\n\n" +
		"👇 Всё это в нашем боте:"
	promoButtonText = "🤖 Открыть бота"
)

// AdminService publishes operator content to the broadcast channel.
type AdminService struct {
	telegramClient  domainTelegram.Client
	adminTelegramID int64
	channelID       string
	botLink         string
}

func NewAdminService(tc domainTelegram.Client, adminID int64, channelID, botLink string) *AdminService {
	return &AdminService{
		telegramClient:  tc,
		adminTelegramID: adminID,
		channelID:       channelID,
		botLink:         botLink,
	}
}

// IsOperator reports whether the sender is the configured operator.
func (s *AdminService) IsOperator(senderID int64) bool {
	return senderID == s.adminTelegramID
}

// Broadcast forwards the operator's text to the channel with the announcement prefix.
func (s *AdminService) Broadcast(ctx context.Context, performingAdminID int64, message string) error {
	if !s.IsOperator(performingAdminID) {
		return ErrAdminNotAuthorized
	}
	if strings.TrimSpace(message) == "" {
		return ErrEmptyBroadcast
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.telegramClient.SendMessage(s.channelID, broadcastPrefix+message, &telebot.SendOptions{ParseMode: telebot.ModeMarkdown})
	if err != nil {
		return fmt.Errorf("failed to send broadcast to channel %s: %w", s.channelID, err)
	}
	return nil
}

// PostToChannel publishes the promotional post on behalf of the operator.
func (s *AdminService) PostToChannel(ctx context.Context, performingAdminID int64) error {
	if !s.IsOperator(performingAdminID) {
		return ErrAdminNotAuthorized
	}
	return s.PublishPromo(ctx)
}

// PublishPromo sends the promotional post with a deep-link button to the bot.
// It performs no identity check and is also used by the scheduler.
func (s *AdminService) PublishPromo(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	markup := &telebot.ReplyMarkup{
		InlineKeyboard: [][]telebot.InlineButton{
			{{Text: promoButtonText, URL: s.botLink}},
		},
	}
	err := s.telegramClient.SendMessage(s.channelID, promoPostText, &telebot.SendOptions{
		ParseMode:   telebot.ModeMarkdown,
		ReplyMarkup: markup,
	})
	if err != nil {
		return fmt.Errorf("failed to publish promo post to channel %s: %w", s.channelID, err)
	}
	return nil
}
