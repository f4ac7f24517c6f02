package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domainTelegram "wholesale_catalog_bot/internal/domain/telegram"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

// Command names without the leading slash.
const (
	CommandStart         = "start"
	CommandAdmin         = "admin"
	CommandBroadcast     = "broadcast"
	CommandPostToChannel = "post_to_channel"
)

const (
	accessDeniedBroadcast = "❌ У вас нет доступа к этой команде."
	accessDeniedPost      = "❌ Нет доступа."
	broadcastUsage        = "Использование: /broadcast ваше сообщение\n\n" +
		"Пример: /broadcast 🍒 Вишня поступила! 1000 кг по 160 руб/кг"
	broadcastSent   = "✅ Сообщение отправлено в канал!"
	promoPosted     = "✅ Пост с кнопкой отправлен в канал!"
	channelSendFail = "⚠️ Не удалось отправить сообщение в канал. Попробуйте позже."
	adminHelpText   = "🛠 *КОМАНДЫ АДМИНИСТРАТОРА*\n\n" +
		"/broadcast текст — отправить сообщение в канал\n" +
		"/post\\_to\\_channel — разместить приветственный пост с кнопкой в канале\n\n" +
		"Чтобы обновить прайс или остатки:\n" +
		"Открой файл каталога (путь в `CATALOG_PATH`) и измени цифры,\n" +
		"затем перезапусти бота."
)

// Command is an inbound slash command.
type Command struct {
	Name            string
	Args            []string
	SenderID        int64
	SenderFirstName string
}

type commandHandler func(ctx context.Context, cmd Command, r domainTelegram.Responder) error

// Dispatcher routes commands, button presses and free text to their handlers.
// It keeps no per-chat state: every screen is derived from the incoming event alone.
type Dispatcher struct {
	renderer *Renderer
	admin    *AdminService
	logger   *logrus.Entry
	buttons  map[string]Screen
	commands map[string]commandHandler
}

func NewDispatcher(renderer *Renderer, admin *AdminService, logger *logrus.Entry) *Dispatcher {
	d := &Dispatcher{
		renderer: renderer,
		admin:    admin,
		logger:   logger.WithField("component", "dispatcher"),
		buttons:  map[string]Screen{ButtonMenu: renderer.MainMenu()},
	}
	for _, id := range []string{ButtonPrice, ButtonStock, ButtonUpcoming, ButtonContacts} {
		if s, ok := renderer.Category(id); ok {
			d.buttons[id] = s
		}
	}
	d.commands = map[string]commandHandler{
		CommandStart:         d.handleStart,
		CommandAdmin:         d.handleAdminHelp,
		CommandBroadcast:     d.handleBroadcast,
		CommandPostToChannel: d.handlePostToChannel,
	}
	return d
}

// HandleCommand runs the handler registered for cmd.Name. Unknown commands are ignored.
func (d *Dispatcher) HandleCommand(ctx context.Context, cmd Command, r domainTelegram.Responder) error {
	h, ok := d.commands[cmd.Name]
	if !ok {
		d.logger.WithFields(logrus.Fields{"command": cmd.Name, "sender_id": cmd.SenderID}).Debug("Unknown command ignored")
		return nil
	}
	return h(ctx, cmd, r)
}

// IsKnownButton reports whether id has an entry in the button table.
func (d *Dispatcher) IsKnownButton(id string) bool {
	_, ok := d.buttons[id]
	return ok
}

// HandleButton edits the pressed message in place with the screen for id.
// Unknown identifiers produce no outbound call.
func (d *Dispatcher) HandleButton(_ context.Context, senderID int64, id string, r domainTelegram.Responder) error {
	screen, ok := d.buttons[id]
	if !ok {
		d.logger.WithFields(logrus.Fields{"callback": id, "sender_id": senderID}).Debug("Unknown button identifier ignored")
		return nil
	}
	return r.Edit(screen.Text, screen.SendOptions())
}

// HandleText reminds the user to navigate with the menu buttons.
func (d *Dispatcher) HandleText(_ context.Context, senderID int64, text string, r domainTelegram.Responder) error {
	if strings.HasPrefix(text, "/") {
		d.logger.WithFields(logrus.Fields{"text": text, "sender_id": senderID}).Debug("Unregistered command ignored")
		return nil
	}
	screen := d.renderer.MenuReminder()
	return r.Reply(screen.Text, screen.SendOptions())
}

func (d *Dispatcher) handleStart(_ context.Context, cmd Command, r domainTelegram.Responder) error {
	screen := d.renderer.Welcome(cmd.SenderFirstName)
	return r.Reply(screen.Text, screen.SendOptions())
}

func (d *Dispatcher) handleAdminHelp(_ context.Context, cmd Command, r domainTelegram.Responder) error {
	if !d.admin.IsOperator(cmd.SenderID) {
		d.logger.WithField("sender_id", cmd.SenderID).Warn("Unauthorized /admin attempt")
		return nil
	}
	return r.Reply(adminHelpText, &telebot.SendOptions{ParseMode: telebot.ModeMarkdown})
}

func (d *Dispatcher) handleBroadcast(ctx context.Context, cmd Command, r domainTelegram.Responder) error {
	log := d.logger.WithFields(logrus.Fields{"handler": "/broadcast", "sender_id": cmd.SenderID})

	err := d.admin.Broadcast(ctx, cmd.SenderID, strings.Join(cmd.Args, " "))
	switch {
	case err == nil:
		log.Info("Broadcast sent to channel")
		return r.Reply(broadcastSent, nil)
	case errors.Is(err, ErrAdminNotAuthorized):
		log.Warn("Unauthorized access attempt")
		return r.Reply(accessDeniedBroadcast, nil)
	case errors.Is(err, ErrEmptyBroadcast):
		return r.Reply(broadcastUsage, nil)
	default:
		return d.reportChannelFailure(log, err, r)
	}
}

func (d *Dispatcher) handlePostToChannel(ctx context.Context, cmd Command, r domainTelegram.Responder) error {
	log := d.logger.WithFields(logrus.Fields{"handler": "/post_to_channel", "sender_id": cmd.SenderID})

	err := d.admin.PostToChannel(ctx, cmd.SenderID)
	switch {
	case err == nil:
		log.Info("Promo post published to channel")
		return r.Reply(promoPosted, nil)
	case errors.Is(err, ErrAdminNotAuthorized):
		log.Warn("Unauthorized access attempt")
		return r.Reply(accessDeniedPost, nil)
	default:
		return d.reportChannelFailure(log, err, r)
	}
}

// reportChannelFailure tells the operator the post did not go out and still returns the error.
func (d *Dispatcher) reportChannelFailure(log *logrus.Entry, err error, r domainTelegram.Responder) error {
	log.WithError(err).Error("Channel send failed")
	if replyErr := r.Reply(channelSendFail, nil); replyErr != nil {
		log.WithError(replyErr).Error("Failed to notify operator about channel failure")
	}
	return fmt.Errorf("channel send: %w", err)
}
