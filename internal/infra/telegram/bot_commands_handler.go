// internal/infra/telegram/bot_commands_handler.go
package telegram

import (
	"context"

	"wholesale_catalog_bot/internal/app"
	"wholesale_catalog_bot/internal/infra/metrics"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

// RegisterBotCommands registers the public /start command.
func RegisterBotCommands(ctx context.Context, b *telebot.Bot, d *app.Dispatcher, baseLogger *logrus.Entry) {
	b.Handle("/"+app.CommandStart, commandHandler(ctx, d, app.CommandStart, baseLogger))
}

// commandHandler adapts a telebot command update to the dispatcher.
func commandHandler(ctx context.Context, d *app.Dispatcher, name string, baseLogger *logrus.Entry) telebot.HandlerFunc {
	return func(c telebot.Context) error {
		cmd := commandFromContext(c, name)
		baseLogger.WithFields(logrus.Fields{
			"handler":   "/" + name,
			"sender_id": cmd.SenderID,
			"chat_id":   chatID(c),
		}).Info("Command received")

		metrics.UpdatesHandled.WithLabelValues(metrics.KindCommand, name).Inc()
		return d.HandleCommand(ctx, cmd, contextResponder{c: c})
	}
}

func commandFromContext(c telebot.Context, name string) app.Command {
	cmd := app.Command{Name: name, Args: c.Args()}
	if s := c.Sender(); s != nil {
		cmd.SenderID = s.ID
		cmd.SenderFirstName = s.FirstName
	}
	return cmd
}

func senderID(c telebot.Context) int64 {
	if s := c.Sender(); s != nil {
		return s.ID
	}
	return 0
}

func chatID(c telebot.Context) int64 {
	if ch := c.Chat(); ch != nil {
		return ch.ID
	}
	return 0
}

// botCommands describes the public commands shown in the Telegram client menu.
func botCommands() []telebot.Command {
	return []telebot.Command{
		{Text: app.CommandStart, Description: "Главное меню"},
	}
}

// PublishCommandList sets the command hints shown by Telegram clients.
func PublishCommandList(b *telebot.Bot) error {
	return b.SetCommands(botCommands())
}
