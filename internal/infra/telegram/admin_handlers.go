package telegram

import (
	"context"

	"wholesale_catalog_bot/internal/app"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

// RegisterAdminHandlers registers handlers for admin commands.
// The operator check itself lives in the dispatcher so every entry point shares it.
func RegisterAdminHandlers(ctx context.Context, b *telebot.Bot, d *app.Dispatcher, baseLogger *logrus.Entry) {
	adminLogger := baseLogger.WithField("handler_group", "admin")

	for _, name := range []string{app.CommandAdmin, app.CommandBroadcast, app.CommandPostToChannel} {
		b.Handle("/"+name, commandHandler(ctx, d, name, adminLogger))
	}
}
