package telegram

import (
	"context"

	"wholesale_catalog_bot/internal/app"
	"wholesale_catalog_bot/internal/infra/metrics"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

// unknownButtonLabel keeps arbitrary callback data out of metric labels.
const unknownButtonLabel = "unknown"

// RegisterMenuHandlers wires inline button presses and free text to the dispatcher.
func RegisterMenuHandlers(ctx context.Context, b *telebot.Bot, d *app.Dispatcher, baseLogger *logrus.Entry) {
	menuLogger := baseLogger.WithField("handler_group", "menu")

	b.Handle(telebot.OnCallback, callbackHandler(ctx, d, menuLogger))
	b.Handle(telebot.OnText, textHandler(ctx, d, menuLogger))
}

func callbackHandler(ctx context.Context, d *app.Dispatcher, menuLogger *logrus.Entry) telebot.HandlerFunc {
	return func(c telebot.Context) error {
		var data string
		if cb := c.Callback(); cb != nil {
			data = cb.Data
		}
		logCtx := menuLogger.WithFields(logrus.Fields{
			"callback":  data,
			"sender_id": senderID(c),
		})

		// Stop the loading indicator on the button whatever happens next.
		if err := c.Respond(); err != nil {
			logCtx.WithError(err).Warn("Failed to answer callback query")
		}

		label := data
		if !d.IsKnownButton(data) {
			label = unknownButtonLabel
		}
		metrics.UpdatesHandled.WithLabelValues(metrics.KindCallback, label).Inc()

		logCtx.Debug("Button pressed")
		return d.HandleButton(ctx, senderID(c), data, contextResponder{c: c})
	}
}

func textHandler(ctx context.Context, d *app.Dispatcher, menuLogger *logrus.Entry) telebot.HandlerFunc {
	return func(c telebot.Context) error {
		menuLogger.WithFields(logrus.Fields{
			"sender_id": senderID(c),
			"chat_id":   chatID(c),
		}).Debug("Free text received")

		metrics.UpdatesHandled.WithLabelValues(metrics.KindText, "").Inc()
		return d.HandleText(ctx, senderID(c), c.Text(), contextResponder{c: c})
	}
}
