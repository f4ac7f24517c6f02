// internal/infra/telegram/client.go
package telegram

import (
	"errors"

	"wholesale_catalog_bot/internal/infra/metrics"

	"gopkg.in/telebot.v3"
)

// destination addresses a chat either by numeric ID or by @username.
type destination string

func (d destination) Recipient() string {
	return string(d)
}

// sender is the part of *telebot.Bot the adapter needs.
type sender interface {
	Send(to telebot.Recipient, what interface{}, opts ...interface{}) (*telebot.Message, error)
}

// TelebotAdapter implements the Client interface using the gopkg.in/telebot.v3 library.
type TelebotAdapter struct {
	bot sender
}

func NewTelebotAdapter(b *telebot.Bot) *TelebotAdapter {
	return &TelebotAdapter{bot: b}
}

// SendMessage sends a text message to the specified destination.
func (tba *TelebotAdapter) SendMessage(to string, text string, options *telebot.SendOptions) error {
	if options == nil {
		options = &telebot.SendOptions{}
	}

	_, err := tba.bot.Send(destination(to), text, options)
	if err != nil {
		metrics.ChannelPosts.WithLabelValues(metrics.StatusError).Inc()
		return err
	}
	metrics.ChannelPosts.WithLabelValues(metrics.StatusOK).Inc()
	return nil
}

// contextResponder answers through the telebot context of the current update.
type contextResponder struct {
	c telebot.Context
}

func (r contextResponder) Reply(text string, options *telebot.SendOptions) error {
	if options == nil {
		options = &telebot.SendOptions{}
	}
	return r.c.Send(text, options)
}

// Edit replaces the message carrying the pressed button. Pressing the button of
// the screen already shown is not an error.
func (r contextResponder) Edit(text string, options *telebot.SendOptions) error {
	if options == nil {
		options = &telebot.SendOptions{}
	}
	err := r.c.Edit(text, options)
	if errors.Is(err, telebot.ErrSameMessageContent) {
		return nil
	}
	return err
}
