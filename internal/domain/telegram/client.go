package telegram

import "gopkg.in/telebot.v3"

// Client defines an interface for sending messages via a Telegram bot.
// This helps in decoupling the application logic from the specific bot library.
type Client interface {
	// SendMessage sends a new message to an arbitrary destination (chat ID or @username).
	SendMessage(destination string, text string, options *telebot.SendOptions) error
}

// Responder answers the update currently being handled.
type Responder interface {
	// Reply sends a new message to the chat the update came from.
	Reply(text string, options *telebot.SendOptions) error
	// Edit replaces the message the update refers to (the one carrying the pressed button).
	Edit(text string, options *telebot.SendOptions) error
}
