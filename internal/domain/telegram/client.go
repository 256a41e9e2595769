package telegram

import "gopkg.in/telebot.v3"

// Client sends text messages to a Telegram chat.
// chatID is a numeric chat ID or an @channelusername.
type Client interface {
	SendMessage(chatID string, text string, options *telebot.SendOptions) error
}
