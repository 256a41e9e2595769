// internal/infra/telegram/client.go
package telegram

import (
	"gopkg.in/telebot.v3"
)

// TelebotAdapter implements the domain Client using gopkg.in/telebot.v3.
type TelebotAdapter struct {
	bot *telebot.Bot
}

func NewTelebotAdapter(b *telebot.Bot) *TelebotAdapter {
	return &TelebotAdapter{bot: b}
}

// NewBot creates a send-only bot. It is offline: no getMe call is made and
// no poller is attached, so a Telegram outage only affects individual sends.
func NewBot(token string, onError func(error, telebot.Context)) (*telebot.Bot, error) {
	return telebot.NewBot(telebot.Settings{
		Token:   token,
		OnError: onError,
		Offline: true,
	})
}

// chatRecipient is a numeric chat ID or an @channelusername, passed as is.
type chatRecipient string

func (r chatRecipient) Recipient() string { return string(r) }

// SendMessage sends a text message to the given chat.
func (tba *TelebotAdapter) SendMessage(chatID string, text string, options *telebot.SendOptions) error {
	if options == nil {
		options = &telebot.SendOptions{}
	}

	_, err := tba.bot.Send(chatRecipient(chatID), text, options)
	return err
}
