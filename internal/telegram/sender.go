// Package telegram sends rendered payloads to the Telegram channel.
package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"
)

// Sender posts messages and photos to a single channel.
type Sender struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewSender authorizes the bot and returns a channel sender.
func NewSender(token string, chatID int64) (*Sender, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	log.Info().Str("account", bot.Self.UserName).Msg("Telegram bot authorized")

	return &Sender{bot: bot, chatID: chatID}, nil
}

// SendMessage posts a Markdown-formatted message to the channel.
func (s *Sender) SendMessage(text string) error {
	msg := tgbotapi.NewMessage(s.chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := s.bot.Send(msg); err != nil {
		return fmt.Errorf("failed to send telegram message: %w", err)
	}

	log.Info().Int("chars", len(text)).Msg("Telegram message sent")
	return nil
}

// SendPhoto posts a photo by URL with a caption.
func (s *Sender) SendPhoto(photoURL, caption string) error {
	photo := tgbotapi.NewPhoto(s.chatID, tgbotapi.FileURL(photoURL))
	photo.Caption = caption

	if _, err := s.bot.Send(photo); err != nil {
		return fmt.Errorf("failed to send telegram photo: %w", err)
	}

	log.Info().Str("photo", photoURL).Msg("Telegram photo sent")
	return nil
}
