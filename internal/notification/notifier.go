package notification

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// Notifier delivers the daily check-in reminder.
type Notifier interface {
	Send(title, body string) error
}

type telegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegramNotifier pushes reminders to a Telegram chat.
func NewTelegramNotifier(token string, chatID int64) (Notifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &telegramNotifier{bot: bot, chatID: chatID}, nil
}

func (n *telegramNotifier) Send(title, body string) error {
	msg := tgbotapi.NewMessage(n.chatID, title+"\n"+body)
	_, err := n.bot.Send(msg)
	return err
}

type logNotifier struct{}

// NewLogNotifier writes reminders to the log. Used when no Telegram
// credentials are configured.
func NewLogNotifier() Notifier {
	return logNotifier{}
}

func (logNotifier) Send(title, body string) error {
	logrus.WithFields(logrus.Fields{
		"title": title,
		"body":  body,
	}).Info("Daily reminder")
	return nil
}
