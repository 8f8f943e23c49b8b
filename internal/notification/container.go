package notification

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/eod-app/eod-lambda/internal/store"
	"github.com/sirupsen/logrus"
)

type Container struct {
	Handler   *Handler
	Service   Service
	Scheduler *Scheduler
}

func NewContainer(s store.Store) (*Container, error) {
	notifier := notifierFromEnv()

	scheduler, err := NewScheduler(notifier)
	if err != nil {
		return nil, err
	}

	service := NewService(s, scheduler)
	handler := NewHandler(service)

	return &Container{
		Handler:   handler,
		Service:   service,
		Scheduler: scheduler,
	}, nil
}

// Bootstrap arms the scheduler with the stored reminder time.
func (c *Container) Bootstrap(ctx context.Context) error {
	value, err := c.Service.Time(ctx)
	if err != nil {
		return err
	}
	parsed, err := time.Parse("15:04", value)
	if err != nil {
		return err
	}
	return c.Scheduler.Reschedule(parsed.Hour(), parsed.Minute())
}

func notifierFromEnv() Notifier {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	chatIDStr := os.Getenv("TELEGRAM_CHAT_ID")
	if token == "" || chatIDStr == "" {
		logrus.Warn("TELEGRAM_BOT_TOKEN or TELEGRAM_CHAT_ID not set, reminders go to the log")
		return NewLogNotifier()
	}

	chatID, err := strconv.ParseInt(chatIDStr, 10, 64)
	if err != nil {
		logrus.WithError(err).Warn("Invalid TELEGRAM_CHAT_ID, reminders go to the log")
		return NewLogNotifier()
	}

	notifier, err := NewTelegramNotifier(token, chatID)
	if err != nil {
		logrus.WithError(err).Warn("Failed to connect to Telegram, reminders go to the log")
		return NewLogNotifier()
	}
	return notifier
}
