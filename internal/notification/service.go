package notification

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/eod-app/eod-lambda/internal/store"
)

const (
	notificationTimeKey = "notification_time"

	// DefaultTime is used until the owner picks a reminder time.
	DefaultTime = "20:00"
)

var ErrInvalidTime = errors.New("time must be in HH:MM format")

// rescheduler is the part of Scheduler the service needs.
type rescheduler interface {
	Reschedule(hour, minute int) error
}

// Service stores the reminder time and keeps the scheduler in sync with it.
type Service interface {
	Time(ctx context.Context) (string, error)
	SetTime(ctx context.Context, value string) error
}

type service struct {
	store     store.Store
	scheduler rescheduler
}

func NewService(s store.Store, scheduler rescheduler) Service {
	return &service{store: s, scheduler: scheduler}
}

func (s *service) Time(ctx context.Context) (string, error) {
	raw, ok, err := s.store.Get(ctx, notificationTimeKey)
	if err != nil {
		return "", err
	}
	if !ok {
		return DefaultTime, nil
	}

	var value string
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return "", err
	}
	return value, nil
}

func (s *service) SetTime(ctx context.Context, value string) error {
	parsed, err := time.Parse("15:04", value)
	if err != nil {
		return ErrInvalidTime
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := s.store.Set(ctx, notificationTimeKey, string(raw)); err != nil {
		return err
	}

	if s.scheduler != nil {
		return s.scheduler.Reschedule(parsed.Hour(), parsed.Minute())
	}
	return nil
}
