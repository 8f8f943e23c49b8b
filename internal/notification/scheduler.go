package notification

import (
	"sync"

	"github.com/go-co-op/gocron/v2"
	"github.com/sirupsen/logrus"
)

const (
	reminderTitle = "End of Day Check-in"
	reminderBody  = "Time to enter your daily values"
)

// Scheduler fires the daily reminder at the configured local time. Only one
// reminder job exists at a time; rescheduling replaces it.
type Scheduler struct {
	notifier Notifier

	mu        sync.Mutex
	scheduler gocron.Scheduler
	job       gocron.Job
}

func NewScheduler(notifier Notifier) (*Scheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}
	s.Start()

	return &Scheduler{
		notifier:  notifier,
		scheduler: s,
	}, nil
}

func (s *Scheduler) Reschedule(hour, minute int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.job != nil {
		if err := s.scheduler.RemoveJob(s.job.ID()); err != nil {
			logrus.WithError(err).Warn("Failed to remove previous reminder job")
		}
		s.job = nil
	}

	job, err := s.scheduler.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(uint(hour), uint(minute), 0))),
		gocron.NewTask(func() {
			if err := s.notifier.Send(reminderTitle, reminderBody); err != nil {
				logrus.WithError(err).Error("Failed to send daily reminder")
			}
		}),
	)
	if err != nil {
		return err
	}

	s.job = job
	logrus.WithFields(logrus.Fields{
		"hour":   hour,
		"minute": minute,
	}).Info("Daily reminder scheduled")
	return nil
}

func (s *Scheduler) Shutdown() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scheduler.Shutdown()
}
