package entitlement

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/eod-app/eod-lambda/internal/config"
	"github.com/eod-app/eod-lambda/internal/store"
)

const (
	firstLaunchKey = "first_launch"
	cacheKey       = "entitlement_cache"

	// TrialDays is the free-access window counted from first launch.
	TrialDays = 30
)

// Status is the access picture the app gates on.
type Status struct {
	IsSubscribed       bool   `json:"is_subscribed"`
	IsLifetime         bool   `json:"is_lifetime"`
	IsMonthly          bool   `json:"is_monthly"`
	IsInTrial          bool   `json:"is_in_trial"`
	TrialDaysRemaining int    `json:"trial_days_remaining"`
	ExpirationDate     string `json:"expiration_date,omitempty"`
}

// Service decides whether the journal is reachable: active subscription or
// remaining trial. Billing itself lives with the external provider; this
// service only reads its verdict.
type Service interface {
	// Initialize records the first-launch instant once. Safe to call again.
	Initialize(ctx context.Context) error
	Status(ctx context.Context) (*Status, error)
	HasAccess(ctx context.Context) (bool, error)
}

type service struct {
	store    store.Store
	provider Provider

	mu          sync.Mutex
	initialized bool

	now func() time.Time
}

func NewService(s store.Store, provider Provider) Service {
	return &service{
		store:    s,
		provider: provider,
		now:      time.Now,
	}
}

func (s *service) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	_, ok, err := s.store.Get(ctx, firstLaunchKey)
	if err != nil {
		return err
	}
	if !ok {
		stamp, err := json.Marshal(s.now().Format(time.RFC3339))
		if err != nil {
			return err
		}
		if err := s.store.Set(ctx, firstLaunchKey, string(stamp)); err != nil {
			return err
		}
		config.WithContext(ctx).Info("Recorded first launch for trial tracking")
	}

	s.initialized = true
	return nil
}

func (s *service) Status(ctx context.Context) (*Status, error) {
	log := config.WithContext(ctx)

	trial, err := s.trialStatus(ctx)
	if err != nil {
		return nil, err
	}

	status := &Status{
		IsInTrial:          trial.isInTrial,
		TrialDaysRemaining: trial.daysRemaining,
	}

	if s.provider == nil {
		return status, nil
	}

	info, err := s.provider.CustomerInfo(ctx)
	if err != nil {
		log.WithError(err).Warn("Billing provider unreachable, falling back")
		if cached := s.readCache(ctx); cached != nil {
			cached.IsInTrial = trial.isInTrial
			cached.TrialDaysRemaining = trial.daysRemaining
			return cached, nil
		}
		return status, nil
	}

	status.IsLifetime = info.Lifetime
	status.IsMonthly = info.Monthly
	status.IsSubscribed = info.Lifetime || info.Monthly
	if info.Monthly {
		status.ExpirationDate = info.MonthlyExpiration
	}

	s.writeCache(ctx, status)
	return status, nil
}

func (s *service) HasAccess(ctx context.Context) (bool, error) {
	status, err := s.Status(ctx)
	if err != nil {
		return false, err
	}
	return status.IsSubscribed || status.IsInTrial, nil
}

type trialStatus struct {
	isInTrial     bool
	daysRemaining int
}

func (s *service) trialStatus(ctx context.Context) (trialStatus, error) {
	raw, ok, err := s.store.Get(ctx, firstLaunchKey)
	if err != nil {
		return trialStatus{}, err
	}
	if !ok {
		// Initialize has not run yet; the full trial is still ahead.
		return trialStatus{isInTrial: true, daysRemaining: TrialDays}, nil
	}

	var stamp string
	if err := json.Unmarshal([]byte(raw), &stamp); err != nil {
		return trialStatus{}, err
	}
	firstLaunch, err := time.Parse(time.RFC3339, stamp)
	if err != nil {
		return trialStatus{}, err
	}

	daysSince := int(s.now().Sub(firstLaunch).Hours() / 24)
	remaining := TrialDays - daysSince
	if remaining < 0 {
		remaining = 0
	}
	return trialStatus{isInTrial: remaining > 0, daysRemaining: remaining}, nil
}

// readCache returns the last known provider verdict, if one was stored and
// still decrypts. Cache failures are never fatal.
func (s *service) readCache(ctx context.Context) *Status {
	raw, ok, err := s.store.Get(ctx, cacheKey)
	if err != nil || !ok {
		return nil
	}

	var sealed string
	if err := json.Unmarshal([]byte(raw), &sealed); err != nil {
		return nil
	}
	plain, err := config.Decrypt(sealed)
	if err != nil {
		return nil
	}

	var status Status
	if err := json.Unmarshal([]byte(plain), &status); err != nil {
		return nil
	}
	return &status
}

func (s *service) writeCache(ctx context.Context, status *Status) {
	log := config.WithContext(ctx)

	plain, err := json.Marshal(status)
	if err != nil {
		return
	}
	sealed, err := config.Encrypt(string(plain))
	if err != nil {
		log.WithError(err).Warn("Failed to encrypt entitlement cache")
		return
	}
	raw, err := json.Marshal(sealed)
	if err != nil {
		return
	}
	if err := s.store.Set(ctx, cacheKey, string(raw)); err != nil {
		log.WithError(err).Warn("Failed to persist entitlement cache")
	}
}
