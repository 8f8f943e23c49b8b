package challenge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/eod-app/eod-lambda/internal/config"
	"github.com/eod-app/eod-lambda/internal/question"
	"github.com/eod-app/eod-lambda/internal/response"
	"github.com/eod-app/eod-lambda/internal/store"
	util "github.com/eod-app/eod-lambda/internal/utils"
	"github.com/google/uuid"
)

const challengesKey = "challenges"

var (
	ErrChallengeNotFound = errors.New("challenge not found")
	ErrInvalidGoalType   = errors.New("goal type not valid for this question")
	ErrInvalidRange      = errors.New("start date must not be after end date")
)

type Service interface {
	// List returns every challenge, active or not.
	List(ctx context.Context) ([]MonthlyChallenge, error)
	// Get returns the challenge by id, including deactivated ones.
	Get(ctx context.Context, id uuid.UUID) (*MonthlyChallenge, error)
	Create(ctx context.Context, dto CreateChallengeDTO) (*MonthlyChallenge, error)
	// Deactivate flips Active to false. One-way; there is no reactivation.
	Deactivate(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ActiveWithProgress evaluates every active challenge against the ledger.
	ActiveWithProgress(ctx context.Context) ([]ChallengeProgressView, error)
}

type service struct {
	store    store.Store
	registry question.Registry
	ledger   response.Ledger
}

func NewService(s store.Store, registry question.Registry, ledger response.Ledger) Service {
	return &service{store: s, registry: registry, ledger: ledger}
}

func (s *service) List(ctx context.Context) ([]MonthlyChallenge, error) {
	raw, ok, err := s.store.Get(ctx, challengesKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []MonthlyChallenge{}, nil
	}

	var challenges []MonthlyChallenge
	if err := json.Unmarshal([]byte(raw), &challenges); err != nil {
		return nil, fmt.Errorf("corrupt challenges value: %w", err)
	}
	return challenges, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*MonthlyChallenge, error) {
	challenges, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range challenges {
		if challenges[i].ID == id {
			return &challenges[i], nil
		}
	}
	return nil, ErrChallengeNotFound
}

func (s *service) Create(ctx context.Context, dto CreateChallengeDTO) (*MonthlyChallenge, error) {
	log := config.WithContext(ctx)

	q, err := s.registry.Get(ctx, dto.QuestionID)
	if err != nil {
		return nil, err
	}

	if !dto.GoalType.IsValid() {
		return nil, ErrInvalidGoalType
	}
	allowed := false
	for _, gt := range GoalTypesFor(q.Type) {
		if gt == dto.GoalType {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, ErrInvalidGoalType
	}

	// The range defaults to the current calendar month and stays fixed for
	// the challenge's lifetime.
	now := time.Now()
	start, end := dto.StartDate, dto.EndDate
	if start == "" {
		start = util.StartOfMonth(now)
	}
	if end == "" {
		end = util.EndOfMonth(now)
	}
	if !start.Valid() || !end.Valid() {
		return nil, fmt.Errorf("invalid challenge date: %s..%s", start, end)
	}
	if start > end {
		return nil, ErrInvalidRange
	}

	title := strings.TrimSpace(dto.Title)
	if title == "" {
		title = "Monthly Challenge"
	}
	goalValue := dto.GoalValue
	if goalValue <= 0 {
		goalValue = 1
	}

	c := MonthlyChallenge{
		ID:         uuid.New(),
		Title:      title,
		QuestionID: dto.QuestionID,
		GoalType:   dto.GoalType,
		GoalValue:  goalValue,
		StartDate:  start,
		EndDate:    end,
		Active:     true,
	}

	challenges, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	challenges = append(challenges, c)
	if err := s.save(ctx, challenges); err != nil {
		log.WithError(err).Error("Failed to save challenge")
		return nil, err
	}

	log.Infof("Created challenge %s (%s on question %s)", c.ID, c.GoalType, c.QuestionID)
	return &c, nil
}

func (s *service) Deactivate(ctx context.Context, id uuid.UUID) error {
	challenges, err := s.List(ctx)
	if err != nil {
		return err
	}

	found := false
	for i := range challenges {
		if challenges[i].ID == id {
			challenges[i].Active = false
			found = true
			break
		}
	}
	if !found {
		return ErrChallengeNotFound
	}

	return s.save(ctx, challenges)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	challenges, err := s.List(ctx)
	if err != nil {
		return err
	}

	filtered := challenges[:0]
	found := false
	for _, c := range challenges {
		if c.ID == id {
			found = true
			continue
		}
		filtered = append(filtered, c)
	}
	if !found {
		return ErrChallengeNotFound
	}

	return s.save(ctx, filtered)
}

func (s *service) ActiveWithProgress(ctx context.Context) ([]ChallengeProgressView, error) {
	challenges, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	questions, err := s.registry.List(ctx)
	if err != nil {
		return nil, err
	}
	all, err := s.ledger.All(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]question.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	views := make([]ChallengeProgressView, 0, len(challenges))
	for _, c := range challenges {
		if !c.Active {
			continue
		}
		q, ok := byID[c.QuestionID]
		view := ChallengeProgressView{
			Challenge: c,
			Progress:  ComputeProgress(c, all, ok && q.Type == question.TypeYesNo),
		}
		if ok {
			view.Question = &q
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *service) save(ctx context.Context, challenges []MonthlyChallenge) error {
	raw, err := json.Marshal(challenges)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, challengesKey, string(raw))
}
