package trend

import (
	"context"
	"errors"

	"github.com/eod-app/eod-lambda/internal/question"
	"github.com/eod-app/eod-lambda/internal/response"
	util "github.com/eod-app/eod-lambda/internal/utils"
	"github.com/google/uuid"
)

// DefaultWindowDays is the trailing window used when the caller gives none.
const DefaultWindowDays = 30

type Service interface {
	// Trends summarizes every unpaused question over the trailing window.
	Trends(ctx context.Context, days int) (*TrendsResponse, error)
	// SeriesFor returns the chart series for one question. A deleted or
	// unknown question yields an empty series, not an error.
	SeriesFor(ctx context.Context, questionID uuid.UUID, days int) (*SeriesResponse, error)
}

type service struct {
	registry question.Registry
	ledger   response.Ledger
}

func NewService(registry question.Registry, ledger response.Ledger) Service {
	return &service{registry: registry, ledger: ledger}
}

func (s *service) Trends(ctx context.Context, days int) (*TrendsResponse, error) {
	if days <= 0 {
		days = DefaultWindowDays
	}

	questions, err := s.registry.Active(ctx)
	if err != nil {
		return nil, err
	}
	all, err := s.ledger.All(ctx)
	if err != nil {
		return nil, err
	}

	cutoff := util.Today().AddDays(-days)
	trends := make([]QuestionTrend, 0, len(questions))
	for _, q := range questions {
		windowed := WindowResponses(all, q.ID, cutoff)
		trends = append(trends, QuestionTrend{
			Question: q,
			Stats:    Summarize(q.Type, windowed, days),
		})
	}

	return &TrendsResponse{Days: days, Questions: trends}, nil
}

func (s *service) SeriesFor(ctx context.Context, questionID uuid.UUID, days int) (*SeriesResponse, error) {
	if days <= 0 {
		days = DefaultWindowDays
	}

	resp := &SeriesResponse{
		QuestionID: questionID,
		Days:       days,
		Points:     []Point{},
	}

	q, err := s.registry.Get(ctx, questionID)
	if err != nil {
		if errors.Is(err, question.ErrQuestionNotFound) {
			return resp, nil
		}
		return nil, err
	}

	all, err := s.ledger.All(ctx)
	if err != nil {
		return nil, err
	}

	cutoff := util.Today().AddDays(-days)
	resp.Points = Series(q.Type, WindowResponses(all, questionID, cutoff))
	return resp, nil
}
