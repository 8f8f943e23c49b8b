package response

import (
	"context"
	"errors"
	"time"

	"github.com/eod-app/eod-lambda/internal/config"
	"github.com/eod-app/eod-lambda/internal/question"
	util "github.com/eod-app/eod-lambda/internal/utils"
)

var (
	ErrQuestionNotFound = question.ErrQuestionNotFound
	ErrTypeMismatch     = errors.New("response value does not match question type")
	ErrMissingValue     = errors.New("response value is required")
)

// CheckInService is the daily-form surface: the questions to ask for a day
// together with what was already answered, and the submit path.
type CheckInService interface {
	CheckIn(ctx context.Context, day util.Day) (*CheckInView, error)
	Submit(ctx context.Context, day util.Day, inputs []ResponseInput) ([]DailyResponse, error)
}

type checkInService struct {
	ledger   Ledger
	registry question.Registry
}

func NewCheckInService(ledger Ledger, registry question.Registry) CheckInService {
	return &checkInService{ledger: ledger, registry: registry}
}

func (s *checkInService) CheckIn(ctx context.Context, day util.Day) (*CheckInView, error) {
	questions, err := s.registry.Active(ctx)
	if err != nil {
		return nil, err
	}
	responses, err := s.ledger.ForDate(ctx, day)
	if err != nil {
		return nil, err
	}

	return &CheckInView{
		Date:      day,
		Questions: questions,
		Responses: responses,
	}, nil
}

// Submit validates each answer against its question and upserts them one by
// one. Earlier upserts stay committed if a later one fails.
func (s *checkInService) Submit(ctx context.Context, day util.Day, inputs []ResponseInput) ([]DailyResponse, error) {
	log := config.WithContext(ctx)

	questions, err := s.registry.List(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]question.Question, len(questions))
	for _, q := range questions {
		byID[q.ID.String()] = q
	}

	now := time.Now().UnixMilli()
	responses := make([]DailyResponse, 0, len(inputs))
	for _, in := range inputs {
		q, ok := byID[in.QuestionID.String()]
		if !ok {
			log.Warnf("Check-in submitted for unknown question %s", in.QuestionID)
			return nil, ErrQuestionNotFound
		}
		if in.Response.Kind() == KindUnset {
			return nil, ErrMissingValue
		}
		if !in.Response.MatchesType(q.Type) {
			log.Warnf("Check-in value for question %s does not match type %s", q.ID, q.Type)
			return nil, ErrTypeMismatch
		}
		responses = append(responses, DailyResponse{
			QuestionID: in.QuestionID,
			Date:       day,
			Response:   in.Response,
			Timestamp:  now,
		})
	}

	if err := s.ledger.SaveAll(ctx, day, responses); err != nil {
		return nil, err
	}

	log.Infof("Saved %d responses for %s", len(responses), day)
	return responses, nil
}
