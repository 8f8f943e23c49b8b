package question

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/eod-app/eod-lambda/internal/config"
	"github.com/eod-app/eod-lambda/internal/store"
	"github.com/google/uuid"
)

const questionsKey = "questions"

var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrInvalidType      = errors.New("invalid question type")
	ErrEmptyText        = errors.New("question text is required")
)

// Registry owns the ordered question set persisted under the "questions" key.
type Registry interface {
	List(ctx context.Context) ([]Question, error)
	Active(ctx context.Context) ([]Question, error)
	Get(ctx context.Context, id uuid.UUID) (*Question, error)
	Add(ctx context.Context, dto CreateQuestionDTO) (*Question, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SetPaused(ctx context.Context, id uuid.UUID, paused bool) error
}

type registry struct {
	store store.Store
}

func NewRegistry(s store.Store) Registry {
	return &registry{store: s}
}

// List returns every question in insertion order. On the first-ever read,
// when nothing was persisted yet, it seeds and persists the default set.
func (r *registry) List(ctx context.Context) ([]Question, error) {
	raw, ok, err := r.store.Get(ctx, questionsKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		log := config.WithContext(ctx)
		defaults := defaultQuestions()
		if err := r.save(ctx, defaults); err != nil {
			log.WithError(err).Error("Failed to persist seeded default questions")
			return nil, err
		}
		log.Infof("Seeded %d default questions", len(defaults))
		return defaults, nil
	}

	var questions []Question
	if err := json.Unmarshal([]byte(raw), &questions); err != nil {
		return nil, fmt.Errorf("corrupt questions value: %w", err)
	}
	return questions, nil
}

func (r *registry) Active(ctx context.Context) ([]Question, error) {
	questions, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	active := make([]Question, 0, len(questions))
	for _, q := range questions {
		if !q.Paused {
			active = append(active, q)
		}
	}
	return active, nil
}

func (r *registry) Get(ctx context.Context, id uuid.UUID) (*Question, error) {
	questions, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range questions {
		if questions[i].ID == id {
			return &questions[i], nil
		}
	}
	return nil, ErrQuestionNotFound
}

func (r *registry) Add(ctx context.Context, dto CreateQuestionDTO) (*Question, error) {
	log := config.WithContext(ctx)

	text := strings.TrimSpace(dto.Text)
	if text == "" {
		return nil, ErrEmptyText
	}
	if !dto.Type.IsValid() {
		return nil, ErrInvalidType
	}

	questions, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	q := Question{
		ID:       uuid.New(),
		Text:     text,
		Type:     dto.Type,
		Category: dto.Category,
		Topic:    dto.Topic,
	}
	questions = append(questions, q)

	if err := r.save(ctx, questions); err != nil {
		log.WithError(err).Error("Failed to save question")
		return nil, err
	}

	log.Infof("Added question %s", q.ID)
	return &q, nil
}

// Delete hard-removes the question. Its historical responses stay behind as
// orphans; aggregation over the deleted id yields empty results, not errors.
func (r *registry) Delete(ctx context.Context, id uuid.UUID) error {
	log := config.WithContext(ctx)

	questions, err := r.List(ctx)
	if err != nil {
		return err
	}

	filtered := questions[:0]
	found := false
	for _, q := range questions {
		if q.ID == id {
			found = true
			continue
		}
		filtered = append(filtered, q)
	}
	if !found {
		return ErrQuestionNotFound
	}

	if err := r.save(ctx, filtered); err != nil {
		log.WithError(err).Error("Failed to delete question")
		return err
	}

	log.Infof("Deleted question %s", id)
	return nil
}

// SetPaused writes the flag to the given value; repeating the call is a no-op.
func (r *registry) SetPaused(ctx context.Context, id uuid.UUID, paused bool) error {
	questions, err := r.List(ctx)
	if err != nil {
		return err
	}

	found := false
	for i := range questions {
		if questions[i].ID == id {
			questions[i].Paused = paused
			found = true
			break
		}
	}
	if !found {
		return ErrQuestionNotFound
	}

	return r.save(ctx, questions)
}

func (r *registry) save(ctx context.Context, questions []Question) error {
	raw, err := json.Marshal(questions)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, questionsKey, string(raw))
}
