package question_test

import (
	"context"
	"testing"

	"github.com/eod-app/eod-lambda/internal/question"
	"github.com/eod-app/eod-lambda/internal/store"
)

func TestListSeedsDefaultsOnce(t *testing.T) {
	ctx := context.Background()
	registry := question.NewRegistry(store.NewMemory())

	first, err := registry.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(first) != 8 {
		t.Fatalf("expected 8 seeded questions, got %d", len(first))
	}

	paused := 0
	for _, q := range first {
		if q.Paused {
			paused++
		}
	}
	if paused != 5 {
		t.Errorf("expected 5 pre-paused defaults, got %d", paused)
	}

	// Second read returns the persisted set, not a fresh seed.
	second, err := registry.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(second) != 8 || second[0].ID != first[0].ID {
		t.Error("seeding must be a one-time fallback")
	}
}

func TestAddAndDelete(t *testing.T) {
	ctx := context.Background()
	registry := question.NewRegistry(store.NewMemory())

	q, err := registry.Add(ctx, question.CreateQuestionDTO{
		Text:  "Did you read today?",
		Type:  question.TypeYesNo,
		Topic: "Reading",
	})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	all, _ := registry.List(ctx)
	if len(all) != 9 {
		t.Fatalf("expected 9 questions after add, got %d", len(all))
	}
	if all[8].ID != q.ID {
		t.Error("new question should be appended at the end")
	}

	if err := registry.Delete(ctx, q.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := registry.Get(ctx, q.ID); err != question.ErrQuestionNotFound {
		t.Errorf("Get after delete should report not found, got %v", err)
	}

	if err := registry.Delete(ctx, q.ID); err != question.ErrQuestionNotFound {
		t.Errorf("deleting twice should report not found, got %v", err)
	}
}

func TestAddValidation(t *testing.T) {
	ctx := context.Background()
	registry := question.NewRegistry(store.NewMemory())

	t.Run("EmptyText", func(t *testing.T) {
		_, err := registry.Add(ctx, question.CreateQuestionDTO{Text: "   ", Type: question.TypeText})
		if err != question.ErrEmptyText {
			t.Errorf("want ErrEmptyText, got %v", err)
		}
	})

	t.Run("BadType", func(t *testing.T) {
		_, err := registry.Add(ctx, question.CreateQuestionDTO{Text: "ok", Type: "slider"})
		if err != question.ErrInvalidType {
			t.Errorf("want ErrInvalidType, got %v", err)
		}
	})
}

func TestSetPaused(t *testing.T) {
	ctx := context.Background()
	registry := question.NewRegistry(store.NewMemory())

	all, _ := registry.List(ctx)
	target := all[0]
	if target.Paused {
		t.Fatal("first default question should start unpaused")
	}

	if err := registry.SetPaused(ctx, target.ID, true); err != nil {
		t.Fatalf("SetPaused failed: %v", err)
	}
	// Set-to-value, not toggle: repeating leaves it paused.
	if err := registry.SetPaused(ctx, target.ID, true); err != nil {
		t.Fatalf("SetPaused (repeat) failed: %v", err)
	}

	got, err := registry.Get(ctx, target.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !got.Paused {
		t.Error("question should be paused")
	}

	active, _ := registry.Active(ctx)
	for _, q := range active {
		if q.ID == target.ID {
			t.Error("paused question must not appear in Active")
		}
	}
}
