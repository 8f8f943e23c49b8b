package challenge_test

import (
	"context"
	"testing"
	"time"

	"github.com/eod-app/eod-lambda/internal/challenge"
	"github.com/eod-app/eod-lambda/internal/question"
	"github.com/eod-app/eod-lambda/internal/response"
	"github.com/eod-app/eod-lambda/internal/store"
	util "github.com/eod-app/eod-lambda/internal/utils"
	"github.com/google/uuid"
)

func newService(t *testing.T) (challenge.Service, question.Registry, response.Ledger) {
	t.Helper()
	kv := store.NewMemory()
	registry := question.NewRegistry(kv)
	ledger := response.NewLedger(kv)
	return challenge.NewService(kv, registry, ledger), registry, ledger
}

func firstYesNo(t *testing.T, registry question.Registry) question.Question {
	t.Helper()
	questions, err := registry.Active(context.Background())
	if err != nil {
		t.Fatalf("Active failed: %v", err)
	}
	for _, q := range questions {
		if q.Type == question.TypeYesNo {
			return q
		}
	}
	t.Fatal("no yes-no question in defaults")
	return question.Question{}
}

func TestCreateDefaultsToCurrentMonth(t *testing.T) {
	ctx := context.Background()
	svc, registry, _ := newService(t)
	q := firstYesNo(t, registry)

	c, err := svc.Create(ctx, challenge.CreateChallengeDTO{
		Title:      "Dry Month",
		QuestionID: q.ID,
		GoalType:   challenge.GoalYesCount,
		GoalValue:  20,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	now := time.Now()
	if c.StartDate != util.StartOfMonth(now) || c.EndDate != util.EndOfMonth(now) {
		t.Errorf("range should default to the current month, got %s..%s", c.StartDate, c.EndDate)
	}
	if !c.Active {
		t.Error("new challenges start active")
	}
}

func TestCreateRejectsWrongGoalType(t *testing.T) {
	ctx := context.Background()
	svc, registry, _ := newService(t)
	q := firstYesNo(t, registry)

	_, err := svc.Create(ctx, challenge.CreateChallengeDTO{
		QuestionID: q.ID,
		GoalType:   challenge.GoalSum, // sum makes no sense for yes-no
		GoalValue:  5,
	})
	if err != challenge.ErrInvalidGoalType {
		t.Errorf("want ErrInvalidGoalType, got %v", err)
	}
}

func TestCreateRejectsUnknownQuestion(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newService(t)

	_, err := svc.Create(ctx, challenge.CreateChallengeDTO{
		QuestionID: uuid.New(),
		GoalType:   challenge.GoalCountEntries,
		GoalValue:  5,
	})
	if err != question.ErrQuestionNotFound {
		t.Errorf("want ErrQuestionNotFound, got %v", err)
	}
}

func TestDeactivateKeepsChallenge(t *testing.T) {
	ctx := context.Background()
	svc, registry, _ := newService(t)
	q := firstYesNo(t, registry)

	c, err := svc.Create(ctx, challenge.CreateChallengeDTO{
		QuestionID: q.ID,
		GoalType:   challenge.GoalYesCount,
		GoalValue:  10,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := svc.Deactivate(ctx, c.ID); err != nil {
		t.Fatalf("Deactivate failed: %v", err)
	}

	// Gone from the active list...
	active, err := svc.ActiveWithProgress(ctx)
	if err != nil {
		t.Fatalf("ActiveWithProgress failed: %v", err)
	}
	for _, v := range active {
		if v.Challenge.ID == c.ID {
			t.Error("deactivated challenge must not be listed as active")
		}
	}

	// ...but still present on direct lookup, flagged inactive.
	got, err := svc.Get(ctx, c.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Active {
		t.Error("deactivated challenge should report active=false")
	}
}

func TestDeleteRemovesChallenge(t *testing.T) {
	ctx := context.Background()
	svc, registry, _ := newService(t)
	q := firstYesNo(t, registry)

	c, _ := svc.Create(ctx, challenge.CreateChallengeDTO{
		QuestionID: q.ID,
		GoalType:   challenge.GoalYesCount,
		GoalValue:  10,
	})

	if err := svc.Delete(ctx, c.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := svc.Get(ctx, c.ID); err != challenge.ErrChallengeNotFound {
		t.Errorf("want ErrChallengeNotFound after delete, got %v", err)
	}
}

func TestActiveWithProgressEvaluatesLedger(t *testing.T) {
	ctx := context.Background()
	svc, registry, ledger := newService(t)
	q := firstYesNo(t, registry)

	c, err := svc.Create(ctx, challenge.CreateChallengeDTO{
		QuestionID: q.ID,
		GoalType:   challenge.GoalYesCount,
		GoalValue:  3,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	day := c.StartDate
	for i := 0; i < 2; i++ {
		err := ledger.Save(ctx, day, response.DailyResponse{
			QuestionID: q.ID,
			Response:   response.YesNoValue(true),
		})
		if err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		day = day.AddDays(1)
	}

	views, err := svc.ActiveWithProgress(ctx)
	if err != nil {
		t.Fatalf("ActiveWithProgress failed: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected 1 active challenge, got %d", len(views))
	}

	prog := views[0].Progress
	if prog.Current != 2 || prog.Percent != 67 {
		t.Errorf("progress = %+v, want current 2 percent 67", prog)
	}
	if prog.Label != "2 yes" {
		t.Errorf("Label = %q, want \"2 yes\"", prog.Label)
	}
}
