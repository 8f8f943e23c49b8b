package response_test

import (
	"context"
	"testing"

	"github.com/eod-app/eod-lambda/internal/question"
	"github.com/eod-app/eod-lambda/internal/response"
	"github.com/eod-app/eod-lambda/internal/store"
	util "github.com/eod-app/eod-lambda/internal/utils"
	"github.com/google/uuid"
)

func TestForDateEmptyBucket(t *testing.T) {
	ctx := context.Background()
	ledger := response.NewLedger(store.NewMemory())

	got, err := ledger.ForDate(ctx, "2026-03-01")
	if err != nil {
		t.Fatalf("ForDate failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("missing bucket should read as empty, got %d entries", len(got))
	}
}

func TestSaveUpsertsWithinBucket(t *testing.T) {
	ctx := context.Background()
	ledger := response.NewLedger(store.NewMemory())
	day := util.Day("2026-03-01")

	first := uuid.New()
	second := uuid.New()

	mustSave := func(r response.DailyResponse) {
		t.Helper()
		if err := ledger.Save(ctx, day, r); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	mustSave(response.DailyResponse{QuestionID: first, Response: response.NumberValue(6)})
	mustSave(response.DailyResponse{QuestionID: second, Response: response.YesNoValue(true)})
	// Overwrite the first answer; it must be replaced in place, not appended.
	mustSave(response.DailyResponse{QuestionID: first, Response: response.NumberValue(8)})

	got, err := ledger.ForDate(ctx, day)
	if err != nil {
		t.Fatalf("ForDate failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries after overwrite, got %d", len(got))
	}
	if got[0].QuestionID != first {
		t.Error("overwrite must preserve the entry's position")
	}
	if n, _ := got[0].Response.Float(); n != 8 {
		t.Errorf("overwrite must keep the second value, got %v", n)
	}
	if got[0].Date != day {
		t.Errorf("saved response must carry the bucket date, got %s", got[0].Date)
	}
}

func TestAllEnumeratesBuckets(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	ledger := response.NewLedger(kv)
	q := uuid.New()

	days := []util.Day{"2026-03-01", "2026-03-02", "2026-03-05"}
	for i, d := range days {
		err := ledger.Save(ctx, d, response.DailyResponse{
			QuestionID: q,
			Response:   response.NumberValue(float64(i)),
		})
		if err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}
	// An unrelated key must not be picked up as a bucket.
	kv.Set(ctx, "challenges", `[]`)

	all, err := ledger.All(ctx)
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 buckets, got %d", len(all))
	}
	for _, d := range days {
		if len(all[d]) != 1 {
			t.Errorf("bucket %s missing its entry", d)
		}
	}
}

func TestSubmitValidatesAgainstRegistry(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	registry := question.NewRegistry(kv)
	ledger := response.NewLedger(kv)
	service := response.NewCheckInService(ledger, registry)

	questions, _ := registry.Active(ctx)
	yesNo := questions[0] // "Did you drink alcohol today?"

	t.Run("UnknownQuestion", func(t *testing.T) {
		_, err := service.Submit(ctx, "2026-03-01", []response.ResponseInput{
			{QuestionID: uuid.New(), Response: response.YesNoValue(true)},
		})
		if err != response.ErrQuestionNotFound {
			t.Errorf("want ErrQuestionNotFound, got %v", err)
		}
	})

	t.Run("TypeMismatch", func(t *testing.T) {
		_, err := service.Submit(ctx, "2026-03-01", []response.ResponseInput{
			{QuestionID: yesNo.ID, Response: response.NumberValue(3)},
		})
		if err != response.ErrTypeMismatch {
			t.Errorf("want ErrTypeMismatch, got %v", err)
		}
	})

	t.Run("Saves", func(t *testing.T) {
		saved, err := service.Submit(ctx, "2026-03-01", []response.ResponseInput{
			{QuestionID: yesNo.ID, Response: response.YesNoValue(false)},
		})
		if err != nil {
			t.Fatalf("Submit failed: %v", err)
		}
		if len(saved) != 1 || saved[0].Timestamp == 0 {
			t.Error("submit should stamp and return the saved responses")
		}

		bucket, _ := ledger.ForDate(ctx, "2026-03-01")
		if len(bucket) != 1 {
			t.Errorf("expected 1 persisted response, got %d", len(bucket))
		}
	})
}
