package store_test

import (
	"context"
	"reflect"
	"testing"

	"github.com/eod-app/eod-lambda/internal/store"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()

	t.Run("GetMissing", func(t *testing.T) {
		_, ok, err := s.Get(ctx, "nope")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if ok {
			t.Error("missing key should report ok=false")
		}
	})

	t.Run("SetOverwrites", func(t *testing.T) {
		if err := s.Set(ctx, "questions", `[1]`); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		if err := s.Set(ctx, "questions", `[2]`); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		value, ok, err := s.Get(ctx, "questions")
		if err != nil || !ok {
			t.Fatalf("Get failed: ok=%v err=%v", ok, err)
		}
		if value != `[2]` {
			t.Errorf("expected overwritten value, got %s", value)
		}
	})

	t.Run("ListKeysByPrefix", func(t *testing.T) {
		s.Set(ctx, "responses:2026-01-02", `[]`)
		s.Set(ctx, "responses:2026-01-01", `[]`)
		s.Set(ctx, "challenges", `[]`)

		keys, err := s.ListKeys(ctx, "responses:")
		if err != nil {
			t.Fatalf("ListKeys failed: %v", err)
		}
		want := []string{"responses:2026-01-01", "responses:2026-01-02"}
		if !reflect.DeepEqual(keys, want) {
			t.Errorf("ListKeys = %v, want %v", keys, want)
		}
	})
}
