package response_test

import (
	"encoding/json"
	"testing"

	"github.com/eod-app/eod-lambda/internal/question"
	"github.com/eod-app/eod-lambda/internal/response"
)

func TestValueUnmarshalSniffsVariant(t *testing.T) {
	t.Run("Bool", func(t *testing.T) {
		var v response.Value
		if err := json.Unmarshal([]byte(`true`), &v); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		if !v.IsTrue() {
			t.Error("expected a true yes-no value")
		}
	})

	t.Run("Number", func(t *testing.T) {
		var v response.Value
		if err := json.Unmarshal([]byte(`7.5`), &v); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		n, ok := v.Float()
		if !ok || n != 7.5 {
			t.Errorf("expected number 7.5, got %v ok=%v", n, ok)
		}
	})

	t.Run("String", func(t *testing.T) {
		var v response.Value
		if err := json.Unmarshal([]byte(`"slept badly"`), &v); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		s, ok := v.Text()
		if !ok || s != "slept badly" {
			t.Errorf("expected text, got %q ok=%v", s, ok)
		}
	})

	t.Run("Null", func(t *testing.T) {
		var v response.Value
		if err := json.Unmarshal([]byte(`null`), &v); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		if v.Kind() != response.KindUnset {
			t.Errorf("null should decode to an unset value, got kind %d", v.Kind())
		}
	})

	t.Run("Garbage", func(t *testing.T) {
		var v response.Value
		if err := json.Unmarshal([]byte(`{}`), &v); err == nil {
			t.Error("objects are not valid response values")
		}
	})
}

func TestValueMarshalKeepsRawEncoding(t *testing.T) {
	cases := []struct {
		value response.Value
		want  string
	}{
		{response.YesNoValue(false), `false`},
		{response.NumberValue(4), `4`},
		{response.TextValue("ok"), `"ok"`},
	}
	for _, c := range cases {
		raw, err := json.Marshal(c.value)
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		if string(raw) != c.want {
			t.Errorf("marshal = %s, want %s", raw, c.want)
		}
	}
}

func TestValueMatchesType(t *testing.T) {
	if !response.YesNoValue(true).MatchesType(question.TypeYesNo) {
		t.Error("bool should match yes-no")
	}
	if response.NumberValue(1).MatchesType(question.TypeYesNo) {
		t.Error("number must not match yes-no")
	}
	if !response.TextValue("x").MatchesType(question.TypeText) {
		t.Error("string should match text")
	}
}
