package response

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/eod-app/eod-lambda/internal/question"
)

// ValueKind tags the variant held by a Value.
type ValueKind int

const (
	KindUnset ValueKind = iota
	KindYesNo
	KindNumber
	KindText
)

// Value is a daily answer: a yes/no flag, a number, or free text. On the wire
// and in storage it is encoded as the bare JSON value (true, 3.5, "note"),
// the same representation the mobile client always persisted.
type Value struct {
	kind ValueKind
	b    bool
	n    float64
	s    string
}

func YesNoValue(b bool) Value    { return Value{kind: KindYesNo, b: b} }
func NumberValue(n float64) Value { return Value{kind: KindNumber, n: n} }
func TextValue(s string) Value   { return Value{kind: KindText, s: s} }

func (v Value) Kind() ValueKind { return v.kind }

func (v Value) Bool() (bool, bool) {
	return v.b, v.kind == KindYesNo
}

func (v Value) Float() (float64, bool) {
	return v.n, v.kind == KindNumber
}

func (v Value) Text() (string, bool) {
	return v.s, v.kind == KindText
}

// IsTrue reports a boolean-true answer; any other variant is false.
func (v Value) IsTrue() bool {
	return v.kind == KindYesNo && v.b
}

// NumberOrZero returns the numeric value, or 0 for non-numeric variants.
func (v Value) NumberOrZero() float64 {
	if v.kind == KindNumber {
		return v.n
	}
	return 0
}

// MatchesType reports whether the variant is the one the question expects.
func (v Value) MatchesType(t question.QuestionType) bool {
	switch t {
	case question.TypeYesNo:
		return v.kind == KindYesNo
	case question.TypeNumber:
		return v.kind == KindNumber
	case question.TypeText:
		return v.kind == KindText
	default:
		return false
	}
}

func (v Value) String() string {
	switch v.kind {
	case KindYesNo:
		return strconv.FormatBool(v.b)
	case KindNumber:
		return strconv.FormatFloat(v.n, 'f', -1, 64)
	case KindText:
		return v.s
	default:
		return ""
	}
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindYesNo:
		return json.Marshal(v.b)
	case KindNumber:
		return json.Marshal(v.n)
	case KindText:
		return json.Marshal(v.s)
	default:
		return []byte("null"), nil
	}
}

func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*v = Value{}
		return nil
	}

	switch data[0] {
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*v = YesNoValue(b)
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = TextValue(s)
	default:
		var n float64
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("invalid response value %s", data)
		}
		*v = NumberValue(n)
	}
	return nil
}
