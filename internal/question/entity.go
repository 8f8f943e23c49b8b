package question

import "github.com/google/uuid"

// Question is one recurring daily prompt. Paused questions stay out of the
// check-in form and of trend/challenge views but keep their history.
//
// The JSON field names are the persisted storage format under the "questions"
// key and must not change.
type Question struct {
	ID       uuid.UUID    `json:"id"`
	Text     string       `json:"text"`
	Type     QuestionType `json:"type"`
	Category string       `json:"category,omitempty"`
	Topic    string       `json:"topic,omitempty"`
	Paused   bool         `json:"paused"`
}
