package response

import (
	util "github.com/eod-app/eod-lambda/internal/utils"
	"github.com/google/uuid"
)

// DailyResponse is one answer to one question on one calendar day. At most
// one exists per (QuestionID, Date) pair; a later save replaces the earlier.
//
// The camelCase JSON names are the persisted bucket format under
// "responses:<YYYY-MM-DD>" and must not change.
type DailyResponse struct {
	QuestionID uuid.UUID `json:"questionId"`
	Date       util.Day  `json:"date"`
	Response   Value     `json:"response"`
	// Timestamp is the capture instant in Unix milliseconds. Display only;
	// bucketing always goes by Date.
	Timestamp int64 `json:"timestamp"`
}
