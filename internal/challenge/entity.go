package challenge

import (
	util "github.com/eod-app/eod-lambda/internal/utils"
	"github.com/google/uuid"
)

// MonthlyChallenge is a goal over one question's responses in a fixed date
// range. The range is pinned at creation time and never recomputed as months
// roll over. Deactivation is one-way; there is no automatic expiry when
// EndDate passes.
//
// The camelCase JSON names are the persisted storage format under the
// "challenges" key and must not change.
type MonthlyChallenge struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	QuestionID uuid.UUID `json:"questionId"`
	GoalType   GoalType  `json:"goalType"`
	GoalValue  float64   `json:"goalValue"`
	StartDate  util.Day  `json:"startDate"`
	EndDate    util.Day  `json:"endDate"`
	Active     bool      `json:"active"`
}
