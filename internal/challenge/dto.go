package challenge

import (
	"github.com/eod-app/eod-lambda/internal/question"
	util "github.com/eod-app/eod-lambda/internal/utils"
	"github.com/google/uuid"
)

type CreateChallengeDTO struct {
	Title      string    `json:"title"`
	QuestionID uuid.UUID `json:"question_id"`
	GoalType   GoalType  `json:"goal_type"`
	GoalValue  float64   `json:"goal_value"`
	// StartDate/EndDate are optional; they default to the current month.
	StartDate util.Day `json:"start_date"`
	EndDate   util.Day `json:"end_date"`
}

type ChallengeProgressView struct {
	Challenge MonthlyChallenge   `json:"challenge"`
	Question  *question.Question `json:"question,omitempty"`
	Progress  Progress           `json:"progress"`
}
