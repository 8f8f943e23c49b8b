package trend

import (
	"github.com/eod-app/eod-lambda/internal/question"
	util "github.com/eod-app/eod-lambda/internal/utils"
	"github.com/google/uuid"
)

type YesNoStats struct {
	YesCount   int     `json:"yes_count"`
	Percentage float64 `json:"percentage"`
}

type NumberStats struct {
	Sum     float64 `json:"sum"`
	Average float64 `json:"average"`
}

type QuestionStats struct {
	Entries      int          `json:"entries"`
	ResponseRate int          `json:"response_rate"`
	YesNo        *YesNoStats  `json:"yes_no,omitempty"`
	Number       *NumberStats `json:"number,omitempty"`
}

type QuestionTrend struct {
	Question question.Question `json:"question"`
	Stats    QuestionStats     `json:"stats"`
}

type TrendsResponse struct {
	Days      int             `json:"days"`
	Questions []QuestionTrend `json:"questions"`
}

type Point struct {
	Date  util.Day `json:"date"`
	Value float64  `json:"value"`
}

type SeriesResponse struct {
	QuestionID uuid.UUID `json:"question_id"`
	Days       int       `json:"days"`
	Points     []Point   `json:"points"`
}
