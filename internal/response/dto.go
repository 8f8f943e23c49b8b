package response

import (
	"github.com/eod-app/eod-lambda/internal/question"
	util "github.com/eod-app/eod-lambda/internal/utils"
	"github.com/google/uuid"
)

// CheckInView is what the daily form renders: the active questions and the
// answers already recorded for the day.
type CheckInView struct {
	Date      util.Day            `json:"date"`
	Questions []question.Question `json:"questions"`
	Responses []DailyResponse     `json:"responses"`
}

type ResponseInput struct {
	QuestionID uuid.UUID `json:"questionId"`
	Response   Value     `json:"response"`
}

type SubmitCheckInDTO struct {
	Responses []ResponseInput `json:"responses"`
}
