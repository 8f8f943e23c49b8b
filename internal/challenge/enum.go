package challenge

import "github.com/eod-app/eod-lambda/internal/question"

// GoalType is the reduction applied to a challenge's matching responses.
type GoalType string

const (
	GoalYesCount     GoalType = "yesCount"
	GoalSum          GoalType = "sum"
	GoalCountEntries GoalType = "countEntries"
)

var AllGoalTypes = []GoalType{
	GoalYesCount,
	GoalSum,
	GoalCountEntries,
}

func (g GoalType) IsValid() bool {
	for _, v := range AllGoalTypes {
		if g == v {
			return true
		}
	}
	return false
}

// GoalTypesFor lists the goal types that make sense for a question type.
func GoalTypesFor(t question.QuestionType) []GoalType {
	switch t {
	case question.TypeYesNo:
		return []GoalType{GoalYesCount}
	case question.TypeNumber:
		return []GoalType{GoalSum, GoalCountEntries}
	default:
		return []GoalType{GoalCountEntries}
	}
}
