package question

// QuestionType determines the input widget on the client and the aggregation
// semantics in the trend engine.
type QuestionType string

const (
	TypeYesNo  QuestionType = "yes-no"
	TypeNumber QuestionType = "number"
	TypeText   QuestionType = "text"
)

var AllTypes = []QuestionType{
	TypeYesNo,
	TypeNumber,
	TypeText,
}

func (t QuestionType) IsValid() bool {
	for _, v := range AllTypes {
		if t == v {
			return true
		}
	}
	return false
}
