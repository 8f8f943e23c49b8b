package question

type CreateQuestionDTO struct {
	Text     string       `json:"text"`
	Type     QuestionType `json:"type"`
	Category string       `json:"category"`
	Topic    string       `json:"topic"`
}

type SetPausedDTO struct {
	Paused bool `json:"paused"`
}
