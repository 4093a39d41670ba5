package domain

// AnswerSubmission holds a student's answers for one question set, keyed by
// question prompt.
type AnswerSubmission struct {
	SetID   string            `json:"set_id"`
	Answers map[string]string `json:"answers"`
}

// AnswerFeedback explains one incorrect answer.
type AnswerFeedback struct {
	Prompt        string `json:"question"`
	GivenAnswer   string `json:"your_answer"`
	CorrectAnswer string `json:"correct_answer"`
}

// GradeResult is the outcome of grading a submission against its question set.
type GradeResult struct {
	SetID       string
	Correct     int
	Total       int
	Score       float64
	Feedback    []AnswerFeedback
	Suggestions []string
}
