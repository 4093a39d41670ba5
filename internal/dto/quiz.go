package dto

// UploadTextResponse carries the extracted text of an uploaded document
// @Description Extracted document text
type UploadTextResponse struct {
	Filename string `json:"filename"`
	Format   string `json:"format"`
	Text     string `json:"text"`
}

// GenerateQuestionsRequest is the body of POST /generate-questions/
// @Description Request body for generating quiz questions from text
type GenerateQuestionsRequest struct {
	Text          string `json:"text"`
	QuestionCount int    `json:"question_count,omitempty"`
	Difficulty    string `json:"difficulty,omitempty"`
	Language      string `json:"language,omitempty"`
}

// QuestionResponse represents a single generated question
type QuestionResponse struct {
	Type    string   `json:"type,omitempty"`
	Prompt  string   `json:"prompt"`
	Choices []string `json:"choices,omitempty"`
	Answer  string   `json:"answer,omitempty"`
}

// GenerateQuestionsResponse is the result of a generation request. SetID
// references the cached question set for later answer submission.
type GenerateQuestionsResponse struct {
	SetID     string             `json:"set_id,omitempty"`
	Questions []QuestionResponse `json:"questions"`
}

// SubmitAnswersRequest is the body of POST /submit-answers/. Answers are keyed
// by question prompt.
type SubmitAnswersRequest struct {
	SetID   string            `json:"set_id"`
	Answers map[string]string `json:"answers"`
}

// SubmitAnswersResponse acknowledges a stored submission
type SubmitAnswersResponse struct {
	Message  string `json:"message"`
	Received int    `json:"received"`
}

// AnswerFeedbackResponse explains one incorrect answer
type AnswerFeedbackResponse struct {
	Question      string `json:"question"`
	YourAnswer    string `json:"your_answer"`
	CorrectAnswer string `json:"correct_answer"`
}

// ResultsResponse is the graded outcome for a question set
type ResultsResponse struct {
	SetID       string                   `json:"set_id"`
	Score       string                   `json:"score"`
	Correct     int                      `json:"correct"`
	Total       int                      `json:"total"`
	Feedback    []AnswerFeedbackResponse `json:"feedback"`
	Suggestions []string                 `json:"suggestions"`
}
