package validation

import (
	"regexp"
	"slidequiz/internal/domain"
	"strings"
)

const (
	maxTextLength   = 200000
	maxAnswerLength = 2000
)

var validDifficulties = map[string]struct{}{
	"easy":   {},
	"medium": {},
	"hard":   {},
}

// Validator provides request validation functionality
type Validator struct {
	maxQuestionCount int
}

// NewValidator creates a new validator instance
func NewValidator(maxQuestionCount int) *Validator {
	if maxQuestionCount <= 0 {
		maxQuestionCount = 50
	}
	return &Validator{maxQuestionCount: maxQuestionCount}
}

// ValidateGenerateQuestionsRequest validates the generate-questions request.
// A zero question count is allowed and means the configured default.
func (v *Validator) ValidateGenerateQuestionsRequest(text string, count int, difficulty string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(text) == "" {
		errors = append(errors, domain.NewMissingFieldError("text"))
	} else if len(text) > maxTextLength {
		errors = append(errors, domain.NewOutOfRangeError("text", len(text), 1, maxTextLength))
	}

	if count < 0 || count > v.maxQuestionCount {
		errors = append(errors, domain.NewOutOfRangeError("question_count", count, 1, v.maxQuestionCount))
	}

	if difficulty != "" {
		if _, ok := validDifficulties[strings.ToLower(difficulty)]; !ok {
			errors = append(errors, domain.NewInvalidFormatError("difficulty", difficulty))
		}
	}

	return errors
}

// ValidateSubmitAnswersRequest validates the submit-answers request
func (v *Validator) ValidateSubmitAnswersRequest(setID string, answers map[string]string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(setID) == "" {
		errors = append(errors, domain.NewMissingFieldError("set_id"))
	} else if !isValidULID(setID) {
		errors = append(errors, domain.NewInvalidFormatError("set_id", setID))
	}

	if len(answers) == 0 {
		errors = append(errors, domain.NewMissingFieldError("answers"))
	}
	for prompt, answer := range answers {
		if len(answer) > maxAnswerLength {
			errors = append(errors, domain.NewOutOfRangeError("answers", len(answer), 0, maxAnswerLength))
			break
		}
		if strings.TrimSpace(prompt) == "" {
			errors = append(errors, domain.NewInvalidFormatError("answers", "empty question prompt"))
			break
		}
	}

	return errors
}

// ValidateSetID validates a question set id path parameter
func (v *Validator) ValidateSetID(setID string) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if strings.TrimSpace(setID) == "" {
		errors = append(errors, domain.NewMissingFieldError("set_id"))
	} else if !isValidULID(setID) {
		errors = append(errors, domain.NewInvalidFormatError("set_id", setID))
	}
	return errors
}

// isValidULID checks if the string is a valid ULID format
func isValidULID(s string) bool {
	if len(s) != 26 {
		return false
	}
	validULID := regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)
	return validULID.MatchString(s)
}
