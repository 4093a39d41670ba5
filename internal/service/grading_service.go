package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"slidequiz/internal/domain"
	"slidequiz/internal/dto"
	"slidequiz/internal/logger"

	"go.uber.org/zap"
)

const maxFeedbackEntries = 5

// GradingService stores answer submissions and grades them against the cached
// question set.
type GradingService interface {
	SubmitAnswers(ctx context.Context, req *dto.SubmitAnswersRequest) (*dto.SubmitAnswersResponse, error)
	GetResults(ctx context.Context, setID string) (*dto.ResultsResponse, error)
}

type gradingService struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewGradingService creates a new instance of gradingService
func NewGradingService(setCache domain.Cache, ttl time.Duration) GradingService {
	return &gradingService{cache: setCache, ttl: ttl}
}

// SubmitAnswers implements GradingService
func (s *gradingService) SubmitAnswers(ctx context.Context, req *dto.SubmitAnswersRequest) (*dto.SubmitAnswersResponse, error) {
	if _, err := s.loadSet(ctx, req.SetID); err != nil {
		return nil, err
	}

	submission := domain.AnswerSubmission{
		SetID:   req.SetID,
		Answers: req.Answers,
	}
	payload, err := json.Marshal(submission)
	if err != nil {
		return nil, domain.NewInternalError("Failed to encode submission", err)
	}
	if err := s.cache.Set(ctx, submissionKey(req.SetID), string(payload), s.ttl); err != nil {
		return nil, domain.NewInternalError("Failed to store submission", err)
	}

	logger.Get().Info("Answers submitted",
		zap.String("set_id", req.SetID),
		zap.Int("answers", len(req.Answers)))

	return &dto.SubmitAnswersResponse{
		Message:  "Answers submitted successfully",
		Received: len(req.Answers),
	}, nil
}

// GetResults implements GradingService. Answers are compared case-insensitively
// after trimming; at most five incorrect answers are explained.
func (s *gradingService) GetResults(ctx context.Context, setID string) (*dto.ResultsResponse, error) {
	set, err := s.loadSet(ctx, setID)
	if err != nil {
		return nil, err
	}

	submission, err := s.loadSubmission(ctx, setID)
	if err != nil {
		return nil, err
	}

	result := grade(set, submission)
	resp := &dto.ResultsResponse{
		SetID:       setID,
		Score:       fmt.Sprintf("%.1f%%", result.Score),
		Correct:     result.Correct,
		Total:       result.Total,
		Feedback:    make([]dto.AnswerFeedbackResponse, 0, len(result.Feedback)),
		Suggestions: result.Suggestions,
	}
	for _, f := range result.Feedback {
		resp.Feedback = append(resp.Feedback, dto.AnswerFeedbackResponse{
			Question:      f.Prompt,
			YourAnswer:    f.GivenAnswer,
			CorrectAnswer: f.CorrectAnswer,
		})
	}
	return resp, nil
}

func (s *gradingService) loadSet(ctx context.Context, setID string) (*domain.QuestionSet, error) {
	raw, err := s.cache.Get(ctx, questionSetKey(setID))
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, domain.NewSetNotFoundError(setID)
		}
		return nil, domain.NewInternalError("Failed to load question set", err)
	}
	var set domain.QuestionSet
	if err := json.Unmarshal([]byte(raw), &set); err != nil {
		return nil, domain.NewInternalError("Failed to decode question set", err)
	}
	return &set, nil
}

func (s *gradingService) loadSubmission(ctx context.Context, setID string) (*domain.AnswerSubmission, error) {
	raw, err := s.cache.Get(ctx, submissionKey(setID))
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, domain.NewError(domain.CodeNotFound,
				fmt.Sprintf("No answers submitted for question set: %s", setID), nil)
		}
		return nil, domain.NewInternalError("Failed to load submission", err)
	}
	var submission domain.AnswerSubmission
	if err := json.Unmarshal([]byte(raw), &submission); err != nil {
		return nil, domain.NewInternalError("Failed to decode submission", err)
	}
	return &submission, nil
}

func grade(set *domain.QuestionSet, submission *domain.AnswerSubmission) *domain.GradeResult {
	result := &domain.GradeResult{SetID: set.ID}

	for _, q := range set.Questions {
		result.Total++
		given := normalizeAnswer(submission.Answers[q.Prompt])
		want := normalizeAnswer(q.Answer)
		if given != "" && given == want {
			result.Correct++
			continue
		}
		if len(result.Feedback) < maxFeedbackEntries {
			result.Feedback = append(result.Feedback, domain.AnswerFeedback{
				Prompt:        q.Prompt,
				GivenAnswer:   strings.TrimSpace(submission.Answers[q.Prompt]),
				CorrectAnswer: q.Answer,
			})
		}
	}

	if result.Total > 0 {
		result.Score = float64(result.Correct) / float64(result.Total) * 100
	}
	result.Suggestions = suggestionsForScore(result.Score)
	return result
}

func normalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// suggestionsForScore tiers study advice by score percentage.
func suggestionsForScore(score float64) []string {
	switch {
	case score < 50:
		return []string{
			"Focus on fundamental concepts",
			"Review chapter summaries",
			"Practice basic definitions",
		}
	case score < 75:
		return []string{
			"Work on application problems",
			"Practice time management",
			"Review diagrams and charts",
		}
	default:
		return []string{
			"Excellent performance!",
			"Challenge yourself with advanced problems",
			"Help peers with difficult concepts",
		}
	}
}
