package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"slidequiz/internal/cache"
	"slidequiz/internal/config"
	"slidequiz/internal/domain"
	"slidequiz/internal/dto"
	"slidequiz/internal/logger"
	"slidequiz/internal/util"

	"go.uber.org/zap"
)

// QuestionService generates quiz questions from extracted text and keeps the
// resulting set in the TTL cache for later grading.
type QuestionService interface {
	GenerateQuestions(ctx context.Context, req *dto.GenerateQuestionsRequest) (*dto.GenerateQuestionsResponse, error)
}

type questionService struct {
	generator domain.QuestionGenerationService
	cache     domain.Cache
	cfg       *config.Config
}

// NewQuestionService creates a new instance of questionService. The cache may
// be nil, in which case generated sets are not retained and no set_id is
// returned.
func NewQuestionService(generator domain.QuestionGenerationService, setCache domain.Cache, cfg *config.Config) QuestionService {
	return &questionService{
		generator: generator,
		cache:     setCache,
		cfg:       cfg,
	}
}

func questionSetKey(setID string) string {
	return cache.GenerateCacheKey("quiz", cache.ObjectQuestionSet, setID)
}

func submissionKey(setID string) string {
	return cache.GenerateCacheKey("quiz", cache.ObjectSubmission, setID)
}

// GenerateQuestions implements QuestionService. Blank input fails before any
// upstream call is made.
func (s *questionService) GenerateQuestions(ctx context.Context, req *dto.GenerateQuestionsRequest) (*dto.GenerateQuestionsResponse, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, domain.NewEmptyInputError()
	}

	count := req.QuestionCount
	if count <= 0 {
		count = s.cfg.Generation.DefaultQuestionCount
	}
	if count > s.cfg.Generation.MaxQuestionCount {
		count = s.cfg.Generation.MaxQuestionCount
	}

	questions, err := s.generator.GenerateQuestions(ctx, text, domain.GenerationOptions{
		QuestionCount: count,
		Difficulty:    strings.ToLower(req.Difficulty),
		Language:      req.Language,
	})
	if err != nil {
		return nil, err
	}

	set := &domain.QuestionSet{
		ID:        util.NewULID(),
		Questions: questions,
		CreatedAt: time.Now().UTC(),
	}

	setID := set.ID
	if s.cache != nil {
		if err := s.storeSet(ctx, set); err != nil {
			// A cache failure must not fail the generation request; the client
			// just loses the grading flow for this set.
			logger.Get().Warn("Failed to cache question set",
				zap.String("set_id", set.ID),
				zap.Error(err))
			setID = ""
		}
	} else {
		setID = ""
	}

	resp := &dto.GenerateQuestionsResponse{
		SetID:     setID,
		Questions: make([]dto.QuestionResponse, 0, len(questions)),
	}
	for _, q := range questions {
		resp.Questions = append(resp.Questions, dto.QuestionResponse{
			Type:    string(q.Type),
			Prompt:  q.Prompt,
			Choices: q.Choices,
			Answer:  q.Answer,
		})
	}
	return resp, nil
}

func (s *questionService) storeSet(ctx context.Context, set *domain.QuestionSet) error {
	payload, err := json.Marshal(set)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, questionSetKey(set.ID), string(payload), s.cfg.Generation.ResultTTL)
}
