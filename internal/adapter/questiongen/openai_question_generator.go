// Package questiongen generates quiz questions from extracted text through an
// external LLM.
//
// Long documents are split into character-budgeted chunks aligned to block
// separators; each chunk is prompted concurrently for an even share of the
// requested questions. Chunk results are combined round-robin, deduplicated by
// normalized prompt text, and trimmed to the requested count.
package questiongen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"slidequiz/internal/chunk"
	"slidequiz/internal/config"
	"slidequiz/internal/domain"

	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const promptTemplate = `You are an expert exam question generator. Create exactly %d quiz questions from the study material below.
Mix multiple choice, fill-in-the-blank, and short answer questions.%s%s

Respond with ONLY a JSON array. Each element must have this shape:
{
  "type": "multiple_choice" | "fill_in" | "short_answer",
  "question": "the question text",
  "choices": ["A", "B", "C", "D"],
  "answer": "the correct answer"
}
The "choices" field is required for multiple_choice questions and must be omitted otherwise.

Study material:
%s`

// OpenAIQuestionGenerator implements domain.QuestionGenerationService on top of
// a langchaingo model.
type OpenAIQuestionGenerator struct {
	llm      llms.Model
	splitter *chunk.Splitter
	cfg      config.GenerationConfig
	timeout  time.Duration
	logger   *zap.Logger
}

// NewOpenAIQuestionGenerator creates a generator backed by the given model.
func NewOpenAIQuestionGenerator(llm llms.Model, cfg config.GenerationConfig, timeout time.Duration, logger *zap.Logger) (domain.QuestionGenerationService, error) {
	if llm == nil {
		return nil, fmt.Errorf("llm model cannot be nil")
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &OpenAIQuestionGenerator{
		llm:      llm,
		splitter: chunk.NewSplitter(cfg.ChunkSize, cfg.MaxChunks),
		cfg:      cfg,
		timeout:  timeout,
		logger:   logger,
	}, nil
}

// GenerateQuestions implements domain.QuestionGenerationService.
func (g *OpenAIQuestionGenerator) GenerateQuestions(ctx context.Context, text string, opts domain.GenerationOptions) ([]domain.Question, error) {
	blocks := strings.Split(text, domain.BlockSeparator)
	chunks := g.splitter.Split(blocks, domain.BlockSeparator)
	if len(chunks) == 0 {
		return nil, domain.NewEmptyInputError()
	}

	count := opts.QuestionCount
	if count <= 0 {
		count = g.cfg.DefaultQuestionCount
	}
	// Even share per chunk, rounded up so the merged pool covers the target.
	quota := (count + len(chunks) - 1) / len(chunks)

	g.logger.Info("Generating questions",
		zap.Int("requested", count),
		zap.Int("chunks", len(chunks)),
		zap.Int("per_chunk", quota),
		zap.String("difficulty", opts.Difficulty))

	results := make([][]domain.Question, len(chunks))
	eg, egCtx := errgroup.WithContext(ctx)
	for i, c := range chunks {
		i, c := i, c
		eg.Go(func() error {
			questions, err := g.generateChunk(egCtx, c, quota, opts)
			if err != nil {
				return err
			}
			results[i] = questions
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	merged := dedupeByPrompt(mergeRoundRobin(results))
	if len(merged) == 0 {
		return nil, domain.NewMalformedResponseError(fmt.Errorf("no usable questions in upstream response"))
	}
	if len(merged) > count {
		merged = merged[:count]
	}
	return merged, nil
}

func (g *OpenAIQuestionGenerator) generateChunk(ctx context.Context, text string, count int, opts domain.GenerationOptions) ([]domain.Question, error) {
	prompt := buildPrompt(text, count, opts)

	raw, err := g.callWithRetry(ctx, prompt)
	if err != nil {
		return nil, err
	}
	return parseQuestions(raw)
}

// callWithRetry runs the upstream call under a timeout and retries transient
// failures with a linear backoff. Every attempt failure ends up wrapped as an
// upstream service error.
func (g *OpenAIQuestionGenerator) callWithRetry(ctx context.Context, prompt string) (string, error) {
	attempts := g.cfg.MaxAttempts
	if attempts <= 0 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		callCtx, cancel := context.WithTimeout(ctx, g.timeout)
		out, err := llms.GenerateFromSinglePrompt(callCtx, g.llm, prompt, llms.WithTemperature(0.3))
		cancel()
		if err == nil {
			return out, nil
		}
		lastErr = err

		if attempt == attempts || !shouldRetry(err) {
			break
		}
		g.logger.Warn("Upstream LLM call failed, retrying",
			zap.Int("attempt", attempt),
			zap.Error(err))
		select {
		case <-time.After(g.cfg.RetryBackoff * time.Duration(attempt)):
		case <-ctx.Done():
			return "", domain.NewUpstreamServiceError(ctx.Err())
		}
	}
	return "", domain.NewUpstreamServiceError(lastErr)
}

func buildPrompt(text string, count int, opts domain.GenerationOptions) string {
	var difficulty, language string
	if opts.Difficulty != "" {
		difficulty = fmt.Sprintf("\nTarget difficulty: %s.", opts.Difficulty)
	}
	if opts.Language != "" {
		language = fmt.Sprintf("\nWrite all questions and answers in %s.", opts.Language)
	}
	return fmt.Sprintf(promptTemplate, count, difficulty, language, text)
}

// questionPayload is the wire shape expected back from the model.
type questionPayload struct {
	Type     string   `json:"type"`
	Question string   `json:"question"`
	Choices  []string `json:"choices"`
	Answer   string   `json:"answer"`
}

// parseQuestions carves the JSON array out of the raw model output and decodes
// it. Models occasionally wrap the payload in prose or markdown fences, so
// everything outside the first '[' and last ']' is discarded.
func parseQuestions(raw string) ([]domain.Question, error) {
	cleaned := strings.TrimSpace(raw)
	start := strings.Index(cleaned, "[")
	end := strings.LastIndex(cleaned, "]")
	if start == -1 || end == -1 || end <= start {
		return nil, domain.NewMalformedResponseError(fmt.Errorf("no JSON array found in response: %.200s", cleaned))
	}

	var payloads []questionPayload
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &payloads); err != nil {
		return nil, domain.NewMalformedResponseError(fmt.Errorf("failed to decode question array: %w", err))
	}

	questions := make([]domain.Question, 0, len(payloads))
	for _, p := range payloads {
		if strings.TrimSpace(p.Question) == "" || strings.TrimSpace(p.Answer) == "" {
			// Incomplete entries are skipped rather than failing the batch.
			continue
		}
		questions = append(questions, domain.Question{
			Type:    parseQuestionType(p.Type),
			Prompt:  strings.TrimSpace(p.Question),
			Choices: p.Choices,
			Answer:  strings.TrimSpace(p.Answer),
		})
	}
	return questions, nil
}

func parseQuestionType(s string) domain.QuestionType {
	switch domain.QuestionType(strings.ToLower(strings.TrimSpace(s))) {
	case domain.QuestionMultipleChoice:
		return domain.QuestionMultipleChoice
	case domain.QuestionFillIn:
		return domain.QuestionFillIn
	default:
		return domain.QuestionShortAnswer
	}
}

// mergeRoundRobin interleaves per-chunk results so every chunk of the document
// contributes questions even after trimming.
func mergeRoundRobin(results [][]domain.Question) []domain.Question {
	var merged []domain.Question
	for i := 0; ; i++ {
		added := false
		for _, qs := range results {
			if i < len(qs) {
				merged = append(merged, qs[i])
				added = true
			}
		}
		if !added {
			return merged
		}
	}
}

func dedupeByPrompt(questions []domain.Question) []domain.Question {
	seen := make(map[string]struct{}, len(questions))
	out := questions[:0]
	for _, q := range questions {
		key := strings.Join(strings.Fields(strings.ToLower(q.Prompt)), " ")
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, q)
	}
	return out
}

var _ domain.QuestionGenerationService = (*OpenAIQuestionGenerator)(nil)
