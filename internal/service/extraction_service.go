package service

import (
	"context"
	"slidequiz/internal/adapter/extractor"
	"slidequiz/internal/domain"
	"slidequiz/internal/dto"
	"slidequiz/internal/logger"

	"go.uber.org/zap"
)

// ExtractionService turns an uploaded document into plain text.
type ExtractionService interface {
	ExtractText(ctx context.Context, filename, formatTag string, data []byte) (*dto.UploadTextResponse, error)
}

type extractionService struct {
	extractor domain.TextExtractor
}

// NewExtractionService creates a new instance of extractionService
func NewExtractionService(textExtractor domain.TextExtractor) ExtractionService {
	return &extractionService{extractor: textExtractor}
}

// ExtractText implements ExtractionService. An empty extraction result is an
// error, never a silent success, so garbage input can never reach the
// question generator.
func (s *extractionService) ExtractText(ctx context.Context, filename, formatTag string, data []byte) (*dto.UploadTextResponse, error) {
	format, err := extractor.DetectFormat(filename, formatTag, data)
	if err != nil {
		return nil, err
	}

	extracted, err := s.extractor.Extract(ctx, domain.UploadedDocument{
		Filename: filename,
		Format:   format,
		Data:     data,
	})
	if err != nil {
		return nil, err
	}
	if extracted.IsEmpty() {
		return nil, domain.NewEmptyExtractionError(filename)
	}

	logger.Get().Info("Document extracted",
		zap.String("filename", filename),
		zap.String("format", string(format)),
		zap.Int("blocks", len(extracted.Blocks)))

	return &dto.UploadTextResponse{
		Filename: filename,
		Format:   string(format),
		Text:     extracted.Text(),
	}, nil
}
