package service

import (
	"context"
	"testing"

	"slidequiz/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestExtractText_Success(t *testing.T) {
	extractor := new(MockTextExtractor)
	extractor.On("Extract", mock.Anything, mock.MatchedBy(func(doc domain.UploadedDocument) bool {
		return doc.Filename == "lecture.pptx" && doc.Format == domain.FormatPPTX
	})).Return(&domain.ExtractedDocument{
		Filename: "lecture.pptx",
		Format:   domain.FormatPPTX,
		Blocks:   []string{"Intro", "Body"},
	}, nil)

	svc := NewExtractionService(extractor)
	resp, err := svc.ExtractText(context.Background(), "lecture.pptx", "", []byte("payload"))
	require.NoError(t, err)
	assert.Equal(t, "lecture.pptx", resp.Filename)
	assert.Equal(t, "pptx", resp.Format)
	assert.Equal(t, "Intro\n\nBody", resp.Text)
	extractor.AssertExpectations(t)
}

func TestExtractText_ExplicitFormatTag(t *testing.T) {
	extractor := new(MockTextExtractor)
	extractor.On("Extract", mock.Anything, mock.MatchedBy(func(doc domain.UploadedDocument) bool {
		return doc.Format == domain.FormatDOCX
	})).Return(&domain.ExtractedDocument{
		Filename: "upload.bin",
		Format:   domain.FormatDOCX,
		Blocks:   []string{"content"},
	}, nil)

	svc := NewExtractionService(extractor)
	resp, err := svc.ExtractText(context.Background(), "upload.bin", "docx", []byte("payload"))
	require.NoError(t, err)
	assert.Equal(t, "docx", resp.Format)
}

func TestExtractText_UnsupportedFormatSkipsExtractor(t *testing.T) {
	extractor := new(MockTextExtractor)
	svc := NewExtractionService(extractor)

	_, err := svc.ExtractText(context.Background(), "image.png", "", []byte("png bytes"))
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeUnsupportedFormat, domainErr.Code)
	extractor.AssertNotCalled(t, "Extract", mock.Anything, mock.Anything)
}

func TestExtractText_EmptyExtraction(t *testing.T) {
	extractor := new(MockTextExtractor)
	extractor.On("Extract", mock.Anything, mock.Anything).Return(&domain.ExtractedDocument{
		Filename: "blank.pdf",
		Format:   domain.FormatPDF,
		Blocks:   nil,
	}, nil)

	svc := NewExtractionService(extractor)
	_, err := svc.ExtractText(context.Background(), "blank.pdf", "", []byte("payload"))
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeEmptyExtraction, domainErr.Code)
}

func TestExtractText_ExtractorErrorPropagates(t *testing.T) {
	extractor := new(MockTextExtractor)
	extractor.On("Extract", mock.Anything, mock.Anything).
		Return(nil, domain.NewCorruptDocumentError(domain.FormatPDF, assert.AnError))

	svc := NewExtractionService(extractor)
	_, err := svc.ExtractText(context.Background(), "broken.pdf", "", []byte("garbage"))
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeCorruptDocument, domainErr.Code)
}
