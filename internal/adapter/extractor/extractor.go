// Package extractor converts uploaded PDF, PPTX and DOCX documents into
// normalized plain-text blocks. Each block corresponds to one logical unit of
// the source (a page, a slide, a paragraph) so that downstream chunking can
// align on real boundaries.
package extractor

import (
	"archive/zip"
	"bytes"
	"context"
	"strings"

	"slidequiz/internal/domain"
	"slidequiz/internal/logger"

	"go.uber.org/zap"
)

// DocumentExtractor dispatches to the per-format parsers.
type DocumentExtractor struct{}

// NewDocumentExtractor creates the extractor for all supported formats.
func NewDocumentExtractor() domain.TextExtractor {
	return &DocumentExtractor{}
}

// Extract implements domain.TextExtractor.
func (e *DocumentExtractor) Extract(ctx context.Context, doc domain.UploadedDocument) (*domain.ExtractedDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(doc.Data) == 0 {
		return nil, domain.NewCorruptDocumentError(doc.Format, errEmptyPayload)
	}

	var (
		blocks []string
		err    error
	)
	switch doc.Format {
	case domain.FormatPDF:
		blocks, err = extractPDF(doc.Data)
	case domain.FormatPPTX:
		blocks, err = extractPPTX(doc.Data)
	case domain.FormatDOCX:
		blocks, err = extractDOCX(doc.Data)
	default:
		return nil, domain.NewUnsupportedFormatError(string(doc.Format))
	}
	if err != nil {
		logger.Get().Warn("Document extraction failed",
			zap.String("filename", doc.Filename),
			zap.String("format", string(doc.Format)),
			zap.Error(err))
		return nil, domain.NewCorruptDocumentError(doc.Format, err)
	}

	return &domain.ExtractedDocument{
		Filename: doc.Filename,
		Format:   doc.Format,
		Blocks:   normalizeBlocks(blocks),
	}, nil
}

// DetectFormat resolves the document format for an upload. An explicit tag
// wins; otherwise the filename extension decides, corrected by sniffing the
// zip container for OOXML payloads that arrive with a misleading name.
func DetectFormat(filename, explicitTag string, data []byte) (domain.DocumentFormat, error) {
	if explicitTag != "" {
		return domain.ParseFormat(explicitTag)
	}
	format, err := domain.FormatFromFilename(filename)
	if err != nil {
		if sniffed := sniffOOXML(data); sniffed != "" {
			return sniffed, nil
		}
		return "", err
	}
	return format, nil
}

// sniffOOXML inspects a zip container for the marker file of each OOXML type.
func sniffOOXML(data []byte) domain.DocumentFormat {
	if len(data) == 0 {
		return ""
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ""
	}
	for _, f := range zr.File {
		name := strings.ReplaceAll(f.Name, "\\", "/")
		switch name {
		case "word/document.xml":
			return domain.FormatDOCX
		case "ppt/presentation.xml":
			return domain.FormatPPTX
		}
	}
	return ""
}

// normalizeBlocks drops blank blocks and trims surrounding whitespace so an
// all-whitespace parse surfaces as an empty result, never as silent success.
func normalizeBlocks(blocks []string) []string {
	out := make([]string, 0, len(blocks))
	for _, b := range blocks {
		b = strings.TrimSpace(b)
		if b != "" {
			out = append(out, b)
		}
	}
	return out
}
