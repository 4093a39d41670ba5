package domain

import (
	"context"
	"path/filepath"
	"strings"
)

// DocumentFormat identifies a supported upload format.
type DocumentFormat string

const (
	FormatPDF  DocumentFormat = "pdf"
	FormatPPTX DocumentFormat = "pptx"
	FormatDOCX DocumentFormat = "docx"
)

// BlockSeparator joins extracted text blocks (pages, slides, paragraph groups).
// Downstream chunking aligns on this boundary.
const BlockSeparator = "\n\n"

// UploadedDocument is the raw payload of a single upload request. It lives only
// for the duration of that request.
type UploadedDocument struct {
	Filename string
	Format   DocumentFormat
	Data     []byte
}

// ExtractedDocument is the normalized result of text extraction. Blocks keep
// the logical order of pages/slides/paragraphs and are immutable once produced.
type ExtractedDocument struct {
	Filename string
	Format   DocumentFormat
	Blocks   []string
}

// Text returns the full extracted text with block boundaries preserved.
func (d *ExtractedDocument) Text() string {
	return strings.Join(d.Blocks, BlockSeparator)
}

// IsEmpty reports whether extraction produced no usable text.
func (d *ExtractedDocument) IsEmpty() bool {
	for _, b := range d.Blocks {
		if strings.TrimSpace(b) != "" {
			return false
		}
	}
	return true
}

// TextExtractor converts an uploaded document into plain text blocks.
type TextExtractor interface {
	Extract(ctx context.Context, doc UploadedDocument) (*ExtractedDocument, error)
}

// ParseFormat maps a format tag to a DocumentFormat. The legacy "ppt" tag is
// accepted as an alias for pptx.
func ParseFormat(tag string) (DocumentFormat, error) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "pdf":
		return FormatPDF, nil
	case "pptx", "ppt":
		return FormatPPTX, nil
	case "docx":
		return FormatDOCX, nil
	default:
		return "", NewUnsupportedFormatError(tag)
	}
}

// FormatFromFilename infers the document format from the file extension.
func FormatFromFilename(filename string) (DocumentFormat, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if ext == "" {
		return "", NewUnsupportedFormatError(filename)
	}
	return ParseFormat(ext)
}
