package extractor

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"slidequiz/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildZip assembles an in-memory zip archive from name->content pairs.
func buildZip(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func slideXML(texts ...string) string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	sb.WriteString(`<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"><p:cSld><p:spTree>`)
	for _, text := range texts {
		sb.WriteString(`<p:sp><p:txBody><a:p><a:r><a:t>`)
		sb.WriteString(text)
		sb.WriteString(`</a:t></a:r></a:p></p:txBody></p:sp>`)
	}
	sb.WriteString(`</p:spTree></p:cSld></p:sld>`)
	return sb.String()
}

func buildPPTX(t *testing.T, slideTexts ...string) []byte {
	t.Helper()
	files := map[string]string{
		"ppt/presentation.xml": `<?xml version="1.0"?><p:presentation xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"/>`,
	}
	for i, text := range slideTexts {
		files[fmt.Sprintf("ppt/slides/slide%d.xml", i+1)] = slideXML(text)
	}
	return buildZip(t, files)
}

func buildDOCX(t *testing.T, paragraphs ...string) []byte {
	t.Helper()
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	sb.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, p := range paragraphs {
		sb.WriteString(`<w:p><w:r><w:t>`)
		sb.WriteString(p)
		sb.WriteString(`</w:t></w:r></w:p>`)
	}
	sb.WriteString(`</w:body></w:document>`)
	return buildZip(t, map[string]string{"word/document.xml": sb.String()})
}

func TestExtract_PPTX(t *testing.T) {
	ext := NewDocumentExtractor()
	ctx := context.Background()

	t.Run("ThreeSlidesInOrder", func(t *testing.T) {
		data := buildPPTX(t, "Intro", "Body", "Conclusion")
		doc, err := ext.Extract(ctx, domain.UploadedDocument{
			Filename: "deck.pptx",
			Format:   domain.FormatPPTX,
			Data:     data,
		})
		require.NoError(t, err)
		require.Equal(t, []string{"Intro", "Body", "Conclusion"}, doc.Blocks)

		text := doc.Text()
		intro := strings.Index(text, "Intro")
		body := strings.Index(text, "Body")
		conclusion := strings.Index(text, "Conclusion")
		assert.True(t, intro >= 0 && intro < body && body < conclusion, "markers must appear in slide order")
	})

	t.Run("SlidesSortedNumerically", func(t *testing.T) {
		// slide10 must come after slide2 despite lexicographic zip order.
		data := buildZip(t, map[string]string{
			"ppt/slides/slide10.xml": slideXML("Tenth"),
			"ppt/slides/slide2.xml":  slideXML("Second"),
			"ppt/slides/slide1.xml":  slideXML("First"),
		})
		doc, err := ext.Extract(ctx, domain.UploadedDocument{
			Filename: "deck.pptx",
			Format:   domain.FormatPPTX,
			Data:     data,
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"First", "Second", "Tenth"}, doc.Blocks)
	})

	t.Run("NoSlides", func(t *testing.T) {
		data := buildZip(t, map[string]string{"ppt/presentation.xml": "<p/>"})
		_, err := ext.Extract(ctx, domain.UploadedDocument{
			Filename: "deck.pptx",
			Format:   domain.FormatPPTX,
			Data:     data,
		})
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeCorruptDocument, domainErr.Code)
	})
}

func TestExtract_DOCX(t *testing.T) {
	ext := NewDocumentExtractor()
	ctx := context.Background()

	t.Run("ParagraphsBecomeBlocks", func(t *testing.T) {
		data := buildDOCX(t, "First paragraph", "Second paragraph")
		doc, err := ext.Extract(ctx, domain.UploadedDocument{
			Filename: "notes.docx",
			Format:   domain.FormatDOCX,
			Data:     data,
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"First paragraph", "Second paragraph"}, doc.Blocks)
	})

	t.Run("MissingDocumentXML", func(t *testing.T) {
		data := buildZip(t, map[string]string{"other.xml": "<x/>"})
		_, err := ext.Extract(ctx, domain.UploadedDocument{
			Filename: "notes.docx",
			Format:   domain.FormatDOCX,
			Data:     data,
		})
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeCorruptDocument, domainErr.Code)
	})
}

func TestExtract_CorruptAndEmptyInput(t *testing.T) {
	ext := NewDocumentExtractor()
	ctx := context.Background()

	cases := []struct {
		name   string
		format domain.DocumentFormat
		data   []byte
	}{
		{"ZeroBytePDF", domain.FormatPDF, nil},
		{"ZeroBytePPTX", domain.FormatPPTX, nil},
		{"GarbagePDF", domain.FormatPDF, []byte("not a pdf at all")},
		{"GarbagePPTX", domain.FormatPPTX, []byte("not a zip")},
		{"GarbageDOCX", domain.FormatDOCX, []byte("not a zip")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ext.Extract(ctx, domain.UploadedDocument{
				Filename: "file",
				Format:   tc.format,
				Data:     tc.data,
			})
			var domainErr *domain.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, domain.CodeCorruptDocument, domainErr.Code)
		})
	}
}

func TestExtract_UnsupportedFormat(t *testing.T) {
	ext := NewDocumentExtractor()
	_, err := ext.Extract(context.Background(), domain.UploadedDocument{
		Filename: "file.xlsx",
		Format:   domain.DocumentFormat("xlsx"),
		Data:     []byte("payload"),
	})
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeUnsupportedFormat, domainErr.Code)
}

func TestDetectFormat(t *testing.T) {
	t.Run("ExplicitTagWins", func(t *testing.T) {
		format, err := DetectFormat("whatever.bin", "pptx", nil)
		require.NoError(t, err)
		assert.Equal(t, domain.FormatPPTX, format)
	})

	t.Run("LegacyPptAlias", func(t *testing.T) {
		format, err := DetectFormat("deck.ppt", "", nil)
		require.NoError(t, err)
		assert.Equal(t, domain.FormatPPTX, format)
	})

	t.Run("FromExtension", func(t *testing.T) {
		format, err := DetectFormat("report.PDF", "", nil)
		require.NoError(t, err)
		assert.Equal(t, domain.FormatPDF, format)
	})

	t.Run("SniffsOOXMLWithoutExtension", func(t *testing.T) {
		data := buildDOCX(t, "content")
		format, err := DetectFormat("upload", "", data)
		require.NoError(t, err)
		assert.Equal(t, domain.FormatDOCX, format)
	})

	t.Run("UnsupportedExtension", func(t *testing.T) {
		_, err := DetectFormat("image.png", "", []byte("png bytes"))
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeUnsupportedFormat, domainErr.Code)
	})

	t.Run("UnsupportedExplicitTag", func(t *testing.T) {
		_, err := DetectFormat("doc.docx", "xls", nil)
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeUnsupportedFormat, domainErr.Code)
	})
}
