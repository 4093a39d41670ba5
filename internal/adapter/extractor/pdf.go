package extractor

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ledongthuc/pdf"
)

var errEmptyPayload = errors.New("empty document payload")

// extractPDF returns one text block per page using github.com/ledongthuc/pdf.
// The library panics on some malformed inputs, so parsing runs under recover
// and a panic is reported as a parse error.
func extractPDF(data []byte) (blocks []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			blocks = nil
			err = fmt.Errorf("pdf parser panic: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}

	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i, err)
		}
		blocks = append(blocks, text)
	}
	return blocks, nil
}
