// Package chunk splits extracted text into bounded segments for a service with
// a maximum input size. Segment boundaries align to block separators so a
// slide or paragraph is never cut mid-thought unless a single block exceeds
// the budget on its own.
package chunk

import "strings"

type Splitter struct {
	// Budget is the character budget of one chunk.
	Budget int
	// MaxChunks caps the output; blocks beyond the cap are dropped.
	MaxChunks int
}

func NewSplitter(budget, maxChunks int) *Splitter {
	if budget <= 0 {
		budget = 3000
	}
	if maxChunks <= 0 {
		maxChunks = 4
	}
	return &Splitter{Budget: budget, MaxChunks: maxChunks}
}

// Split groups consecutive blocks into chunks that fit the budget. A block
// larger than the whole budget is hard-cut on rune boundaries.
func (s *Splitter) Split(blocks []string, separator string) []string {
	var chunks []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			chunks = append(chunks, current.String())
			current.Reset()
		}
	}

	for _, block := range blocks {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		for _, piece := range s.cut(block) {
			need := len(piece)
			if current.Len() > 0 {
				need += len(separator)
			}
			if current.Len()+need > s.Budget {
				flush()
			}
			if current.Len() > 0 {
				current.WriteString(separator)
			}
			current.WriteString(piece)
		}
		if len(chunks) >= s.MaxChunks {
			break
		}
	}
	flush()

	if len(chunks) > s.MaxChunks {
		chunks = chunks[:s.MaxChunks]
	}
	return chunks
}

// cut hard-splits a single oversized block at the budget, on rune boundaries.
func (s *Splitter) cut(block string) []string {
	if len(block) <= s.Budget {
		return []string{block}
	}
	runes := []rune(block)
	var pieces []string
	for start := 0; start < len(runes); {
		end := start
		size := 0
		for end < len(runes) && size+len(string(runes[end])) <= s.Budget {
			size += len(string(runes[end]))
			end++
		}
		pieces = append(pieces, string(runes[start:end]))
		start = end
	}
	return pieces
}
