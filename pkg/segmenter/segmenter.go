package segmenter

import (
	"regexp"
	"strings"
)

type SegmenterConfig struct {
	TargetSize int
}

type Segmenter struct {
	config SegmenterConfig
}

func NewWithConfig(config SegmenterConfig) Segmenter {
	if config.TargetSize == 0 {
		config.TargetSize = 1600
	}

	return Segmenter{
		config: config,
	}
}

var (
	paragraphSplit = regexp.MustCompile(`\n\n+`)
	gutenbergStart = regexp.MustCompile(`\*\*\* ?START OF (THE|THIS) PROJECT GUTENBERG EBOOK.*? \*\*\*`)
	gutenbergEnd   = regexp.MustCompile(`\*\*\* ?END OF (THE|THIS) PROJECT GUTENBERG EBOOK.*? \*\*\*`)
)

// Segment splits text into chunks near TargetSize without cutting
// mid-sentence. Paragraphs are accumulated greedily; a paragraph that would
// push the running chunk past the target starts the next chunk. Chunks that
// still exceed 1.5x the target are re-split at sentence boundaries.
func (s *Segmenter) Segment(text string) []string {
	target := s.config.TargetSize

	var chunks []string
	var current strings.Builder

	for _, para := range paragraphSplit.Split(text, -1) {
		if strings.TrimSpace(para) == "" {
			continue
		}
		if current.Len()+len(para) > target && current.Len() > 0 {
			chunks = append(chunks, strings.TrimSpace(current.String()))
			current.Reset()
			current.WriteString(para)
			continue
		}
		if current.Len() > 0 {
			current.WriteString("\n\n")
		}
		current.WriteString(para)
	}
	if current.Len() > 0 {
		chunks = append(chunks, strings.TrimSpace(current.String()))
	}

	// Oversized chunks get a second pass at sentence granularity.
	var final []string
	for _, chunk := range chunks {
		if len(chunk) <= target*3/2 {
			final = append(final, chunk)
			continue
		}

		var sub strings.Builder
		for _, sentence := range strings.Split(chunk, ". ") {
			if sub.Len()+len(sentence) > target && sub.Len() > 0 {
				final = append(final, strings.TrimSpace(sub.String())+".")
				sub.Reset()
				sub.WriteString(sentence)
				continue
			}
			if sub.Len() > 0 {
				sub.WriteString(". ")
			}
			sub.WriteString(sentence)
		}
		if sub.Len() > 0 {
			final = append(final, strings.TrimSpace(sub.String()))
		}
	}

	return final
}

// Window slices text into fixed windows of size characters advanced by
// size-overlap, pulling each cut back to the last sentence or newline
// boundary when one exists past the midpoint of the window. Used for
// ingesting long public-domain works.
func Window(text string, size, overlap int) []string {
	if size <= 0 {
		return nil
	}
	if overlap < 0 || overlap >= size {
		overlap = 0
	}

	var chunks []string
	start := 0

	for start < len(text) {
		end := start + size
		if end > len(text) {
			end = len(text)
		}
		chunk := text[start:end]

		if end < len(text) {
			lastPeriod := strings.LastIndex(chunk, ".")
			lastNewline := strings.LastIndex(chunk, "\n")
			breakPoint := lastPeriod
			if lastNewline > breakPoint {
				breakPoint = lastNewline
			}

			step := size - overlap
			if breakPoint > size/2 {
				chunk = chunk[:breakPoint+1]
				if s := breakPoint + 1 - overlap; s > 0 {
					step = s
				}
			}
			start += step
		} else {
			start += size - overlap
		}

		if trimmed := strings.TrimSpace(chunk); trimmed != "" {
			chunks = append(chunks, trimmed)
		}
	}

	return chunks
}

// StripGutenberg removes Project Gutenberg header and footer boilerplate,
// keeping only the interior span. A missing marker leaves the corresponding
// boundary at the text's start or end, so a file without markers passes
// through whole.
func StripGutenberg(text string) string {
	start := 0
	end := len(text)

	if loc := gutenbergStart.FindStringIndex(text); loc != nil {
		start = loc[1]
	}
	if loc := gutenbergEnd.FindStringIndex(text); loc != nil && loc[0] > start {
		end = loc[0]
	}

	return strings.TrimSpace(text[start:end])
}
