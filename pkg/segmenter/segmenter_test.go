package segmenter_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agora-ai/agora/pkg/segmenter"
)

func TestSegment_Empty(t *testing.T) {
	s := segmenter.NewWithConfig(segmenter.SegmenterConfig{TargetSize: 100})

	assert.Empty(t, s.Segment(""))
	assert.Empty(t, s.Segment("\n\n\n\n"))
}

func TestSegment_SmallInput(t *testing.T) {
	s := segmenter.NewWithConfig(segmenter.SegmenterConfig{TargetSize: 1000})

	chunks := s.Segment("A short reflection on virtue.")
	assert.Len(t, chunks, 1)
	assert.Equal(t, "A short reflection on virtue.", chunks[0])
}

func TestSegment_ParagraphBoundaries(t *testing.T) {
	s := segmenter.NewWithConfig(segmenter.SegmenterConfig{TargetSize: 60})

	text := "First paragraph about the nature of justice in the city.\n\n" +
		"Second paragraph about the soul and its three parts.\n\n" +
		"Third paragraph about the philosopher kings."

	chunks := s.Segment(text)
	assert.Greater(t, len(chunks), 1)

	for _, chunk := range chunks {
		assert.NotEmpty(t, strings.TrimSpace(chunk))
	}

	// Content survives segmentation modulo whitespace at cut points.
	joined := strings.Join(chunks, " ")
	for _, word := range []string{"justice", "soul", "kings"} {
		assert.Contains(t, joined, word)
	}
}

func TestSegment_CollapsesEmptyParagraphs(t *testing.T) {
	s := segmenter.NewWithConfig(segmenter.SegmenterConfig{TargetSize: 50})

	chunks := s.Segment("One.\n\n\n\n\n\nTwo.")
	for _, chunk := range chunks {
		assert.NotEmpty(t, strings.TrimSpace(chunk))
	}
}

func TestSegment_ResplitsOversizedParagraph(t *testing.T) {
	s := segmenter.NewWithConfig(segmenter.SegmenterConfig{TargetSize: 80})

	// A single paragraph far beyond 1.5x the target, with sentence breaks.
	var b strings.Builder
	for i := 0; i < 20; i++ {
		b.WriteString("The unexamined life is not worth living for a human being. ")
	}

	chunks := s.Segment(b.String())
	assert.Greater(t, len(chunks), 1)
	for _, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk), 80*2)
	}
}

func TestWindow_Overlap(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 40; i++ {
		b.WriteString("All men by nature desire to know and wonder at the world. ")
	}
	text := b.String()

	chunks := segmenter.Window(text, 200, 50)
	assert.Greater(t, len(chunks), 1)

	for i := 0; i < len(chunks)-1; i++ {
		prev, next := chunks[i], chunks[i+1]
		if len(prev) <= 50 || len(next) <= 50 {
			continue
		}
		// The head of each window repeats the tail of the previous one.
		assert.Contains(t, prev, next[:40])
	}
}

func TestWindow_Empty(t *testing.T) {
	assert.Empty(t, segmenter.Window("", 100, 10))
}

func TestWindow_PrefersSentenceBoundaries(t *testing.T) {
	text := strings.Repeat("A complete sentence ends here. ", 30)

	chunks := segmenter.Window(text, 150, 20)
	for i, chunk := range chunks {
		if i == len(chunks)-1 {
			continue
		}
		assert.True(t, strings.HasSuffix(chunk, "."),
			"chunk %d should end at a sentence boundary: %q", i, chunk)
	}
}

func TestStripGutenberg(t *testing.T) {
	text := "Produced by volunteers.\n" +
		"*** START OF THE PROJECT GUTENBERG EBOOK THE REPUBLIC ***\n" +
		"The actual text of the work.\n" +
		"*** END OF THE PROJECT GUTENBERG EBOOK THE REPUBLIC ***\n" +
		"License terms follow."

	cleaned := segmenter.StripGutenberg(text)
	assert.Equal(t, "The actual text of the work.", cleaned)
}

func TestStripGutenberg_MissingMarkers(t *testing.T) {
	// A file without boilerplate passes through whole.
	text := "Just the work itself, no boilerplate."
	assert.Equal(t, text, segmenter.StripGutenberg(text))

	// Only a start marker: keep everything after it.
	withStart := "header\n*** START OF THIS PROJECT GUTENBERG EBOOK MEDITATIONS ***\nbody text"
	assert.Equal(t, "body text", segmenter.StripGutenberg(withStart))
}
